package ports

// PreviewOpener opens a rendered output in the system's default handler
type PreviewOpener interface {
	// OpenURL opens the given http(s) or file URL externally
	OpenURL(url string) error
}
