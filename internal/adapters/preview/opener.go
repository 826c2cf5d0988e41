package preview

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// Opener implements ports.PreviewOpener using the OS default handler
type Opener struct{}

// NewOpener creates a new preview opener
func NewOpener() *Opener {
	return &Opener{}
}

// OpenURL opens a rendered output URL in the system player or browser
func (o *Opener) OpenURL(rawURL string) error {
	if err := ValidateURL(rawURL); err != nil {
		return err
	}
	return o.open(rawURL)
}

// ValidateURL checks that the URL is absolute and uses a scheme the OS
// handler can be trusted with.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	switch u.Scheme {
	case "http", "https", "file":
		return nil
	default:
		return fmt.Errorf("unsupported URL scheme: %q", u.Scheme)
	}
}

func (o *Opener) open(uri string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", uri)
	case "linux":
		cmd = exec.Command("xdg-open", uri)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", uri)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}

	return cmd.Run()
}
