package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Track lane colors
	VideoClip = lipgloss.Color("#6366F1") // Indigo
	AudioClip = lipgloss.Color("#0891B2") // Cyan
	TextClip  = lipgloss.Color("#F97316") // Orange

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Timeline styles
	Ruler = lipgloss.NewStyle().
		Foreground(Muted)

	Playhead = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	TrackLabel = lipgloss.NewStyle().
			Foreground(Secondary)

	TrackLane = lipgloss.NewStyle().
			Foreground(Muted)

	ClipBlockVideo = lipgloss.NewStyle().
			Background(VideoClip).
			Foreground(White)

	ClipBlockAudio = lipgloss.NewStyle().
			Background(AudioClip).
			Foreground(White)

	ClipBlockText = lipgloss.NewStyle().
			Background(TextClip).
			Foreground(Black)

	ClipSelected = lipgloss.NewStyle().
			Background(Warning).
			Foreground(Black).
			Bold(true)

	ClipMuted = lipgloss.NewStyle().
			Background(Muted).
			Foreground(Black)

	// Transport bar
	Transport = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	TransportTime = lipgloss.NewStyle().
			Foreground(Secondary)

	// Picker list
	ListItem = lipgloss.NewStyle()

	ListSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	ListMeta = lipgloss.NewStyle().
			Foreground(Muted)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	StatusKey = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Padding(0, 1).
			MarginRight(1)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	// Banner styles
	BannerSuccess = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	BannerError = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	BannerInfo = lipgloss.NewStyle().
			Foreground(Warning)

	// Muted text style
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// ClipStyle returns the base style for a clip block on a track of the
// given type.
func ClipStyle(trackType string) lipgloss.Style {
	switch trackType {
	case "audio":
		return ClipBlockAudio
	case "text":
		return ClipBlockText
	default:
		return ClipBlockVideo
	}
}
