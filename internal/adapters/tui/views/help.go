package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"reelcut/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the key reference view
type HelpModel struct {
	width  int
	height int
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToPickerMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Reelcut Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Timeline editor for rendered takes"))
	b.WriteString("\n\n")

	// Playback section
	b.WriteString(styles.InputLabel.Render("Playback"))
	b.WriteString("\n")
	b.WriteString(helpLine("space", "Play / pause"))
	b.WriteString(helpLine("← / →", "Seek by one second"))
	b.WriteString(helpLine("click ruler", "Seek to position"))
	b.WriteString("\n")

	// Editing section
	b.WriteString(styles.InputLabel.Render("Editing"))
	b.WriteString("\n")
	b.WriteString(helpLine("drag clip", "Move clip along its track"))
	b.WriteString(helpLine("tab", "Select next clip"))
	b.WriteString(helpLine("a", "Append a clip of the source"))
	b.WriteString(helpLine("d", "Delete selected clip"))
	b.WriteString(helpLine("t / T", "Add audio / text track"))
	b.WriteString(helpLine("[ / ]", "Nudge in point"))
	b.WriteString(helpLine(", / .", "Nudge out point"))
	b.WriteString(helpLine("+ / -", "Clip volume (preview volume if none selected)"))
	b.WriteString(helpLine("m", "Mute clip (preview mute if none selected)"))
	b.WriteString(helpLine("r", "Rename project"))
	b.WriteString("\n")

	// Project section
	b.WriteString(styles.InputLabel.Render("Project"))
	b.WriteString("\n")
	b.WriteString(helpLine("s", "Save edit"))
	b.WriteString(helpLine("e", "Submit export"))
	b.WriteString(helpLine("j", "Check last export job"))
	b.WriteString(helpLine("c", "Copy last job id"))
	b.WriteString("\n")

	// General section
	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("esc", "Back to source picker"))
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n\n")

	// Close hint
	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

// SetSize updates the view dimensions
func (m *HelpModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
