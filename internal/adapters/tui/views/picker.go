package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"reelcut/internal/adapters/tui/styles"
	"reelcut/internal/domain"
	"reelcut/internal/ports"
)

// PickerKeyMap defines key bindings for the source picker
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var PickerKeys = PickerKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open in editor"),
	),
	Reload: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// PickerModel lists the source catalogue; selecting a video opens it in
// the editor with a fresh project.
type PickerModel struct {
	ViewState

	catalog ports.Catalog
	videos  []domain.SourceVideo
	cursor  int
	loading bool
	loadErr error
}

// NewPickerModel creates a picker over the given catalogue
func NewPickerModel(catalog ports.Catalog) *PickerModel {
	return &PickerModel{catalog: catalog}
}

// Init triggers the initial catalogue fetch
func (m *PickerModel) Init() tea.Cmd {
	m.loading = true
	return m.loadCatalog
}

func (m *PickerModel) loadCatalog() tea.Msg {
	videos, err := m.catalog.List(context.Background())
	if err != nil {
		return catalogErrMsg{err}
	}
	return catalogLoadedMsg{videos}
}

type catalogLoadedMsg struct {
	videos []domain.SourceVideo
}

type catalogErrMsg struct {
	err error
}

// Update handles messages for the picker
func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case catalogLoadedMsg:
		m.loading = false
		m.loadErr = nil
		m.videos = msg.videos
		if m.cursor >= len(m.videos) {
			m.cursor = 0
		}
		return m, nil

	case catalogErrMsg:
		m.loading = false
		m.loadErr = msg.err
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, PickerKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, PickerKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, PickerKeys.Down):
			if m.cursor < len(m.videos)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, PickerKeys.Reload):
			m.loading = true
			return m, m.loadCatalog

		case key.Matches(msg, PickerKeys.Select):
			if m.cursor >= 0 && m.cursor < len(m.videos) {
				source := m.videos[m.cursor]
				return m, func() tea.Msg {
					return SwitchToEditorMsg{Source: source}
				}
			}
			return m, nil

		case key.Matches(msg, PickerKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

// View renders the picker
func (m *PickerModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("reelcut"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Pick a source video to start editing"))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(styles.MutedText.Render("Loading catalogue..."))
	case m.loadErr != nil:
		b.WriteString(styles.BannerError.Render(fmt.Sprintf("Catalogue unavailable: %v", m.loadErr)))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render("Press R to retry"))
	case len(m.videos) == 0:
		b.WriteString(styles.MutedText.Render("The catalogue is empty."))
	default:
		for i, v := range m.videos {
			line := v.Title
			meta := ""
			if v.Duration > 0 {
				meta = fmt.Sprintf("  %s", FormatTimecode(v.Duration))
			}
			if i == m.cursor {
				b.WriteString(styles.ListSelected.Render("▸ " + line))
			} else {
				b.WriteString(styles.ListItem.Render("  " + line))
			}
			b.WriteString(styles.ListMeta.Render(meta))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(renderKeyHelp(
		"enter", "open",
		"j/k", "move",
		"R", "reload",
		"?", "help",
		"q", "quit",
	))
	return styles.App.Render(b.String())
}

// renderKeyHelp renders a one-line key legend from key/description pairs
func renderKeyHelp(pairs ...string) string {
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, styles.HelpKey.Render(pairs[i])+" "+styles.HelpDesc.Render(pairs[i+1]))
	}
	return strings.Join(parts, styles.MutedText.Render(" • "))
}
