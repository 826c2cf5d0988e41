package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"reelcut/internal/adapters/tui/views"
	"reelcut/internal/editor"
	"reelcut/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewPicker ViewState = iota
	ViewEditor
	ViewHelp
)

// App is the main TUI application model. It routes messages between the
// source picker, the timeline editor, and the help view.
type App struct {
	catalog ports.Catalog
	session *editor.Session

	state  ViewState
	picker *views.PickerModel
	editor *views.EditorModel
	help   *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(catalog ports.Catalog, session *editor.Session, jobs *editor.JobTracker) *App {
	return &App{
		catalog: catalog,
		session: session,
		state:   ViewPicker,
		picker:  views.NewPickerModel(catalog),
		editor:  views.NewEditorModel(session, jobs),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.picker.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.picker.SetSize(msg.Width, msg.Height)
		a.editor.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToEditorMsg:
		a.state = ViewEditor
		a.editor.Open(msg.Source)
		return a, a.editor.Init()

	case views.SwitchToPickerMsg:
		a.state = ViewPicker
		return a, a.picker.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil
	}

	// Help closes back to whichever view makes sense; a project being
	// open means the editor, so intercept the picker switch it emits.
	if a.state == ViewHelp {
		_, cmd := a.help.Update(msg)
		if _, isKey := msg.(tea.KeyMsg); isKey && cmd != nil {
			if a.session.Project() != nil {
				a.state = ViewEditor
				return a, nil
			}
		}
		return a, cmd
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewPicker:
		_, cmd = a.picker.Update(msg)
	case ViewEditor:
		_, cmd = a.editor.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewEditor:
		return a.editor.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.picker.View()
	}
}
