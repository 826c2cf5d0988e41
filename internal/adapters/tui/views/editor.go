package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"reelcut/internal/adapters/tui/styles"
	"reelcut/internal/application"
	"reelcut/internal/domain"
	"reelcut/internal/editor"
	"reelcut/internal/ports"
)

const (
	// trackLabelWidth is the left gutter; timeline column 0 starts after it
	trackLabelWidth = 14

	// trimStep is how far one trim keypress moves an in/out point
	trimStep = 0.5

	// seekStep is how far an arrow key moves the playhead
	seekStep = 1.0

	playbackTick  = 200 * time.Millisecond
	bannerTimeout = 4 * time.Second
)

// EditorKeyMap defines key bindings for the timeline editor
type EditorKeyMap struct {
	PlayPause   key.Binding
	SeekBack    key.Binding
	SeekForward key.Binding
	NextClip    key.Binding
	AddClip     key.Binding
	DeleteClip  key.Binding
	AudioTrack  key.Binding
	TextTrack   key.Binding
	TrimInLeft  key.Binding
	TrimInRight key.Binding
	TrimOutLeft key.Binding
	TrimOutRght key.Binding
	VolumeUp    key.Binding
	VolumeDown  key.Binding
	MuteClip    key.Binding
	Rename      key.Binding
	Save        key.Binding
	Export      key.Binding
	JobStatus   key.Binding
	CopyJob     key.Binding
	Back        key.Binding
	Help        key.Binding
	Quit        key.Binding
}

var EditorKeys = EditorKeyMap{
	PlayPause: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "play/pause"),
	),
	SeekBack: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "seek back"),
	),
	SeekForward: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "seek forward"),
	),
	NextClip: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next clip"),
	),
	AddClip: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "append clip"),
	),
	DeleteClip: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete clip"),
	),
	AudioTrack: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "add audio track"),
	),
	TextTrack: key.NewBinding(
		key.WithKeys("T"),
		key.WithHelp("T", "add text track"),
	),
	TrimInLeft: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "in point earlier"),
	),
	TrimInRight: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "in point later"),
	),
	TrimOutLeft: key.NewBinding(
		key.WithKeys(","),
		key.WithHelp(",", "out point earlier"),
	),
	TrimOutRght: key.NewBinding(
		key.WithKeys("."),
		key.WithHelp(".", "out point later"),
	),
	VolumeUp: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "volume up"),
	),
	VolumeDown: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "volume down"),
	),
	MuteClip: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "mute clip"),
	),
	Rename: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rename project"),
	),
	Save: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export"),
	),
	JobStatus: key.NewBinding(
		key.WithKeys("j"),
		key.WithHelp("j", "job status"),
	),
	CopyJob: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy job id"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back to picker"),
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

// EditorModel is the timeline editor view. It renders the open project's
// tracks as lanes of clip blocks and translates terminal mouse events into
// the engine's drag/seek operations. Terminal cells play the role of
// pixels: the session's timescale maps columns to seconds.
type EditorModel struct {
	ViewState

	session *editor.Session
	jobs    *editor.JobTracker
	source  domain.SourceVideo

	// renaming holds the title input overlay state
	renaming   bool
	titleInput textinput.Model

	// bannerSeq invalidates stale auto-dismiss timers
	bannerSeq int
}

// Engine messages

type playbackTickMsg struct{}

type bannerMsg struct {
	banner editor.Banner
}

type bannerExpiredMsg struct {
	seq int
}

type jobStatusMsg struct {
	job ports.RenderJob
	err error
}

// NewEditorModel creates the editor view bound to a session
func NewEditorModel(session *editor.Session, jobs *editor.JobTracker) *EditorModel {
	input := textinput.New()
	input.Placeholder = "Project title"
	input.CharLimit = 80
	return &EditorModel{
		session:    session,
		jobs:       jobs,
		titleInput: input,
	}
}

// Open seeds a fresh project from the source and resets view state
func (m *EditorModel) Open(source domain.SourceVideo) {
	m.source = source
	m.session.Open(source)
	m.renaming = false
	m.ClearBanner()
}

// Close cancels any in-flight drag so the pointer subscription is
// released when the view is torn down.
func (m *EditorModel) Close() {
	m.session.Close()
}

// Init starts the playback tick loop
func (m *EditorModel) Init() tea.Cmd {
	return m.scheduleTick()
}

func (m *EditorModel) scheduleTick() tea.Cmd {
	return tea.Tick(playbackTick, func(time.Time) tea.Msg {
		return playbackTickMsg{}
	})
}

// Update handles messages for the editor
func (m *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case playbackTickMsg:
		// The media clock is authoritative while playing; mirror it into
		// the timeline's logical time.
		if pb := m.session.Playback(); pb != nil {
			pb.Tick()
		}
		return m, m.scheduleTick()

	case bannerMsg:
		m.SetBanner(msg.banner)
		m.bannerSeq++
		seq := m.bannerSeq
		return m, tea.Tick(bannerTimeout, func(time.Time) tea.Msg {
			return bannerExpiredMsg{seq: seq}
		})

	case bannerExpiredMsg:
		if msg.seq == m.bannerSeq {
			m.ClearBanner()
		}
		return m, nil

	case jobStatusMsg:
		if msg.err != nil {
			return m, banner(editor.Banner{Kind: editor.BannerError, Text: fmt.Sprintf("Job status: %v", msg.err)})
		}
		text := fmt.Sprintf("Job %s: %s", msg.job.ID, msg.job.Status)
		if msg.job.Status == ports.JobStatusRunning {
			text = fmt.Sprintf("%s (%d%%)", text, msg.job.Progress)
		}
		if msg.job.OutputURL != "" {
			text = fmt.Sprintf("%s → %s", text, msg.job.OutputURL)
		}
		return m, banner(editor.Banner{Kind: editor.BannerInfo, Text: text})

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		if m.renaming {
			return m, m.handleRenameKey(msg)
		}
		return m, m.handleKey(msg)
	}

	return m, nil
}

func banner(b editor.Banner) tea.Cmd {
	return func() tea.Msg {
		return bannerMsg{banner: b}
	}
}

func (m *EditorModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	pb := m.session.Playback()
	comp := m.session.Composition()
	if pb == nil || comp == nil {
		return nil
	}

	switch {
	case key.Matches(msg, EditorKeys.Quit):
		m.Close()
		return tea.Quit

	case key.Matches(msg, EditorKeys.Back):
		m.Close()
		return func() tea.Msg { return SwitchToPickerMsg{} }

	case key.Matches(msg, EditorKeys.Help):
		return func() tea.Msg { return SwitchToHelpMsg{} }

	case key.Matches(msg, EditorKeys.PlayPause):
		pb.TogglePlay()
		return nil

	case key.Matches(msg, EditorKeys.SeekBack):
		pb.Seek(pb.State().CurrentTime - seekStep)
		return nil

	case key.Matches(msg, EditorKeys.SeekForward):
		pb.Seek(pb.State().CurrentTime + seekStep)
		return nil

	case key.Matches(msg, EditorKeys.NextClip):
		m.selectNextClip()
		return nil

	case key.Matches(msg, EditorKeys.AddClip):
		if track := m.session.Project().VideoTrack(); track != nil {
			comp.AddClip(track.ID, m.source)
		}
		return nil

	case key.Matches(msg, EditorKeys.DeleteClip):
		if clip := m.selectedClip(); clip != nil {
			comp.DeleteClip(clip.ID)
		}
		return nil

	case key.Matches(msg, EditorKeys.AudioTrack):
		return m.addTrack(domain.TrackAudio)

	case key.Matches(msg, EditorKeys.TextTrack):
		return m.addTrack(domain.TrackText)

	case key.Matches(msg, EditorKeys.TrimInLeft):
		return m.trimSelected(-trimStep, 0)
	case key.Matches(msg, EditorKeys.TrimInRight):
		return m.trimSelected(trimStep, 0)
	case key.Matches(msg, EditorKeys.TrimOutLeft):
		return m.trimSelected(0, -trimStep)
	case key.Matches(msg, EditorKeys.TrimOutRght):
		return m.trimSelected(0, trimStep)

	case key.Matches(msg, EditorKeys.VolumeUp):
		if clip := m.selectedClip(); clip != nil {
			comp.SetClipVolume(clip.ID, clip.Volume+0.1)
		} else {
			pb.SetVolume(pb.State().Volume + 0.1)
		}
		return nil

	case key.Matches(msg, EditorKeys.VolumeDown):
		if clip := m.selectedClip(); clip != nil {
			comp.SetClipVolume(clip.ID, clip.Volume-0.1)
		} else {
			pb.SetVolume(pb.State().Volume - 0.1)
		}
		return nil

	case key.Matches(msg, EditorKeys.MuteClip):
		if clip := m.selectedClip(); clip != nil {
			comp.ToggleClipMute(clip.ID)
		} else {
			pb.ToggleMute()
		}
		return nil

	case key.Matches(msg, EditorKeys.Rename):
		m.renaming = true
		m.titleInput.SetValue(m.session.Project().Title)
		m.titleInput.Focus()
		return textinput.Blink

	case key.Matches(msg, EditorKeys.Save):
		return m.saveCmd()

	case key.Matches(msg, EditorKeys.Export):
		return m.exportCmd()

	case key.Matches(msg, EditorKeys.JobStatus):
		return m.jobStatusCmd()

	case key.Matches(msg, EditorKeys.CopyJob):
		return m.copyJobCmd()
	}

	return nil
}

func (m *EditorModel) handleRenameKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		if title := strings.TrimSpace(m.titleInput.Value()); title != "" {
			m.session.Project().Title = title
		}
		m.renaming = false
		m.titleInput.Blur()
		return nil
	case "esc":
		m.renaming = false
		m.titleInput.Blur()
		return nil
	}
	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return cmd
}

// handleMouse maps terminal mouse events onto the drag and seek surfaces.
// A press on a clip starts a drag; bubbletea's cell-motion reporting is
// the global pointer subscription, so motion keeps arriving after the
// pointer leaves the clip, and release always ends the drag.
func (m *EditorModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	drag := m.session.Drag()
	pb := m.session.Playback()
	if drag == nil || pb == nil {
		return nil
	}

	timelineX := float64(msg.X - trackLabelWidth)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if msg.Y == m.rulerRow() && timelineX >= 0 {
			pb.SeekPixel(timelineX)
			return nil
		}
		if clip := m.clipAt(msg.X, msg.Y); clip != nil {
			drag.Begin(clip.ID, timelineX, nil)
		}
		return nil

	case tea.MouseActionMotion:
		drag.Move(timelineX)
		return nil

	case tea.MouseActionRelease:
		drag.End(timelineX)
		return nil
	}

	return nil
}

func (m *EditorModel) addTrack(trackType domain.TrackType) tea.Cmd {
	comp := m.session.Composition()
	if comp == nil {
		return nil
	}
	track := comp.AddTrack(trackType, nextTrackName(m.session.Project(), trackType))
	return banner(editor.Banner{Kind: editor.BannerSuccess, Text: fmt.Sprintf("Added %s", track.Name)})
}

// nextTrackName numbers new tracks per type: "Audio 2", "Text 1".
func nextTrackName(p *domain.Project, trackType domain.TrackType) string {
	label := map[domain.TrackType]string{
		domain.TrackVideo: "Video",
		domain.TrackAudio: "Audio",
		domain.TrackText:  "Text",
	}[trackType]

	n := 1
	for _, t := range p.Tracks {
		if t.Type == trackType {
			n++
		}
	}
	return fmt.Sprintf("%s %d", label, n)
}

func (m *EditorModel) saveCmd() tea.Cmd {
	if m.session.Saving() {
		return banner(editor.Banner{Kind: editor.BannerInfo, Text: fmt.Sprintf("save: %v", application.ErrBusy)})
	}
	// Snapshot here, on the update goroutine. The command body runs
	// concurrently with further edits to the live project.
	snapshot := m.session.Snapshot()
	return func() tea.Msg {
		return bannerMsg{banner: m.session.Save(context.Background(), snapshot)}
	}
}

func (m *EditorModel) exportCmd() tea.Cmd {
	if m.session.Exporting() {
		return banner(editor.Banner{Kind: editor.BannerInfo, Text: fmt.Sprintf("export: %v", application.ErrBusy)})
	}
	snapshot := m.session.Snapshot()
	return func() tea.Msg {
		return bannerMsg{banner: m.session.Export(context.Background(), snapshot)}
	}
}

func (m *EditorModel) jobStatusCmd() tea.Cmd {
	jobID := m.session.LastJobID()
	if jobID == "" {
		return banner(editor.Banner{Kind: editor.BannerInfo, Text: "no export submitted yet"})
	}
	return func() tea.Msg {
		job, err := m.jobs.Poll(context.Background(), jobID)
		return jobStatusMsg{job: job, err: err}
	}
}

func (m *EditorModel) copyJobCmd() tea.Cmd {
	jobID := m.session.LastJobID()
	if jobID == "" {
		return banner(editor.Banner{Kind: editor.BannerInfo, Text: "no export submitted yet"})
	}
	return func() tea.Msg {
		if err := clipboard.WriteAll(jobID); err != nil {
			return bannerMsg{banner: editor.Banner{Kind: editor.BannerError, Text: fmt.Sprintf("Copy failed: %v", err)}}
		}
		return bannerMsg{banner: editor.Banner{Kind: editor.BannerSuccess, Text: fmt.Sprintf("Copied job id %s", jobID)}}
	}
}

func (m *EditorModel) trimSelected(dStart, dEnd float64) tea.Cmd {
	clip := m.selectedClip()
	if clip == nil {
		return nil
	}
	clip.Trimming = true
	m.session.Composition().TrimClip(clip.ID, clip.StartTime+dStart, clip.EndTime+dEnd)
	clip.Trimming = false
	return nil
}

func (m *EditorModel) selectedClip() *domain.Clip {
	for _, track := range m.session.Project().Tracks {
		for _, c := range track.Clips {
			if c.Selected {
				return c
			}
		}
	}
	return nil
}

func (m *EditorModel) selectNextClip() {
	var all []*domain.Clip
	for _, track := range m.session.Project().Tracks {
		all = append(all, track.Clips...)
	}
	if len(all) == 0 {
		return
	}
	next := 0
	for i, c := range all {
		if c.Selected {
			next = (i + 1) % len(all)
			break
		}
	}
	m.session.Composition().SelectClip(all[next].ID)
}

// Layout: title, optional banner, transport, blank, ruler, one row per
// track, blank, status bar. Rows are tracked so mouse hits resolve.

func (m *EditorModel) rulerRow() int {
	return 4
}

func (m *EditorModel) trackRow(i int) int {
	return m.rulerRow() + 1 + i
}

// clipAt resolves a mouse position to the clip under it, last in track
// order winning for overlaps, matching the draw order.
func (m *EditorModel) clipAt(x, y int) *domain.Clip {
	timelineX := x - trackLabelWidth
	if timelineX < 0 {
		return nil
	}
	project := m.session.Project()
	scale := m.session.Scale()

	for i, track := range project.Tracks {
		if y != m.trackRow(i) {
			continue
		}
		t := scale.PixelToTime(float64(timelineX))
		var hit *domain.Clip
		for _, c := range track.Clips {
			if t >= c.Position && t < c.End() {
				hit = c
			}
		}
		return hit
	}
	return nil
}

func (m *EditorModel) timelineWidth() int {
	w := m.Width - trackLabelWidth - 4
	if w < 10 {
		w = 10
	}
	return w
}

// View renders the editor. The surface is deliberately unpadded: mouse
// coordinates index straight into the row layout that rulerRow and
// trackRow describe.
func (m *EditorModel) View() string {
	project := m.session.Project()
	if project == nil {
		return "No project open"
	}

	var b strings.Builder

	b.WriteString(styles.Title.UnsetMargins().Render(project.Title))
	b.WriteString("\n")

	if m.Banner != nil {
		b.WriteString(m.renderBanner())
	}
	b.WriteString("\n")

	b.WriteString(m.renderTransport())
	b.WriteString("\n\n")

	b.WriteString(strings.Repeat(" ", trackLabelWidth))
	b.WriteString(styles.Ruler.Render(m.renderRuler()))
	b.WriteString("\n")

	for _, track := range project.Tracks {
		b.WriteString(m.renderTrack(track))
		b.WriteString("\n")
	}

	if m.renaming {
		b.WriteString("\n")
		b.WriteString(styles.InputLabel.Render("Title"))
		b.WriteString("\n")
		b.WriteString(styles.InputField.Render(m.titleInput.View()))
	}

	b.WriteString("\n")
	b.WriteString(renderKeyHelp(
		"space", "play",
		"drag", "move clip",
		"[ ] , .", "trim",
		"a/d", "add/delete",
		"s", "save",
		"e", "export",
		"?", "help",
	))
	return b.String()
}

func (m *EditorModel) renderBanner() string {
	switch m.Banner.Kind {
	case editor.BannerError:
		return styles.BannerError.Render(m.Banner.Text)
	case editor.BannerInfo:
		return styles.BannerInfo.Render(m.Banner.Text)
	default:
		return styles.BannerSuccess.Render(m.Banner.Text)
	}
}

func (m *EditorModel) renderTransport() string {
	pb := m.session.Playback()
	state := pb.State()
	project := m.session.Project()

	icon := "▶"
	if state.Playing {
		icon = "⏸"
	}
	clock := fmt.Sprintf("%s / %s",
		FormatTimecode(state.CurrentTime), FormatTimecode(project.Duration))

	vol := fmt.Sprintf("vol %d%%", int(state.Volume*100+0.5))
	if state.Muted {
		vol = "muted"
	}

	busy := ""
	if m.session.Saving() {
		busy = "  saving..."
	}
	if m.session.Exporting() {
		busy += "  exporting..."
	}

	return styles.Transport.Render(icon) + "  " +
		styles.TransportTime.Render(clock) + "  " +
		styles.MutedText.Render(vol+busy)
}

// renderRuler draws second marks across the timeline width
func (m *EditorModel) renderRuler() string {
	scale := m.session.Scale()
	width := m.timelineWidth()

	row := []rune(strings.Repeat("·", width))
	for sec := 0; ; sec += 5 {
		col := int(scale.TimeToPixel(float64(sec)) + 0.5)
		if col >= width {
			break
		}
		label := []rune(fmt.Sprintf("%d", sec))
		for i, r := range label {
			if col+i < width {
				row[col+i] = r
			}
		}
	}

	// Playhead overlays the ruler
	if pb := m.session.Playback(); pb != nil {
		col := int(scale.TimeToPixel(pb.State().CurrentTime) + 0.5)
		if col >= 0 && col < width {
			row[col] = '▼'
		}
	}
	return string(row)
}

// renderTrack draws one lane: a label gutter and a row of clip blocks
func (m *EditorModel) renderTrack(track *domain.Track) string {
	scale := m.session.Scale()
	width := m.timelineWidth()

	label := track.Name
	if len(label) > trackLabelWidth-2 {
		label = label[:trackLabelWidth-2]
	}
	gutter := styles.TrackLabel.Render(fmt.Sprintf("%-*s", trackLabelWidth, label))

	// Column ownership: later clips draw over earlier ones, same as the
	// hit test.
	owners := make([]*domain.Clip, width)
	chars := []rune(strings.Repeat("─", width))
	for _, clip := range track.Clips {
		start := int(scale.TimeToPixel(clip.Position) + 0.5)
		end := int(scale.TimeToPixel(clip.End()) + 0.5)
		if end <= start {
			end = start + 1
		}
		title := []rune(clipLabel(clip))
		for col := start; col < end && col < width; col++ {
			if col < 0 {
				continue
			}
			owners[col] = clip
			if i := col - start; i < len(title) {
				chars[col] = title[i]
			} else {
				chars[col] = ' '
			}
		}
	}

	// Group runs of columns with the same owner and style them together
	var b strings.Builder
	runStart := 0
	for col := 1; col <= width; col++ {
		if col < width && owners[col] == owners[runStart] {
			continue
		}
		text := string(chars[runStart:col])
		if clip := owners[runStart]; clip == nil {
			b.WriteString(styles.TrackLane.Render(text))
		} else {
			b.WriteString(clipBlockStyle(track, clip).Render(text))
		}
		runStart = col
	}
	return gutter + b.String()
}

func clipLabel(clip *domain.Clip) string {
	label := fmt.Sprintf(" %s %.1fs", clip.VideoID, clip.Duration())
	if clip.Muted {
		label = " ✕" + label
	}
	return label
}

func clipBlockStyle(track *domain.Track, clip *domain.Clip) lipgloss.Style {
	switch {
	case clip.Selected:
		return styles.ClipSelected
	case clip.Muted:
		return styles.ClipMuted
	default:
		return styles.ClipStyle(string(track.Type))
	}
}
