package views

import (
	"context"
	"math"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"reelcut/internal/domain"
	"reelcut/internal/editor"
	"reelcut/internal/ports"
)

type stubPlayer struct {
	time    float64
	playing bool
}

func (p *stubPlayer) Play()                { p.playing = true }
func (p *stubPlayer) Pause()               { p.playing = false }
func (p *stubPlayer) Seek(t float64)       { p.time = t }
func (p *stubPlayer) SetVolume(float64)    {}
func (p *stubPlayer) SetMuted(bool)        {}
func (p *stubPlayer) SetRate(float64)      {}
func (p *stubPlayer) CurrentTime() float64 { return p.time }

type stubStore struct{}

func (stubStore) Upsert(context.Context, ports.EditRecord) error { return nil }
func (stubStore) Get(context.Context, string) (*ports.EditRecord, error) {
	return nil, nil
}
func (stubStore) List(context.Context) ([]ports.EditRecord, error) { return nil, nil }
func (stubStore) Delete(context.Context, string) error             { return nil }

type stubRender struct{}

func (stubRender) Submit(context.Context, *domain.Project) (string, error) {
	return "job-1", nil
}
func (stubRender) GetJob(_ context.Context, id string) (ports.RenderJob, error) {
	return ports.RenderJob{ID: id, Status: ports.JobStatusCompleted}, nil
}

func newTestEditor(t *testing.T) (*EditorModel, *editor.Session) {
	t.Helper()
	render := stubRender{}
	session := editor.NewSession(domain.NewTimescale(4), stubStore{}, render, &stubPlayer{}, nil)
	model := NewEditorModel(session, editor.NewJobTracker(render, nil))
	model.SetSize(120, 40)
	model.Open(domain.SourceVideo{
		ID:       "vid-001",
		Title:    "Take 1",
		VideoURL: "https://cdn.example.com/vid-001.mp4",
		Duration: 20,
	})
	return model, session
}

func mouse(x, y int, action tea.MouseAction) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func TestEditorMouseDragMovesClip(t *testing.T) {
	model, session := newTestEditor(t)
	clip := session.Project().VideoTrack().Clips[0]

	// Press inside the clip, two cells into the timeline (0.5s at 4 px/s)
	pressX := trackLabelWidth + 2
	row := model.trackRow(0)
	model.Update(mouse(pressX, row, tea.MouseActionPress))
	if !session.Drag().Dragging() {
		t.Fatal("press on clip did not start a drag")
	}

	// Drag 8 cells right: 2 seconds at this scale
	model.Update(mouse(pressX+8, row, tea.MouseActionMotion))
	if math.Abs(clip.Position-2.0) > 1e-9 {
		t.Errorf("position after motion = %v, want 2.0", clip.Position)
	}

	model.Update(mouse(pressX+8, row, tea.MouseActionRelease))
	if session.Drag().Dragging() {
		t.Error("release did not end the drag")
	}
	if math.Abs(clip.Position-2.0) > 1e-9 {
		t.Errorf("position after release = %v, want 2.0", clip.Position)
	}
}

func TestEditorDragUsesPressAnchor(t *testing.T) {
	model, session := newTestEditor(t)
	clip := session.Project().VideoTrack().Clips[0]
	row := model.trackRow(0)

	// Press near the end of the clip, then move by one cell. The clip
	// moves by the pointer delta, not to the pointer position.
	pressX := trackLabelWidth + 10
	model.Update(mouse(pressX, row, tea.MouseActionPress))
	model.Update(mouse(pressX+1, row, tea.MouseActionMotion))
	if math.Abs(clip.Position-0.25) > 1e-9 {
		t.Errorf("position = %v, want 0.25", clip.Position)
	}
	model.Update(mouse(pressX+1, row, tea.MouseActionRelease))
}

func TestEditorPressOnEmptyLaneDoesNotDrag(t *testing.T) {
	model, session := newTestEditor(t)

	// Audio track has no clips
	model.Update(mouse(trackLabelWidth+2, model.trackRow(1), tea.MouseActionPress))
	if session.Drag().Dragging() {
		t.Error("press on empty lane started a drag")
	}

	// Motion and release while idle are no-ops
	model.Update(mouse(trackLabelWidth+5, model.trackRow(1), tea.MouseActionMotion))
	model.Update(mouse(trackLabelWidth+5, model.trackRow(1), tea.MouseActionRelease))
}

func TestEditorRulerClickSeeks(t *testing.T) {
	model, session := newTestEditor(t)

	// 12 cells into the ruler is 3 seconds at 4 px/s
	model.Update(mouse(trackLabelWidth+12, model.rulerRow(), tea.MouseActionPress))
	got := session.Playback().State().CurrentTime
	if math.Abs(got-3.0) > 1e-9 {
		t.Errorf("current time = %v, want 3.0", got)
	}
}

func TestEditorSpaceTogglesPlayback(t *testing.T) {
	model, session := newTestEditor(t)

	model.Update(tea.KeyMsg{Type: tea.KeySpace})
	if !session.Playback().State().Playing {
		t.Fatal("space did not start playback")
	}
	model.Update(tea.KeyMsg{Type: tea.KeySpace})
	if session.Playback().State().Playing {
		t.Error("second space did not pause playback")
	}
}

func TestEditorAddSelectDelete(t *testing.T) {
	model, session := newTestEditor(t)
	track := session.Project().VideoTrack()

	model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	if len(track.Clips) != 2 {
		t.Fatalf("clip count after add = %d, want 2", len(track.Clips))
	}

	model.Update(tea.KeyMsg{Type: tea.KeyTab})
	model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	if len(track.Clips) != 1 {
		t.Errorf("clip count after delete = %d, want 1", len(track.Clips))
	}
}

func TestEditorAddTrackKeys(t *testing.T) {
	model, session := newTestEditor(t)

	model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'T'}})

	tracks := session.Project().Tracks
	if len(tracks) != 4 {
		t.Fatalf("track count = %d, want 4", len(tracks))
	}
	if tracks[2].Type != domain.TrackAudio || tracks[2].Name != "Audio 2" {
		t.Errorf("third track = %s %q, want audio \"Audio 2\"", tracks[2].Type, tracks[2].Name)
	}
	if tracks[3].Type != domain.TrackText || tracks[3].Name != "Text 1" {
		t.Errorf("fourth track = %s %q, want text \"Text 1\"", tracks[3].Type, tracks[3].Name)
	}
}

func TestFormatTimecodeCarriesToMinute(t *testing.T) {
	tests := []struct {
		sec  float64
		want string
	}{
		{0, "0:00.0"},
		{7.2, "0:07.2"},
		{59.96, "1:00.0"},
		{61.5, "1:01.5"},
		{-3, "0:00.0"},
	}

	for _, tt := range tests {
		if got := FormatTimecode(tt.sec); got != tt.want {
			t.Errorf("FormatTimecode(%v) = %q, want %q", tt.sec, got, tt.want)
		}
	}
}

func TestEditorClipAtResolvesClip(t *testing.T) {
	model, session := newTestEditor(t)
	clip := session.Project().VideoTrack().Clips[0]

	tests := []struct {
		name string
		x, y int
		want *domain.Clip
	}{
		{"inside clip", trackLabelWidth + 1, model.trackRow(0), clip},
		{"gutter", trackLabelWidth - 2, model.trackRow(0), nil},
		{"past clip end", trackLabelWidth + 200, model.trackRow(0), nil},
		{"wrong row", trackLabelWidth + 1, model.rulerRow(), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := model.clipAt(tt.x, tt.y); got != tt.want {
				t.Errorf("clipAt(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
