package domain

import "testing"

func TestNewProjectShape(t *testing.T) {
	source := SourceVideo{
		ID:       "vid-1",
		Title:    "Launch teaser",
		VideoURL: "https://cdn.example.com/vid-1.mp4",
		Duration: 42,
	}

	p := NewProject(source)

	if p.Title != "Launch teaser" {
		t.Errorf("title = %q, want source title", p.Title)
	}
	if len(p.Tracks) != 2 {
		t.Fatalf("got %d tracks, want 2", len(p.Tracks))
	}
	if p.Tracks[0].Type != TrackVideo {
		t.Errorf("first track type = %q, want video", p.Tracks[0].Type)
	}
	if p.Tracks[1].Type != TrackAudio {
		t.Errorf("second track type = %q, want audio", p.Tracks[1].Type)
	}
	if len(p.Tracks[1].Clips) != 0 {
		t.Errorf("audio track should start empty, has %d clips", len(p.Tracks[1].Clips))
	}

	if len(p.Tracks[0].Clips) != 1 {
		t.Fatalf("video track has %d clips, want 1", len(p.Tracks[0].Clips))
	}
	clip := p.Tracks[0].Clips[0]
	if clip.VideoID != "vid-1" {
		t.Errorf("clip video id = %q", clip.VideoID)
	}
	if clip.Position != 0 || clip.StartTime != 0 || clip.EndTime != 42 {
		t.Errorf("clip placement = pos %v start %v end %v, want 0/0/42",
			clip.Position, clip.StartTime, clip.EndTime)
	}
	if clip.Volume != 1 {
		t.Errorf("clip volume = %v, want 1", clip.Volume)
	}
	if p.Duration != 42 {
		t.Errorf("project duration = %v, want 42", p.Duration)
	}
}

func TestNewProjectUnknownDurationFallsBack(t *testing.T) {
	p := NewProject(SourceVideo{ID: "vid-2", Title: "No metadata"})

	clip := p.Tracks[0].Clips[0]
	if clip.Duration() != DefaultClipDuration {
		t.Errorf("clip duration = %v, want fallback %v", clip.Duration(), DefaultClipDuration)
	}
	if p.Duration != DefaultClipDuration {
		t.Errorf("project duration = %v, want fallback %v", p.Duration, DefaultClipDuration)
	}
}

func TestRecomputeDuration(t *testing.T) {
	p := &Project{
		Tracks: []*Track{
			{Type: TrackVideo, Clips: []*Clip{
				{StartTime: 0, EndTime: 10, Position: 0},
				{StartTime: 5, EndTime: 15, Position: 10},
			}},
			{Type: TrackAudio, Clips: []*Clip{
				{StartTime: 0, EndTime: 8, Position: 30},
			}},
		},
	}

	p.RecomputeDuration()
	if p.Duration != 38 {
		t.Errorf("duration = %v, want 38 (audio clip dominates)", p.Duration)
	}

	p.Tracks[1].Clips = nil
	p.RecomputeDuration()
	if p.Duration != 20 {
		t.Errorf("duration = %v, want 20 after removing audio clip", p.Duration)
	}

	p.Tracks[0].Clips = nil
	p.RecomputeDuration()
	if p.Duration != 0 {
		t.Errorf("duration = %v, want 0 for empty project", p.Duration)
	}
}

func TestFindClip(t *testing.T) {
	p := NewProject(SourceVideo{ID: "v", Duration: 5})
	want := p.Tracks[0].Clips[0]

	clip, track := p.FindClip(want.ID)
	if clip != want {
		t.Fatalf("FindClip returned wrong clip")
	}
	if track != p.Tracks[0] {
		t.Errorf("FindClip returned wrong track")
	}

	clip, track = p.FindClip("nope")
	if clip != nil || track != nil {
		t.Errorf("FindClip on unknown id should return nil, nil")
	}
}

func TestCloneIsDeep(t *testing.T) {
	p := NewProject(SourceVideo{ID: "v", Title: "Cut", Duration: 5})
	p.Tracks[0].Clips[0].Selected = true

	clone := p.Clone()

	if clone.Title != p.Title || len(clone.Tracks) != len(p.Tracks) {
		t.Fatalf("clone shape differs: title %q, %d tracks", clone.Title, len(clone.Tracks))
	}
	if clone.Tracks[0] == p.Tracks[0] || clone.Tracks[0].Clips[0] == p.Tracks[0].Clips[0] {
		t.Fatal("clone shares track or clip pointers with the original")
	}
	if clone.Tracks[0].Clips[0].Selected {
		t.Error("transient selection flag carried into clone")
	}

	p.Tracks[0].Clips[0].Position = 9
	p.Tracks = append(p.Tracks, &Track{ID: NewID(), Type: TrackText, Name: "Text 1"})
	if clone.Tracks[0].Clips[0].Position != 0 {
		t.Errorf("clone clip position = %v after mutating original, want 0", clone.Tracks[0].Clips[0].Position)
	}
	if len(clone.Tracks) != 2 {
		t.Errorf("clone has %d tracks after appending to original, want 2", len(clone.Tracks))
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}
