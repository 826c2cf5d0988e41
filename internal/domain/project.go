package domain

import (
	"crypto/rand"
	"fmt"
)

const (
	// DefaultClipDuration is used when a source's duration is unknown.
	DefaultClipDuration = 30.0

	// MinClipDuration is the shortest clip a trim may produce. A zero-length
	// clip is meaningless for playback, so trims clamp rather than reject.
	MinClipDuration = 0.1

	DefaultVideoWidth  = 1920
	DefaultVideoHeight = 1080
	DefaultFramerate   = 30.0
)

// TrackType identifies the kind of media a track carries
type TrackType string

const (
	TrackVideo TrackType = "video"
	TrackAudio TrackType = "audio"
	TrackText  TrackType = "text"
)

// SourceVideo is a catalogue entry used to seed clips
type SourceVideo struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	VideoURL     string  `json:"video_url"`
	Duration     float64 `json:"duration,omitempty"`
	ThumbnailURL string  `json:"thumbnail_url,omitempty"`
}

// Clip is a placed segment of a source video on a track. StartTime and
// EndTime are offsets into the source; Position is the offset into the
// timeline where the clip begins.
type Clip struct {
	ID           string  `json:"id"`
	VideoID      string  `json:"video_id"`
	SourceURL    string  `json:"source_url"`
	ThumbnailURL string  `json:"thumbnail_url,omitempty"`
	StartTime    float64 `json:"start_time"`
	EndTime      float64 `json:"end_time"`
	Position     float64 `json:"position"`
	Volume       float64 `json:"volume"`
	Muted        bool    `json:"muted"`

	// Transient UI flags, not persisted semantics
	Selected bool `json:"-"`
	Trimming bool `json:"-"`
}

// Duration returns the clip's length in seconds
func (c *Clip) Duration() float64 {
	return c.EndTime - c.StartTime
}

// End returns the timeline offset where the clip ends
func (c *Clip) End() float64 {
	return c.Position + c.Duration()
}

// Track is an ordered lane of clips of one kind
type Track struct {
	ID    string    `json:"id"`
	Type  TrackType `json:"type"`
	Name  string    `json:"name"`
	Clips []*Clip   `json:"clips"`
}

// Project is the full composition being edited. Duration is derived: the
// max clip end across all tracks, recomputed after every structural
// mutation.
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Duration    float64  `json:"duration"`
	Tracks      []*Track `json:"tracks"`
	VideoWidth  int      `json:"video_width"`
	VideoHeight int      `json:"video_height"`
	Framerate   float64  `json:"framerate"`
}

// NewProject builds a fresh project seeded from a source video: one video
// track holding a single clip spanning the source, plus one empty audio
// track.
func NewProject(source SourceVideo) *Project {
	duration := source.Duration
	if duration <= 0 {
		duration = DefaultClipDuration
	}

	clip := &Clip{
		ID:           NewID(),
		VideoID:      source.ID,
		SourceURL:    source.VideoURL,
		ThumbnailURL: source.ThumbnailURL,
		StartTime:    0,
		EndTime:      duration,
		Position:     0,
		Volume:       1,
	}

	p := &Project{
		ID:    NewID(),
		Title: source.Title,
		Tracks: []*Track{
			{ID: NewID(), Type: TrackVideo, Name: "Video 1", Clips: []*Clip{clip}},
			{ID: NewID(), Type: TrackAudio, Name: "Audio 1", Clips: nil},
		},
		VideoWidth:  DefaultVideoWidth,
		VideoHeight: DefaultVideoHeight,
		Framerate:   DefaultFramerate,
	}
	p.RecomputeDuration()
	return p
}

// RecomputeDuration derives the project duration from clip extents. An
// empty project has duration 0.
func (p *Project) RecomputeDuration() {
	max := 0.0
	for _, t := range p.Tracks {
		for _, c := range t.Clips {
			if end := c.End(); end > max {
				max = end
			}
		}
	}
	p.Duration = max
}

// Clone returns a deep copy of the project. Transient UI flags on clips
// are not carried into the copy.
func (p *Project) Clone() *Project {
	cp := *p
	cp.Tracks = make([]*Track, len(p.Tracks))
	for i, t := range p.Tracks {
		tc := *t
		tc.Clips = make([]*Clip, len(t.Clips))
		for j, c := range t.Clips {
			cc := *c
			cc.Selected = false
			cc.Trimming = false
			tc.Clips[j] = &cc
		}
		cp.Tracks[i] = &tc
	}
	return &cp
}

// FindClip returns the clip with the given ID and its track, or nil if no
// track contains it.
func (p *Project) FindClip(clipID string) (*Clip, *Track) {
	for _, t := range p.Tracks {
		for _, c := range t.Clips {
			if c.ID == clipID {
				return c, t
			}
		}
	}
	return nil, nil
}

// FindTrack returns the track with the given ID, or nil
func (p *Project) FindTrack(trackID string) *Track {
	for _, t := range p.Tracks {
		if t.ID == trackID {
			return t
		}
	}
	return nil
}

// VideoTrack returns the first video track, or nil
func (p *Project) VideoTrack() *Track {
	for _, t := range p.Tracks {
		if t.Type == TrackVideo {
			return t
		}
	}
	return nil
}

// ClipCount returns the number of clips across all tracks
func (p *Project) ClipCount() int {
	n := 0
	for _, t := range p.Tracks {
		n += len(t.Clips)
	}
	return n
}

// NewID returns a random 128-bit identifier in canonical hex form
func NewID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:])
}
