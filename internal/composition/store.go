// Package composition owns the project data model's structural mutations:
// adding, deleting, trimming and repositioning clips, with the project
// duration recomputed after every change.
package composition

import (
	"reelcut/internal/domain"
)

// Store wraps a project and applies structural mutations to it. All
// operations are synchronous, in-memory transformations; mutations naming
// an unknown clip or track id are silent no-ops. Clips on the same track
// are allowed to overlap; the store never reorders or rejects placements.
type Store struct {
	project *domain.Project
}

// NewStore creates a store owning the given project
func NewStore(project *domain.Project) *Store {
	return &Store{project: project}
}

// Project returns the project under edit
func (s *Store) Project() *domain.Project {
	return s.project
}

// AddClip appends a clip from the source to the named track, packed
// end-to-end after the track's last clip. The clip spans the whole source,
// falling back to the default duration when the source length is unknown.
func (s *Store) AddClip(trackID string, source domain.SourceVideo) *domain.Clip {
	track := s.project.FindTrack(trackID)
	if track == nil {
		return nil
	}

	duration := source.Duration
	if duration <= 0 {
		duration = domain.DefaultClipDuration
	}

	position := 0.0
	if n := len(track.Clips); n > 0 {
		last := track.Clips[n-1]
		position = last.Position + last.Duration()
	}

	clip := &domain.Clip{
		ID:           domain.NewID(),
		VideoID:      source.ID,
		SourceURL:    source.VideoURL,
		ThumbnailURL: source.ThumbnailURL,
		StartTime:    0,
		EndTime:      duration,
		Position:     position,
		Volume:       1,
	}
	track.Clips = append(track.Clips, clip)
	s.project.RecomputeDuration()
	return clip
}

// DeleteClip removes the clip from whichever track contains it. Unknown
// ids are ignored, so the operation is idempotent.
func (s *Store) DeleteClip(clipID string) {
	for _, track := range s.project.Tracks {
		for i, c := range track.Clips {
			if c.ID == clipID {
				track.Clips = append(track.Clips[:i], track.Clips[i+1:]...)
				s.project.RecomputeDuration()
				return
			}
		}
	}
}

// TrimClip adjusts a clip's start/end offsets into its source without
// moving it on the timeline. The resulting duration is clamped to the
// minimum; a trim that would invert the clip is anchored at newStart.
func (s *Store) TrimClip(clipID string, newStart, newEnd float64) {
	clip, _ := s.project.FindClip(clipID)
	if clip == nil {
		return
	}
	if newStart < 0 {
		newStart = 0
	}
	if newEnd < newStart+domain.MinClipDuration {
		newEnd = newStart + domain.MinClipDuration
	}
	clip.StartTime = newStart
	clip.EndTime = newEnd
	s.project.RecomputeDuration()
}

// MoveClip repositions a clip on the timeline. Negative positions are
// clamped to zero, never rejected.
func (s *Store) MoveClip(clipID string, newPosition float64) {
	clip, _ := s.project.FindClip(clipID)
	if clip == nil {
		return
	}
	if newPosition < 0 {
		newPosition = 0
	}
	clip.Position = newPosition
	s.project.RecomputeDuration()
}

// AddTrack appends an empty track of the given type
func (s *Store) AddTrack(trackType domain.TrackType, name string) *domain.Track {
	track := &domain.Track{
		ID:   domain.NewID(),
		Type: trackType,
		Name: name,
	}
	s.project.Tracks = append(s.project.Tracks, track)
	return track
}

// SelectClip marks the clip selected and deselects every other clip
func (s *Store) SelectClip(clipID string) {
	for _, track := range s.project.Tracks {
		for _, c := range track.Clips {
			c.Selected = c.ID == clipID
		}
	}
}

// SetClipVolume sets a clip's volume, clamped to [0, 1]
func (s *Store) SetClipVolume(clipID string, volume float64) {
	clip, _ := s.project.FindClip(clipID)
	if clip == nil {
		return
	}
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	clip.Volume = volume
}

// ToggleClipMute flips a clip's mute flag
func (s *Store) ToggleClipMute(clipID string) {
	clip, _ := s.project.FindClip(clipID)
	if clip == nil {
		return
	}
	clip.Muted = !clip.Muted
}
