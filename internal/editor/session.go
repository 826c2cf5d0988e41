package editor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"reelcut/internal/application"
	"reelcut/internal/composition"
	"reelcut/internal/domain"
	"reelcut/internal/logging"
	"reelcut/internal/ports"
)

// BannerKind classifies a user-visible status banner
type BannerKind int

const (
	BannerSuccess BannerKind = iota
	BannerError
	BannerInfo
)

// Banner is a transient status message surfaced after save/export. Errors
// from those paths are reported this way, never thrown into the
// interaction handlers that drive drag and seek.
type Banner struct {
	Kind BannerKind
	Text string
}

// Session owns one open project and composes the editing engine around it:
// composition store, drag controller, playback controller, and the save/
// export orchestration. Save and export are independent single-shot
// operations, each guarded by its own in-progress flag.
type Session struct {
	scale  domain.Timescale
	store  ports.EditStore
	render ports.RenderService
	player ports.MediaPlayer
	logger *slog.Logger

	editID   string
	comp     *composition.Store
	drag     *DragController
	playback *PlaybackController

	mu        sync.Mutex
	saving    bool
	exporting bool
	lastJobID string
}

// NewSession creates an empty session. The edit id used to key saves is
// generated once here and reused for every save in the session.
func NewSession(scale domain.Timescale, store ports.EditStore, render ports.RenderService, player ports.MediaPlayer, logger *slog.Logger) *Session {
	editID := domain.NewID()
	if logger != nil {
		logger = logging.WithEditID(logger, editID)
	}
	return &Session{
		scale:  scale,
		store:  store,
		render: render,
		player: player,
		logger: logger,
		editID: editID,
	}
}

// Open replaces the session's project with a fresh one seeded from the
// source. Any previous project is discarded; the engine components are
// rebuilt around the new one.
func (s *Session) Open(source domain.SourceVideo) *domain.Project {
	project := domain.NewProject(source)
	s.comp = composition.NewStore(project)
	s.drag = NewDragController(s.comp, s.scale)
	s.playback = NewPlaybackController(s.player, project, s.scale)
	if s.logger != nil {
		s.logger.Info("project opened", "project_id", project.ID, "video_id", source.ID)
	}
	return project
}

// Project returns the open project, or nil
func (s *Session) Project() *domain.Project {
	if s.comp == nil {
		return nil
	}
	return s.comp.Project()
}

// Composition returns the composition store, or nil before Open
func (s *Session) Composition() *composition.Store { return s.comp }

// Drag returns the drag controller, or nil before Open
func (s *Session) Drag() *DragController { return s.drag }

// Playback returns the playback controller, or nil before Open
func (s *Session) Playback() *PlaybackController { return s.playback }

// Scale returns the session's fixed timeline scale
func (s *Session) Scale() domain.Timescale { return s.scale }

// EditID returns the persistence key for this session
func (s *Session) EditID() string { return s.editID }

// Saving reports whether a save is in flight
func (s *Session) Saving() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saving
}

// Exporting reports whether an export submission is in flight
func (s *Session) Exporting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exporting
}

// LastJobID returns the operation id of the most recent export submission
func (s *Session) LastJobID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastJobID
}

// Snapshot returns a deep copy of the open project, or nil before Open.
// Callers take the snapshot on the interaction goroutine and hand it to
// Save or Export, which may then run concurrently with further edits.
func (s *Session) Snapshot() *domain.Project {
	project := s.Project()
	if project == nil {
		return nil
	}
	return project.Clone()
}

// Save serializes the given project snapshot and upserts it to the edit
// store, keyed by the session's edit id. The in-progress flag is cleared
// on every outcome, so a failed save can never leave the UI stuck in a
// loading state.
func (s *Session) Save(ctx context.Context, project *domain.Project) Banner {
	if project == nil {
		err := &application.ValidationError{Field: "project", Message: "nothing to save"}
		return Banner{Kind: BannerError, Text: err.Error()}
	}

	s.mu.Lock()
	if s.saving {
		s.mu.Unlock()
		return Banner{Kind: BannerInfo, Text: fmt.Sprintf("save: %v", application.ErrBusy)}
	}
	s.saving = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.saving = false
		s.mu.Unlock()
	}()

	raw, err := json.Marshal(project)
	if err != nil {
		perr := &application.PersistenceError{EditID: s.editID, Err: err}
		return Banner{Kind: BannerError, Text: perr.Error()}
	}

	rec := ports.EditRecord{
		ID:        s.editID,
		VideoID:   sourceVideoID(project),
		Title:     project.Title,
		Project:   raw,
		UpdatedAt: time.Now(),
	}
	if err := s.store.Upsert(ctx, rec); err != nil {
		perr := &application.PersistenceError{EditID: s.editID, Err: err}
		if s.logger != nil {
			s.logger.Error("save failed", "error", err)
		}
		return Banner{Kind: BannerError, Text: perr.Error()}
	}

	if s.logger != nil {
		s.logger.Info("project saved", "project_id", project.ID)
	}
	return Banner{Kind: BannerSuccess, Text: fmt.Sprintf("Saved %q", project.Title)}
}

// Export submits the given project snapshot to the render pipeline.
// Submission is the only thing reported here; job completion is observed
// separately via the JobTracker. Like Save, the in-progress flag is
// cleared unconditionally.
func (s *Session) Export(ctx context.Context, project *domain.Project) Banner {
	if project == nil {
		err := &application.ValidationError{Field: "project", Message: "nothing to export"}
		return Banner{Kind: BannerError, Text: err.Error()}
	}

	s.mu.Lock()
	if s.exporting {
		s.mu.Unlock()
		return Banner{Kind: BannerInfo, Text: fmt.Sprintf("export: %v", application.ErrBusy)}
	}
	s.exporting = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.exporting = false
		s.mu.Unlock()
	}()

	jobID, err := s.render.Submit(ctx, project)
	if err != nil {
		serr := &application.SubmissionError{ProjectID: project.ID, Err: err}
		if s.logger != nil {
			s.logger.Error("export submission failed", "project_id", project.ID, "error", err)
		}
		return Banner{Kind: BannerError, Text: serr.Error()}
	}

	s.mu.Lock()
	s.lastJobID = jobID
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Info("export submitted", "project_id", project.ID, "job_id", jobID)
	}
	return Banner{Kind: BannerSuccess, Text: fmt.Sprintf("Export submitted (job %s)", jobID)}
}

// Close cancels any in-flight drag so the global pointer subscription is
// released on teardown.
func (s *Session) Close() {
	if s.drag != nil {
		s.drag.Cancel()
	}
}

// sourceVideoID returns the video id of the project's first video clip.
// Saves are indexed by source for the catalogue's "edits of this video"
// listing.
func sourceVideoID(p *domain.Project) string {
	track := p.VideoTrack()
	if track == nil || len(track.Clips) == 0 {
		return ""
	}
	return track.Clips[0].VideoID
}
