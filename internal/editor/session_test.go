package editor

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"reelcut/internal/domain"
	"reelcut/internal/ports"
)

type fakeStore struct {
	records []ports.EditRecord
	err     error
}

func (f *fakeStore) Upsert(_ context.Context, rec ports.EditRecord) error {
	if f.err != nil {
		return f.err
	}
	for i, r := range f.records {
		if r.ID == rec.ID {
			f.records[i] = rec
			return nil
		}
	}
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeStore) Get(_ context.Context, id string) (*ports.EditRecord, error) {
	for _, r := range f.records {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) List(_ context.Context) ([]ports.EditRecord, error) {
	return f.records, nil
}

func (f *fakeStore) Delete(_ context.Context, id string) error { return nil }

type fakeRender struct {
	submitted int
	submitErr error
	jobs      map[string]ports.RenderJob
}

func (f *fakeRender) Submit(_ context.Context, _ *domain.Project) (string, error) {
	if f.submitErr != nil {
		return "", f.submitErr
	}
	f.submitted++
	return "job-1", nil
}

func (f *fakeRender) GetJob(_ context.Context, jobID string) (ports.RenderJob, error) {
	return f.jobs[jobID], nil
}

func newTestSession(store *fakeStore, render *fakeRender) *Session {
	return NewSession(domain.Timescale{PixelsPerSecond: 10}, store, render, &fakePlayer{}, nil)
}

func TestSaveWithoutProjectIsValidationBanner(t *testing.T) {
	s := newTestSession(&fakeStore{}, &fakeRender{})

	banner := s.Save(context.Background(), s.Snapshot())
	if banner.Kind != BannerError {
		t.Errorf("banner kind = %v, want error", banner.Kind)
	}
}

func TestSaveUpsertsSerializedProject(t *testing.T) {
	store := &fakeStore{}
	s := newTestSession(store, &fakeRender{})
	s.Open(domain.SourceVideo{ID: "vid-1", Title: "Podcast cut", Duration: 30})

	banner := s.Save(context.Background(), s.Snapshot())
	if banner.Kind != BannerSuccess {
		t.Fatalf("banner = %v %q, want success", banner.Kind, banner.Text)
	}
	if len(store.records) != 1 {
		t.Fatalf("got %d records, want 1", len(store.records))
	}

	rec := store.records[0]
	if rec.ID != s.EditID() {
		t.Errorf("record keyed by %s, want session edit id %s", rec.ID, s.EditID())
	}
	if rec.VideoID != "vid-1" {
		t.Errorf("record video id = %q, want vid-1", rec.VideoID)
	}

	var saved domain.Project
	if err := json.Unmarshal(rec.Project, &saved); err != nil {
		t.Fatalf("saved project is not valid JSON: %v", err)
	}
	if saved.Title != "Podcast cut" || len(saved.Tracks) != 2 {
		t.Errorf("saved project shape wrong: title %q, %d tracks", saved.Title, len(saved.Tracks))
	}

	// Saving again reuses the same edit id: last write wins, no new row
	s.Save(context.Background(), s.Snapshot())
	if len(store.records) != 1 {
		t.Errorf("second save created a new record, want upsert")
	}
}

func TestSaveSnapshotIsolatedFromLaterEdits(t *testing.T) {
	store := &fakeStore{}
	s := newTestSession(store, &fakeRender{})
	project := s.Open(domain.SourceVideo{ID: "vid-1", Title: "Podcast cut", Duration: 30})
	clipID := project.VideoTrack().Clips[0].ID

	// A snapshot taken before an edit must persist the pre-edit state even
	// when the edit lands before Save runs, as happens when save executes
	// on a background goroutine while a drag keeps moving the clip.
	snapshot := s.Snapshot()
	s.Composition().MoveClip(clipID, 12)

	if banner := s.Save(context.Background(), snapshot); banner.Kind != BannerSuccess {
		t.Fatalf("banner = %v %q, want success", banner.Kind, banner.Text)
	}

	var saved domain.Project
	if err := json.Unmarshal(store.records[0].Project, &saved); err != nil {
		t.Fatalf("saved project is not valid JSON: %v", err)
	}
	savedClip, _ := saved.FindClip(clipID)
	if savedClip == nil {
		t.Fatal("clip missing from saved project")
	}
	if savedClip.Position != 0 {
		t.Errorf("saved clip position = %v, want the snapshot's 0", savedClip.Position)
	}
	if project.VideoTrack().Clips[0].Position != 12 {
		t.Errorf("live clip position = %v, want 12", project.VideoTrack().Clips[0].Position)
	}
}

func TestSaveFailureClearsFlagAndReportsError(t *testing.T) {
	store := &fakeStore{err: errors.New("disk full")}
	s := newTestSession(store, &fakeRender{})
	s.Open(domain.SourceVideo{ID: "vid-1", Duration: 30})

	banner := s.Save(context.Background(), s.Snapshot())
	if banner.Kind != BannerError {
		t.Errorf("banner kind = %v, want error", banner.Kind)
	}
	if s.Saving() {
		t.Error("saving flag still set after failed save")
	}

	// The control must not be left disabled: a retry goes through
	store.err = nil
	if banner := s.Save(context.Background(), s.Snapshot()); banner.Kind != BannerSuccess {
		t.Errorf("retry after failure = %v %q, want success", banner.Kind, banner.Text)
	}
}

func TestExportSubmitsAndRecordsJobID(t *testing.T) {
	render := &fakeRender{}
	s := newTestSession(&fakeStore{}, render)
	s.Open(domain.SourceVideo{ID: "vid-1", Duration: 30})

	banner := s.Export(context.Background(), s.Snapshot())
	if banner.Kind != BannerSuccess {
		t.Fatalf("banner = %v %q, want success", banner.Kind, banner.Text)
	}
	if render.submitted != 1 {
		t.Errorf("submitted %d jobs, want 1", render.submitted)
	}
	if s.LastJobID() != "job-1" {
		t.Errorf("LastJobID = %q, want job-1", s.LastJobID())
	}
	if s.Exporting() {
		t.Error("exporting flag still set after submission")
	}
}

func TestExportFailureClearsFlag(t *testing.T) {
	render := &fakeRender{submitErr: errors.New("pipeline unreachable")}
	s := newTestSession(&fakeStore{}, render)
	s.Open(domain.SourceVideo{ID: "vid-1", Duration: 30})

	banner := s.Export(context.Background(), s.Snapshot())
	if banner.Kind != BannerError {
		t.Errorf("banner kind = %v, want error", banner.Kind)
	}
	if s.Exporting() {
		t.Error("exporting flag still set after failure")
	}
	if s.LastJobID() != "" {
		t.Errorf("LastJobID = %q after failed submission, want empty", s.LastJobID())
	}
}

func TestExportWithoutProjectIsValidationBanner(t *testing.T) {
	s := newTestSession(&fakeStore{}, &fakeRender{})

	if banner := s.Export(context.Background(), s.Snapshot()); banner.Kind != BannerError {
		t.Errorf("banner kind = %v, want error", banner.Kind)
	}
}

func TestOpenReplacesProject(t *testing.T) {
	s := newTestSession(&fakeStore{}, &fakeRender{})
	first := s.Open(domain.SourceVideo{ID: "vid-1", Duration: 30})
	second := s.Open(domain.SourceVideo{ID: "vid-2", Duration: 10})

	if s.Project() != second {
		t.Error("session did not switch to the new project")
	}
	if first.ID == second.ID {
		t.Error("reopened project kept the old identity")
	}
	if s.Drag() == nil || s.Playback() == nil {
		t.Error("engine components not rebuilt on open")
	}
}

func TestCloseCancelsInFlightDrag(t *testing.T) {
	s := newTestSession(&fakeStore{}, &fakeRender{})
	project := s.Open(domain.SourceVideo{ID: "vid-1", Duration: 30})
	clipID := project.VideoTrack().Clips[0].ID

	released := false
	s.Drag().Begin(clipID, 0, func() ReleaseFunc {
		return func() { released = true }
	})

	s.Close()
	if !released {
		t.Error("teardown mid-drag leaked the pointer subscription")
	}
	if s.Drag().Dragging() {
		t.Error("drag still active after Close")
	}
}
