package editor

import (
	"testing"

	"reelcut/internal/composition"
	"reelcut/internal/domain"
)

func newDragFixture(t *testing.T) (*DragController, *composition.Store, *domain.Clip) {
	t.Helper()
	project := domain.NewProject(domain.SourceVideo{ID: "vid-1", Title: "Cut", Duration: 30})
	store := composition.NewStore(project)
	scale := domain.Timescale{PixelsPerSecond: 10}
	return NewDragController(store, scale), store, project.VideoTrack().Clips[0]
}

func TestDragMovesByAnchoredDelta(t *testing.T) {
	drag, store, clip := newDragFixture(t)
	store.MoveClip(clip.ID, 10)

	// Press at pixel 200 (t=20), then move +5s worth of pixels
	if !drag.Begin(clip.ID, 200, nil) {
		t.Fatal("Begin refused a valid drag")
	}
	drag.Move(250)
	if clip.Position != 15 {
		t.Errorf("position = %v, want 15 after +5s drag", clip.Position)
	}

	// Dragging far left clamps at zero
	drag.Move(-300)
	if clip.Position != 0 {
		t.Errorf("position = %v, want 0 (clamped)", clip.Position)
	}
	drag.End(-300)
}

func TestDragDoesNotCompoundDrift(t *testing.T) {
	drag, store, clip := newDragFixture(t)
	store.MoveClip(clip.ID, 10)

	drag.Begin(clip.ID, 0, nil)
	// Repeated move events for the same pointer offset must be idempotent:
	// position is always original + delta, never re-derived from the
	// already-mutated clip.
	for i := 0; i < 50; i++ {
		drag.Move(50)
	}
	if clip.Position != 15 {
		t.Errorf("position = %v after repeated identical moves, want 15", clip.Position)
	}
	drag.End(50)
	if clip.Position != 15 {
		t.Errorf("position = %v after End, want 15", clip.Position)
	}
}

func TestDragSelectsExclusively(t *testing.T) {
	drag, store, first := newDragFixture(t)
	second := store.AddClip(store.Project().VideoTrack().ID, domain.SourceVideo{ID: "vid-1", Duration: 30})
	store.SelectClip(second.ID)

	drag.Begin(first.ID, 0, nil)
	defer drag.Cancel()

	if !first.Selected || second.Selected {
		t.Errorf("drag start did not make selection exclusive")
	}
}

func TestDragReleasesSubscriptionOnEveryExit(t *testing.T) {
	drag, _, clip := newDragFixture(t)

	released := 0
	acquire := func() ReleaseFunc {
		return func() { released++ }
	}

	drag.Begin(clip.ID, 0, acquire)
	drag.End(10)
	if released != 1 {
		t.Fatalf("release called %d times after End, want 1", released)
	}
	if drag.Dragging() {
		t.Error("still dragging after End")
	}

	// Abnormal exit: teardown mid-drag must release too
	drag.Begin(clip.ID, 0, acquire)
	drag.Cancel()
	if released != 2 {
		t.Errorf("release called %d times after Cancel, want 2", released)
	}
}

func TestDragOneAtATime(t *testing.T) {
	drag, store, first := newDragFixture(t)
	second := store.AddClip(store.Project().VideoTrack().ID, domain.SourceVideo{ID: "vid-1", Duration: 30})

	if !drag.Begin(first.ID, 0, nil) {
		t.Fatal("first Begin refused")
	}
	if drag.Begin(second.ID, 0, nil) {
		t.Error("second Begin accepted while a drag is in flight")
	}
	if drag.ActiveClip() != first.ID {
		t.Errorf("active clip = %s, want the first", drag.ActiveClip())
	}
	drag.End(0)
}

func TestDragEventsWhileIdleAreNoOps(t *testing.T) {
	drag, _, clip := newDragFixture(t)

	if drag.Move(100) {
		t.Error("Move while idle reported success")
	}
	drag.End(100)
	drag.Cancel()
	if clip.Position != 0 {
		t.Errorf("idle events moved the clip to %v", clip.Position)
	}
}

func TestDragUnknownClipRefused(t *testing.T) {
	drag, _, _ := newDragFixture(t)

	if drag.Begin("missing", 0, nil) {
		t.Error("Begin accepted an unknown clip")
	}
	if drag.Dragging() {
		t.Error("controller left in dragging state")
	}
}
