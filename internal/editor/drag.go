// Package editor holds the interactive engine for a single open project:
// the drag state machine, the playback controller, and the session facade
// that orchestrates save and export.
package editor

import (
	"reelcut/internal/composition"
	"reelcut/internal/domain"
)

// ReleaseFunc tears down the global pointer subscription acquired for a
// drag. It must be safe to call exactly once.
type ReleaseFunc func()

// AcquireFunc installs global pointer-move/pointer-up listeners for the
// duration of a drag and returns their release handle. A drag must track
// the pointer even when it leaves the clip's visual bounds, which is why
// the subscription is session scoped rather than clip scoped.
type AcquireFunc func() ReleaseFunc

// dragState exists only while a drag is in flight. The anchor pointer time
// and the clip's original position are captured once at drag start; every
// move computes an absolute position from them, so event jitter cannot
// compound into drift.
type dragState struct {
	clipID           string
	anchorTime       float64
	originalPosition float64
	release          ReleaseFunc
}

// DragController interprets pointer events into move mutations on the
// composition store. It is a two-state machine: idle, or dragging exactly
// one clip.
type DragController struct {
	store *composition.Store
	scale domain.Timescale
	drag  *dragState // nil when idle
}

// NewDragController creates a drag controller over the given store
func NewDragController(store *composition.Store, scale domain.Timescale) *DragController {
	return &DragController{store: store, scale: scale}
}

// Dragging reports whether a drag is in flight
func (d *DragController) Dragging() bool {
	return d.drag != nil
}

// ActiveClip returns the id of the clip being dragged, or ""
func (d *DragController) ActiveClip() string {
	if d.drag == nil {
		return ""
	}
	return d.drag.clipID
}

// Begin starts a drag on the clip under the pointer. It selects the clip
// (deselecting all siblings), captures the drag anchor, and acquires the
// global pointer subscription via acquire. Returns false without side
// effects if a drag is already in flight or the clip does not exist.
func (d *DragController) Begin(clipID string, pressX float64, acquire AcquireFunc) bool {
	if d.drag != nil {
		return false
	}
	clip, _ := d.store.Project().FindClip(clipID)
	if clip == nil {
		return false
	}

	d.store.SelectClip(clipID)

	var release ReleaseFunc
	if acquire != nil {
		release = acquire()
	}
	d.drag = &dragState{
		clipID:           clipID,
		anchorTime:       d.scale.PixelToTime(pressX),
		originalPosition: clip.Position,
		release:          release,
	}
	return true
}

// Move repositions the dragged clip for the pointer's current x offset.
// The new position is always originalPosition + (pointerTime - anchorTime);
// the live clip position is never re-read. No-op while idle.
func (d *DragController) Move(currentX float64) bool {
	if d.drag == nil {
		return false
	}
	delta := d.scale.PixelToTime(currentX) - d.drag.anchorTime
	d.store.MoveClip(d.drag.clipID, d.drag.originalPosition+delta)
	return true
}

// End commits the drag at the pointer's final x offset and releases the
// global subscription. The position set by the last move is the committed
// value; there is no separate commit step.
func (d *DragController) End(currentX float64) {
	if d.drag == nil {
		return
	}
	d.Move(currentX)
	d.finish()
}

// Cancel releases the global subscription without a final move. Callers
// must invoke it on every abnormal exit path, including component teardown
// mid-drag, so a leaked listener cannot corrupt a later interaction. The
// clip keeps the last position applied.
func (d *DragController) Cancel() {
	if d.drag == nil {
		return
	}
	d.finish()
}

func (d *DragController) finish() {
	if d.drag.release != nil {
		d.drag.release()
	}
	d.drag = nil
}
