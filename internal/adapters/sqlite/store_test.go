package sqlite

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"reelcut/internal/ports"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "reelcut.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testRecord(id, title string) ports.EditRecord {
	return ports.EditRecord{
		ID:        id,
		VideoID:   "vid-1",
		Title:     title,
		Project:   json.RawMessage(`{"id":"p1","title":"` + title + `"}`),
		UpdatedAt: time.Now(),
	}
}

func TestUpsertAndGet(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Upsert(ctx, testRecord("edit-1", "First cut")); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	rec, err := store.Get(ctx, "edit-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec == nil {
		t.Fatal("Get returned nil for existing record")
	}
	if rec.Title != "First cut" || rec.VideoID != "vid-1" {
		t.Errorf("record = %+v", rec)
	}

	var payload map[string]any
	if err := json.Unmarshal(rec.Project, &payload); err != nil {
		t.Errorf("stored project is not valid JSON: %v", err)
	}
}

func TestUpsertReplacesExisting(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	store.Upsert(ctx, testRecord("edit-1", "First cut"))
	if err := store.Upsert(ctx, testRecord("edit-1", "Second cut")); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}

	recs, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1 (last write wins)", len(recs))
	}
	if recs[0].Title != "Second cut" {
		t.Errorf("title = %q, want the later write", recs[0].Title)
	}
}

func TestGetMissing(t *testing.T) {
	store := openTestStore(t)

	rec, err := store.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec != nil {
		t.Errorf("Get on missing id = %+v, want nil", rec)
	}
}

func TestListOrdersByUpdatedAt(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	old := testRecord("edit-old", "Old")
	old.UpdatedAt = time.Now().Add(-time.Hour)
	store.Upsert(ctx, old)
	store.Upsert(ctx, testRecord("edit-new", "New"))

	recs, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].ID != "edit-new" {
		t.Errorf("first record = %s, want most recent", recs[0].ID)
	}
}

func TestDeleteIdempotent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	store.Upsert(ctx, testRecord("edit-1", "Cut"))
	if err := store.Delete(ctx, "edit-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := store.Delete(ctx, "edit-1"); err != nil {
		t.Errorf("repeat Delete errored: %v", err)
	}

	rec, _ := store.Get(ctx, "edit-1")
	if rec != nil {
		t.Error("record still present after delete")
	}
}
