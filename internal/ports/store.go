package ports

import (
	"context"
	"encoding/json"
	"time"
)

// EditRecord is the persisted form of an edit session: the serialized
// project keyed by a per-session edit id. The store has no read-modify-
// write contract beyond last write wins.
type EditRecord struct {
	ID        string          `json:"id"`
	VideoID   string          `json:"video_id"`
	Title     string          `json:"title"`
	Project   json.RawMessage `json:"project"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// EditStore is the persistence sink for edit sessions
type EditStore interface {
	Upsert(ctx context.Context, rec EditRecord) error
	Get(ctx context.Context, id string) (*EditRecord, error)
	List(ctx context.Context) ([]EditRecord, error)
	Delete(ctx context.Context, id string) error
}
