package commands

import (
	"context"

	"reelcut/internal/ports"
)

// ListEditsCommand lists saved edits, optionally filtered by source video
type ListEditsCommand struct {
	store   ports.EditStore
	VideoID string
}

// NewListEditsCommand creates a new ListEditsCommand. An empty videoID
// lists everything.
func NewListEditsCommand(store ports.EditStore, videoID string) *ListEditsCommand {
	return &ListEditsCommand{
		store:   store,
		VideoID: videoID,
	}
}

// Execute runs the list command
func (c *ListEditsCommand) Execute(ctx context.Context) ([]ports.EditRecord, error) {
	edits, err := c.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if c.VideoID == "" {
		return edits, nil
	}

	filtered := edits[:0]
	for _, e := range edits {
		if e.VideoID == c.VideoID {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}
