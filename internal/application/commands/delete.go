package commands

import (
	"context"
	"fmt"

	"reelcut/internal/application"
	"reelcut/internal/ports"
)

// DeleteResult contains the result of a delete operation
type DeleteResult struct {
	DeletedID string
	Message   string
}

// DeleteEditCommand deletes a saved edit by id. Deleting an unknown id
// succeeds; the store's delete is idempotent.
type DeleteEditCommand struct {
	store ports.EditStore
	ID    string
}

// NewDeleteEditCommand creates a new DeleteEditCommand
func NewDeleteEditCommand(store ports.EditStore, id string) *DeleteEditCommand {
	return &DeleteEditCommand{
		store: store,
		ID:    id,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteEditCommand) Validate() error {
	return application.ValidateRequired("id", c.ID)
}

// Execute runs the delete command
func (c *DeleteEditCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.store.Delete(ctx, c.ID); err != nil {
		return nil, fmt.Errorf("failed to delete %s: %w", c.ID, err)
	}

	return &DeleteResult{
		DeletedID: c.ID,
		Message:   fmt.Sprintf("Deleted edit %s", c.ID),
	}, nil
}
