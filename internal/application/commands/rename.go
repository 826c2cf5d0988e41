package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"reelcut/internal/application"
	"reelcut/internal/ports"
)

// RenameResult contains the result of a rename operation
type RenameResult struct {
	ID       string
	NewTitle string
	Message  string
}

// RenameEditCommand changes the title of a saved edit, both on the record
// and inside the serialized project.
type RenameEditCommand struct {
	store    ports.EditStore
	ID       string
	NewTitle string
}

// NewRenameEditCommand creates a new RenameEditCommand
func NewRenameEditCommand(store ports.EditStore, id, newTitle string) *RenameEditCommand {
	return &RenameEditCommand{
		store:    store,
		ID:       id,
		NewTitle: newTitle,
	}
}

// Validate checks if the rename operation is valid
func (c *RenameEditCommand) Validate() error {
	if err := application.ValidateRequired("id", c.ID); err != nil {
		return err
	}
	return application.ValidateRequired("title", c.NewTitle)
}

// Execute runs the rename command
func (c *RenameEditCommand) Execute(ctx context.Context) (*RenameResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	rec, project, err := loadEdit(ctx, c.store, c.ID)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(c.NewTitle)
	project.Title = title
	raw, err := json.Marshal(project)
	if err != nil {
		return nil, fmt.Errorf("encoding project: %w", err)
	}

	rec.Title = title
	rec.Project = raw
	if err := c.store.Upsert(ctx, *rec); err != nil {
		return nil, &application.PersistenceError{EditID: c.ID, Err: err}
	}

	return &RenameResult{
		ID:       c.ID,
		NewTitle: title,
		Message:  fmt.Sprintf("Renamed %s to %q", c.ID, title),
	}, nil
}
