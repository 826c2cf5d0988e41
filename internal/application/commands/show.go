package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"reelcut/internal/application"
	"reelcut/internal/domain"
	"reelcut/internal/ports"
)

// ShowResult contains a loaded edit and its decoded project
type ShowResult struct {
	Record  ports.EditRecord
	Project *domain.Project
}

// ShowEditCommand loads an edit and decodes its project
type ShowEditCommand struct {
	store ports.EditStore
	ID    string
}

// NewShowEditCommand creates a new ShowEditCommand
func NewShowEditCommand(store ports.EditStore, id string) *ShowEditCommand {
	return &ShowEditCommand{
		store: store,
		ID:    id,
	}
}

// Validate checks if the show operation is valid
func (c *ShowEditCommand) Validate() error {
	return application.ValidateRequired("id", c.ID)
}

// Execute runs the show command
func (c *ShowEditCommand) Execute(ctx context.Context) (*ShowResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	rec, project, err := loadEdit(ctx, c.store, c.ID)
	if err != nil {
		return nil, err
	}
	return &ShowResult{Record: *rec, Project: project}, nil
}

// loadEdit fetches an edit record and decodes its project JSON. Shared by
// every command that operates on a stored edit.
func loadEdit(ctx context.Context, store ports.EditStore, id string) (*ports.EditRecord, *domain.Project, error) {
	rec, err := store.Get(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("loading edit %s: %w", id, err)
	}
	if rec == nil {
		return nil, nil, fmt.Errorf("edit %s: %w", id, application.ErrNotFound)
	}

	var project domain.Project
	if err := json.Unmarshal(rec.Project, &project); err != nil {
		return nil, nil, fmt.Errorf("decoding project for edit %s: %w", id, err)
	}
	return rec, &project, nil
}
