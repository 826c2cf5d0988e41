package commands

import (
	"context"
	"fmt"

	"reelcut/internal/application"
	"reelcut/internal/export"
	"reelcut/internal/ports"
)

// ExportResult contains the result of an export submission
type ExportResult struct {
	JobID   string
	Message string
}

// SubmitExportCommand loads a saved edit, validates its project, and
// submits it to the render pipeline.
type SubmitExportCommand struct {
	store  ports.EditStore
	render ports.RenderService
	ID     string
}

// NewSubmitExportCommand creates a new SubmitExportCommand
func NewSubmitExportCommand(store ports.EditStore, render ports.RenderService, id string) *SubmitExportCommand {
	return &SubmitExportCommand{
		store:  store,
		render: render,
		ID:     id,
	}
}

// Validate checks if the export operation is valid
func (c *SubmitExportCommand) Validate() error {
	return application.ValidateRequired("id", c.ID)
}

// Execute runs the export command
func (c *SubmitExportCommand) Execute(ctx context.Context) (*ExportResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	_, project, err := loadEdit(ctx, c.store, c.ID)
	if err != nil {
		return nil, err
	}
	if err := application.ValidateProject(project); err != nil {
		return nil, err
	}

	jobID, err := c.render.Submit(ctx, project)
	if err != nil {
		return nil, &application.SubmissionError{ProjectID: project.ID, Err: err}
	}

	return &ExportResult{
		JobID:   jobID,
		Message: fmt.Sprintf("Export submitted. Job id: %s", jobID),
	}, nil
}

// EDLResult contains a generated edit decision list
type EDLResult struct {
	EDL string
}

// GenerateEDLCommand loads a saved edit and renders its video track as a
// CMX 3600 EDL.
type GenerateEDLCommand struct {
	store ports.EditStore
	ID    string
}

// NewGenerateEDLCommand creates a new GenerateEDLCommand
func NewGenerateEDLCommand(store ports.EditStore, id string) *GenerateEDLCommand {
	return &GenerateEDLCommand{
		store: store,
		ID:    id,
	}
}

// Validate checks if the EDL operation is valid
func (c *GenerateEDLCommand) Validate() error {
	return application.ValidateRequired("id", c.ID)
}

// Execute runs the EDL command
func (c *GenerateEDLCommand) Execute(ctx context.Context) (*EDLResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	_, project, err := loadEdit(ctx, c.store, c.ID)
	if err != nil {
		return nil, err
	}

	return &EDLResult{EDL: export.GenerateEDL(project)}, nil
}
