package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound  = errors.New("not found")
	ErrNoProject = errors.New("no open project")
	ErrBusy      = errors.New("operation already in progress")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// PersistenceError represents a failed save to the edit store
type PersistenceError struct {
	EditID string
	Err    error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("save failed for edit %s: %v", e.EditID, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// SubmissionError represents an export job that could not be submitted
type SubmissionError struct {
	ProjectID string
	Err       error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("export submission failed for project %s: %v", e.ProjectID, e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
