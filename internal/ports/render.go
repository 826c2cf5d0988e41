package ports

import (
	"context"

	"reelcut/internal/domain"
)

// Render job states. Jobs move submitted → running → completed|failed.
const (
	JobStatusSubmitted = "submitted"
	JobStatusRunning   = "running"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

// RenderJob is the tracked state of a submitted export
type RenderJob struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	Progress  int    `json:"progress"`
	Error     string `json:"error,omitempty"`
	OutputURL string `json:"output_url,omitempty"`
}

// Terminal reports whether the job has reached a final state
func (j RenderJob) Terminal() bool {
	return j.Status == JobStatusCompleted || j.Status == JobStatusFailed
}

// RenderService submits projects to the external render pipeline. Submit
// returns an operation id; callers poll GetJob until a terminal state.
type RenderService interface {
	Submit(ctx context.Context, project *domain.Project) (string, error)
	GetJob(ctx context.Context, jobID string) (RenderJob, error)
}
