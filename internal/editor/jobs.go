package editor

import (
	"context"
	"log/slog"
	"time"

	"reelcut/internal/ports"
)

// DefaultPollInterval is how often Wait re-checks a render job
const DefaultPollInterval = 2 * time.Second

// JobTracker polls a submitted render job to a terminal state. Export
// submission and job completion are deliberately separate concerns: the
// session only submits, and anything that cares about the outcome drives a
// tracker.
type JobTracker struct {
	render ports.RenderService
	logger *slog.Logger
}

// NewJobTracker creates a tracker over the render service
func NewJobTracker(render ports.RenderService, logger *slog.Logger) *JobTracker {
	return &JobTracker{render: render, logger: logger}
}

// Poll fetches the job's current state once
func (t *JobTracker) Poll(ctx context.Context, jobID string) (ports.RenderJob, error) {
	return t.render.GetJob(ctx, jobID)
}

// Wait polls until the job reaches a terminal state or the context is
// cancelled. A non-positive interval uses the default.
func (t *JobTracker) Wait(ctx context.Context, jobID string, interval time.Duration) (ports.RenderJob, error) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		job, err := t.render.GetJob(ctx, jobID)
		if err != nil {
			return ports.RenderJob{}, err
		}
		if job.Terminal() {
			if t.logger != nil {
				t.logger.Info("render job finished", "job_id", jobID, "status", job.Status)
			}
			return job, nil
		}
		if t.logger != nil {
			t.logger.Debug("render job pending", "job_id", jobID, "status", job.Status, "progress", job.Progress)
		}

		select {
		case <-ctx.Done():
			return ports.RenderJob{}, ctx.Err()
		case <-ticker.C:
		}
	}
}
