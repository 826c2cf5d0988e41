// Package render submits projects to the external render pipeline and
// reads back job status.
package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"reelcut/internal/domain"
	"reelcut/internal/ports"
)

const requestTimeout = 30 * time.Second

// HTTPClient implements ports.RenderService against the render pipeline
type HTTPClient struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

var _ ports.RenderService = (*HTTPClient)(nil)

// NewHTTPClient creates a render client for the given base URL
func NewHTTPClient(baseURL string, logger *slog.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: requestTimeout},
		logger:  logger,
	}
}

type submitRequest struct {
	ProjectID string          `json:"project_id"`
	Title     string          `json:"title"`
	Project   *domain.Project `json:"project"`
}

type submitResponse struct {
	JobID string `json:"job_id"`
}

// Submit posts the serialized project and returns the pipeline's job id
func (c *HTTPClient) Submit(ctx context.Context, project *domain.Project) (string, error) {
	body, err := json.Marshal(submitRequest{
		ProjectID: project.ID,
		Title:     project.Title,
		Project:   project,
	})
	if err != nil {
		return "", fmt.Errorf("failed to serialize project: %w", err)
	}

	url := c.baseURL + "/exports"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build export request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("export request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return "", fmt.Errorf("render pipeline returned %s", resp.Status)
	}

	var out submitResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode export response: %w", err)
	}
	if out.JobID == "" {
		return "", fmt.Errorf("render pipeline returned no job id")
	}

	if c.logger != nil {
		c.logger.Info("export submitted", "project_id", project.ID, "job_id", out.JobID)
	}
	return out.JobID, nil
}

// GetJob fetches a submitted job's current state
func (c *HTTPClient) GetJob(ctx context.Context, jobID string) (ports.RenderJob, error) {
	url := c.baseURL + "/exports/" + jobID
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ports.RenderJob{}, fmt.Errorf("failed to build job request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return ports.RenderJob{}, fmt.Errorf("job request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ports.RenderJob{}, fmt.Errorf("job %s not found", jobID)
	}
	if resp.StatusCode != http.StatusOK {
		return ports.RenderJob{}, fmt.Errorf("render pipeline returned %s", resp.Status)
	}

	var job ports.RenderJob
	if err := json.NewDecoder(resp.Body).Decode(&job); err != nil {
		return ports.RenderJob{}, fmt.Errorf("failed to decode job response: %w", err)
	}
	return job, nil
}
