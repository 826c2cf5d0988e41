// Package catalog provides access to the source video catalogue. The HTTP
// client talks to the real service; Fixture supplies deterministic data
// for tests and offline use.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"reelcut/internal/domain"
	"reelcut/internal/ports"
)

const requestTimeout = 10 * time.Second

// HTTPClient implements ports.Catalog against the catalogue service
type HTTPClient struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

var _ ports.Catalog = (*HTTPClient)(nil)

// NewHTTPClient creates a catalogue client for the given base URL
func NewHTTPClient(baseURL string, logger *slog.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: requestTimeout},
		logger:  logger,
	}
}

// List fetches the available source videos
func (c *HTTPClient) List(ctx context.Context) ([]domain.SourceVideo, error) {
	url := c.baseURL + "/videos"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalogue request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalogue request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalogue returned %s", resp.Status)
	}

	var videos []domain.SourceVideo
	if err := json.NewDecoder(resp.Body).Decode(&videos); err != nil {
		return nil, fmt.Errorf("failed to decode catalogue response: %w", err)
	}

	if c.logger != nil {
		c.logger.Debug("catalogue fetched", "count", len(videos))
	}
	return videos, nil
}
