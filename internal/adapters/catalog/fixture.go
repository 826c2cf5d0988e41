package catalog

import (
	"context"

	"reelcut/internal/domain"
	"reelcut/internal/ports"
)

// Fixture is a deterministic in-memory catalogue. It backs tests and the
// offline demo mode; the editor itself only sees ports.Catalog, so no
// fallback data lives in the fetch path.
type Fixture struct {
	Videos []domain.SourceVideo
}

var _ ports.Catalog = (*Fixture)(nil)

// NewFixture returns a catalogue with a small set of sample sources
func NewFixture() *Fixture {
	return &Fixture{Videos: []domain.SourceVideo{
		{
			ID:       "sample-1",
			Title:    "Studio interview",
			VideoURL: "https://cdn.example.com/samples/interview.mp4",
			Duration: 95,
		},
		{
			ID:       "sample-2",
			Title:    "Product walkthrough",
			VideoURL: "https://cdn.example.com/samples/walkthrough.mp4",
			Duration: 48,
		},
		{
			ID:       "sample-3",
			Title:    "B-roll, city at night",
			VideoURL: "https://cdn.example.com/samples/broll.mp4",
		},
	}}
}

// List returns the fixture's videos
func (f *Fixture) List(_ context.Context) ([]domain.SourceVideo, error) {
	return f.Videos, nil
}
