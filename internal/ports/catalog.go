package ports

import (
	"context"

	"reelcut/internal/domain"
)

// Catalog lists the source videos available for editing. The catalogue is
// read-only input; it is fetched once when the editor opens.
type Catalog interface {
	List(ctx context.Context) ([]domain.SourceVideo, error)
}
