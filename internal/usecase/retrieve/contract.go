package retrieve

import (
	"context"
	"time"

	"github.com/kailas-cloud/unisearch/internal/domain/entity"
)

// Hints narrow a catalog fetch. The provider may ignore them; retrievers
// re-check locally.
type Hints struct {
	// VendorIDs restricts item fetches to items of these vendors.
	VendorIDs []string
}

// Catalog is the external catalog snapshot provider. Read-only; the engine
// imposes no pagination contract and performs no query optimization.
type Catalog interface {
	FetchCandidates(ctx context.Context, kind entity.Kind, hints Hints) ([]entity.Entity, error)
}

// Clock supplies the instant for availability evaluation, the only
// wall-clock dependence in the ranking path.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }
