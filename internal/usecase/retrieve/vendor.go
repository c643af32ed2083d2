// Package retrieve composes the exact and fuzzy matchers with kind-specific
// hard filters into per-kind retrievers. Each retriever emits zero or one
// candidate per catalog entity; the scorer never sees a filtered-out entity.
package retrieve

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/unisearch/internal/domain/entity"
	"github.com/kailas-cloud/unisearch/internal/domain/geo"
	"github.com/kailas-cloud/unisearch/internal/domain/match"
	"github.com/kailas-cloud/unisearch/internal/domain/search/candidate"
	"github.com/kailas-cloud/unisearch/internal/domain/search/query"
	"github.com/kailas-cloud/unisearch/internal/usecase/score"
)

// Vendor retrieves vendor candidates. Hard filters: open at the clock's
// current instant, within radius when one is set.
type Vendor struct {
	catalog    Catalog
	clock      Clock
	weights    score.Table
	thresholds match.Thresholds
}

// NewVendor creates a vendor retriever.
func NewVendor(catalog Catalog, clock Clock, weights score.Table, thresholds match.Thresholds) *Vendor {
	return &Vendor{catalog: catalog, clock: clock, weights: weights, thresholds: thresholds}
}

// Retrieve returns scored vendor candidates for the query.
func (r *Vendor) Retrieve(ctx context.Context, q query.Query) ([]candidate.Candidate, error) {
	ents, err := r.catalog.FetchCandidates(ctx, entity.Vendor, Hints{})
	if err != nil {
		return nil, fmt.Errorf("fetch vendors: %w", err)
	}

	now := r.clock.Now()
	var out []candidate.Candidate
	for _, ent := range ents {
		if !ent.IsOpenAt(now) {
			continue
		}
		dist, ok := withinRadius(ent, q.Origin(), q.RadiusKm())
		if !ok {
			continue
		}
		sig, ok := textualSignals(q, ent, r.thresholds)
		if !ok {
			continue
		}
		sig.DistanceKm = dist
		sig.Rating = ent.Rating()
		out = append(out, candidate.New(ent, sig, r.weights.Score(entity.Vendor, sig)))
	}
	return out, nil
}

// IDsWithinRadius resolves the vendors inside the query radius. The item
// retriever delegates here so the radius rule is defined exactly once.
func (r *Vendor) IDsWithinRadius(ctx context.Context, q query.Query) ([]string, error) {
	ents, err := r.catalog.FetchCandidates(ctx, entity.Vendor, Hints{})
	if err != nil {
		return nil, fmt.Errorf("fetch vendors: %w", err)
	}

	var ids []string
	for _, ent := range ents {
		if _, ok := withinRadius(ent, q.Origin(), q.RadiusKm()); ok && ent.Coordinate() != nil {
			ids = append(ids, ent.ID())
		}
	}
	return ids, nil
}

// withinRadius is the single radius rule. Returns the rounded distance when
// an origin is present and whether the entity survives the radius filter.
// Entities without a coordinate fail only when a radius is actually set.
func withinRadius(ent entity.Entity, origin *entity.Coordinate, radiusKm *float64) (*float64, bool) {
	if origin == nil {
		return nil, true
	}
	c := ent.Coordinate()
	if c == nil {
		return nil, radiusKm == nil
	}
	d := geo.DistanceKm(origin.Lat, origin.Lon, c.Lat, c.Lon)
	if radiusKm != nil && d > *radiusKm {
		return nil, false
	}
	return &d, true
}
