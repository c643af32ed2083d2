package retrieve

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/unisearch/internal/domain/entity"
	"github.com/kailas-cloud/unisearch/internal/domain/match"
	"github.com/kailas-cloud/unisearch/internal/domain/search/candidate"
	"github.com/kailas-cloud/unisearch/internal/domain/search/query"
	"github.com/kailas-cloud/unisearch/internal/usecase/score"
)

// Item retrieves item candidates. Hard filters: availability, dietary flag,
// price ceiling, and the vendor-radius restriction. Retrieval is two-phase
// when a radius is set: vendor ids inside the radius are resolved first,
// bounding fuzzy-similarity cost to items of nearby vendors.
type Item struct {
	catalog    Catalog
	vendors    *Vendor
	weights    score.Table
	thresholds match.Thresholds
}

// NewItem creates an item retriever.
func NewItem(catalog Catalog, vendors *Vendor, weights score.Table, thresholds match.Thresholds) *Item {
	return &Item{catalog: catalog, vendors: vendors, weights: weights, thresholds: thresholds}
}

// Retrieve returns scored item candidates for the query.
func (r *Item) Retrieve(ctx context.Context, q query.Query) ([]candidate.Candidate, error) {
	hints := Hints{}
	var allowed map[string]struct{}
	if q.Origin() != nil && q.RadiusKm() != nil {
		ids, err := r.vendors.IDsWithinRadius(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("resolve vendors in radius: %w", err)
		}
		if len(ids) == 0 {
			return nil, nil
		}
		hints.VendorIDs = ids
		allowed = make(map[string]struct{}, len(ids))
		for _, id := range ids {
			allowed[id] = struct{}{}
		}
	}

	ents, err := r.catalog.FetchCandidates(ctx, entity.Item, hints)
	if err != nil {
		return nil, fmt.Errorf("fetch items: %w", err)
	}

	filters := q.Filters()
	var out []candidate.Candidate
	for _, ent := range ents {
		if !ent.Active() {
			continue
		}
		// Providers may ignore hints; enforce the vendor subset locally.
		if allowed != nil {
			if _, ok := allowed[ent.VendorID()]; !ok {
				continue
			}
		}
		if filters.VegOnly && !ent.IsVeg() {
			continue
		}
		if filters.MaxPrice != nil {
			p := ent.Price()
			if p == nil || *p > *filters.MaxPrice {
				continue
			}
		}
		sig, ok := textualSignals(q, ent, r.thresholds)
		if !ok {
			continue
		}
		// Distance is display-only for items: radius is already a hard
		// filter and the item formula carries no proximity term.
		dist, _ := withinRadius(ent, q.Origin(), q.RadiusKm())
		sig.DistanceKm = dist
		sig.Rating = ent.Rating()
		out = append(out, candidate.New(ent, sig, r.weights.Score(entity.Item, sig)))
	}
	return out, nil
}
