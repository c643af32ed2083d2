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

// Category retrieves category candidates. Categories carry no coordinate,
// so there is no geo step; the only hard filter is the enabled flag.
type Category struct {
	catalog    Catalog
	weights    score.Table
	thresholds match.Thresholds
}

// NewCategory creates a category retriever.
func NewCategory(catalog Catalog, weights score.Table, thresholds match.Thresholds) *Category {
	return &Category{catalog: catalog, weights: weights, thresholds: thresholds}
}

// Retrieve returns scored category candidates for the query. A pure browse
// query has nothing to match categories against and yields none.
func (r *Category) Retrieve(ctx context.Context, q query.Query) ([]candidate.Candidate, error) {
	if q.NormalizedText() == "" {
		return nil, nil
	}

	ents, err := r.catalog.FetchCandidates(ctx, entity.Category, Hints{})
	if err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}

	var out []candidate.Candidate
	for _, ent := range ents {
		if !ent.Active() {
			continue
		}
		sig, ok := textualSignals(q, ent, r.thresholds)
		if !ok {
			continue
		}
		sig.Rating = ent.Rating()
		out = append(out, candidate.New(ent, sig, r.weights.Score(entity.Category, sig)))
	}
	return out, nil
}
