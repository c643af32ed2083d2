// Package score turns raw candidate signals into one comparable relevance
// float per candidate using kind-specific weight formulas.
package score

import (
	"github.com/kailas-cloud/unisearch/internal/domain/entity"
	"github.com/kailas-cloud/unisearch/internal/domain/search/candidate"
)

// Weights are the per-kind signal multipliers.
type Weights struct {
	Exact     float64
	Fuzzy     float64
	Rating    float64
	Proximity float64
}

// Table maps each kind to its weight formula.
type Table map[entity.Kind]Weights

// DefaultTable returns the standard weight table. Item and category weight
// fuzzy name similarity higher than exact rank; items carry no distance term
// since radius is already a hard filter via the vendor-radius restriction.
// Scores are not normalized across kinds.
func DefaultTable() Table {
	return Table{
		entity.Vendor:   {Exact: 3.0, Fuzzy: 2.0, Rating: 0.5, Proximity: 0.3},
		entity.Item:     {Exact: 2.0, Fuzzy: 3.0},
		entity.Category: {Exact: 2.0, Fuzzy: 3.0},
	}
}

// Score computes the relevance score for one candidate's signals. Missing
// signals contribute zero. Deterministic for a fixed weight table.
func (t Table) Score(kind entity.Kind, sig candidate.Signals) float64 {
	w := t[kind]

	s := 0.0
	if sig.HasExact {
		s += w.Exact * sig.ExactRank
	}
	if sig.HasFuzzy {
		s += w.Fuzzy * sig.FuzzySimilarity
	}
	s += w.Rating * sig.Rating
	if sig.DistanceKm != nil {
		s += w.Proximity * (1.0 / (*sig.DistanceKm + 1.0))
	}
	return s
}
