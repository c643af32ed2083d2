// Package match implements the exact and fuzzy textual matchers that decide
// candidacy of a catalog entity for a query. Both operate on normalized text.
package match

import (
	"strings"

	"github.com/kailas-cloud/unisearch/internal/domain/entity"
)

// ExactMatch is the outcome of token-set containment against a weighted corpus.
type ExactMatch struct {
	// Rank grows with query-token coverage and the matched field's weight,
	// always in [0,1].
	Rank float64
	// Field is the best-ranked matching field.
	Field string
	// Fields lists every field with at least one token hit, so the fuzzy
	// matcher can skip fields already exact-matched.
	Fields map[string]struct{}
}

// Exact evaluates the query token set against each corpus field. Per field,
// rank = (matched query tokens / total query tokens) × (field weight / max
// corpus weight); the best field wins. ok is false when no query token
// appears in any field.
func Exact(queryTokens []string, corpus []entity.CorpusField) (ExactMatch, bool) {
	if len(queryTokens) == 0 || len(corpus) == 0 {
		return ExactMatch{}, false
	}

	maxWeight := 0.0
	for _, f := range corpus {
		if f.Weight() > maxWeight {
			maxWeight = f.Weight()
		}
	}
	if maxWeight <= 0 {
		return ExactMatch{}, false
	}

	best := ExactMatch{Fields: make(map[string]struct{})}
	found := false
	for _, f := range corpus {
		fieldTokens := make(map[string]struct{})
		for _, t := range strings.Fields(f.Text()) {
			fieldTokens[t] = struct{}{}
		}

		matched := 0
		for _, t := range queryTokens {
			if _, ok := fieldTokens[t]; ok {
				matched++
			}
		}
		if matched == 0 {
			continue
		}

		found = true
		best.Fields[f.Name()] = struct{}{}

		rank := float64(matched) / float64(len(queryTokens)) * (f.Weight() / maxWeight)
		if rank > best.Rank {
			best.Rank = rank
			best.Field = f.Name()
		}
	}
	if !found {
		return ExactMatch{}, false
	}
	return best, true
}
