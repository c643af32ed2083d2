package match

import (
	"strings"

	"github.com/kailas-cloud/unisearch/internal/domain/entity"
	"github.com/kailas-cloud/unisearch/internal/domain/text"
)

// Default per-field similarity thresholds. Deliberately low to favor
// recall and typo tolerance over precision.
const (
	DefaultNameThreshold      = 0.1
	DefaultSecondaryThreshold = 0.15
)

// Thresholds maps corpus field names to minimum fuzzy similarity.
type Thresholds map[string]float64

// DefaultThresholds returns the standard threshold table.
func DefaultThresholds() Thresholds {
	return Thresholds{
		"name":        DefaultNameThreshold,
		"description": DefaultSecondaryThreshold,
	}
}

// For returns the threshold for a field, falling back to the secondary default.
func (t Thresholds) For(field string) float64 {
	if v, ok := t[field]; ok {
		return v
	}
	return DefaultSecondaryThreshold
}

// FieldMatch is the best fuzzy hit for a query against a corpus.
type FieldMatch struct {
	Field      string
	Similarity float64
}

// Fuzzy scores trigram similarity of the query against every corpus field
// not already exact-matched, keeping fields that clear their threshold.
// Returns the single best field. ok is false when nothing clears.
func Fuzzy(query string, corpus []entity.CorpusField, th Thresholds, skip map[string]struct{}) (FieldMatch, bool) {
	if query == "" {
		return FieldMatch{}, false
	}

	var best FieldMatch
	found := false
	for _, f := range corpus {
		if _, ok := skip[f.Name()]; ok {
			continue
		}
		sim := fieldSimilarity(query, f.Text())
		if sim < th.For(f.Name()) {
			continue
		}
		if !found || sim > best.Similarity {
			best = FieldMatch{Field: f.Name(), Similarity: sim}
			found = true
		}
	}
	return best, found
}

// fieldSimilarity scores a query against one field: the whole field text and
// each of its tokens, best wins. Token comparison keeps a short query like
// "bir" scoring against "biryani" rather than drowning in the shingles of a
// long multi-word field.
func fieldSimilarity(query, fieldText string) float64 {
	best := text.Similarity(query, fieldText)
	for _, tok := range strings.Fields(fieldText) {
		if sim := text.Similarity(query, tok); sim > best {
			best = sim
		}
	}
	return best
}
