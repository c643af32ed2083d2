package query

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/unisearch/internal/domain"
	"github.com/kailas-cloud/unisearch/internal/domain/entity"
	"github.com/kailas-cloud/unisearch/internal/domain/geo"
	"github.com/kailas-cloud/unisearch/internal/domain/text"
)

// Search parameter limits.
const (
	// MaxQueryLength is the maximum allowed search query length.
	MaxQueryLength = 512
	MinRadiusKm    = 0.1
	MaxRadiusKm    = 50.0
	DefaultLimit   = 20
	MaxLimit       = 100
)

// Filters are the kind-specific hard-filter knobs a caller may set.
// Vendor openness and item availability are always enforced and have no knob.
type Filters struct {
	VegOnly  bool
	MaxPrice *float64
}

// Params are the raw, unvalidated search inputs.
type Params struct {
	Text         string
	Origin       *entity.Coordinate
	RadiusKm     *float64
	Kinds        []entity.Kind
	Filters      Filters
	Limit        int
	Offset       int
	DisableFuzzy bool
}

// Query is a validated, normalized search query.
type Query struct {
	rawText        string
	normalizedText string
	tokens         []string
	origin         *entity.Coordinate
	radiusKm       *float64
	kinds          []entity.Kind
	filters        Filters
	limit          int
	offset         int
	fuzzyEnabled   bool
}

// New validates and normalizes search parameters.
// Defaults: kinds=all, limit=20 (clamped to 100), fuzzy enabled.
// Violations are rejected with ErrInvalidQuery before any retrieval.
func New(p Params, n *text.Normalizer) (Query, error) {
	if len(p.Text) > MaxQueryLength {
		return Query{}, fmt.Errorf("%w: query too long (max %d chars)", domain.ErrInvalidQuery, MaxQueryLength)
	}
	if p.Limit < 0 {
		return Query{}, fmt.Errorf("%w: limit must be non-negative", domain.ErrInvalidQuery)
	}
	if p.Offset < 0 {
		return Query{}, fmt.Errorf("%w: offset must be non-negative", domain.ErrInvalidQuery)
	}

	limit := p.Limit
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	kinds := p.Kinds
	if len(kinds) == 0 {
		kinds = entity.AllKinds()
	}
	seen := make(map[entity.Kind]struct{}, len(kinds))
	deduped := make([]entity.Kind, 0, len(kinds))
	geoBound := false
	for _, k := range kinds {
		if !k.IsValid() {
			return Query{}, fmt.Errorf("%w: unknown kind %q", domain.ErrInvalidQuery, k)
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		deduped = append(deduped, k)
		if k.IsGeoBound() {
			geoBound = true
		}
	}

	if p.Origin != nil && !geo.ValidateCoordinates(p.Origin.Lat, p.Origin.Lon) {
		return Query{}, fmt.Errorf("%w: origin out of range", domain.ErrInvalidQuery)
	}
	if p.RadiusKm != nil {
		if p.Origin == nil {
			return Query{}, fmt.Errorf("%w: radius requires an origin", domain.ErrInvalidQuery)
		}
		if *p.RadiusKm < MinRadiusKm || *p.RadiusKm > MaxRadiusKm {
			return Query{}, fmt.Errorf(
				"%w: radius must be between %.1f and %.0f km", domain.ErrInvalidQuery, MinRadiusKm, MaxRadiusKm,
			)
		}
	}

	normalized := n.Normalize(p.Text)
	if normalized == "" {
		// Browse mode: location scoping must be possible.
		if p.Origin == nil {
			return Query{}, fmt.Errorf("%w: text or location is required", domain.ErrInvalidQuery)
		}
		if !geoBound {
			return Query{}, fmt.Errorf("%w: text is required for non-geo kinds", domain.ErrInvalidQuery)
		}
	}

	return Query{
		rawText:        p.Text,
		normalizedText: normalized,
		tokens:         strings.Fields(normalized),
		origin:         p.Origin,
		radiusKm:       p.RadiusKm,
		kinds:          deduped,
		filters:        p.Filters,
		limit:          limit,
		offset:         p.Offset,
		fuzzyEnabled:   !p.DisableFuzzy,
	}, nil
}

// RawText returns the query text as submitted.
func (q *Query) RawText() string { return q.rawText }

// NormalizedText returns the normalized query text.
func (q *Query) NormalizedText() string { return q.normalizedText }

// Tokens returns the whitespace tokens of the normalized text.
func (q *Query) Tokens() []string { return q.tokens }

// Origin returns the caller location (nil when absent).
func (q *Query) Origin() *entity.Coordinate { return q.origin }

// RadiusKm returns the radius filter (nil when absent).
func (q *Query) RadiusKm() *float64 { return q.radiusKm }

// Kinds returns the requested kinds.
func (q *Query) Kinds() []entity.Kind { return q.kinds }

// Filters returns the kind-specific filters.
func (q *Query) Filters() Filters { return q.filters }

// Limit returns the page size.
func (q *Query) Limit() int { return q.limit }

// Offset returns the page offset.
func (q *Query) Offset() int { return q.offset }

// FuzzyEnabled reports whether the fuzzy matching path runs.
func (q *Query) FuzzyEnabled() bool { return q.fuzzyEnabled }
