package chi

import (
	"github.com/kailas-cloud/unisearch/internal/domain/entity"
	"github.com/kailas-cloud/unisearch/internal/domain/search/page"
	"github.com/kailas-cloud/unisearch/internal/domain/search/query"
)

type searchRequest struct {
	Query    string   `json:"query"`
	UserID   string   `json:"user_id,omitempty"`
	Lat      *float64 `json:"lat,omitempty"`
	Lon      *float64 `json:"lon,omitempty"`
	RadiusKm *float64 `json:"radius_km,omitempty"`
	Kinds    []string `json:"kinds,omitempty"`
	VegOnly  bool     `json:"veg_only,omitempty"`
	MaxPrice *float64 `json:"max_price,omitempty"`
	Limit    int      `json:"limit,omitempty"`
	Offset   int      `json:"offset,omitempty"`
	Fuzzy    *bool    `json:"fuzzy,omitempty"`
}

// toParams maps the wire request onto query parameters. Unknown kinds and
// range violations are rejected by query.New.
func (r searchRequest) toParams() query.Params {
	var origin *entity.Coordinate
	if r.Lat != nil && r.Lon != nil {
		origin = &entity.Coordinate{Lat: *r.Lat, Lon: *r.Lon}
	}

	kinds := make([]entity.Kind, 0, len(r.Kinds))
	for _, k := range r.Kinds {
		kinds = append(kinds, entity.Kind(k))
	}

	return query.Params{
		Text:     r.Query,
		Origin:   origin,
		RadiusKm: r.RadiusKm,
		Kinds:    kinds,
		Filters: query.Filters{
			VegOnly:  r.VegOnly,
			MaxPrice: r.MaxPrice,
		},
		Limit:        r.Limit,
		Offset:       r.Offset,
		DisableFuzzy: r.Fuzzy != nil && !*r.Fuzzy,
	}
}

type resultView struct {
	Kind        string   `json:"kind"`
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Score       float64  `json:"score"`
	Rating      float64  `json:"rating"`
	DistanceKm  *float64 `json:"distance_km,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	VendorID    string   `json:"vendor_id,omitempty"`
	MatchedOn   string   `json:"matched_on,omitempty"`
}

type echoedQuery struct {
	Query    string   `json:"query"`
	Kinds    []string `json:"kinds"`
	RadiusKm *float64 `json:"radius_km,omitempty"`
	Limit    int      `json:"limit"`
	Offset   int      `json:"offset"`
}

type searchResponse struct {
	Results         []resultView `json:"results"`
	TotalCount      int          `json:"total_count"`
	HasMore         bool         `json:"has_more"`
	ExecutionTimeMs int64        `json:"execution_time_ms"`
	Partial         bool         `json:"partial"`
	Query           echoedQuery  `json:"query"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func pageToResponse(pg page.Page) searchResponse {
	results := make([]resultView, 0, len(pg.Results()))
	for _, c := range pg.Results() {
		ent := c.Entity()
		sig := c.Signals()
		results = append(results, resultView{
			Kind:        string(c.Kind()),
			ID:          c.ID(),
			Name:        ent.Name(),
			Description: ent.Description(),
			Score:       c.Score(),
			Rating:      ent.Rating(),
			DistanceKm:  sig.DistanceKm,
			Price:       ent.Price(),
			VendorID:    ent.VendorID(),
			MatchedOn:   sig.MatchedField,
		})
	}

	q := pg.Query()
	kinds := make([]string, len(q.Kinds()))
	for i, k := range q.Kinds() {
		kinds[i] = string(k)
	}

	return searchResponse{
		Results:         results,
		TotalCount:      pg.TotalCount(),
		HasMore:         pg.HasMore(),
		ExecutionTimeMs: pg.ExecutionTimeMs(),
		Partial:         pg.Partial(),
		Query: echoedQuery{
			Query:    q.RawText(),
			Kinds:    kinds,
			RadiusKm: q.RadiusKm(),
			Limit:    q.Limit(),
			Offset:   q.Offset(),
		},
	}
}
