package event

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/kailas-cloud/unisearch/internal/domain/search/query"
)

// Location is the caller position attached to an event.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Event is one search interaction emitted to the analytics collaborator.
// The schema is append-only.
type Event struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user_id,omitempty"`
	Query       string            `json:"query"`
	Kinds       []string          `json:"kinds"`
	ResultCount int               `json:"result_count"`
	Filters     map[string]string `json:"filters,omitempty"`
	Location    *Location         `json:"location,omitempty"`
	Partial     bool              `json:"partial"`
	TookMs      int64             `json:"took_ms"`
	CreatedAt   time.Time         `json:"created_at"`
}

// New builds an event from a completed search.
func New(q query.Query, userID string, resultCount int, partial bool, tookMs int64) Event {
	kinds := make([]string, len(q.Kinds()))
	for i, k := range q.Kinds() {
		kinds[i] = string(k)
	}

	filters := make(map[string]string)
	if q.Filters().VegOnly {
		filters["veg_only"] = "true"
	}
	if mp := q.Filters().MaxPrice; mp != nil {
		filters["max_price"] = strconv.FormatFloat(*mp, 'f', -1, 64)
	}
	if r := q.RadiusKm(); r != nil {
		filters["radius_km"] = strconv.FormatFloat(*r, 'f', -1, 64)
	}

	var loc *Location
	if o := q.Origin(); o != nil {
		loc = &Location{Lat: o.Lat, Lon: o.Lon}
	}

	return Event{
		ID:          uuid.NewString(),
		UserID:      userID,
		Query:       q.RawText(),
		Kinds:       kinds,
		ResultCount: resultCount,
		Filters:     filters,
		Location:    loc,
		Partial:     partial,
		TookMs:      tookMs,
		CreatedAt:   time.Now().UTC(),
	}
}
