package event

import (
	"testing"

	"github.com/kailas-cloud/unisearch/internal/domain/entity"
	"github.com/kailas-cloud/unisearch/internal/domain/search/query"
	"github.com/kailas-cloud/unisearch/internal/domain/text"
)

func mustQuery(t *testing.T, p query.Params) query.Query {
	t.Helper()
	q, err := query.New(p, text.DefaultNormalizer())
	if err != nil {
		t.Fatalf("query.New: %v", err)
	}
	return q
}

func TestNew_MapsQuery(t *testing.T) {
	radius := 5.0
	maxPrice := 300.0
	q := mustQuery(t, query.Params{
		Text:     "Veg Biryani",
		Origin:   &entity.Coordinate{Lat: 12.9, Lon: 77.6},
		RadiusKm: &radius,
		Kinds:    []entity.Kind{entity.Vendor, entity.Item},
		Filters:  query.Filters{VegOnly: true, MaxPrice: &maxPrice},
	})

	ev := New(q, "u1", 7, true, 123)

	if ev.ID == "" {
		t.Error("id must be set")
	}
	if ev.Query != "Veg Biryani" {
		t.Errorf("query = %q, want the raw text", ev.Query)
	}
	if len(ev.Kinds) != 2 || ev.Kinds[0] != "vendor" || ev.Kinds[1] != "item" {
		t.Errorf("kinds = %v", ev.Kinds)
	}
	if ev.ResultCount != 7 || !ev.Partial || ev.TookMs != 123 {
		t.Errorf("event = %+v", ev)
	}
	if ev.Filters["veg_only"] != "true" {
		t.Errorf("filters = %v, want veg_only=true", ev.Filters)
	}
	if ev.Filters["max_price"] != "300" {
		t.Errorf("filters = %v, want max_price=300", ev.Filters)
	}
	if ev.Filters["radius_km"] != "5" {
		t.Errorf("filters = %v, want radius_km=5", ev.Filters)
	}
	if ev.Location == nil || ev.Location.Lat != 12.9 || ev.Location.Lon != 77.6 {
		t.Errorf("location = %v", ev.Location)
	}
	if ev.CreatedAt.IsZero() {
		t.Error("created_at must be set")
	}
}

func TestNew_OmitsAbsentFields(t *testing.T) {
	q := mustQuery(t, query.Params{Text: "biryani"})

	ev := New(q, "", 0, false, 4)

	if ev.UserID != "" {
		t.Errorf("user_id = %q, want empty", ev.UserID)
	}
	if ev.Location != nil {
		t.Errorf("location = %v, want nil", ev.Location)
	}
	if len(ev.Filters) != 0 {
		t.Errorf("filters = %v, want empty", ev.Filters)
	}
}

func TestNew_UniqueIDs(t *testing.T) {
	q := mustQuery(t, query.Params{Text: "biryani"})
	a := New(q, "", 0, false, 0)
	b := New(q, "", 0, false, 0)
	if a.ID == b.ID {
		t.Error("event ids must be unique")
	}
}
