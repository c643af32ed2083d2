package retrieve

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/unisearch/internal/domain/entity"
	"github.com/kailas-cloud/unisearch/internal/domain/match"
	"github.com/kailas-cloud/unisearch/internal/domain/search/query"
	"github.com/kailas-cloud/unisearch/internal/usecase/score"
)

func newItemRetriever(cat Catalog) *Item {
	return NewItem(cat, newVendorRetriever(cat), score.DefaultTable(), match.DefaultThresholds())
}

func TestItemRetrieve_VegOnlyExcludesNonVeg(t *testing.T) {
	cat := &mockCatalog{entities: map[entity.Kind][]entity.Entity{
		entity.Item: {
			item("i1", "Chicken Biryani", "v1", false, 250),
			item("i2", "Veg Biryani", "v1", true, 200),
		},
	}}
	r := newItemRetriever(cat)

	q := mustQuery(t, query.Params{
		Text:    "biryani",
		Filters: query.Filters{VegOnly: true},
	})
	cands, err := r.Retrieve(context.Background(), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cands) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(cands))
	}
	// The non-veg item is excluded even though it matches the text just as well.
	if cands[0].ID() != "i2" {
		t.Errorf("expected veg item, got %s", cands[0].ID())
	}
}

func TestItemRetrieve_PriceCeiling(t *testing.T) {
	cat := &mockCatalog{entities: map[entity.Kind][]entity.Entity{
		entity.Item: {
			item("cheap", "Veg Biryani", "v1", true, 150),
			item("pricey", "Royal Biryani", "v1", false, 450),
		},
	}}
	r := newItemRetriever(cat)

	q := mustQuery(t, query.Params{
		Text:    "biryani",
		Filters: query.Filters{MaxPrice: ptr(200)},
	})
	cands, err := r.Retrieve(context.Background(), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cands) != 1 || cands[0].ID() != "cheap" {
		t.Fatalf("expected only the cheap item, got %v", cands)
	}
}

func TestItemRetrieve_UnavailableExcluded(t *testing.T) {
	gone := entity.NewItem("i1", "Veg Biryani", "", nameCorpus("Veg Biryani"),
		4.0, false, true, ptr(200), "v1", nil)
	cat := &mockCatalog{entities: map[entity.Kind][]entity.Entity{
		entity.Item: {gone},
	}}
	r := newItemRetriever(cat)

	q := mustQuery(t, query.Params{Text: "biryani"})
	cands, err := r.Retrieve(context.Background(), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cands) != 0 {
		t.Error("unavailable item must be excluded")
	}
}

func TestItemRetrieve_TwoPhaseRadius(t *testing.T) {
	cat := &mockCatalog{entities: map[entity.Kind][]entity.Entity{
		entity.Vendor: {
			openVendor("vnear", "Biryani House", 4.5, 12.91, 77.6),
			openVendor("vfar", "Biryani Palace", 4.9, 13.0, 77.6),
		},
		entity.Item: {
			item("i1", "Veg Biryani", "vnear", true, 200),
			item("i2", "Veg Biryani", "vfar", true, 200),
		},
	}}
	r := newItemRetriever(cat)

	q := mustQuery(t, query.Params{
		Text:     "biryani",
		Origin:   &entity.Coordinate{Lat: 12.9, Lon: 77.6},
		RadiusKm: ptr(5),
		Kinds:    []entity.Kind{entity.Item},
	})
	cands, err := r.Retrieve(context.Background(), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cands) != 1 || cands[0].ID() != "i1" {
		t.Fatalf("expected only the near vendor's item, got %v", cands)
	}
	if len(cat.lastHints.VendorIDs) != 1 || cat.lastHints.VendorIDs[0] != "vnear" {
		t.Errorf("item fetch should be hinted to nearby vendors, got %v", cat.lastHints.VendorIDs)
	}
}

func TestItemRetrieve_NoVendorsInRadius(t *testing.T) {
	cat := &mockCatalog{entities: map[entity.Kind][]entity.Entity{
		entity.Vendor: {
			openVendor("vfar", "Biryani Palace", 4.9, 13.5, 77.6),
		},
		entity.Item: {
			item("i1", "Veg Biryani", "vfar", true, 200),
		},
	}}
	r := newItemRetriever(cat)

	q := mustQuery(t, query.Params{
		Text:     "biryani",
		Origin:   &entity.Coordinate{Lat: 12.9, Lon: 77.6},
		RadiusKm: ptr(5),
		Kinds:    []entity.Kind{entity.Item},
	})
	cands, err := r.Retrieve(context.Background(), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cands) != 0 {
		t.Errorf("expected no candidates, got %v", cands)
	}
	// The item fetch is skipped entirely when no vendor is in radius.
	for _, k := range cat.fetchCalls {
		if k == entity.Item {
			t.Error("item fetch should not happen with an empty vendor subset")
		}
	}
}

func TestItemRetrieve_VendorResolutionError(t *testing.T) {
	cat := &mockCatalog{err: errors.New("connection refused")}
	r := newItemRetriever(cat)

	q := mustQuery(t, query.Params{
		Text:     "biryani",
		Origin:   &entity.Coordinate{Lat: 12.9, Lon: 77.6},
		RadiusKm: ptr(5),
	})
	if _, err := r.Retrieve(context.Background(), q); err == nil {
		t.Fatal("expected error")
	}
}
