package retrieve

import (
	"context"
	"testing"
	"time"

	"github.com/kailas-cloud/unisearch/internal/domain/entity"
	"github.com/kailas-cloud/unisearch/internal/domain/match"
	"github.com/kailas-cloud/unisearch/internal/domain/search/query"
	"github.com/kailas-cloud/unisearch/internal/domain/text"
	"github.com/kailas-cloud/unisearch/internal/usecase/score"
)

// --- Mocks ---

type mockCatalog struct {
	entities   map[entity.Kind][]entity.Entity
	err        error
	fetchCalls []entity.Kind
	lastHints  Hints
}

func (m *mockCatalog) FetchCandidates(_ context.Context, kind entity.Kind, hints Hints) ([]entity.Entity, error) {
	m.fetchCalls = append(m.fetchCalls, kind)
	m.lastHints = hints
	if m.err != nil {
		return nil, m.err
	}
	return m.entities[kind], nil
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// noon is inside every test vendor's open window.
var noon = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// --- Fixtures ---

func nameCorpus(name string) []entity.CorpusField {
	n := text.DefaultNormalizer()
	return []entity.CorpusField{
		entity.NewCorpusField("name", n.Normalize(name), 3.0),
	}
}

func openVendor(id, name string, rating, lat, lon float64) entity.Entity {
	return entity.NewVendor(
		id, name, "", nameCorpus(name), rating, true,
		&entity.OpenWindow{Open: 9 * 60, Close: 22 * 60},
		&entity.Coordinate{Lat: lat, Lon: lon},
	)
}

func closedVendor(id, name string, lat, lon float64) entity.Entity {
	return entity.NewVendor(
		id, name, "", nameCorpus(name), 4.0, false, nil,
		&entity.Coordinate{Lat: lat, Lon: lon},
	)
}

func item(id, name, vendorID string, veg bool, price float64) entity.Entity {
	return entity.NewItem(
		id, name, "", nameCorpus(name), 4.0, true, veg, &price,
		vendorID, &entity.Coordinate{Lat: 12.9, Lon: 77.6},
	)
}

func mustQuery(t *testing.T, p query.Params) query.Query {
	t.Helper()
	q, err := query.New(p, text.DefaultNormalizer())
	if err != nil {
		t.Fatalf("query.New: %v", err)
	}
	return q
}

func newVendorRetriever(cat Catalog) *Vendor {
	return NewVendor(cat, fixedClock{t: noon}, score.DefaultTable(), match.DefaultThresholds())
}

func ptr(f float64) *float64 { return &f }
