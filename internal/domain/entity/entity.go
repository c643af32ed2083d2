package entity

import (
	"fmt"
	"time"
)

// Kind identifies a searchable entity variant.
type Kind string

// Searchable entity kinds.
const (
	Vendor   Kind = "vendor"
	Item     Kind = "item"
	Category Kind = "category"
)

// AllKinds lists every searchable kind in canonical order.
func AllKinds() []Kind { return []Kind{Vendor, Item, Category} }

// IsValid checks if the kind is one of the supported values.
func (k Kind) IsValid() bool {
	return k == Vendor || k == Item || k == Category
}

// IsGeoBound reports whether entities of this kind carry a coordinate.
func (k Kind) IsGeoBound() bool {
	return k == Vendor || k == Item
}

// ParseKind converts a string into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("unknown entity kind %q", s)
	}
	return k, nil
}

// Coordinate is a WGS84 point.
type Coordinate struct {
	Lat float64
	Lon float64
}

// CorpusField is one weighted searchable text field of an entity.
type CorpusField struct {
	name   string
	text   string
	weight float64
}

// NewCorpusField creates a weighted corpus field.
func NewCorpusField(name, text string, weight float64) CorpusField {
	return CorpusField{name: name, text: text, weight: weight}
}

// Name returns the field name.
func (f CorpusField) Name() string { return f.name }

// Text returns the field text.
func (f CorpusField) Text() string { return f.text }

// Weight returns the field weight.
func (f CorpusField) Weight() float64 { return f.weight }

// OpenWindow is a daily availability window in minutes since midnight.
// Close may be smaller than Open for windows wrapping past midnight.
type OpenWindow struct {
	Open  int
	Close int
}

// Contains reports whether minute-of-day m falls inside the window.
func (w OpenWindow) Contains(m int) bool {
	if w.Open <= w.Close {
		return m >= w.Open && m < w.Close
	}
	return m >= w.Open || m < w.Close
}

// Entity is a read-only catalog snapshot of a vendor, item, or category.
// Snapshots are fetched per request and never mutated by the engine.
type Entity struct {
	id          string
	kind        Kind
	name        string
	description string
	corpus      []CorpusField
	rating      float64
	active      bool
	openWindow  *OpenWindow
	veg         bool
	price       *float64
	vendorID    string
	coord       *Coordinate
}

// NewVendor reconstructs a vendor snapshot.
func NewVendor(
	id, name, description string, corpus []CorpusField,
	rating float64, active bool, openWindow *OpenWindow, coord *Coordinate,
) Entity {
	return Entity{
		id: id, kind: Vendor, name: name, description: description,
		corpus: corpus, rating: rating, active: active,
		openWindow: openWindow, coord: coord,
	}
}

// NewItem reconstructs an item snapshot. The coordinate is the parent
// vendor's, copied in at snapshot build time.
func NewItem(
	id, name, description string, corpus []CorpusField,
	rating float64, available, veg bool, price *float64,
	vendorID string, coord *Coordinate,
) Entity {
	return Entity{
		id: id, kind: Item, name: name, description: description,
		corpus: corpus, rating: rating, active: available,
		veg: veg, price: price, vendorID: vendorID, coord: coord,
	}
}

// NewCategory reconstructs a category snapshot. Categories carry no coordinate.
func NewCategory(id, name, description string, corpus []CorpusField, rating float64, active bool) Entity {
	return Entity{
		id: id, kind: Category, name: name, description: description,
		corpus: corpus, rating: rating, active: active,
	}
}

// ID returns the entity identifier.
func (e Entity) ID() string { return e.id }

// Kind returns the entity kind.
func (e Entity) Kind() Kind { return e.kind }

// Name returns the display name.
func (e Entity) Name() string { return e.name }

// Description returns the free-text description.
func (e Entity) Description() string { return e.description }

// Corpus returns the ordered weighted searchable fields.
func (e Entity) Corpus() []CorpusField { return e.corpus }

// Rating returns the rating in [0,5].
func (e Entity) Rating() float64 { return e.rating }

// Active reports the kind's availability flag: accepting orders for
// vendors, in stock for items, enabled for categories.
func (e Entity) Active() bool { return e.active }

// IsVeg reports the item dietary flag.
func (e Entity) IsVeg() bool { return e.veg }

// Price returns the item price, nil for other kinds.
func (e Entity) Price() *float64 { return e.price }

// VendorID returns the parent vendor id for items.
func (e Entity) VendorID() string { return e.vendorID }

// Coordinate returns the geo position, nil for categories.
func (e Entity) Coordinate() *Coordinate { return e.coord }

// IsOpenAt evaluates vendor availability at the given instant. A vendor
// with no open window is open whenever it is accepting orders.
func (e Entity) IsOpenAt(t time.Time) bool {
	if !e.active {
		return false
	}
	if e.openWindow == nil {
		return true
	}
	return e.openWindow.Contains(t.Hour()*60 + t.Minute())
}
