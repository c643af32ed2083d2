package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/kailas-cloud/unisearch/internal/domain/entity"
	"github.com/kailas-cloud/unisearch/internal/domain/text"
)

type corpusFieldDTO struct {
	Name   string  `json:"name"`
	Text   string  `json:"text"`
	Weight float64 `json:"weight"`
}

// snapshotDTO is the wire shape of a catalog snapshot. Kind-specific fields
// are simply absent for other kinds.
type snapshotDTO struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Corpus      []corpusFieldDTO `json:"corpus"`
	Rating      float64          `json:"rating"`
	Active      bool             `json:"active"`
	OpenMinute  *int             `json:"open_minute,omitempty"`
	CloseMinute *int             `json:"close_minute,omitempty"`
	IsVeg       bool             `json:"is_veg,omitempty"`
	Price       *float64         `json:"price,omitempty"`
	VendorID    string           `json:"vendor_id,omitempty"`
	Lat         *float64         `json:"lat,omitempty"`
	Lon         *float64         `json:"lon,omitempty"`
}

// parseSnapshot converts a raw JSON snapshot into a domain entity,
// normalizing corpus text so matchers compare normalized-vs-normalized.
func parseSnapshot(kind entity.Kind, raw []byte, norm *text.Normalizer) (entity.Entity, error) {
	var dto snapshotDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return entity.Entity{}, fmt.Errorf("unmarshal %s snapshot: %w", kind, err)
	}
	if dto.ID == "" {
		return entity.Entity{}, fmt.Errorf("%s snapshot missing id", kind)
	}

	corpus := make([]entity.CorpusField, 0, len(dto.Corpus))
	for _, f := range dto.Corpus {
		corpus = append(corpus, entity.NewCorpusField(f.Name, norm.Normalize(f.Text), f.Weight))
	}

	var coord *entity.Coordinate
	if dto.Lat != nil && dto.Lon != nil {
		coord = &entity.Coordinate{Lat: *dto.Lat, Lon: *dto.Lon}
	}

	switch kind {
	case entity.Vendor:
		var window *entity.OpenWindow
		if dto.OpenMinute != nil && dto.CloseMinute != nil {
			window = &entity.OpenWindow{Open: *dto.OpenMinute, Close: *dto.CloseMinute}
		}
		return entity.NewVendor(
			dto.ID, dto.Name, dto.Description, corpus,
			dto.Rating, dto.Active, window, coord,
		), nil
	case entity.Item:
		return entity.NewItem(
			dto.ID, dto.Name, dto.Description, corpus,
			dto.Rating, dto.Active, dto.IsVeg, dto.Price,
			dto.VendorID, coord,
		), nil
	case entity.Category:
		return entity.NewCategory(dto.ID, dto.Name, dto.Description, corpus, dto.Rating, dto.Active), nil
	default:
		return entity.Entity{}, fmt.Errorf("unknown snapshot kind %q", kind)
	}
}
