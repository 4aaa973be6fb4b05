// internal/models/filter.go
package models

import (
	"github.com/decibell/store-backend/internal/storage"
)

// Filter is a product facet (brand, type, color, connectivity) managed by the
// admin dashboard and referenced from products by id.
type Filter struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

func (f *Filter) EncodeRow() storage.Row {
	return storage.Row{
		"id":   formatInt(f.ID),
		"name": f.Name,
		"type": f.Type,
	}
}

func DecodeFilter(row storage.Row) (*Filter, error) {
	id, err := decodeID("filters", row)
	if err != nil {
		return nil, err
	}

	return &Filter{
		ID:   id,
		Name: fallbackString(row["name"], UnknownFilterName),
		Type: fallbackString(row["type"], DefaultFilterType),
	}, nil
}
