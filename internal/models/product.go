// internal/models/product.go
package models

import (
	"github.com/decibell/store-backend/internal/storage"
)

type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Price       float64  `json:"price"`
	Status      string   `json:"status"`
	Images      []string `json:"images"`
	Description string   `json:"description"`
	Specs       string   `json:"specs"`
	SellerID    int      `json:"seller_id"`
	Filters     []int    `json:"filters"`
}

func (p *Product) IsFeatured() bool {
	return p.Status == ProductStatusFeatured
}

// Summary is the reduced shape used on public listings, without the
// description/specs payload.
func (p *Product) Summary() map[string]interface{} {
	return map[string]interface{}{
		"id":     p.ID,
		"name":   p.Name,
		"brand":  p.Brand,
		"price":  p.Price,
		"status": p.Status,
		"images": p.Images,
	}
}

func (p *Product) EncodeRow() storage.Row {
	return storage.Row{
		"id":          formatInt(p.ID),
		"name":        p.Name,
		"brand":       p.Brand,
		"price":       formatFloat(p.Price),
		"status":      p.Status,
		"images":      encodeStringList(p.Images),
		"description": p.Description,
		"specs":       p.Specs,
		"seller_id":   formatInt(p.SellerID),
		"filters":     encodeIntList(p.Filters),
	}
}

// DecodeProduct rebuilds a product from a stored row. Numeric fields default
// (price 0.0, seller 0) and list fields decode to empty lists on any parse
// failure; only a bad id rejects the row.
func DecodeProduct(row storage.Row) (*Product, error) {
	id, err := decodeID("products", row)
	if err != nil {
		return nil, err
	}

	return &Product{
		ID:          id,
		Name:        fallbackString(row["name"], UnknownProductName),
		Brand:       row["brand"],
		Price:       fallbackFloat(row["price"], 0.0),
		Status:      row["status"],
		Images:      decodeStringList(row["images"]),
		Description: row["description"],
		Specs:       row["specs"],
		SellerID:    fallbackInt(row["seller_id"], 0),
		Filters:     decodeIntList(row["filters"]),
	}, nil
}
