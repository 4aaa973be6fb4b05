// internal/repository/product_repository.go
package repository

import (
	"github.com/sirupsen/logrus"

	"github.com/decibell/store-backend/internal/models"
	"github.com/decibell/store-backend/internal/storage"
)

type ProductRepository struct {
	table *storage.Table
}

func NewProductRepository(store *storage.Store) *ProductRepository {
	return &ProductRepository{table: store.Products}
}

// GetAll returns every decodable product in file order (insertion order).
func (r *ProductRepository) GetAll() []*models.Product {
	rows := r.table.ReadAll()
	products := make([]*models.Product, 0, len(rows))
	for _, row := range rows {
		product, err := models.DecodeProduct(row)
		if err != nil {
			logrus.WithError(err).Warn("Skipping undecodable product row")
			continue
		}
		products = append(products, product)
	}
	return products
}

func (r *ProductRepository) GetByID(id int) (*models.Product, error) {
	for _, product := range r.GetAll() {
		if product.ID == id {
			return product, nil
		}
	}
	return nil, ErrNotFound
}

// GetFeatured returns the products whose status marks them for the homepage.
func (r *ProductRepository) GetFeatured() []*models.Product {
	var featured []*models.Product
	for _, product := range r.GetAll() {
		if product.IsFeatured() {
			featured = append(featured, product)
		}
	}
	return featured
}

// Brands returns the distinct product brands in first-seen order.
func (r *ProductRepository) Brands() []string {
	seen := make(map[string]bool)
	var brands []string
	for _, product := range r.GetAll() {
		if product.Brand == "" || seen[product.Brand] {
			continue
		}
		seen[product.Brand] = true
		brands = append(brands, product.Brand)
	}
	return brands
}

// Save upserts by id. On update the matching row is replaced in place without
// disturbing the row count or the order of other rows; the image list is
// rewritten wholesale, not merged.
func (r *ProductRepository) Save(product *models.Product) error {
	rows := r.table.ReadAll()

	if product.ID != 0 {
		for i, row := range rows {
			if rowHasID(row, product.ID) {
				rows[i] = product.EncodeRow()
				return r.table.WriteAll(rows)
			}
		}
	}

	product.ID = r.table.NextID()
	rows = append(rows, product.EncodeRow())
	return r.table.WriteAll(rows)
}

func (r *ProductRepository) Delete(id int) (bool, error) {
	rows := r.table.ReadAll()
	survivors := rows[:0]
	removed := false
	for _, row := range rows {
		if rowHasID(row, id) {
			removed = true
			continue
		}
		survivors = append(survivors, row)
	}
	if !removed {
		return false, nil
	}
	return true, r.table.WriteAll(survivors)
}

func (r *ProductRepository) NextID() int {
	return r.table.NextID()
}
