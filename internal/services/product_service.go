// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/decibell/store-backend/internal/models"
	"github.com/decibell/store-backend/internal/repository"
	"github.com/decibell/store-backend/internal/utils"
)

type ProductService struct {
	products *repository.ProductRepository
	reviews  *repository.ReviewRepository
}

type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=128"`
	Brand       string   `json:"brand" validate:"required,max=64"`
	Price       float64  `json:"price" validate:"min=0"`
	Status      string   `json:"status" validate:"required,max=32"`
	Images      []string `json:"images,omitempty"`
	Description string   `json:"description,omitempty"`
	Specs       string   `json:"specs,omitempty"`
	Filters     []int    `json:"filters,omitempty"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=2,max=128"`
	Brand       *string  `json:"brand,omitempty" validate:"omitempty,max=64"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
	Status      *string  `json:"status,omitempty" validate:"omitempty,max=32"`
	Images      []string `json:"images,omitempty"`
	Description *string  `json:"description,omitempty"`
	Specs       *string  `json:"specs,omitempty"`
	Filters     []int    `json:"filters,omitempty"`
}

type ProductSearchParams struct {
	utils.PaginationParams
	Brand    string
	FilterID int
	PriceMin *float64
	PriceMax *float64
}

func NewProductService(products *repository.ProductRepository, reviews *repository.ReviewRepository) *ProductService {
	return &ProductService{
		products: products,
		reviews:  reviews,
	}
}

func (s *ProductService) CreateProduct(sellerID int, req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product := &models.Product{
		Name:        req.Name,
		Brand:       req.Brand,
		Price:       req.Price,
		Status:      req.Status,
		Images:      req.Images,
		Description: req.Description,
		Specs:       req.Specs,
		SellerID:    sellerID,
		Filters:     req.Filters,
	}

	if err := s.products.Save(product); err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}
	return product, nil
}

func (s *ProductService) GetProduct(id int) (*models.Product, error) {
	product, err := s.products.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("store error: %w", err)
	}
	return product, nil
}

// UpdateProduct applies partial updates to an existing product. A non-nil
// Images slice replaces the stored list wholesale, it is never merged.
func (s *ProductService) UpdateProduct(id int, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product, err := s.products.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("store error: %w", err)
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Brand != nil {
		product.Brand = *req.Brand
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Status != nil {
		product.Status = *req.Status
	}
	if req.Images != nil {
		product.Images = req.Images
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Specs != nil {
		product.Specs = *req.Specs
	}
	if req.Filters != nil {
		product.Filters = req.Filters
	}

	if err := s.products.Save(product); err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}
	return product, nil
}

func (s *ProductService) DeleteProduct(id int) error {
	removed, err := s.products.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if !removed {
		return errors.New("product not found")
	}
	return nil
}

// SearchProducts filters the catalog in memory (the store has no indexes) and
// pages the result. File order is preserved.
func (s *ProductService) SearchProducts(params ProductSearchParams) ([]*models.Product, int) {
	var matched []*models.Product
	for _, product := range s.products.GetAll() {
		if params.Brand != "" && product.Brand != params.Brand {
			continue
		}
		if params.FilterID != 0 && !containsInt(product.Filters, params.FilterID) {
			continue
		}
		if params.PriceMin != nil && product.Price < *params.PriceMin {
			continue
		}
		if params.PriceMax != nil && product.Price > *params.PriceMax {
			continue
		}
		if params.Search != "" {
			term := strings.ToLower(params.Search)
			if !strings.Contains(strings.ToLower(product.Name), term) &&
				!strings.Contains(strings.ToLower(product.Description), term) {
				continue
			}
		}
		matched = append(matched, product)
	}

	total := len(matched)
	start, end := utils.PageBounds(total, params.PaginationParams)
	return matched[start:end], total
}

func (s *ProductService) GetFeaturedProducts() []*models.Product {
	return s.products.GetFeatured()
}

func (s *ProductService) GetBrands() []string {
	return s.products.Brands()
}

func containsInt(list []int, n int) bool {
	for _, v := range list {
		if v == n {
			return true
		}
	}
	return false
}
