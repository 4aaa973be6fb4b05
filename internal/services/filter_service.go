// internal/services/filter_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/decibell/store-backend/internal/models"
	"github.com/decibell/store-backend/internal/repository"
	"github.com/decibell/store-backend/internal/utils"
)

var ErrFilterExists = errors.New("filter already exists")

type FilterService struct {
	filters *repository.FilterRepository
}

type CreateFilterRequest struct {
	Name string `json:"name" validate:"required,max=64"`
	Type string `json:"type" validate:"required,max=32"`
}

func NewFilterService(filters *repository.FilterRepository) *FilterService {
	return &FilterService{filters: filters}
}

func (s *FilterService) ListFilters() []*models.Filter {
	return s.filters.ListOrdered()
}

// CreateFilter rejects duplicate names. The check is not atomic over the
// flat-file table; calling code accepts the single-writer assumption.
func (s *FilterService) CreateFilter(req *CreateFilterRequest) (*models.Filter, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.filters.GetByName(req.Name); err == nil {
		return nil, ErrFilterExists
	}

	filter := &models.Filter{
		Name: req.Name,
		Type: req.Type,
	}
	if err := s.filters.Save(filter); err != nil {
		return nil, fmt.Errorf("failed to save filter: %w", err)
	}
	return filter, nil
}

func (s *FilterService) DeleteFilter(id int) error {
	removed, err := s.filters.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete filter: %w", err)
	}
	if !removed {
		return errors.New("filter not found")
	}
	return nil
}
