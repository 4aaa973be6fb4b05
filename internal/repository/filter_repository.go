// internal/repository/filter_repository.go
package repository

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/decibell/store-backend/internal/models"
	"github.com/decibell/store-backend/internal/storage"
)

// filterTypeOrder is the fixed display order for filter groups; unknown types
// sort after the known ones.
var filterTypeOrder = []string{"brand", "type", "color", "connectivity"}

type FilterRepository struct {
	table *storage.Table
}

func NewFilterRepository(store *storage.Store) *FilterRepository {
	return &FilterRepository{table: store.Filters}
}

func (r *FilterRepository) GetAll() []*models.Filter {
	rows := r.table.ReadAll()
	filters := make([]*models.Filter, 0, len(rows))
	for _, row := range rows {
		filter, err := models.DecodeFilter(row)
		if err != nil {
			logrus.WithError(err).Warn("Skipping undecodable filter row")
			continue
		}
		filters = append(filters, filter)
	}
	return filters
}

func (r *FilterRepository) GetByID(id int) (*models.Filter, error) {
	for _, filter := range r.GetAll() {
		if filter.ID == id {
			return filter, nil
		}
	}
	return nil, ErrNotFound
}

func (r *FilterRepository) GetByName(name string) (*models.Filter, error) {
	for _, filter := range r.GetAll() {
		if filter.Name == name {
			return filter, nil
		}
	}
	return nil, ErrNotFound
}

// ListOrdered returns all filters sorted by the fixed type order, keeping the
// stored order within each type.
func (r *FilterRepository) ListOrdered() []*models.Filter {
	orderMap := make(map[string]int, len(filterTypeOrder))
	for i, t := range filterTypeOrder {
		orderMap[t] = i
	}

	filters := r.GetAll()
	sort.SliceStable(filters, func(i, j int) bool {
		oi, ok := orderMap[filters[i].Type]
		if !ok {
			oi = len(filterTypeOrder)
		}
		oj, ok := orderMap[filters[j].Type]
		if !ok {
			oj = len(filterTypeOrder)
		}
		return oi < oj
	})
	return filters
}

func (r *FilterRepository) Save(filter *models.Filter) error {
	rows := r.table.ReadAll()

	if filter.ID != 0 {
		for i, row := range rows {
			if rowHasID(row, filter.ID) {
				rows[i] = filter.EncodeRow()
				return r.table.WriteAll(rows)
			}
		}
	}

	filter.ID = r.table.NextID()
	rows = append(rows, filter.EncodeRow())
	return r.table.WriteAll(rows)
}

func (r *FilterRepository) Delete(id int) (bool, error) {
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
