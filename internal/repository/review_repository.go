// internal/repository/review_repository.go
package repository

import (
	"github.com/sirupsen/logrus"

	"github.com/decibell/store-backend/internal/models"
	"github.com/decibell/store-backend/internal/storage"
)

type ReviewRepository struct {
	table *storage.Table
}

func NewReviewRepository(store *storage.Store) *ReviewRepository {
	return &ReviewRepository{table: store.Reviews}
}

func (r *ReviewRepository) GetAll() []*models.Review {
	rows := r.table.ReadAll()
	reviews := make([]*models.Review, 0, len(rows))
	for _, row := range rows {
		review, err := models.DecodeReview(row)
		if err != nil {
			logrus.WithError(err).Warn("Skipping undecodable review row")
			continue
		}
		reviews = append(reviews, review)
	}
	return reviews
}

func (r *ReviewRepository) GetByID(id int) (*models.Review, error) {
	for _, review := range r.GetAll() {
		if review.ID == id {
			return review, nil
		}
	}
	return nil, ErrNotFound
}

func (r *ReviewRepository) GetByProductID(productID int) []*models.Review {
	var reviews []*models.Review
	for _, review := range r.GetAll() {
		if review.ProductID == productID {
			reviews = append(reviews, review)
		}
	}
	return reviews
}

func (r *ReviewRepository) Save(review *models.Review) error {
	rows := r.table.ReadAll()

	if review.ID != 0 {
		for i, row := range rows {
			if rowHasID(row, review.ID) {
				rows[i] = review.EncodeRow()
				return r.table.WriteAll(rows)
			}
		}
	}

	review.ID = r.table.NextID()
	rows = append(rows, review.EncodeRow())
	return r.table.WriteAll(rows)
}

func (r *ReviewRepository) Delete(id int) (bool, error) {
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
