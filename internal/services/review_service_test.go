// internal/services/review_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decibell/store-backend/internal/models"
	"github.com/decibell/store-backend/internal/repository"
	"github.com/decibell/store-backend/internal/storage"
)

func newReviewService(t *testing.T) (*ReviewService, *repository.ProductRepository) {
	t.Helper()
	store := storage.Open(t.TempDir())
	products := repository.NewProductRepository(store)
	return NewReviewService(repository.NewReviewRepository(store), products), products
}

func TestCreateReview(t *testing.T) {
	service, products := newReviewService(t)
	require.NoError(t, products.Save(&models.Product{Name: "Fone HD-25", Brand: "Sennheiser"}))

	review, err := service.CreateReview(2, 1, &CreateReviewRequest{Rating: 5, Comment: "Som excelente"})
	require.NoError(t, err)
	assert.Equal(t, 1, review.ID)
	assert.Equal(t, 2, review.UserID)
	assert.Equal(t, 1, review.ProductID)

	_, err = service.CreateReview(2, 99, &CreateReviewRequest{Rating: 4})
	assert.EqualError(t, err, "product not found")

	_, err = service.CreateReview(2, 1, &CreateReviewRequest{Rating: 6})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestDeleteReviewOwnership(t *testing.T) {
	service, products := newReviewService(t)
	require.NoError(t, products.Save(&models.Product{Name: "Fone HD-25", Brand: "Sennheiser"}))

	review, err := service.CreateReview(2, 1, &CreateReviewRequest{Rating: 5})
	require.NoError(t, err)

	err = service.DeleteReview(review.ID, 3, false)
	assert.EqualError(t, err, "unauthorized to delete this review")

	// Admins can delete anyone's review.
	require.NoError(t, service.DeleteReview(review.ID, 3, true))
	assert.Empty(t, service.GetProductReviews(1))
}

func TestAverageRating(t *testing.T) {
	service, products := newReviewService(t)
	require.NoError(t, products.Save(&models.Product{Name: "Fone HD-25", Brand: "Sennheiser"}))

	assert.Equal(t, 0.0, service.AverageRating(1))

	_, err := service.CreateReview(2, 1, &CreateReviewRequest{Rating: 5})
	require.NoError(t, err)
	_, err = service.CreateReview(3, 1, &CreateReviewRequest{Rating: 2})
	require.NoError(t, err)

	assert.InDelta(t, 3.5, service.AverageRating(1), 0.001)
}
