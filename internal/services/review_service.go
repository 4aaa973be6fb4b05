// internal/services/review_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/decibell/store-backend/internal/models"
	"github.com/decibell/store-backend/internal/repository"
	"github.com/decibell/store-backend/internal/utils"
)

type ReviewService struct {
	reviews  *repository.ReviewRepository
	products *repository.ProductRepository
}

type CreateReviewRequest struct {
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comment  string `json:"comment,omitempty"`
	MediaURL string `json:"media_url,omitempty"`
}

func NewReviewService(reviews *repository.ReviewRepository, products *repository.ProductRepository) *ReviewService {
	return &ReviewService{
		reviews:  reviews,
		products: products,
	}
}

func (s *ReviewService) CreateReview(userID, productID int, req *CreateReviewRequest) (*models.Review, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.products.GetByID(productID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("store error: %w", err)
	}

	review := &models.Review{
		Rating:     req.Rating,
		Comment:    req.Comment,
		MediaURL:   req.MediaURL,
		DatePosted: time.Now().UTC().Truncate(time.Second),
		UserID:     userID,
		ProductID:  productID,
	}

	if err := s.reviews.Save(review); err != nil {
		return nil, fmt.Errorf("failed to save review: %w", err)
	}
	return review, nil
}

func (s *ReviewService) GetProductReviews(productID int) []*models.Review {
	return s.reviews.GetByProductID(productID)
}

// DeleteReview removes a review. Non-admins may only remove their own.
func (s *ReviewService) DeleteReview(id, requesterID int, requesterIsAdmin bool) error {
	review, err := s.reviews.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errors.New("review not found")
		}
		return fmt.Errorf("store error: %w", err)
	}

	if !requesterIsAdmin && review.UserID != requesterID {
		return errors.New("unauthorized to delete this review")
	}

	removed, err := s.reviews.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	if !removed {
		return errors.New("review not found")
	}
	return nil
}

// AverageRating returns the mean rating of a product's reviews, 0 when there
// are none.
func (s *ReviewService) AverageRating(productID int) float64 {
	reviews := s.reviews.GetByProductID(productID)
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}
	return float64(sum) / float64(len(reviews))
}
