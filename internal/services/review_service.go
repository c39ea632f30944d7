package services

import (
	"strings"

	"glowmart/internal/apperr"
	"glowmart/internal/models"
	"glowmart/internal/repositories"
)

// ReviewService handles product reviews. Anyone can leave one; only the
// back office can remove one.
type ReviewService struct {
	reviewRepo  repositories.ReviewRepository
	productRepo repositories.ProductRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviewRepo repositories.ReviewRepository, productRepo repositories.ProductRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

// Create records a review against an existing product. The rating must be
// between 1 and 5; the comment is optional.
func (s *ReviewService) Create(productID, reviewerName string, rating int, comment string) (*models.Review, error) {
	if strings.TrimSpace(reviewerName) == "" {
		return nil, apperr.Validation("reviewerName is required")
	}
	if rating < 1 || rating > 5 {
		return nil, apperr.Validation("rating must be between 1 and 5, got %d", rating)
	}
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, err
	}

	review := &models.Review{
		ProductID:    productID,
		ReviewerName: strings.TrimSpace(reviewerName),
		Rating:       rating,
		Comment:      comment,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

// ForProduct returns a product's reviews, newest first.
func (s *ReviewService) ForProduct(productID string) ([]models.Review, error) {
	return s.reviewRepo.GetByProduct(productID)
}

// Delete removes a review.
func (s *ReviewService) Delete(id string) error {
	return s.reviewRepo.Delete(id)
}
