package repositories

import (
	"glowmart/internal/models"
)

// ReviewRepository defines the interface for product review data access.
type ReviewRepository interface {
	GetByProduct(productID string) ([]models.Review, error)
	Create(review *models.Review) error
	Delete(id string) error
}
