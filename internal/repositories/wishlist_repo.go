package repositories

import (
	"glowmart/internal/models"
)

// WishlistRepository defines the interface for wishlist data access.
type WishlistRepository interface {
	GetByUser(userID string) ([]models.WishlistItem, error)
	FindByUserAndProduct(userID, productID string) (*models.WishlistItem, error)
	Create(item *models.WishlistItem) error
	Delete(id string) error
}
