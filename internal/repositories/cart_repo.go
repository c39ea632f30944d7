package repositories

import (
	"glowmart/internal/models"
)

// CartRepository defines the interface for cart line data access. Ownership
// is by CartOwner: either a user ID or an anonymous session ID, never both.
type CartRepository interface {
	GetByOwner(owner models.CartOwner) ([]models.CartItem, error)
	GetByID(id string) (*models.CartItem, error)
	FindByOwnerAndProduct(owner models.CartOwner, productID string) (*models.CartItem, error)
	Create(item *models.CartItem) error
	UpdateQuantity(id string, quantity int) error
	Delete(id string) error
	DeleteByOwner(owner models.CartOwner) error
}
