package repositories

import (
	"glowmart/internal/models"
)

// OrderRepository defines the interface for order data access. Orders are
// never deleted, only created and transitioned.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	GetByUser(userID string) ([]models.Order, error)
	GetRecent(limit int) ([]models.Order, error)
	Create(order *models.Order) error
	UpdateStatus(id string, status models.OrderStatus) error
	UpdatePaymentStatus(id string, status models.PaymentStatus) error
	Stats() (*models.OrderStats, error)
}
