package repositories

import (
	"errors"

	"glowmart/internal/apperr"
	"glowmart/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// GetAll retrieves all orders, newest first.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, apperr.Internal(err, "failed to get all orders")
	}
	return orders, nil
}

// GetByID retrieves a single order with its items.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order with ID %s not found", id)
		}
		return nil, apperr.Internal(err, "failed to get order by ID %s", id)
	}
	return &order, nil
}

// GetByUser retrieves a user's orders, newest first.
func (r *GORMOrderRepository) GetByUser(userID string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, apperr.Internal(err, "failed to get orders for user %s", userID)
	}
	return orders, nil
}

// GetRecent retrieves the most recent orders for the dashboard.
func (r *GORMOrderRepository) GetRecent(limit int) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").Order("created_at DESC").Limit(limit).Find(&orders).Error; err != nil {
		return nil, apperr.Internal(err, "failed to get recent orders")
	}
	return orders, nil
}

// Create persists a new order with its items.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.New().String()
		}
		order.Items[i].OrderID = order.ID
	}
	if err := r.db.Create(order).Error; err != nil {
		return apperr.Internal(err, "failed to create order")
	}
	return nil
}

// UpdateStatus sets the fulfillment status of an order.
func (r *GORMOrderRepository) UpdateStatus(id string, status models.OrderStatus) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return apperr.Internal(res.Error, "failed to update order status")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("order with ID %s not found for status update", id)
	}
	return nil
}

// UpdatePaymentStatus sets the payment status of an order.
func (r *GORMOrderRepository) UpdatePaymentStatus(id string, status models.PaymentStatus) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Update("payment_status", status)
	if res.Error != nil {
		return apperr.Internal(res.Error, "failed to update order payment status")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("order with ID %s not found for payment status update", id)
	}
	return nil
}

// Stats aggregates order counts and revenue for the dashboard. Revenue
// excludes cancelled orders.
func (r *GORMOrderRepository) Stats() (*models.OrderStats, error) {
	var stats models.OrderStats
	if err := r.db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, apperr.Internal(err, "failed to count orders")
	}
	if err := r.db.Model(&models.Order{}).Where("status = ?", models.OrderStatusPending).Count(&stats.PendingOrders).Error; err != nil {
		return nil, apperr.Internal(err, "failed to count pending orders")
	}
	err := r.db.Model(&models.Order{}).
		Where("status <> ?", models.OrderStatusCancelled).
		Select("COALESCE(SUM(total), 0)").
		Scan(&stats.Revenue).Error
	if err != nil {
		return nil, apperr.Internal(err, "failed to sum order revenue")
	}
	return &stats, nil
}
