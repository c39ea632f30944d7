package repositories

import (
	"errors"

	"glowmart/internal/apperr"
	"glowmart/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

func ownerScope(owner models.CartOwner) (string, string) {
	if owner.UserID != "" {
		return "user_id = ?", owner.UserID
	}
	return "session_id = ?", owner.SessionID
}

// GetByOwner retrieves the cart lines for one owner in insertion order.
func (r *GORMCartRepository) GetByOwner(owner models.CartOwner) ([]models.CartItem, error) {
	query, arg := ownerScope(owner)
	var items []models.CartItem
	if err := r.db.Preload("Product").Preload("Product.Images").Where(query, arg).Order("created_at").Find(&items).Error; err != nil {
		return nil, apperr.Internal(err, "failed to get cart items")
	}
	return items, nil
}

// GetByID retrieves a single cart line by its ID.
func (r *GORMCartRepository) GetByID(id string) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.Preload("Product").First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("cart item with ID %s not found", id)
		}
		return nil, apperr.Internal(err, "failed to get cart item by ID %s", id)
	}
	return &item, nil
}

// FindByOwnerAndProduct finds an existing line for a product in the owner's
// cart, used for merge-on-add.
func (r *GORMCartRepository) FindByOwnerAndProduct(owner models.CartOwner, productID string) (*models.CartItem, error) {
	query, arg := ownerScope(owner)
	var item models.CartItem
	if err := r.db.Where(query, arg).Where("product_id = ?", productID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("no cart item for product %s", productID)
		}
		return nil, apperr.Internal(err, "failed to find cart item for product %s", productID)
	}
	return &item, nil
}

// Create adds a new cart line.
func (r *GORMCartRepository) Create(item *models.CartItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := r.db.Create(item).Error; err != nil {
		return apperr.Internal(err, "failed to create cart item")
	}
	return nil
}

// UpdateQuantity sets the quantity of a line.
func (r *GORMCartRepository) UpdateQuantity(id string, quantity int) error {
	res := r.db.Model(&models.CartItem{}).Where("id = ?", id).Update("quantity", quantity)
	if res.Error != nil {
		return apperr.Internal(res.Error, "failed to update cart item quantity")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("cart item with ID %s not found for update", id)
	}
	return nil
}

// Delete removes a single cart line.
func (r *GORMCartRepository) Delete(id string) error {
	res := r.db.Delete(&models.CartItem{}, "id = ?", id)
	if res.Error != nil {
		return apperr.Internal(res.Error, "failed to delete cart item")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("cart item with ID %s not found for deletion", id)
	}
	return nil
}

// DeleteByOwner empties a cart irrespective of item count.
func (r *GORMCartRepository) DeleteByOwner(owner models.CartOwner) error {
	query, arg := ownerScope(owner)
	if err := r.db.Where(query, arg).Delete(&models.CartItem{}).Error; err != nil {
		return apperr.Internal(err, "failed to clear cart")
	}
	return nil
}
