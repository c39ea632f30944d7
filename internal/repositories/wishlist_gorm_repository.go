package repositories

import (
	"errors"

	"glowmart/internal/apperr"
	"glowmart/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMWishlistRepository is a GORM implementation of WishlistRepository.
type GORMWishlistRepository struct {
	db *gorm.DB
}

// NewGORMWishlistRepository creates a new instance of GORMWishlistRepository.
func NewGORMWishlistRepository(db *gorm.DB) *GORMWishlistRepository {
	return &GORMWishlistRepository{
		db: db,
	}
}

// GetByUser retrieves a user's wishlist with products preloaded.
func (r *GORMWishlistRepository) GetByUser(userID string) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := r.db.Preload("Product").Preload("Product.Images").Where("user_id = ?", userID).Order("created_at").Find(&items).Error; err != nil {
		return nil, apperr.Internal(err, "failed to get wishlist for user %s", userID)
	}
	return items, nil
}

// FindByUserAndProduct finds an existing wishlist entry.
func (r *GORMWishlistRepository) FindByUserAndProduct(userID, productID string) (*models.WishlistItem, error) {
	var item models.WishlistItem
	if err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("product %s is not in the wishlist", productID)
		}
		return nil, apperr.Internal(err, "failed to find wishlist item")
	}
	return &item, nil
}

// Create adds a product to a wishlist.
func (r *GORMWishlistRepository) Create(item *models.WishlistItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := r.db.Create(item).Error; err != nil {
		return apperr.Internal(err, "failed to create wishlist item")
	}
	return nil
}

// Delete removes a wishlist entry by its ID.
func (r *GORMWishlistRepository) Delete(id string) error {
	res := r.db.Delete(&models.WishlistItem{}, "id = ?", id)
	if res.Error != nil {
		return apperr.Internal(res.Error, "failed to delete wishlist item")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("wishlist item with ID %s not found for deletion", id)
	}
	return nil
}
