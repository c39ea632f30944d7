package services

import (
	"glowmart/internal/apperr"
	"glowmart/internal/models"
	"glowmart/internal/repositories"
)

// WishlistService handles saved products for authenticated users.
type WishlistService struct {
	repo        repositories.WishlistRepository
	productRepo repositories.ProductRepository
}

// NewWishlistService creates a new WishlistService.
func NewWishlistService(repo repositories.WishlistRepository, productRepo repositories.ProductRepository) *WishlistService {
	return &WishlistService{
		repo:        repo,
		productRepo: productRepo,
	}
}

// Get returns the user's wishlist.
func (s *WishlistService) Get(userID string) ([]models.WishlistItem, error) {
	return s.repo.GetByUser(userID)
}

// Add saves a product to the user's wishlist. Saving the same product twice
// is a conflict.
func (s *WishlistService) Add(userID, productID string) (*models.WishlistItem, error) {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, err
	}
	if existing, err := s.repo.FindByUserAndProduct(userID, productID); err == nil && existing != nil {
		return nil, apperr.Conflict("product is already in the wishlist")
	}

	item := &models.WishlistItem{
		UserID:    userID,
		ProductID: productID,
	}
	if err := s.repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Remove deletes a wishlist entry by its ID.
func (s *WishlistService) Remove(id string) error {
	return s.repo.Delete(id)
}
