package services

import (
	"fmt"
	"strings"
	"time"

	"glowmart/internal/apperr"
	"glowmart/internal/models"
	"glowmart/internal/repositories"

	"github.com/google/uuid"
)

// SessionIDPrefix marks server-issued anonymous cart tokens.
const SessionIDPrefix = "session_"

// CartService handles cart identity resolution and cart line mutations.
// Every mutation returns the full refreshed cart so callers always render
// server state, never an optimistic local patch.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// NewSessionID generates an anonymous cart token: a timestamp plus a short
// random suffix.
func NewSessionID() string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:9]
	return fmt.Sprintf("%s%d_%s", SessionIDPrefix, time.Now().UnixMilli(), suffix)
}

// EnsureSession returns the existing session token unchanged, or issues a
// new one if none was provided. Repeated calls with the same token are
// idempotent.
func (s *CartService) EnsureSession(existing string) string {
	if existing != "" {
		return existing
	}
	return NewSessionID()
}

// ResolveOwner derives the cart identity for a request. An authenticated
// user ID always wins over a session token; a request carrying neither is
// rejected.
func (s *CartService) ResolveOwner(userID, sessionID string) (models.CartOwner, error) {
	if userID != "" {
		return models.CartOwner{UserID: userID}, nil
	}
	if sessionID != "" {
		return models.CartOwner{SessionID: sessionID}, nil
	}
	return models.CartOwner{}, apperr.Validation("a userId or sessionId is required to identify the cart")
}

// Get returns the owner's cart lines in server order.
func (s *CartService) Get(owner models.CartOwner) ([]models.CartItem, error) {
	if !owner.Valid() {
		return nil, apperr.Validation("exactly one of userId or sessionId must identify the cart")
	}
	return s.cartRepo.GetByOwner(owner)
}

// Add puts a product into the cart. If the product is already present the
// quantities are summed server-side; the caller does not pre-check for
// duplicates.
func (s *CartService) Add(owner models.CartOwner, productID string, quantity int) ([]models.CartItem, error) {
	if !owner.Valid() {
		return nil, apperr.Validation("exactly one of userId or sessionId must identify the cart")
	}
	if quantity < 1 {
		return nil, apperr.Validation("quantity must be at least 1")
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product.Stock < quantity {
		return nil, apperr.Conflict("insufficient stock for product %s (requested: %d, available: %d)", product.Name, quantity, product.Stock)
	}

	existing, err := s.cartRepo.FindByOwnerAndProduct(owner, productID)
	switch {
	case err == nil:
		// The merge must not push the line past stock either.
		merged := existing.Quantity + quantity
		if product.Stock < merged {
			return nil, apperr.Conflict("insufficient stock for product %s (in cart: %d, requested: %d, available: %d)", product.Name, existing.Quantity, quantity, product.Stock)
		}
		if updateErr := s.cartRepo.UpdateQuantity(existing.ID, merged); updateErr != nil {
			return nil, updateErr
		}
	case apperr.IsKind(err, apperr.KindNotFound):
		item := &models.CartItem{
			UserID:    owner.UserID,
			SessionID: owner.SessionID,
			ProductID: productID,
			Quantity:  quantity,
		}
		if createErr := s.cartRepo.Create(item); createErr != nil {
			return nil, createErr
		}
	default:
		return nil, err
	}

	return s.cartRepo.GetByOwner(owner)
}

// ownedLine loads a cart line and verifies it belongs to the owner. A line
// in someone else's cart is reported as not found rather than forbidden, so
// callers cannot probe for foreign line IDs.
func (s *CartService) ownedLine(owner models.CartOwner, itemID string) (*models.CartItem, error) {
	if !owner.Valid() {
		return nil, apperr.Validation("exactly one of userId or sessionId must identify the cart")
	}
	item, err := s.cartRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item.Owner() != owner {
		return nil, apperr.NotFound("cart item with ID %s not found", itemID)
	}
	return item, nil
}

// UpdateQuantity sets a line's quantity. The line must belong to the owner.
// A resulting quantity below 1 removes the line instead; a zero or negative
// quantity is never stored.
func (s *CartService) UpdateQuantity(owner models.CartOwner, itemID string, quantity int) error {
	item, err := s.ownedLine(owner, itemID)
	if err != nil {
		return err
	}
	if quantity < 1 {
		return s.cartRepo.Delete(item.ID)
	}
	return s.cartRepo.UpdateQuantity(item.ID, quantity)
}

// Remove deletes a single cart line belonging to the owner.
func (s *CartService) Remove(owner models.CartOwner, itemID string) error {
	item, err := s.ownedLine(owner, itemID)
	if err != nil {
		return err
	}
	return s.cartRepo.Delete(item.ID)
}

// Clear empties the owner's cart, invoked once after successful order
// placement.
func (s *CartService) Clear(owner models.CartOwner) error {
	if !owner.Valid() {
		return apperr.Validation("exactly one of userId or sessionId must identify the cart")
	}
	return s.cartRepo.DeleteByOwner(owner)
}

// MergeOnLogin folds an anonymous session cart into the user's cart:
// quantities for the same product are summed, then the session cart is
// deleted. Called when a user logs in while holding a session token.
func (s *CartService) MergeOnLogin(sessionID, userID string) error {
	if sessionID == "" || userID == "" {
		return apperr.Validation("both sessionId and userId are required to merge carts")
	}

	sessionOwner := models.CartOwner{SessionID: sessionID}
	userOwner := models.CartOwner{UserID: userID}

	items, err := s.cartRepo.GetByOwner(sessionOwner)
	if err != nil {
		return err
	}

	for _, item := range items {
		existing, findErr := s.cartRepo.FindByOwnerAndProduct(userOwner, item.ProductID)
		switch {
		case findErr == nil:
			if err := s.cartRepo.UpdateQuantity(existing.ID, existing.Quantity+item.Quantity); err != nil {
				return err
			}
		case apperr.IsKind(findErr, apperr.KindNotFound):
			line := &models.CartItem{
				UserID:    userID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			}
			if err := s.cartRepo.Create(line); err != nil {
				return err
			}
		default:
			return findErr
		}
	}

	return s.cartRepo.DeleteByOwner(sessionOwner)
}

// Subtotal sums price times quantity over cart lines.
func Subtotal(items []models.CartItem) float64 {
	var subtotal float64
	for _, item := range items {
		if item.Product != nil {
			subtotal += item.Product.Price * float64(item.Quantity)
		}
	}
	return subtotal
}
