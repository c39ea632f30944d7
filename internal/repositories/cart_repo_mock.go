package repositories

import (
	"sync"

	"glowmart/internal/apperr"
	"glowmart/internal/models"

	"github.com/google/uuid"
)

// MockCartRepository is an in-memory implementation of CartRepository.
type MockCartRepository struct {
	items map[string]models.CartItem
	order []string
	mu    sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		items: make(map[string]models.CartItem),
	}
}

func ownerMatches(item models.CartItem, owner models.CartOwner) bool {
	if owner.UserID != "" {
		return item.UserID == owner.UserID
	}
	return item.SessionID == owner.SessionID
}

// GetByOwner returns the owner's cart lines in insertion order.
func (r *MockCartRepository) GetByOwner(owner models.CartOwner) ([]models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []models.CartItem
	for _, id := range r.order {
		if item, ok := r.items[id]; ok && ownerMatches(item, owner) {
			items = append(items, item)
		}
	}
	return items, nil
}

// GetByID returns a cart line by its ID.
func (r *MockCartRepository) GetByID(id string) (*models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, apperr.NotFound("cart item with ID %s not found", id)
	}
	return &item, nil
}

// FindByOwnerAndProduct finds an existing line for a product.
func (r *MockCartRepository) FindByOwnerAndProduct(owner models.CartOwner, productID string) (*models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if ownerMatches(item, owner) && item.ProductID == productID {
			found := item
			return &found, nil
		}
	}
	return nil, apperr.NotFound("no cart item for product %s", productID)
}

// Create adds a new cart line.
func (r *MockCartRepository) Create(item *models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	r.items[item.ID] = *item
	r.order = append(r.order, item.ID)
	return nil
}

// UpdateQuantity sets the quantity of a line.
func (r *MockCartRepository) UpdateQuantity(id string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return apperr.NotFound("cart item with ID %s not found for update", id)
	}
	item.Quantity = quantity
	r.items[id] = item
	return nil
}

// Delete removes a single cart line.
func (r *MockCartRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return apperr.NotFound("cart item with ID %s not found for deletion", id)
	}
	delete(r.items, id)
	for i, iid := range r.order {
		if iid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// DeleteByOwner empties a cart.
func (r *MockCartRepository) DeleteByOwner(owner models.CartOwner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.order[:0]
	for _, id := range r.order {
		if item, ok := r.items[id]; ok && ownerMatches(item, owner) {
			delete(r.items, id)
			continue
		}
		kept = append(kept, id)
	}
	r.order = kept
	return nil
}
