package repositories

import (
	"sync"
	"time"

	"glowmart/internal/apperr"
	"glowmart/internal/models"

	"github.com/google/uuid"
)

// CheckoutSessionStore holds in-flight checkout sessions. Sessions are
// ephemeral: they exist between the first wizard step and order confirmation
// and are not persisted across restarts.
type CheckoutSessionStore interface {
	Save(session *models.CheckoutSession) error
	Get(id string) (*models.CheckoutSession, error)
	Delete(id string) error
}

// MemoryCheckoutStore is an in-memory CheckoutSessionStore.
type MemoryCheckoutStore struct {
	sessions map[string]models.CheckoutSession
	mu       sync.RWMutex
}

// NewMemoryCheckoutStore creates a new instance of MemoryCheckoutStore.
func NewMemoryCheckoutStore() *MemoryCheckoutStore {
	return &MemoryCheckoutStore{
		sessions: make(map[string]models.CheckoutSession),
	}
}

// Save inserts or replaces a session, assigning an ID on first save.
func (s *MemoryCheckoutStore) Save(session *models.CheckoutSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session.ID == "" {
		session.ID = uuid.New().String()
		session.CreatedAt = time.Now()
	}
	session.UpdatedAt = time.Now()
	s.sessions[session.ID] = *session
	return nil
}

// Get returns a session by its ID.
func (s *MemoryCheckoutStore) Get(id string) (*models.CheckoutSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, apperr.NotFound("checkout session with ID %s not found", id)
	}
	return &session, nil
}

// Delete removes a session.
func (s *MemoryCheckoutStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return apperr.NotFound("checkout session with ID %s not found", id)
	}
	delete(s.sessions, id)
	return nil
}
