package repositories

import (
	"glowmart/internal/models"
)

// QnARepository defines the interface for product Q&A data access.
type QnARepository interface {
	GetByProduct(productID string) ([]models.Question, error)
	GetByID(id string) (*models.Question, error)
	Create(question *models.Question) error
	SetAnswer(id, answer string) error
	Delete(id string) error
}
