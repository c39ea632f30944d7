package services

import (
	"strings"

	"glowmart/internal/apperr"
	"glowmart/internal/models"
	"glowmart/internal/repositories"
)

// QnAService handles product questions and their back-office answers.
type QnAService struct {
	qnaRepo     repositories.QnARepository
	productRepo repositories.ProductRepository
}

// NewQnAService creates a new QnAService.
func NewQnAService(qnaRepo repositories.QnARepository, productRepo repositories.ProductRepository) *QnAService {
	return &QnAService{
		qnaRepo:     qnaRepo,
		productRepo: productRepo,
	}
}

// Ask records a question against an existing product.
func (s *QnAService) Ask(productID, question string) (*models.Question, error) {
	if strings.TrimSpace(question) == "" {
		return nil, apperr.Validation("question is required")
	}
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, err
	}

	entry := &models.Question{
		ProductID: productID,
		Question:  strings.TrimSpace(question),
	}
	if err := s.qnaRepo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Answer records the back-office reply and returns the updated question.
// Answering again overwrites the previous reply.
func (s *QnAService) Answer(id, answer string) (*models.Question, error) {
	if strings.TrimSpace(answer) == "" {
		return nil, apperr.Validation("answer is required")
	}
	if err := s.qnaRepo.SetAnswer(id, strings.TrimSpace(answer)); err != nil {
		return nil, err
	}
	return s.qnaRepo.GetByID(id)
}

// ForProduct returns a product's questions in the order they were asked.
func (s *QnAService) ForProduct(productID string) ([]models.Question, error) {
	return s.qnaRepo.GetByProduct(productID)
}

// Delete removes a question.
func (s *QnAService) Delete(id string) error {
	return s.qnaRepo.Delete(id)
}
