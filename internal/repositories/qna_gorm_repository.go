package repositories

import (
	"errors"

	"glowmart/internal/apperr"
	"glowmart/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMQnARepository is a GORM implementation of QnARepository.
type GORMQnARepository struct {
	db *gorm.DB
}

// NewGORMQnARepository creates a new instance of GORMQnARepository.
func NewGORMQnARepository(db *gorm.DB) *GORMQnARepository {
	return &GORMQnARepository{
		db: db,
	}
}

// GetByProduct retrieves a product's questions in the order they were asked.
func (r *GORMQnARepository) GetByProduct(productID string) ([]models.Question, error) {
	var questions []models.Question
	if err := r.db.Where("product_id = ?", productID).Order("created_at").Find(&questions).Error; err != nil {
		return nil, apperr.Internal(err, "failed to get questions for product %s", productID)
	}
	return questions, nil
}

// GetByID retrieves a single question by its ID.
func (r *GORMQnARepository) GetByID(id string) (*models.Question, error) {
	var question models.Question
	if err := r.db.First(&question, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("question with ID %s not found", id)
		}
		return nil, apperr.Internal(err, "failed to get question by ID %s", id)
	}
	return &question, nil
}

// Create adds a new question.
func (r *GORMQnARepository) Create(question *models.Question) error {
	if question.ID == "" {
		question.ID = uuid.New().String()
	}
	if err := r.db.Create(question).Error; err != nil {
		return apperr.Internal(err, "failed to create question")
	}
	return nil
}

// SetAnswer records the back-office reply on a question.
func (r *GORMQnARepository) SetAnswer(id, answer string) error {
	res := r.db.Model(&models.Question{}).Where("id = ?", id).Update("answer", answer)
	if res.Error != nil {
		return apperr.Internal(res.Error, "failed to answer question")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("question with ID %s not found for answering", id)
	}
	return nil
}

// Delete removes a question by its ID.
func (r *GORMQnARepository) Delete(id string) error {
	res := r.db.Delete(&models.Question{}, "id = ?", id)
	if res.Error != nil {
		return apperr.Internal(res.Error, "failed to delete question")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("question with ID %s not found for deletion", id)
	}
	return nil
}
