package services_test

import (
	"testing"

	"glowmart/internal/apperr"
	"glowmart/internal/models"
	"glowmart/internal/repositories"
	"glowmart/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockQnARepository is a mock implementation of repositories.QnARepository
type MockQnARepository struct {
	mock.Mock
}

func (m *MockQnARepository) GetByProduct(productID string) ([]models.Question, error) {
	args := m.Called(productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Question), args.Error(1)
}

func (m *MockQnARepository) GetByID(id string) (*models.Question, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Question), args.Error(1)
}

func (m *MockQnARepository) Create(question *models.Question) error {
	args := m.Called(question)
	return args.Error(0)
}

func (m *MockQnARepository) SetAnswer(id, answer string) error {
	args := m.Called(id, answer)
	return args.Error(0)
}

func (m *MockQnARepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestQnA_Ask(t *testing.T) {
	mockRepo := new(MockQnARepository)
	productRepo := repositories.NewMockProductRepository()
	service := services.NewQnAService(mockRepo, productRepo)

	product := &models.Product{Name: "Hydrating Toner", Price: 400, Stock: 20}
	assert.NoError(t, productRepo.Create(product))

	mockRepo.On("Create", mock.MatchedBy(func(q *models.Question) bool {
		return q.ProductID == product.ID && q.Question == "Is it fragrance free?" && q.Answer == ""
	})).Return(nil).Once()

	question, err := service.Ask(product.ID, " Is it fragrance free? ")
	assert.NoError(t, err)
	assert.False(t, question.Answered())
	mockRepo.AssertExpectations(t)
}

func TestQnA_Ask_Invalid(t *testing.T) {
	mockRepo := new(MockQnARepository)
	service := services.NewQnAService(mockRepo, repositories.NewMockProductRepository())

	_, err := service.Ask("prod-1", "   ")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = service.Ask("missing", "Is it vegan?")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestQnA_Answer(t *testing.T) {
	mockRepo := new(MockQnARepository)
	service := services.NewQnAService(mockRepo, repositories.NewMockProductRepository())

	answered := &models.Question{ID: "q-1", ProductID: "prod-1", Question: "Is it vegan?", Answer: "Yes, fully."}
	mockRepo.On("SetAnswer", "q-1", "Yes, fully.").Return(nil).Once()
	mockRepo.On("GetByID", "q-1").Return(answered, nil).Once()

	question, err := service.Answer("q-1", " Yes, fully. ")
	assert.NoError(t, err)
	assert.True(t, question.Answered())
	mockRepo.AssertExpectations(t)
}

func TestQnA_Answer_Invalid(t *testing.T) {
	mockRepo := new(MockQnARepository)
	service := services.NewQnAService(mockRepo, repositories.NewMockProductRepository())

	_, err := service.Answer("q-1", "  ")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	mockRepo.AssertNotCalled(t, "SetAnswer", mock.Anything, mock.Anything)

	mockRepo.On("SetAnswer", "missing", "Yes").Return(apperr.NotFound("question with ID missing not found for answering")).Once()
	_, err = service.Answer("missing", "Yes")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
