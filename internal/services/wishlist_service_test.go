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

// MockWishlistRepository is a mock implementation of repositories.WishlistRepository
type MockWishlistRepository struct {
	mock.Mock
}

func (m *MockWishlistRepository) GetByUser(userID string) ([]models.WishlistItem, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WishlistItem), args.Error(1)
}

func (m *MockWishlistRepository) FindByUserAndProduct(userID, productID string) (*models.WishlistItem, error) {
	args := m.Called(userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WishlistItem), args.Error(1)
}

func (m *MockWishlistRepository) Create(item *models.WishlistItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockWishlistRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestWishlist_Add(t *testing.T) {
	mockRepo := new(MockWishlistRepository)
	productRepo := repositories.NewMockProductRepository()
	service := services.NewWishlistService(mockRepo, productRepo)

	product := &models.Product{Name: "Rose Glow Serum", Price: 750, Stock: 5}
	assert.NoError(t, productRepo.Create(product))

	mockRepo.On("FindByUserAndProduct", "user-1", product.ID).Return(nil, apperr.NotFound("not saved")).Once()
	mockRepo.On("Create", mock.MatchedBy(func(item *models.WishlistItem) bool {
		return item.UserID == "user-1" && item.ProductID == product.ID
	})).Return(nil).Once()

	item, err := service.Add("user-1", product.ID)
	assert.NoError(t, err)
	assert.Equal(t, product.ID, item.ProductID)
	mockRepo.AssertExpectations(t)
}

func TestWishlist_Add_Duplicate(t *testing.T) {
	mockRepo := new(MockWishlistRepository)
	productRepo := repositories.NewMockProductRepository()
	service := services.NewWishlistService(mockRepo, productRepo)

	product := &models.Product{Name: "Rose Glow Serum", Price: 750, Stock: 5}
	assert.NoError(t, productRepo.Create(product))

	saved := &models.WishlistItem{ID: "wish-1", UserID: "user-1", ProductID: product.ID}
	mockRepo.On("FindByUserAndProduct", "user-1", product.ID).Return(saved, nil).Once()

	_, err := service.Add("user-1", product.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestWishlist_Add_UnknownProduct(t *testing.T) {
	mockRepo := new(MockWishlistRepository)
	service := services.NewWishlistService(mockRepo, repositories.NewMockProductRepository())

	_, err := service.Add("user-1", "missing")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	mockRepo.AssertNotCalled(t, "FindByUserAndProduct", mock.Anything, mock.Anything)
}
