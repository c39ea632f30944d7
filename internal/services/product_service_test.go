package services_test

import (
	"testing"

	"glowmart/internal/apperr"
	"glowmart/internal/models"
	"glowmart/internal/repositories"
	"glowmart/internal/services"

	"github.com/stretchr/testify/assert"
)

func seedCatalog(t *testing.T, repo *repositories.MockProductRepository) {
	t.Helper()

	lipCare := &models.Category{Name: "Lip Care"}
	skincare := &models.Category{Name: "Skincare"}

	products := []*models.Product{
		{Name: "Velvet Lipstick", Price: 500, Stock: 10, Category: lipCare},
		{Name: "Rose Glow Serum", Price: 750, Stock: 3, Category: skincare},
		{Name: "Matte LIP Liner", Price: 250, Stock: 0, Category: lipCare},
		{Name: "Hydrating Toner", Price: 400, Stock: 20, Category: skincare},
	}
	for _, p := range products {
		assert.NoError(t, repo.Create(p))
	}
}

func TestGetAllProducts_Search(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	service := services.NewProductService(repo)
	seedCatalog(t, repo)

	// Case-insensitive substring match over product name and category name.
	matched, err := service.GetAllProducts("lip")
	assert.NoError(t, err)
	assert.Len(t, matched, 2)
	assert.Equal(t, "Velvet Lipstick", matched[0].Name)
	assert.Equal(t, "Matte LIP Liner", matched[1].Name)

	// Category name matches too.
	matched, err = service.GetAllProducts("skincare")
	assert.NoError(t, err)
	assert.Len(t, matched, 2)

	matched, err = service.GetAllProducts("no such thing")
	assert.NoError(t, err)
	assert.Empty(t, matched)

	// An empty search returns the full catalog in insertion order.
	all, err := service.GetAllProducts("")
	assert.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestProductService_CRUD(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	service := services.NewProductService(repo)

	product := &models.Product{Name: "Velvet Lipstick", Price: 500, Stock: 10}
	assert.NoError(t, service.CreateProduct(product))
	assert.NotEmpty(t, product.ID)

	got, err := service.GetProductByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Velvet Lipstick", got.Name)

	got.Price = 450
	assert.NoError(t, service.UpdateProduct(got))
	updated, _ := service.GetProductByID(product.ID)
	assert.Equal(t, 450.0, updated.Price)

	assert.NoError(t, service.DeleteProduct(product.ID))
	_, err = service.GetProductByID(product.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestProductService_DetailCarriesRating(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	service := services.NewProductService(repo)

	product := &models.Product{
		Name:  "Velvet Lipstick",
		Price: 500,
		Stock: 10,
		Reviews: []models.Review{
			{Rating: 5, ReviewerName: "Amina"},
			{Rating: 2, ReviewerName: "Farah"},
		},
	}
	assert.NoError(t, service.CreateProduct(product))

	got, err := service.GetProductByID(product.ID)
	assert.NoError(t, err)
	assert.InDelta(t, 3.5, got.Rating, 0.001)
	assert.Equal(t, 2, got.ReviewCount)
}

func TestProductService_Stats(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	service := services.NewProductService(repo)
	seedCatalog(t, repo)

	stats, err := service.Stats()
	assert.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalProducts)
	assert.Equal(t, int64(1), stats.OutOfStock)
	assert.Equal(t, int64(1), stats.LowStock)
}
