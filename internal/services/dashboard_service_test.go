package services_test

import (
	"testing"
	"time"

	"glowmart/internal/models"
	"glowmart/internal/repositories"
	"glowmart/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestDashboard_TopProducts(t *testing.T) {
	orderRepo := repositories.NewMockOrderRepository()
	service := services.NewDashboardService(orderRepo, repositories.NewMockProductRepository(), nil)

	assert.NoError(t, orderRepo.Create(&models.Order{
		Status: models.OrderStatusCompleted,
		Items: []models.OrderItem{
			{ProductID: "p1", Name: "Velvet Lipstick", Price: 500, Quantity: 3},
			{ProductID: "p2", Name: "Rose Glow Serum", Price: 750, Quantity: 1},
		},
	}))
	assert.NoError(t, orderRepo.Create(&models.Order{
		Status: models.OrderStatusPending,
		Items: []models.OrderItem{
			{ProductID: "p2", Name: "Rose Glow Serum", Price: 750, Quantity: 1},
			{ProductID: "p3", Name: "Hydrating Toner", Price: 400, Quantity: 3},
		},
	}))
	// Cancelled orders never count toward best sellers.
	assert.NoError(t, orderRepo.Create(&models.Order{
		Status: models.OrderStatusCancelled,
		Items: []models.OrderItem{
			{ProductID: "p9", Name: "Night Cream", Price: 900, Quantity: 50},
		},
	}))

	top, err := service.TopProducts(2)
	assert.NoError(t, err)
	assert.Len(t, top, 2)

	// p1 and p3 are tied at 3 units; the tie breaks alphabetically by name.
	assert.Equal(t, "p3", top[0].ProductID)
	assert.Equal(t, 3, top[0].UnitsSold)
	assert.Equal(t, "p1", top[1].ProductID)
	assert.InDelta(t, 1500.0, top[1].Revenue, 0.001)

	// Without a limit the two-unit seller appears last.
	full, err := service.TopProducts(10)
	assert.NoError(t, err)
	assert.Len(t, full, 3)
}

func TestDashboard_Revenue(t *testing.T) {
	orderRepo := repositories.NewMockOrderRepository()
	service := services.NewDashboardService(orderRepo, repositories.NewMockProductRepository(), nil)

	assert.NoError(t, orderRepo.Create(&models.Order{Status: models.OrderStatusCompleted, Total: 1096.20}))
	assert.NoError(t, orderRepo.Create(&models.Order{Status: models.OrderStatusPending, Total: 500}))
	assert.NoError(t, orderRepo.Create(&models.Order{Status: models.OrderStatusCancelled, Total: 9999}))

	series, err := service.Revenue()
	assert.NoError(t, err)
	assert.Len(t, series, 1)
	assert.Equal(t, time.Now().Format("Jan 2006"), series[0].Name)
	// The cancelled order never counts toward revenue.
	assert.InDelta(t, 1596.20, series[0].Value, 0.001)
}

func TestDashboard_CategorySales(t *testing.T) {
	orderRepo := repositories.NewMockOrderRepository()
	productRepo := repositories.NewMockProductRepository()
	service := services.NewDashboardService(orderRepo, productRepo, nil)

	lipCare := &models.Category{ID: "cat-1", Name: "Lip Care"}
	skincare := &models.Category{ID: "cat-2", Name: "Skincare"}
	assert.NoError(t, productRepo.Create(&models.Product{ID: "p1", Name: "Velvet Lipstick", Price: 500, CategoryID: lipCare.ID, Category: lipCare}))
	assert.NoError(t, productRepo.Create(&models.Product{ID: "p2", Name: "Rose Glow Serum", Price: 750, CategoryID: skincare.ID, Category: skincare}))

	assert.NoError(t, orderRepo.Create(&models.Order{
		Status: models.OrderStatusCompleted,
		Items: []models.OrderItem{
			{ProductID: "p1", Name: "Velvet Lipstick", Price: 500, Quantity: 2},
			{ProductID: "p2", Name: "Rose Glow Serum", Price: 750, Quantity: 1},
		},
	}))
	// A line whose product was removed from the catalog still counts.
	assert.NoError(t, orderRepo.Create(&models.Order{
		Status: models.OrderStatusPending,
		Items: []models.OrderItem{
			{ProductID: "gone", Name: "Night Cream", Price: 900, Quantity: 1},
		},
	}))

	series, err := service.CategorySales()
	assert.NoError(t, err)
	assert.Len(t, series, 3)

	// Highest revenue first: Lip Care 1000, Night Cream 900, Serum 750.
	assert.Equal(t, services.ChartPoint{Name: "Lip Care", Value: 1000}, series[0])
	assert.Equal(t, services.ChartPoint{Name: "Uncategorized", Value: 900}, series[1])
	assert.Equal(t, services.ChartPoint{Name: "Skincare", Value: 750}, series[2])
}

func TestDashboard_RecentOrdersDefaultLimit(t *testing.T) {
	orderRepo := repositories.NewMockOrderRepository()
	service := services.NewDashboardService(orderRepo, repositories.NewMockProductRepository(), nil)

	for i := 0; i < 7; i++ {
		assert.NoError(t, orderRepo.Create(&models.Order{Status: models.OrderStatusPending}))
	}

	recent, err := service.RecentOrders(0)
	assert.NoError(t, err)
	assert.Len(t, recent, 5)
}
