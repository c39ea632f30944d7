package services_test

import (
	"encoding/json"
	"strings"
	"testing"

	"glowmart/internal/apperr"
	"glowmart/internal/models"
	"glowmart/internal/repositories"
	"glowmart/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPublisher is a mock implementation of services.OrderEventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(exchange, routingKey string, body []byte) error {
	args := m.Called(exchange, routingKey, body)
	return args.Error(0)
}

func orderInput(productID string, quantity int) services.CreateOrderInput {
	return services.CreateOrderInput{
		UserID:               "user-1",
		CustomerName:         "Amina Rahman",
		CustomerPhone:        "01711111111",
		ShippingAddressLine1: "12 Gulshan Avenue",
		ShippingCity:         "Dhaka",
		ShippingState:        "Dhaka",
		ShippingZip:          "1212",
		ShippingCountry:      "Bangladesh",
		ShippingMethod:       models.ShippingExpress,
		PaymentMethod:        "bkash",
		BkashNumber:          "01711111111",
		BkashTransactionID:   "TX12345",
		Items:                []services.OrderLineInput{{ProductID: productID, Quantity: quantity}},
	}
}

func TestOrderService_Create(t *testing.T) {
	productRepo := repositories.NewMockProductRepository()
	orderRepo := repositories.NewMockOrderRepository()
	publisher := new(MockPublisher)
	service := services.NewOrderService(orderRepo, productRepo, publisher)

	product := &models.Product{Name: "Velvet Lipstick", Price: 500, Stock: 10}
	assert.NoError(t, productRepo.Create(product))

	publisher.On("Publish", "order", "order.created", mock.Anything).Return(nil).Once()

	order, err := service.Create(orderInput(product.ID, 2))
	assert.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.OrderNumber, "GM-"))
	assert.Len(t, order.OrderNumber, 13)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)

	// Name and price are snapshotted from the catalog, totals are computed
	// server-side: 1000 + 15 express + 8% tax on both.
	assert.Equal(t, "Velvet Lipstick", order.Items[0].Name)
	assert.Equal(t, 500.0, order.Items[0].Price)
	assert.Equal(t, 1000.0, order.Subtotal)
	assert.Equal(t, 15.0, order.ShippingCost)
	assert.Equal(t, 81.20, order.Tax)
	assert.Equal(t, 1096.20, order.Total)

	publisher.AssertExpectations(t)

	// The published event carries the order identifiers.
	raw := publisher.Calls[0].Arguments.Get(2).([]byte)
	var event map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &event))
	assert.Equal(t, order.OrderNumber, event["orderNumber"])
}

func TestOrderService_Create_Validation(t *testing.T) {
	productRepo := repositories.NewMockProductRepository()
	service := services.NewOrderService(repositories.NewMockOrderRepository(), productRepo, nil)

	product := &models.Product{Name: "Serum", Price: 100, Stock: 1}
	assert.NoError(t, productRepo.Create(product))

	// No items.
	input := orderInput(product.ID, 1)
	input.Items = nil
	_, err := service.Create(input)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	// Missing customer details.
	input = orderInput(product.ID, 1)
	input.CustomerName = ""
	_, err = service.Create(input)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	// Unknown shipping method.
	input = orderInput(product.ID, 1)
	input.ShippingMethod = "teleport"
	_, err = service.Create(input)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	// Unknown product.
	_, err = service.Create(orderInput("missing-product", 1))
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	// Insufficient stock.
	_, err = service.Create(orderInput(product.ID, 5))
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestOrderService_Create_NilPublisher(t *testing.T) {
	productRepo := repositories.NewMockProductRepository()
	service := services.NewOrderService(repositories.NewMockOrderRepository(), productRepo, nil)

	product := &models.Product{Name: "Serum", Price: 100, Stock: 5}
	assert.NoError(t, productRepo.Create(product))

	// Order creation succeeds without a broker connection.
	order, err := service.Create(orderInput(product.ID, 1))
	assert.NoError(t, err)
	assert.NotEmpty(t, order.ID)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	productRepo := repositories.NewMockProductRepository()
	orderRepo := repositories.NewMockOrderRepository()
	service := services.NewOrderService(orderRepo, productRepo, nil)

	product := &models.Product{Name: "Serum", Price: 100, Stock: 5}
	assert.NoError(t, productRepo.Create(product))
	order, err := service.Create(orderInput(product.ID, 1))
	assert.NoError(t, err)

	// Any known status may be set from any prior status.
	assert.NoError(t, service.UpdateStatus(order.ID, models.OrderStatusCompleted))
	assert.NoError(t, service.UpdateStatus(order.ID, models.OrderStatusCancelled))

	// Unknown values are rejected before touching the store.
	err = service.UpdateStatus(order.ID, models.OrderStatus("archived"))
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	got, err := service.GetOrderByID(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, got.Status)
}

func TestOrderService_UpdatePaymentStatus(t *testing.T) {
	productRepo := repositories.NewMockProductRepository()
	orderRepo := repositories.NewMockOrderRepository()
	service := services.NewOrderService(orderRepo, productRepo, nil)

	product := &models.Product{Name: "Serum", Price: 100, Stock: 5}
	assert.NoError(t, productRepo.Create(product))
	order, err := service.Create(orderInput(product.ID, 1))
	assert.NoError(t, err)

	assert.NoError(t, service.UpdatePaymentStatus(order.ID, models.PaymentStatusPaid))
	got, _ := service.GetOrderByID(order.ID)
	assert.Equal(t, models.PaymentStatusPaid, got.PaymentStatus)

	err = service.UpdatePaymentStatus(order.ID, models.PaymentStatus("disputed"))
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestOrderService_Stats(t *testing.T) {
	productRepo := repositories.NewMockProductRepository()
	orderRepo := repositories.NewMockOrderRepository()
	service := services.NewOrderService(orderRepo, productRepo, nil)

	product := &models.Product{Name: "Serum", Price: 100, Stock: 50}
	assert.NoError(t, productRepo.Create(product))

	first, err := service.Create(orderInput(product.ID, 1))
	assert.NoError(t, err)
	second, err := service.Create(orderInput(product.ID, 2))
	assert.NoError(t, err)

	// Cancelled orders are excluded from revenue but still counted.
	assert.NoError(t, service.UpdateStatus(second.ID, models.OrderStatusCancelled))

	stats, err := service.Stats()
	assert.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalOrders)
	assert.Equal(t, int64(1), stats.PendingOrders)
	assert.InDelta(t, first.Total, stats.Revenue, 0.001)
}
