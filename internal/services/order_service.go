package services

import (
	"encoding/json"
	"log"
	"strings"

	"glowmart/internal/apperr"
	"glowmart/internal/models"
	"glowmart/internal/repositories"

	"github.com/google/uuid"
)

// OrderEventPublisher publishes order lifecycle events to the message
// broker. A nil publisher disables publication.
type OrderEventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	publisher   OrderEventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, publisher OrderEventPublisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		publisher:   publisher,
	}
}

// OrderLineInput is one requested product line. Name and price are always
// snapshotted server-side from the catalog, never trusted from the caller.
type OrderLineInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderInput carries everything needed to assemble one order.
type CreateOrderInput struct {
	UserID               string           `json:"userId"`
	CustomerName         string           `json:"customerName"`
	CustomerPhone        string           `json:"customerPhone"`
	ShippingAddressLine1 string           `json:"shippingAddressLine1"`
	ShippingCity         string           `json:"shippingCity"`
	ShippingState        string           `json:"shippingState"`
	ShippingZip          string           `json:"shippingZip"`
	ShippingCountry      string           `json:"shippingCountry"`
	ShippingMethod       string           `json:"shippingMethod"`
	PaymentMethod        string           `json:"paymentMethod"`
	BkashNumber          string           `json:"bkashNumber"`
	BkashTransactionID   string           `json:"bkashTransactionId"`
	Items                []OrderLineInput `json:"items"`
}

func newOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:10])
	return "GM-" + suffix
}

// Create validates products and stock, snapshots catalog prices, computes
// the authoritative totals and persists the order with pending status and
// pending payment status. On success an order.created event is published.
func (s *OrderService) Create(input CreateOrderInput) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, apperr.Validation("an order requires at least one item")
	}
	if input.CustomerName == "" || input.CustomerPhone == "" {
		return nil, apperr.Validation("customer name and phone are required")
	}

	shipping, err := ShippingCost(input.ShippingMethod)
	if err != nil {
		return nil, err
	}

	var subtotal float64
	var lines []models.OrderItem
	for _, line := range input.Items {
		if line.Quantity < 1 {
			return nil, apperr.Validation("item quantity must be at least 1")
		}
		product, err := s.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product.Stock < line.Quantity {
			return nil, apperr.Conflict("insufficient stock for product %s (requested: %d, available: %d)", product.Name, line.Quantity, product.Stock)
		}
		lines = append(lines, models.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  line.Quantity,
		})
		subtotal += product.Price * float64(line.Quantity)
	}

	tax := round2((subtotal + shipping) * models.TaxRate)
	order := &models.Order{
		OrderNumber:          newOrderNumber(),
		UserID:               input.UserID,
		CustomerName:         input.CustomerName,
		CustomerPhone:        input.CustomerPhone,
		ShippingAddressLine1: input.ShippingAddressLine1,
		ShippingCity:         input.ShippingCity,
		ShippingState:        input.ShippingState,
		ShippingZip:          input.ShippingZip,
		ShippingCountry:      input.ShippingCountry,
		ShippingMethod:       input.ShippingMethod,
		ShippingCost:         shipping,
		Subtotal:             round2(subtotal),
		Tax:                  tax,
		Total:                round2(subtotal + shipping + tax),
		PaymentMethod:        input.PaymentMethod,
		BkashNumber:          input.BkashNumber,
		BkashTransactionID:   input.BkashTransactionID,
		Items:                lines,
		Status:               models.OrderStatusPending,
		PaymentStatus:        models.PaymentStatusPending,
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	s.publishOrderCreated(order)
	return order, nil
}

func (s *OrderService) publishOrderCreated(order *models.Order) {
	if s.publisher == nil {
		log.Println("Order event publisher is not initialized. Skipping message publication.")
		return
	}

	event := map[string]interface{}{
		"orderId":     order.ID,
		"orderNumber": order.OrderNumber,
		"userId":      order.UserID,
		"status":      order.Status,
		"total":       order.Total,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal order event to JSON: %v", err)
		return
	}
	if err := s.publisher.Publish("order", "order.created", body); err != nil {
		log.Printf("Warning: Failed to publish order created event for order %s: %v", order.OrderNumber, err)
		return
	}
	log.Printf("Successfully published order created event for order %s", order.OrderNumber)
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// GetUserOrders retrieves the orders belonging to one user.
func (s *OrderService) GetUserOrders(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUser(userID)
}

// UpdateStatus sets an order's fulfillment status. Any known status may be
// set from any prior status, including cancelled from completed; there is no
// transition graph. Unknown values are rejected.
func (s *OrderService) UpdateStatus(id string, status models.OrderStatus) error {
	if !models.ValidOrderStatus(status) {
		return apperr.Validation("invalid order status: %s", status)
	}
	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return err
	}
	return nil
}

// UpdatePaymentStatus records the outcome of manual payment verification.
func (s *OrderService) UpdatePaymentStatus(id string, status models.PaymentStatus) error {
	if !models.ValidPaymentStatus(status) {
		return apperr.Validation("invalid payment status: %s", status)
	}
	return s.orderRepo.UpdatePaymentStatus(id, status)
}

// Stats aggregates order counts and revenue for the dashboard.
func (s *OrderService) Stats() (*models.OrderStats, error) {
	return s.orderRepo.Stats()
}
