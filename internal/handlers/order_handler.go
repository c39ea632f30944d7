package handlers

import (
	"log"

	"glowmart/internal/apperr"
	"glowmart/internal/middleware"
	"glowmart/internal/models"
	"glowmart/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders. Creation is open to
// anonymous checkouts; listing and status transitions are admin-only, and
// /user serves the authenticated customer's own orders.
type OrderHandler struct {
	service     *services.OrderService
	authService *services.AuthService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService, authService *services.AuthService) *OrderHandler {
	return &OrderHandler{
		service:     service,
		authService: authService,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	admin := []fiber.Handler{middleware.AuthRequired(h.authService), middleware.AdminRequired()}

	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/", middleware.OptionalAuth(h.authService), h.HandleCreateOrder)
	orderRoutes.Get("/", append(admin, h.HandleGetOrders)...)
	orderRoutes.Get("/stats", append(admin, h.HandleStats)...)
	orderRoutes.Get("/user", middleware.AuthRequired(h.authService), h.HandleGetUserOrders)
	orderRoutes.Get("/:id", middleware.OptionalAuth(h.authService), h.HandleGetOrderByID)
	orderRoutes.Patch("/:id/status", append(admin, h.HandleUpdateOrderStatus)...)
	orderRoutes.Patch("/:id/payment-status", append(admin, h.HandleUpdatePaymentStatus)...)
}

// HandleCreateOrder creates an order directly from a submission payload.
// Prices and names are snapshotted server-side; the authenticated user ID,
// when present, overrides any user ID in the body.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var input services.CreateOrderInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return respondBadBody(c, err)
	}

	if userID := localString(c, "user_id"); userID != "" {
		input.UserID = userID
	}

	order, err := h.service.Create(input)
	if err != nil {
		log.Printf("Error creating order: %v", err)
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, order)
}

// HandleGetOrders retrieves all orders for the back office.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		log.Printf("Error getting all orders: %v", err)
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, orders)
}

// HandleGetUserOrders retrieves the authenticated customer's orders.
func (h *OrderHandler) HandleGetUserOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetUserOrders(localString(c, "user_id"))
	if err != nil {
		log.Printf("Error getting user orders: %v", err)
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, orders)
}

// HandleGetOrderByID retrieves a single order. Orders carry the customer's
// name, phone and address, so reads are limited to the owning customer and
// the back office; a mismatch reads as not found rather than forbidden.
// Anonymous checkouts read their confirmation through the checkout session.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	order, err := h.service.GetOrderByID(c.Params("id"))
	if err != nil {
		log.Printf("Error getting order by ID %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}

	role := localString(c, "role")
	userID := localString(c, "user_id")
	if role != models.RoleAdmin && (order.UserID == "" || order.UserID != userID) {
		return respondError(c, apperr.NotFound("order with ID %s not found", c.Params("id")))
	}
	return respondData(c, fiber.StatusOK, order)
}

// StatusRequest carries a target fulfillment status.
type StatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

// HandleUpdateOrderStatus sets an order's fulfillment status. Any known
// status may be set from any prior status; unknown values are rejected.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}

	if err := h.service.UpdateStatus(c.Params("id"), req.Status); err != nil {
		log.Printf("Error updating order status for order %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "Order %s status updated to %s", c.Params("id"), req.Status)
}

// PaymentStatusRequest carries a target payment status.
type PaymentStatusRequest struct {
	PaymentStatus models.PaymentStatus `json:"paymentStatus"`
}

// HandleUpdatePaymentStatus records the outcome of manual payment
// verification.
func (h *OrderHandler) HandleUpdatePaymentStatus(c *fiber.Ctx) error {
	var req PaymentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}

	if err := h.service.UpdatePaymentStatus(c.Params("id"), req.PaymentStatus); err != nil {
		log.Printf("Error updating payment status for order %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "Order %s payment status updated to %s", c.Params("id"), req.PaymentStatus)
}

// HandleStats aggregates order counts and revenue.
func (h *OrderHandler) HandleStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats()
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, stats)
}
