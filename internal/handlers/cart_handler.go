package handlers

import (
	"log"

	"glowmart/internal/apperr"
	"glowmart/internal/middleware"
	"glowmart/internal/models"
	"glowmart/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for carts. The same routes serve
// anonymous sessions and logged-in users; a valid bearer token pins the
// identity to the user, otherwise the query/body identity is used.
type CartHandler struct {
	cartService *services.CartService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cartService *services.CartService, authService *services.AuthService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart", middleware.OptionalAuth(h.authService))
	cartRoutes.Post("/session", h.HandleEnsureSession)
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/", h.HandleAddItem)
	cartRoutes.Put("/:id", h.HandleUpdateItem)
	cartRoutes.Delete("/:id", h.HandleRemoveItem)
	cartRoutes.Delete("/", h.HandleClearCart)
	cartRoutes.Post("/merge", middleware.AuthRequired(h.authService), h.HandleMergeCart)
}

// owner resolves the cart identity for the request: the authenticated user
// wins, then explicit query parameters.
func (h *CartHandler) owner(c *fiber.Ctx) (models.CartOwner, error) {
	userID := localString(c, "user_id")
	if userID == "" {
		userID = c.Query("userId")
	}
	return h.cartService.ResolveOwner(userID, c.Query("sessionId"))
}

// SessionRequest optionally carries an already-issued session token.
type SessionRequest struct {
	SessionID string `json:"sessionId"`
}

// HandleEnsureSession issues an anonymous cart token, echoing an existing
// one unchanged so repeated calls are idempotent.
func (h *CartHandler) HandleEnsureSession(c *fiber.Ctx) error {
	var req SessionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return respondBadBody(c, err)
		}
	}
	return respondData(c, fiber.StatusOK, fiber.Map{
		"sessionId": h.cartService.EnsureSession(req.SessionID),
	})
}

// HandleGetCart returns the cart lines for the resolved identity.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	owner, err := h.owner(c)
	if err != nil {
		return respondError(c, err)
	}

	items, err := h.cartService.Get(owner)
	if err != nil {
		log.Printf("Error getting cart: %v", err)
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, items)
}

// AddItemRequest is the add-to-cart payload. Identity may be carried in the
// body for anonymous carts.
type AddItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	UserID    string `json:"userId"`
	SessionID string `json:"sessionId"`
}

// HandleAddItem puts a product into the cart; the server merges duplicate
// products by summing quantities. Returns the refreshed cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add-to-cart request body: %v", err)
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	userID := localString(c, "user_id")
	if userID == "" {
		userID = req.UserID
	}
	owner, err := h.cartService.ResolveOwner(userID, req.SessionID)
	if err != nil {
		return respondError(c, err)
	}

	items, err := h.cartService.Add(owner, req.ProductID, req.Quantity)
	if err != nil {
		log.Printf("Error adding to cart: %v", err)
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, items)
}

// UpdateItemRequest sets a new quantity for a cart line. Identity may be
// carried in the body for anonymous carts.
type UpdateItemRequest struct {
	Quantity  int    `json:"quantity"`
	UserID    string `json:"userId"`
	SessionID string `json:"sessionId"`
}

// HandleUpdateItem sets a line's quantity. The line must belong to the
// resolved identity. A quantity below 1 removes the line; zero or negative
// quantities are never stored.
func (h *CartHandler) HandleUpdateItem(c *fiber.Ctx) error {
	var req UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}

	userID := localString(c, "user_id")
	if userID == "" {
		userID = req.UserID
	}
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = c.Query("sessionId")
	}
	owner, err := h.cartService.ResolveOwner(userID, sessionID)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.cartService.UpdateQuantity(owner, c.Params("id"), req.Quantity); err != nil {
		log.Printf("Error updating cart item %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "Cart item updated")
}

// HandleRemoveItem deletes a single cart line belonging to the resolved
// identity.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	owner, err := h.owner(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.cartService.Remove(owner, c.Params("id")); err != nil {
		log.Printf("Error removing cart item %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "Cart item removed")
}

// HandleClearCart empties the cart for the resolved identity.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	owner, err := h.owner(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.cartService.Clear(owner); err != nil {
		log.Printf("Error clearing cart: %v", err)
		return respondError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "Cart cleared")
}

// MergeRequest names the anonymous session cart to fold into the
// authenticated user's cart.
type MergeRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
}

// HandleMergeCart merges the anonymous session cart into the logged-in
// user's cart, summing quantities for the same product.
func (h *CartHandler) HandleMergeCart(c *fiber.Ctx) error {
	var req MergeRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	userID := localString(c, "user_id")
	if userID == "" {
		return respondError(c, apperr.Unauthorized("authentication required to merge carts"))
	}

	if err := h.cartService.MergeOnLogin(req.SessionID, userID); err != nil {
		log.Printf("Error merging cart %s into user %s: %v", req.SessionID, userID, err)
		return respondError(c, err)
	}

	items, err := h.cartService.Get(models.CartOwner{UserID: userID})
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, items)
}
