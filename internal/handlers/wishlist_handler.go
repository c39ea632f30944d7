package handlers

import (
	"log"

	"glowmart/internal/middleware"
	"glowmart/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// WishlistHandler handles saved products. All routes require a logged-in
// user.
type WishlistHandler struct {
	service     *services.WishlistService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(service *services.WishlistService, authService *services.AuthService) *WishlistHandler {
	return &WishlistHandler{
		service:     service,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the wishlist routes with the Fiber app.
func (h *WishlistHandler) RegisterRoutes(router fiber.Router) {
	wishlistRoutes := router.Group("/wishlist", middleware.AuthRequired(h.authService))
	wishlistRoutes.Get("/", h.HandleGetWishlist)
	wishlistRoutes.Post("/", h.HandleAddToWishlist)
	wishlistRoutes.Delete("/:id", h.HandleRemoveFromWishlist)
}

// HandleGetWishlist returns the authenticated user's wishlist.
func (h *WishlistHandler) HandleGetWishlist(c *fiber.Ctx) error {
	items, err := h.service.Get(localString(c, "user_id"))
	if err != nil {
		log.Printf("Error getting wishlist: %v", err)
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, items)
}

// WishlistRequest names the product to save.
type WishlistRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// HandleAddToWishlist saves a product for the authenticated user.
func (h *WishlistHandler) HandleAddToWishlist(c *fiber.Ctx) error {
	var req WishlistRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	item, err := h.service.Add(localString(c, "user_id"), req.ProductID)
	if err != nil {
		log.Printf("Error adding to wishlist: %v", err)
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, item)
}

// HandleRemoveFromWishlist deletes a wishlist entry.
func (h *WishlistHandler) HandleRemoveFromWishlist(c *fiber.Ctx) error {
	if err := h.service.Remove(c.Params("id")); err != nil {
		log.Printf("Error removing wishlist item %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "Wishlist item removed")
}
