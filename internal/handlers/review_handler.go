package handlers

import (
	"log"

	"glowmart/internal/middleware"
	"glowmart/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles product reviews. Creation is open to shoppers;
// removal is admin-only.
type ReviewHandler struct {
	service     *services.ReviewService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service *services.ReviewService, authService *services.AuthService) *ReviewHandler {
	return &ReviewHandler{
		service:     service,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the review routes with the Fiber app.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router) {
	reviewRoutes := router.Group("/reviews")
	reviewRoutes.Post("/", h.HandleCreateReview)
	reviewRoutes.Delete("/:id", middleware.AuthRequired(h.authService), middleware.AdminRequired(), h.HandleDeleteReview)
}

// CreateReviewRequest is the leave-a-review form.
type CreateReviewRequest struct {
	ProductID    string `json:"productId" validate:"required"`
	ReviewerName string `json:"reviewerName" validate:"required,max=100"`
	Rating       int    `json:"rating" validate:"required,min=1,max=5"`
	Comment      string `json:"comment" validate:"omitempty,max=2000"`
}

// HandleCreateReview records a review on a product.
func (h *ReviewHandler) HandleCreateReview(c *fiber.Ctx) error {
	var req CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing review request body: %v", err)
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	review, err := h.service.Create(req.ProductID, req.ReviewerName, req.Rating, req.Comment)
	if err != nil {
		log.Printf("Error creating review: %v", err)
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, review)
}

// HandleDeleteReview removes a review.
func (h *ReviewHandler) HandleDeleteReview(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		log.Printf("Error deleting review %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "Review deleted")
}
