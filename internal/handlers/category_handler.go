package handlers

import (
	"log"

	"glowmart/internal/middleware"
	"glowmart/internal/models"
	"glowmart/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for categories. Reads are public;
// writes require an admin token.
type CategoryHandler struct {
	service     *services.CategoryService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService, authService *services.AuthService) *CategoryHandler {
	return &CategoryHandler{
		service:     service,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the category routes with the Fiber app.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	admin := []fiber.Handler{middleware.AuthRequired(h.authService), middleware.AdminRequired()}

	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Post("/", append(admin, h.HandleCreateCategory)...)
	categoryRoutes.Put("/:id", append(admin, h.HandleUpdateCategory)...)
	categoryRoutes.Delete("/:id", append(admin, h.HandleDeleteCategory)...)
}

// HandleGetCategories lists all categories.
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		log.Printf("Error getting all categories: %v", err)
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, categories)
}

// HandleCreateCategory creates a new category.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		log.Printf("Error parsing category request body: %v", err)
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(category); err != nil {
		return respondValidationErrors(c, err)
	}

	if err := h.service.CreateCategory(&category); err != nil {
		log.Printf("Error creating category: %v", err)
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, category)
}

// HandleUpdateCategory replaces an existing category record.
func (h *CategoryHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return respondBadBody(c, err)
	}
	category.ID = c.Params("id")
	if err := h.validate.Struct(category); err != nil {
		return respondValidationErrors(c, err)
	}

	if err := h.service.UpdateCategory(&category); err != nil {
		log.Printf("Error updating category %s: %v", category.ID, err)
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, category)
}

// HandleDeleteCategory deletes a category.
func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	if err := h.service.DeleteCategory(c.Params("id")); err != nil {
		log.Printf("Error deleting category %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "Category deleted")
}
