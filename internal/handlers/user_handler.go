package handlers

import (
	"log"

	"glowmart/internal/middleware"
	"glowmart/internal/models"
	"glowmart/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles the admin user-management surface.
type UserHandler struct {
	service     *services.UserService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService, authService *services.AuthService) *UserHandler {
	return &UserHandler{
		service:     service,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the user admin routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users", middleware.AuthRequired(h.authService), middleware.AdminRequired())
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Patch("/:id", h.HandleUpdateUser)
	userRoutes.Delete("/:id", h.HandleDeleteUser)
}

// HandleGetUsers lists all user accounts.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers()
	if err != nil {
		log.Printf("Error getting all users: %v", err)
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, users)
}

// CreateUserRequest is the admin create-account form.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"omitempty,max=30"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

// HandleCreateUser creates a user account; an admin may assign any role.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing user request body: %v", err)
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Role:     req.Role,
	}
	if err := h.service.CreateUser(&user); err != nil {
		log.Printf("Error creating user: %v", err)
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, user)
}

// HandleUpdateUser applies a partial update to an account.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	var input services.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(input); err != nil {
		return respondValidationErrors(c, err)
	}

	user, err := h.service.UpdateUser(c.Params("id"), input)
	if err != nil {
		log.Printf("Error updating user %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, user)
}

// HandleDeleteUser removes a user account after the client-side
// confirmation prompt.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	if err := h.service.DeleteUser(c.Params("id")); err != nil {
		log.Printf("Error deleting user %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "User deleted")
}
