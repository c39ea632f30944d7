package handlers

import (
	"log"

	"glowmart/internal/middleware"
	"glowmart/internal/models"
	"glowmart/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	cartService *services.CartService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, cartService *services.CartService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cartService: cartService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)

	authed := authRoutes.Group("", middleware.AuthRequired(h.authService))
	authed.Get("/profile", h.HandleGetProfile)
	authed.Put("/profile", h.HandleUpdateProfile)
	authed.Post("/change-password", h.HandleChangePassword)
}

// RegisterRequest is the self-registration form. The password never appears
// in responses; the User model keeps it out of JSON entirely.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"omitempty,max=30"`
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing register request body: %v", err)
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
	}
	if err := h.authService.RegisterUser(&user); err != nil {
		log.Printf("Error registering user: %v", err)
		return respondError(c, err)
	}

	return respondData(c, fiber.StatusCreated, user)
}

// LoginRequest represents the request body for login. A session ID may be
// sent along so the anonymous cart held under it merges into the user's
// cart.
type LoginRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	SessionID string `json:"sessionId"`
}

// HandleLogin handles user login and issues a JWT token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return respondBadBody(c, err)
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	token, user, err := h.authService.LoginUser(req.Email, req.Password)
	if err != nil {
		log.Printf("Error during login for %s: %v", req.Email, err)
		return respondError(c, err)
	}

	// Fold any anonymous cart into the user's cart. A merge failure does
	// not fail the login; the session cart simply survives.
	if req.SessionID != "" {
		if err := h.cartService.MergeOnLogin(req.SessionID, user.ID); err != nil {
			log.Printf("Warning: failed to merge session cart %s into user %s: %v", req.SessionID, user.ID, err)
		}
	}

	return respondData(c, fiber.StatusOK, fiber.Map{
		"token": token,
		"user":  user,
	})
}

// HandleGetProfile returns the authenticated user's record.
func (h *AuthHandler) HandleGetProfile(c *fiber.Ctx) error {
	user, err := h.authService.GetProfile(localString(c, "user_id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, user)
}

// UpdateProfileRequest carries profile fields a user may change themselves.
type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"omitempty,min=2,max=100"`
	Phone string `json:"phone" validate:"omitempty,max=30"`
}

// HandleUpdateProfile applies name/phone changes for the authenticated user.
func (h *AuthHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	user, err := h.authService.UpdateProfile(localString(c, "user_id"), req.Name, req.Phone)
	if err != nil {
		log.Printf("Error updating profile: %v", err)
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, user)
}

// ChangePasswordRequest carries the current and replacement passwords.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// HandleChangePassword verifies and replaces the user's password.
func (h *AuthHandler) HandleChangePassword(c *fiber.Ctx) error {
	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	if err := h.authService.ChangePassword(localString(c, "user_id"), req.CurrentPassword, req.NewPassword); err != nil {
		log.Printf("Error changing password: %v", err)
		return respondError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "Password changed successfully")
}
