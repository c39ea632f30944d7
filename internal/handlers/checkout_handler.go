package handlers

import (
	"log"

	"glowmart/internal/middleware"
	"glowmart/internal/models"
	"glowmart/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CheckoutHandler exposes the checkout wizard state machine over HTTP.
type CheckoutHandler struct {
	checkoutService *services.CheckoutService
	cartService     *services.CartService
	authService     *services.AuthService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(checkoutService *services.CheckoutService, cartService *services.CartService, authService *services.AuthService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		cartService:     cartService,
		authService:     authService,
	}
}

// RegisterRoutes registers the checkout routes with the Fiber app.
func (h *CheckoutHandler) RegisterRoutes(router fiber.Router) {
	checkoutRoutes := router.Group("/checkout", middleware.OptionalAuth(h.authService))
	checkoutRoutes.Post("/", h.HandleBegin)
	checkoutRoutes.Get("/:id", h.HandleGet)
	checkoutRoutes.Post("/:id/address", h.HandleSubmitAddress)
	checkoutRoutes.Post("/:id/shipping", h.HandleSelectShipping)
	checkoutRoutes.Post("/:id/back", h.HandleBack)
	checkoutRoutes.Get("/:id/quote", h.HandleQuote)
	checkoutRoutes.Post("/:id/submit", h.HandleSubmit)
}

// BeginRequest identifies the cart the checkout operates on.
type BeginRequest struct {
	UserID    string `json:"userId"`
	SessionID string `json:"sessionId"`
}

// HandleBegin opens a checkout session for a non-empty cart.
func (h *CheckoutHandler) HandleBegin(c *fiber.Ctx) error {
	var req BeginRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return respondBadBody(c, err)
		}
	}

	userID := localString(c, "user_id")
	if userID == "" {
		userID = req.UserID
	}
	owner, err := h.cartService.ResolveOwner(userID, req.SessionID)
	if err != nil {
		return respondError(c, err)
	}

	session, err := h.checkoutService.Begin(owner)
	if err != nil {
		log.Printf("Error beginning checkout: %v", err)
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, session)
}

// HandleGet returns a checkout session.
func (h *CheckoutHandler) HandleGet(c *fiber.Ctx) error {
	session, err := h.checkoutService.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, session)
}

// HandleSubmitAddress applies the step-1 address form. All fields must be
// non-empty to advance; otherwise the session stays at the address step.
func (h *CheckoutHandler) HandleSubmitAddress(c *fiber.Ctx) error {
	var addr models.ShippingAddress
	if err := c.BodyParser(&addr); err != nil {
		return respondBadBody(c, err)
	}

	session, err := h.checkoutService.SubmitAddress(c.Params("id"), addr)
	if err != nil {
		log.Printf("Error submitting checkout address: %v", err)
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, session)
}

// ShippingRequest selects a shipping method.
type ShippingRequest struct {
	Method string `json:"method"`
}

// HandleSelectShipping applies the step-2 shipping choice.
func (h *CheckoutHandler) HandleSelectShipping(c *fiber.Ctx) error {
	var req ShippingRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}

	session, err := h.checkoutService.SelectShipping(c.Params("id"), req.Method)
	if err != nil {
		log.Printf("Error selecting shipping method: %v", err)
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, session)
}

// HandleBack steps the wizard backward without re-validating completed
// steps.
func (h *CheckoutHandler) HandleBack(c *fiber.Ctx) error {
	session, err := h.checkoutService.Back(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, session)
}

// HandleQuote returns the server-authoritative totals for the session.
func (h *CheckoutHandler) HandleQuote(c *fiber.Ctx) error {
	quote, err := h.checkoutService.Quote(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, quote)
}

// HandleSubmit applies the step-3 payment form, places the order and clears
// the cart. On failure the session stays at the payment step.
func (h *CheckoutHandler) HandleSubmit(c *fiber.Ctx) error {
	var payment models.PaymentDetails
	if err := c.BodyParser(&payment); err != nil {
		return respondBadBody(c, err)
	}

	session, err := h.checkoutService.Submit(c.Params("id"), payment)
	if err != nil {
		log.Printf("Error submitting checkout: %v", err)
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, session)
}
