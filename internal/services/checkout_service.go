package services

import (
	"math"
	"strings"

	"glowmart/internal/apperr"
	"glowmart/internal/models"
	"glowmart/internal/repositories"
)

// CheckoutService drives the checkout state machine: a linear
// address -> shipping -> payment -> confirmed flow over one cart. Each
// forward transition is guarded; back transitions never re-validate
// completed steps. Confirmed is terminal.
type CheckoutService struct {
	store       repositories.CheckoutSessionStore
	cartService *CartService
	orders      *OrderService
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(store repositories.CheckoutSessionStore, cartService *CartService, orders *OrderService) *CheckoutService {
	return &CheckoutService{
		store:       store,
		cartService: cartService,
		orders:      orders,
	}
}

// ShippingCost returns the flat cost for a shipping method. Only "standard"
// and "express" are accepted.
func ShippingCost(method string) (float64, error) {
	switch method {
	case models.ShippingStandard:
		return models.ShippingCostStandard, nil
	case models.ShippingExpress:
		return models.ShippingCostExpress, nil
	default:
		return 0, apperr.Validation("unknown shipping method %q", method)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Begin opens a checkout session for a non-empty cart, starting at the
// address step with standard shipping preselected.
func (s *CheckoutService) Begin(owner models.CartOwner) (*models.CheckoutSession, error) {
	items, err := s.cartService.Get(owner)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperr.Validation("cannot start checkout with an empty cart")
	}

	session := &models.CheckoutSession{
		Owner:          owner,
		State:          models.CheckoutStateAddress,
		ShippingMethod: models.ShippingStandard,
		Address:        models.ShippingAddress{Country: "Bangladesh"},
	}
	if err := s.store.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Get returns a checkout session by ID.
func (s *CheckoutService) Get(id string) (*models.CheckoutSession, error) {
	return s.store.Get(id)
}

// SubmitAddress applies the step-1 form and advances address -> shipping.
// All eight fields must be non-empty; on failure the session stays at the
// address step and the error names the missing fields.
func (s *CheckoutService) SubmitAddress(id string, addr models.ShippingAddress) (*models.CheckoutSession, error) {
	session, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	if session.State != models.CheckoutStateAddress {
		return nil, apperr.Conflict("checkout session is at the %s step, not address", session.State)
	}

	if missing := missingAddressFields(addr); len(missing) > 0 {
		return nil, apperr.Validation("please fill in all required fields: %s", strings.Join(missing, ", "))
	}

	session.Address = addr
	session.State = models.CheckoutStateShipping
	if err := s.store.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

func missingAddressFields(addr models.ShippingAddress) []string {
	var missing []string
	fields := []struct {
		name, value string
	}{
		{"firstName", addr.FirstName},
		{"lastName", addr.LastName},
		{"phone", addr.Phone},
		{"address", addr.Address},
		{"city", addr.City},
		{"state", addr.State},
		{"zip", addr.Zip},
		{"country", addr.Country},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// SelectShipping applies the step-2 choice and advances shipping -> payment.
// The method always has a valid default, so the only guard is that the
// method itself is known.
func (s *CheckoutService) SelectShipping(id, method string) (*models.CheckoutSession, error) {
	session, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	if session.State != models.CheckoutStateShipping {
		return nil, apperr.Conflict("checkout session is at the %s step, not shipping", session.State)
	}
	if _, err := ShippingCost(method); err != nil {
		return nil, err
	}

	session.ShippingMethod = method
	session.State = models.CheckoutStatePayment
	if err := s.store.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Back steps the wizard backward without re-validating completed steps.
// There is no backward transition out of confirmed.
func (s *CheckoutService) Back(id string) (*models.CheckoutSession, error) {
	session, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}

	switch session.State {
	case models.CheckoutStateShipping:
		session.State = models.CheckoutStateAddress
	case models.CheckoutStatePayment:
		session.State = models.CheckoutStateShipping
	case models.CheckoutStateConfirmed:
		return nil, apperr.Conflict("checkout session is already confirmed")
	default:
		return nil, apperr.Conflict("checkout session is already at the first step")
	}

	if err := s.store.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Quote computes the server-authoritative totals for the session's cart and
// selected shipping method. The persisted order stores exactly these
// amounts, so what the client displays is what gets charged.
func (s *CheckoutService) Quote(id string) (*models.CheckoutQuote, error) {
	session, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	items, err := s.cartService.Get(session.Owner)
	if err != nil {
		return nil, err
	}
	return quoteFor(items, session.ShippingMethod)
}

func quoteFor(items []models.CartItem, method string) (*models.CheckoutQuote, error) {
	shipping, err := ShippingCost(method)
	if err != nil {
		return nil, err
	}
	subtotal := Subtotal(items)
	tax := round2((subtotal + shipping) * models.TaxRate)
	return &models.CheckoutQuote{
		Subtotal:     round2(subtotal),
		ShippingCost: shipping,
		Tax:          tax,
		Total:        round2(subtotal + shipping + tax),
	}, nil
}

// Submit applies the step-3 payment form and, if the guard passes, assembles
// the order, submits it atomically, clears the cart exactly once and
// advances payment -> confirmed. On any submission failure the session stays
// at the payment step with the cart intact.
func (s *CheckoutService) Submit(id string, payment models.PaymentDetails) (*models.CheckoutSession, error) {
	session, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	if session.State != models.CheckoutStatePayment {
		return nil, apperr.Conflict("checkout session is at the %s step, not payment", session.State)
	}
	if strings.TrimSpace(payment.BkashNumber) == "" || strings.TrimSpace(payment.TransactionID) == "" {
		return nil, apperr.Validation("please enter your bKash number and transaction ID")
	}

	items, err := s.cartService.Get(session.Owner)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperr.Validation("your cart is empty")
	}

	input := CreateOrderInput{
		UserID:               session.Owner.UserID,
		CustomerName:         strings.TrimSpace(session.Address.FirstName + " " + session.Address.LastName),
		CustomerPhone:        session.Address.Phone,
		ShippingAddressLine1: session.Address.Address,
		ShippingCity:         session.Address.City,
		ShippingState:        session.Address.State,
		ShippingZip:          session.Address.Zip,
		ShippingCountry:      session.Address.Country,
		ShippingMethod:       session.ShippingMethod,
		PaymentMethod:        "bkash",
		BkashNumber:          payment.BkashNumber,
		BkashTransactionID:   payment.TransactionID,
	}
	for _, item := range items {
		input.Items = append(input.Items, OrderLineInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := s.orders.Create(input)
	if err != nil {
		return nil, err
	}

	if err := s.cartService.Clear(session.Owner); err != nil {
		// The order exists; a stale cart is recoverable, a lost order is not.
		return nil, apperr.Wrap(apperr.KindInternal, err, "order %s created but cart could not be cleared", order.OrderNumber)
	}

	session.Payment = payment
	session.OrderID = order.ID
	session.OrderNumber = order.OrderNumber
	session.State = models.CheckoutStateConfirmed
	if err := s.store.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}
