package services_test

import (
	"strings"
	"testing"

	"glowmart/internal/apperr"
	"glowmart/internal/models"
	"glowmart/internal/repositories"
	"glowmart/internal/services"

	"github.com/stretchr/testify/assert"
)

type checkoutFixture struct {
	cartRepo    *repositories.MockCartRepository
	productRepo *repositories.MockProductRepository
	orderRepo   *repositories.MockOrderRepository
	cart        *services.CartService
	orders      *services.OrderService
	checkout    *services.CheckoutService
}

func newCheckoutFixture() *checkoutFixture {
	cartRepo := repositories.NewMockCartRepository()
	productRepo := repositories.NewMockProductRepository()
	orderRepo := repositories.NewMockOrderRepository()

	cart := services.NewCartService(cartRepo, productRepo)
	orders := services.NewOrderService(orderRepo, productRepo, nil)
	checkout := services.NewCheckoutService(repositories.NewMemoryCheckoutStore(), cart, orders)

	return &checkoutFixture{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		cart:        cart,
		orders:      orders,
		checkout:    checkout,
	}
}

// seedCart fills the owner's cart with a single product line.
func (f *checkoutFixture) seedCart(t *testing.T, owner models.CartOwner, price float64, quantity int) *models.Product {
	t.Helper()

	product := &models.Product{Name: "Rose Glow Serum", Price: price, Stock: 100}
	assert.NoError(t, f.productRepo.Create(product))
	assert.NoError(t, f.cartRepo.Create(&models.CartItem{
		UserID:    owner.UserID,
		SessionID: owner.SessionID,
		ProductID: product.ID,
		Product:   product,
		Quantity:  quantity,
	}))
	return product
}

func validAddress() models.ShippingAddress {
	return models.ShippingAddress{
		FirstName: "Amina",
		LastName:  "Rahman",
		Phone:     "01711111111",
		Address:   "12 Gulshan Avenue",
		City:      "Dhaka",
		State:     "Dhaka",
		Zip:       "1212",
		Country:   "Bangladesh",
	}
}

func TestShippingCost(t *testing.T) {
	cost, err := services.ShippingCost(models.ShippingStandard)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, cost)

	cost, err = services.ShippingCost(models.ShippingExpress)
	assert.NoError(t, err)
	assert.Equal(t, 15.0, cost)

	_, err = services.ShippingCost("overnight")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestCheckout_Begin(t *testing.T) {
	f := newCheckoutFixture()
	owner := models.CartOwner{UserID: "user-1"}

	// An empty cart cannot enter checkout.
	_, err := f.checkout.Begin(owner)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	f.seedCart(t, owner, 500, 2)
	session, err := f.checkout.Begin(owner)
	assert.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, models.CheckoutStateAddress, session.State)
	assert.Equal(t, models.ShippingStandard, session.ShippingMethod)
	assert.Equal(t, "Bangladesh", session.Address.Country)
}

func TestCheckout_SubmitAddress_Guard(t *testing.T) {
	f := newCheckoutFixture()
	owner := models.CartOwner{SessionID: "session_1_abc"}
	f.seedCart(t, owner, 500, 1)

	session, err := f.checkout.Begin(owner)
	assert.NoError(t, err)

	// Any blank field blocks the transition and the error names it.
	addr := validAddress()
	addr.City = ""
	addr.Zip = "   "
	_, err = f.checkout.SubmitAddress(session.ID, addr)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	assert.Contains(t, err.Error(), "city")
	assert.Contains(t, err.Error(), "zip")

	// The session did not advance.
	current, err := f.checkout.Get(session.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.CheckoutStateAddress, current.State)

	// A complete address advances to the shipping step.
	updated, err := f.checkout.SubmitAddress(session.ID, validAddress())
	assert.NoError(t, err)
	assert.Equal(t, models.CheckoutStateShipping, updated.State)
	assert.Equal(t, "Amina", updated.Address.FirstName)
}

func TestCheckout_SelectShipping(t *testing.T) {
	f := newCheckoutFixture()
	owner := models.CartOwner{UserID: "user-1"}
	f.seedCart(t, owner, 500, 1)

	session, _ := f.checkout.Begin(owner)

	// Shipping cannot be selected before the address step is complete.
	_, err := f.checkout.SelectShipping(session.ID, models.ShippingExpress)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	_, err = f.checkout.SubmitAddress(session.ID, validAddress())
	assert.NoError(t, err)

	_, err = f.checkout.SelectShipping(session.ID, "drone")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	updated, err := f.checkout.SelectShipping(session.ID, models.ShippingExpress)
	assert.NoError(t, err)
	assert.Equal(t, models.CheckoutStatePayment, updated.State)
	assert.Equal(t, models.ShippingExpress, updated.ShippingMethod)
}

func TestCheckout_Back(t *testing.T) {
	f := newCheckoutFixture()
	owner := models.CartOwner{UserID: "user-1"}
	f.seedCart(t, owner, 500, 1)

	session, _ := f.checkout.Begin(owner)

	// No backward transition from the first step.
	_, err := f.checkout.Back(session.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	f.checkout.SubmitAddress(session.ID, validAddress())
	f.checkout.SelectShipping(session.ID, models.ShippingExpress)

	back, err := f.checkout.Back(session.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.CheckoutStateShipping, back.State)

	back, err = f.checkout.Back(session.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.CheckoutStateAddress, back.State)

	// Stepping back never dropped the saved address.
	assert.Equal(t, "Amina", back.Address.FirstName)
}

func TestCheckout_Quote(t *testing.T) {
	f := newCheckoutFixture()
	owner := models.CartOwner{UserID: "user-1"}
	f.seedCart(t, owner, 500, 2)

	session, _ := f.checkout.Begin(owner)
	f.checkout.SubmitAddress(session.ID, validAddress())
	f.checkout.SelectShipping(session.ID, models.ShippingExpress)

	// 1000 subtotal + 15 express shipping, 8% tax on both: 81.20.
	quote, err := f.checkout.Quote(session.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1000.0, quote.Subtotal)
	assert.Equal(t, 15.0, quote.ShippingCost)
	assert.Equal(t, 81.20, quote.Tax)
	assert.Equal(t, 1096.20, quote.Total)
}

func TestCheckout_Quote_StandardShippingIsFree(t *testing.T) {
	f := newCheckoutFixture()
	owner := models.CartOwner{SessionID: "session_1_abc"}
	f.seedCart(t, owner, 249.99, 1)

	session, _ := f.checkout.Begin(owner)

	quote, err := f.checkout.Quote(session.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, quote.ShippingCost)
	assert.Equal(t, 20.0, quote.Tax) // round2(249.99 * 0.08) = 20.00
	assert.Equal(t, 269.99, quote.Total)
}

func TestCheckout_Submit(t *testing.T) {
	f := newCheckoutFixture()
	owner := models.CartOwner{UserID: "user-1"}
	f.seedCart(t, owner, 500, 2)

	session, _ := f.checkout.Begin(owner)
	f.checkout.SubmitAddress(session.ID, validAddress())
	f.checkout.SelectShipping(session.ID, models.ShippingExpress)

	// Both payment fields are required.
	_, err := f.checkout.Submit(session.ID, models.PaymentDetails{BkashNumber: "01711111111"})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	confirmed, err := f.checkout.Submit(session.ID, models.PaymentDetails{
		BkashNumber:   "01711111111",
		TransactionID: "TX12345",
	})
	assert.NoError(t, err)
	assert.Equal(t, models.CheckoutStateConfirmed, confirmed.State)
	assert.True(t, strings.HasPrefix(confirmed.OrderNumber, "GM-"))

	// The order was persisted with pending status and pending payment.
	order, err := f.orderRepo.GetByID(confirmed.OrderID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, 1096.20, order.Total)
	assert.Equal(t, "Amina Rahman", order.CustomerName)

	// The cart was cleared exactly once.
	items, err := f.cart.Get(owner)
	assert.NoError(t, err)
	assert.Empty(t, items)

	// Confirmed is terminal: no resubmission, no stepping back.
	_, err = f.checkout.Submit(session.ID, models.PaymentDetails{BkashNumber: "01711111111", TransactionID: "TX12345"})
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	_, err = f.checkout.Back(session.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestCheckout_Submit_FailureKeepsCartAndState(t *testing.T) {
	f := newCheckoutFixture()
	owner := models.CartOwner{UserID: "user-1"}
	product := f.seedCart(t, owner, 500, 2)

	session, _ := f.checkout.Begin(owner)
	f.checkout.SubmitAddress(session.ID, validAddress())
	f.checkout.SelectShipping(session.ID, models.ShippingStandard)

	// Stock runs out between quote and submission.
	product.Stock = 1
	assert.NoError(t, f.productRepo.Update(product))

	_, err := f.checkout.Submit(session.ID, models.PaymentDetails{
		BkashNumber:   "01711111111",
		TransactionID: "TX12345",
	})
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	// The session stays at the payment step and the cart is untouched.
	current, _ := f.checkout.Get(session.ID)
	assert.Equal(t, models.CheckoutStatePayment, current.State)
	items, _ := f.cart.Get(owner)
	assert.Len(t, items, 1)
}
