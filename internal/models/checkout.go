package models

import "time"

// CheckoutState is the current step of a checkout session. The flow is
// linear: address -> shipping -> payment -> confirmed. Confirmed is terminal.
type CheckoutState string

const (
	CheckoutStateAddress   CheckoutState = "address"
	CheckoutStateShipping  CheckoutState = "shipping"
	CheckoutStatePayment   CheckoutState = "payment"
	CheckoutStateConfirmed CheckoutState = "confirmed"
)

// Shipping methods and their flat costs.
const (
	ShippingStandard = "standard"
	ShippingExpress  = "express"

	ShippingCostStandard = 0.0
	ShippingCostExpress  = 15.0
)

// TaxRate applied to subtotal plus shipping.
const TaxRate = 0.08

// ShippingAddress is the step-1 form. All fields are required to advance;
// phone and zip are accepted as free text.
type ShippingAddress struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
}

// PaymentDetails is the step-3 form. The transaction ID is recorded as
// entered; verification happens manually through payment-status transitions.
type PaymentDetails struct {
	BkashNumber   string `json:"bkashNumber"`
	TransactionID string `json:"transactionId"`
}

// CheckoutQuote is the server-authoritative totals breakdown shown before
// submission. The persisted order stores exactly these amounts.
type CheckoutQuote struct {
	Subtotal     float64 `json:"subtotal"`
	ShippingCost float64 `json:"shippingCost"`
	Tax          float64 `json:"tax"`
	Total        float64 `json:"total"`
}

// CheckoutSession accumulates a single order submission across the wizard
// steps for one cart owner.
type CheckoutSession struct {
	ID             string          `json:"id"`
	Owner          CartOwner       `json:"owner"`
	State          CheckoutState   `json:"state"`
	Address        ShippingAddress `json:"address"`
	ShippingMethod string          `json:"shippingMethod"`
	Payment        PaymentDetails  `json:"payment"`
	OrderID        string          `json:"orderId,omitempty"`
	OrderNumber    string          `json:"orderNumber,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
