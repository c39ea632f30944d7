package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderStatus describes fulfillment progress.
type OrderStatus string

// PaymentStatus describes the outcome of manual payment verification.
type PaymentStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"

	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// ValidOrderStatus reports whether s is a known fulfillment status.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether s is a known payment status.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed,
		PaymentStatusRefunded:
		return true
	}
	return false
}

// Order is created once at checkout completion and afterwards mutated only
// through admin status and payment-status transitions. Orders are never
// deleted.
type Order struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderNumber string `json:"orderNumber" gorm:"uniqueIndex;type:varchar(40)"`
	UserID      string `json:"userId,omitempty" gorm:"index;type:varchar(36)"`

	CustomerName  string `json:"customerName" gorm:"type:varchar(200)"`
	CustomerPhone string `json:"customerPhone" gorm:"type:varchar(30)"`

	ShippingAddressLine1 string `json:"shippingAddressLine1" gorm:"type:varchar(300)"`
	ShippingCity         string `json:"shippingCity" gorm:"type:varchar(100)"`
	ShippingState        string `json:"shippingState" gorm:"type:varchar(100)"`
	ShippingZip          string `json:"shippingZip" gorm:"type:varchar(20)"`
	ShippingCountry      string `json:"shippingCountry" gorm:"type:varchar(100)"`

	ShippingMethod string  `json:"shippingMethod" gorm:"type:varchar(20)"`
	ShippingCost   float64 `json:"shippingCost"`
	Subtotal       float64 `json:"subtotal"`
	Tax            float64 `json:"tax"`
	Total          float64 `json:"total"`

	PaymentMethod      string `json:"paymentMethod" gorm:"type:varchar(20)"`
	BkashNumber        string `json:"bkashNumber" gorm:"type:varchar(30)"`
	BkashTransactionID string `json:"bkashTransactionId" gorm:"type:varchar(60)"`

	Items         []OrderItem   `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Status        OrderStatus   `json:"status" gorm:"type:varchar(20);default:'pending'"`
	PaymentStatus PaymentStatus `json:"paymentStatus" gorm:"type:varchar(20);default:'pending'"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// OrderItem snapshots a product line at the time of purchase. Price is the
// product price when the order was placed, not the current catalog price.
type OrderItem struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID    string  `json:"orderId" gorm:"index;type:varchar(36)"`
	ProductID  string  `json:"productId" gorm:"type:varchar(36)"`
	Name       string  `json:"name" gorm:"type:varchar(200)"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	gorm.Model `json:"-"`
}

// OrderStats summarizes orders for the admin dashboard.
type OrderStats struct {
	TotalOrders   int64   `json:"totalOrders"`
	PendingOrders int64   `json:"pendingOrders"`
	Revenue       float64 `json:"revenue"` // total of orders not cancelled
}
