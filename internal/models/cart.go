package models

import "gorm.io/gorm"

// CartOwner identifies which cart a request operates on. Exactly one of
// UserID or SessionID must be set: an authenticated user's identifier wins
// over any anonymous session token.
type CartOwner struct {
	UserID    string `json:"userId,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
}

// Valid reports whether exactly one identity is present.
func (o CartOwner) Valid() bool {
	return (o.UserID == "") != (o.SessionID == "")
}

// CartItem is a single line in a cart. Quantity is always >= 1; an update
// that would bring it below 1 removes the line instead.
type CartItem struct {
	ID         string   `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID     string   `json:"userId,omitempty" gorm:"index;type:varchar(36)"`
	SessionID  string   `json:"sessionId,omitempty" gorm:"index;type:varchar(64)"`
	ProductID  string   `json:"productId" gorm:"index;type:varchar(36)"`
	Product    *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity   int      `json:"quantity"`
	gorm.Model `json:"-"`
}

// Owner returns the identity that owns this line.
func (i CartItem) Owner() CartOwner {
	if i.UserID != "" {
		return CartOwner{UserID: i.UserID}
	}
	return CartOwner{SessionID: i.SessionID}
}
