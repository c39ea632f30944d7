package models

import "gorm.io/gorm"

// WishlistItem marks a product saved by an authenticated user. One row per
// user/product pair.
type WishlistItem struct {
	ID         string   `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID     string   `json:"userId" gorm:"index:idx_wishlist_user_product,unique;type:varchar(36)"`
	ProductID  string   `json:"productId" gorm:"index:idx_wishlist_user_product,unique;type:varchar(36)"`
	Product    *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	gorm.Model `json:"-"`
}
