package models

import "gorm.io/gorm"

// Product represents a cosmetics product in the catalog.
type Product struct {
	ID          string         `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string         `json:"name" gorm:"type:varchar(200)" validate:"required,min=2,max=200"`
	Description string         `json:"description" gorm:"type:text" validate:"omitempty,max=2000"`
	Price       float64        `json:"price" validate:"required,gt=0"`
	Stock       int            `json:"stock" validate:"gte=0"`
	CategoryID  string         `json:"categoryId" gorm:"index;type:varchar(36)"`
	Category    *Category      `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Images      []ProductImage `json:"images" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Reviews     []Review       `json:"reviews,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	QnA         []Question     `json:"qna,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`

	// Derived from Reviews on the detail view; never stored.
	Rating      float64 `json:"rating" gorm:"-"`
	ReviewCount int     `json:"reviewCount" gorm:"-"`

	gorm.Model `json:"-"`
}

// ProductImage is a single image attached to a product. Position controls
// display order; the first image is the thumbnail.
type ProductImage struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID  string `json:"productId" gorm:"index;type:varchar(36)"`
	ImageURL   string `json:"imageUrl" gorm:"type:varchar(500)"`
	Position   int    `json:"position"`
	gorm.Model `json:"-"`
}

// ProductStats summarizes the catalog for the admin dashboard.
type ProductStats struct {
	TotalProducts int64 `json:"totalProducts"`
	OutOfStock    int64 `json:"outOfStock"`
	LowStock      int64 `json:"lowStock"` // stock below 5
}
