package models

import "gorm.io/gorm"

// Category groups products for browsing and search.
type Category struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=2,max=100"`
	Description string `json:"description" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	ImageURL    string `json:"imageUrl" gorm:"type:varchar(500)"`
	gorm.Model  `json:"-"`
}
