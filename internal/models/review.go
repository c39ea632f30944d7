package models

import (
	"time"

	"gorm.io/gorm"
)

// Review is a customer rating left on a product. Reviews are created by
// shoppers and removed only by the back office.
type Review struct {
	ID           string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID    string `json:"productId" gorm:"index;type:varchar(36)"`
	ReviewerName string `json:"reviewerName" gorm:"type:varchar(100)"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment" gorm:"type:text"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
