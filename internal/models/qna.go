package models

import (
	"time"

	"gorm.io/gorm"
)

// Question is a product Q&A entry. Shoppers ask; the back office answers.
// An unanswered question has an empty Answer.
type Question struct {
	ID        string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID string `json:"productId" gorm:"index;type:varchar(36)"`
	Question  string `json:"question" gorm:"type:text"`
	Answer    string `json:"answer" gorm:"type:text"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// Answered reports whether the back office has replied.
func (q *Question) Answered() bool {
	return q.Answer != ""
}
