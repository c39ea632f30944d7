package models

import "gorm.io/gorm"

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a customer or back-office account.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	Phone      string `json:"phone" gorm:"type:varchar(30)"`
	Role       string `json:"role" gorm:"type:varchar(20);default:'user'" validate:"omitempty,oneof=user admin"`
	gorm.Model `json:"-"`
}

// IsAdmin reports whether the user may access the back-office surface.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
