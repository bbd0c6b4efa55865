package models

import "time"

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
	RoleKitchen  UserRole = "kitchen"
	RoleRider    UserRole = "rider"
)

// Valid reports whether r is one of the recognized roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleKitchen, RoleRider:
		return true
	}
	return false
}

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	OpenID       string    `json:"open_id,omitempty" gorm:"index"` // external identity from OAuth sign-in, empty for password accounts
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         UserRole  `json:"role" gorm:"not null;default:'customer'"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
