package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents platform roles
type UserRole string

const (
	RoleUser        UserRole = "user"
	RoleMerchant    UserRole = "merchant"
	RoleVIPMerchant UserRole = "vip_merchant"
)

// IsMerchant reports whether the role may manage restaurant content.
func (r UserRole) IsMerchant() bool {
	return r == RoleMerchant || r == RoleVIPMerchant
}

// User represents a platform account. The restaurant binding is present only
// for merchant accounts.
type User struct {
	ID           uuid.UUID     `json:"uuid"`
	Email        string        `json:"email"`
	UserName     string        `json:"user_name"`
	FirstName    null.String   `json:"first_name,omitempty"`
	LastName     null.String   `json:"last_name,omitempty"`
	PasswordHash string        `json:"-"`
	Role         UserRole      `json:"role"`
	IsVIP        bool          `json:"is_vip"`
	RestaurantID uuid.NullUUID `json:"-"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// SignupInput represents input for a regular account signup
type SignupInput struct {
	UserName string `json:"user_name" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// MerchantSignupInput represents input for a merchant account signup
type MerchantSignupInput struct {
	UserName       string `json:"user_name" binding:"required,min=1,max=100"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8,max=72"`
	RestaurantName string `json:"restaurant_name" binding:"required,min=1,max=255"`
	Address        string `json:"address"`
}

// LoginInput represents login credentials
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
