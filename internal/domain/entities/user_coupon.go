package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserCoupon records a user's one-time claim of a coupon. At most one row
// exists per (user, coupon) pair.
type UserCoupon struct {
	ID        uuid.UUID `json:"uuid"`
	UserID    uuid.UUID `json:"user_uuid"`
	CouponID  uuid.UUID `json:"coupon_uuid"`
	IsUsed    bool      `json:"is_used"`
	UsedAt    null.Time `json:"used_at,omitempty"`
	CreatedAt time.Time `json:"claimed_at"`
}

// ClaimedCoupon is a user's wallet view of one claim, joined with the coupon.
type ClaimedCoupon struct {
	ID             uuid.UUID `json:"uuid"`
	CouponID       uuid.UUID `json:"coupon_uuid"`
	Title          string    `json:"title"`
	Terms          string    `json:"terms"`
	RestaurantName string    `json:"restaurant_name"`
	IsUsed         bool      `json:"is_used"`
	ClaimedAt      time.Time `json:"claimed_at"`
}

// MarkUsedInput represents the merchant's redemption update for a claim.
type MarkUsedInput struct {
	IsUsed *bool `json:"is_used" binding:"required"`
}
