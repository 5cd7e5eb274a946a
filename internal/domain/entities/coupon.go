package entities

import (
	"time"

	"github.com/google/uuid"
)

// Coupon is a redeemable offer tied to a restaurant. Coupons are never
// deleted, only archived, and archiving is one-way.
type Coupon struct {
	ID           uuid.UUID `json:"uuid"`
	RestaurantID uuid.UUID `json:"restaurant_uuid"`
	Title        string    `json:"title"`
	Terms        string    `json:"terms"`
	IsArchived   bool      `json:"is_archived"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CouponCreateInput represents input for coupon creation
type CouponCreateInput struct {
	Title string `json:"title" binding:"required,min=1,max=255"`
	Terms string `json:"terms" binding:"required"`
}

// CouponDetail augments a coupon with claim statistics for its owner.
type CouponDetail struct {
	*Coupon
	TotalClaimed int64 `json:"total_claimed"`
	TotalUsed    int64 `json:"total_used"`
}

// CouponUsage is one claim row in the owner's usage report.
type CouponUsage struct {
	UserName  string    `json:"user_name"`
	IsUsed    bool      `json:"is_used"`
	ClaimedAt time.Time `json:"claimed_at"`
}

// CouponUsageReport lists every claim of a coupon for its owning merchant.
type CouponUsageReport struct {
	Title  string        `json:"title"`
	Usages []CouponUsage `json:"usages"`
}
