package entities

import "github.com/volatiletech/null/v8"

// MerchantStatus carries the quota flags and VIP expiry shown on the
// merchant dashboard.
type MerchantStatus struct {
	Role                    UserRole  `json:"role"`
	IsCouponLimitReached    bool      `json:"is_coupon_limit_reached"`
	IsPromotionLimitReached bool      `json:"is_promotion_limit_reached"`
	VIPExpiry               null.Time `json:"vip_expiry"`
}

// MerchantDashboard aggregates restaurant identity, status flags and the
// active coupon/promotion listings into one payload.
type MerchantDashboard struct {
	Restaurant     RestaurantSummary `json:"restaurant"`
	MerchantStatus MerchantStatus    `json:"merchant_status"`
	Promotions     []*Promotion      `json:"promotions"`
	Coupons        []*Coupon         `json:"coupons"`
}
