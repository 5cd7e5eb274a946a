package usecases

import (
	"eathub.backend/internal/domain/entities"
)

// Decision is the outcome of a quota evaluation: whether the creation is
// allowed and which limit applied.
type Decision struct {
	Allowed bool
	Limit   int64
}

// CouponLimit returns the active-coupon quota for a role.
func CouponLimit(role entities.UserRole) int64 {
	if role == entities.RoleVIPMerchant {
		return 3
	}
	return 1
}

// PromotionLimit returns the active-promotion quota. Unlike the coupon
// quota it also honors the is_vip flag.
func PromotionLimit(user *entities.User) int64 {
	if user.Role == entities.RoleVIPMerchant || user.IsVIP {
		return 3
	}
	return 1
}

// EvaluateCouponCreate decides whether the user may create another coupon
// given the restaurant's current active count. Pure; role and restaurant
// guards run before this in the service flow.
func EvaluateCouponCreate(user *entities.User, activeCount int64) Decision {
	limit := CouponLimit(user.Role)
	return Decision{Allowed: activeCount < limit, Limit: limit}
}

// EvaluatePromotionCreate decides whether the user may create another
// promotion given the restaurant's current active count.
func EvaluatePromotionCreate(user *entities.User, activeCount int64) Decision {
	limit := PromotionLimit(user)
	return Decision{Allowed: activeCount < limit, Limit: limit}
}

// PromotionRoleLabel is the localized label embedded in the promotion
// limit-exceeded message.
func PromotionRoleLabel(user *entities.User) string {
	if user.IsVIP {
		return "VIP 商家"
	}
	return "一般商家"
}
