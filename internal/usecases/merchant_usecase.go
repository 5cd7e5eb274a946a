package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"eathub.backend/internal/domain/entities"
	domainerrors "eathub.backend/internal/domain/errors"
	"eathub.backend/internal/domain/repositories"
	"eathub.backend/pkg/logger"
)

// MerchantUsecase assembles the merchant dashboard
type MerchantUsecase struct {
	users         repositories.UserRepository
	restaurants   repositories.RestaurantRepository
	coupons       repositories.CouponRepository
	promotions    repositories.PromotionRepository
	subscriptions repositories.SubscriptionRepository
}

// NewMerchantUsecase creates a new merchant usecase
func NewMerchantUsecase(
	users repositories.UserRepository,
	restaurants repositories.RestaurantRepository,
	coupons repositories.CouponRepository,
	promotions repositories.PromotionRepository,
	subscriptions repositories.SubscriptionRepository,
) *MerchantUsecase {
	return &MerchantUsecase{
		users:         users,
		restaurants:   restaurants,
		coupons:       coupons,
		promotions:    promotions,
		subscriptions: subscriptions,
	}
}

// dashboardLimit is the dashboard's own quota table. It keys on role alone
// and must stay in sync with the evaluator's limits.
func dashboardLimit(role entities.UserRole) int64 {
	if role == entities.RoleVIPMerchant {
		return 3
	}
	return 1
}

// Dashboard aggregates restaurant identity, quota flags, VIP expiry and the
// active listings. A vip_merchant whose latest subscription has lapsed is
// downgraded to merchant before aggregation.
func (u *MerchantUsecase) Dashboard(ctx context.Context, user *entities.User) (*entities.MerchantDashboard, error) {
	if !user.Role.IsMerchant() {
		return nil, domainerrors.Forbidden("此帳戶無商家權限")
	}

	vipExpiry, err := u.resolveVIPExpiry(ctx, user)
	if err != nil {
		return nil, err
	}
	if user.Role == entities.RoleVIPMerchant && !vipExpiry.Valid {
		if err := u.users.UpdateRole(ctx, user.ID, entities.RoleMerchant); err != nil {
			return nil, err
		}
		logger.Info(ctx, "vip merchant downgraded", zap.String("user_id", user.ID.String()))
		user.Role = entities.RoleMerchant
	}

	if !user.RestaurantID.Valid {
		return nil, domainerrors.BadRequest("帳戶未綁定餐廳")
	}
	restaurantID := user.RestaurantID.UUID

	restaurant, err := u.restaurants.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	coupons, err := u.coupons.ListActive(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	promotions, err := u.promotions.ListActive(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	maxCount := dashboardLimit(user.Role)
	return &entities.MerchantDashboard{
		Restaurant: entities.RestaurantSummary{
			UUID: restaurant.ID.String(),
			Name: restaurant.Name,
		},
		MerchantStatus: entities.MerchantStatus{
			Role:                    user.Role,
			IsCouponLimitReached:    int64(len(coupons)) >= maxCount,
			IsPromotionLimitReached: int64(len(promotions)) >= maxCount,
			VIPExpiry:               vipExpiry,
		},
		Promotions: promotions,
		Coupons:    coupons,
	}, nil
}

// resolveVIPExpiry returns the latest subscription's end date, valid only
// while that date is today or later.
func (u *MerchantUsecase) resolveVIPExpiry(ctx context.Context, user *entities.User) (null.Time, error) {
	latest, err := u.subscriptions.LatestByUser(ctx, user.ID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return null.Time{}, nil
		}
		return null.Time{}, err
	}
	if dateOf(latest.EndedAt).Before(dateOf(time.Now())) {
		return null.Time{}, nil
	}
	return null.TimeFrom(latest.EndedAt), nil
}

// dateOf truncates a timestamp to its calendar date.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
