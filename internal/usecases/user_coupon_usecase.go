package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"eathub.backend/internal/domain/entities"
	domainerrors "eathub.backend/internal/domain/errors"
	"eathub.backend/internal/domain/repositories"
)

// UserCouponUsecase handles the user's coupon wallet and the merchant's
// redemption updates.
type UserCouponUsecase struct {
	claims  repositories.UserCouponRepository
	coupons repositories.CouponRepository
}

// NewUserCouponUsecase creates a new user coupon usecase
func NewUserCouponUsecase(
	claims repositories.UserCouponRepository,
	coupons repositories.CouponRepository,
) *UserCouponUsecase {
	return &UserCouponUsecase{claims: claims, coupons: coupons}
}

// ListMine lists the caller's claimed coupons, newest first
func (u *UserCouponUsecase) ListMine(ctx context.Context, userID uuid.UUID) ([]entities.ClaimedCoupon, error) {
	return u.claims.ListByUser(ctx, userID)
}

// Delete removes the caller's own claim. The user scope in the delete
// predicate collapses "not yours" into not found.
func (u *UserCouponUsecase) Delete(ctx context.Context, claimID, userID uuid.UUID) error {
	if err := u.claims.DeleteByIDAndUser(ctx, claimID, userID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("優惠券不存在")
		}
		return err
	}
	return nil
}

// MarkUsed lets the owning merchant flip a claim's redemption state. The
// claim lookup is unscoped; ownership is verified through the coupon's
// restaurant afterwards.
func (u *UserCouponUsecase) MarkUsed(ctx context.Context, user *entities.User, claimID uuid.UUID, isUsed bool) error {
	if !user.Role.IsMerchant() {
		return domainerrors.Forbidden("此帳戶無商家權限")
	}

	claim, err := u.claims.GetByID(ctx, claimID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("優惠券不存在")
		}
		return err
	}
	coupon, err := u.coupons.GetByID(ctx, claim.CouponID)
	if err != nil {
		return err
	}
	if !user.RestaurantID.Valid || user.RestaurantID.UUID != coupon.RestaurantID {
		return domainerrors.Forbidden("無權限更新此優惠券")
	}

	return u.claims.SetUsed(ctx, claimID, isUsed)
}
