package usecases

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"eathub.backend/internal/domain/entities"
	domainerrors "eathub.backend/internal/domain/errors"
	"eathub.backend/internal/domain/repositories"
	"eathub.backend/internal/infrastructure/metrics"
	"eathub.backend/pkg/utils"
)

// CouponUsecase handles coupon business logic
type CouponUsecase struct {
	coupons repositories.CouponRepository
	claims  repositories.UserCouponRepository
	uow     repositories.UnitOfWork
}

// NewCouponUsecase creates a new coupon usecase
func NewCouponUsecase(
	coupons repositories.CouponRepository,
	claims repositories.UserCouponRepository,
	uow repositories.UnitOfWork,
) *CouponUsecase {
	return &CouponUsecase{coupons: coupons, claims: claims, uow: uow}
}

// Create creates a coupon for the caller's restaurant. The quota count and
// the insert run inside one transaction so concurrent creates cannot both
// pass the check.
func (u *CouponUsecase) Create(ctx context.Context, user *entities.User, input *entities.CouponCreateInput) (*entities.Coupon, error) {
	if !user.Role.IsMerchant() {
		return nil, domainerrors.Forbidden("此帳戶無建立優惠券權限")
	}
	if !user.RestaurantID.Valid {
		return nil, domainerrors.Forbidden("帳戶未綁定餐廳")
	}

	coupon := &entities.Coupon{
		ID:           utils.GenerateUUIDv7(),
		RestaurantID: user.RestaurantID.UUID,
		Title:        input.Title,
		Terms:        input.Terms,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		count, err := u.coupons.CountActive(txCtx, user.RestaurantID.UUID)
		if err != nil {
			return err
		}
		if decision := EvaluateCouponCreate(user, count); !decision.Allowed {
			return domainerrors.NewAppError(http.StatusForbidden, "已達優惠券建立上限", domainerrors.ErrLimitExceeded)
		}
		return u.coupons.Create(txCtx, coupon)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrLimitExceeded) {
			metrics.IncEntitlementDenial("coupon")
		}
		return nil, err
	}
	return coupon, nil
}

// Claim records the caller's one-time claim of a coupon. A repeated claim is
// not an error: it reports created=false and leaves the single row in place.
func (u *CouponUsecase) Claim(ctx context.Context, userID, couponID uuid.UUID) (bool, error) {
	if _, err := u.coupons.GetActive(ctx, couponID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return false, domainerrors.NotFound("優惠券不存在")
		}
		return false, err
	}

	created := false
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		exists, err := u.claims.Exists(txCtx, userID, couponID)
		if err != nil {
			return err
		}
		if exists {
			return domainerrors.ErrAlreadyClaimed
		}
		claim := &entities.UserCoupon{
			ID:        utils.GenerateUUIDv7(),
			UserID:    userID,
			CouponID:  couponID,
			CreatedAt: time.Now(),
		}
		if err := u.claims.Create(txCtx, claim); err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		// the unique index turns a lost race into the same duplicate outcome
		if errors.Is(err, domainerrors.ErrAlreadyClaimed) {
			metrics.IncCouponClaim("duplicate")
			return false, nil
		}
		metrics.IncCouponClaim("error")
		return false, err
	}
	metrics.IncCouponClaim("claimed")
	return created, nil
}

// Archive flips the coupon's archived flag. The lookup is restaurant-scoped,
// so a coupon belonging to someone else reads as not found.
func (u *CouponUsecase) Archive(ctx context.Context, user *entities.User, couponID uuid.UUID) error {
	if !user.Role.IsMerchant() {
		return domainerrors.Forbidden("此帳戶無封存優惠券權限")
	}
	if !user.RestaurantID.Valid {
		return domainerrors.BadRequest("帳戶未綁定餐廳")
	}
	if err := u.coupons.Archive(ctx, couponID, user.RestaurantID.UUID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("優惠券不存在")
		}
		return err
	}
	return nil
}

// Detail returns a non-archived coupon with claim statistics. Ownership is
// checked after the lookup, so "exists but not yours" is a 403 here.
func (u *CouponUsecase) Detail(ctx context.Context, user *entities.User, couponID uuid.UUID) (*entities.CouponDetail, error) {
	if !user.Role.IsMerchant() {
		return nil, domainerrors.Forbidden("此帳戶無商家權限")
	}
	coupon, err := u.coupons.GetActive(ctx, couponID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("優惠券不存在")
		}
		return nil, err
	}
	if !user.RestaurantID.Valid || user.RestaurantID.UUID != coupon.RestaurantID {
		return nil, domainerrors.Forbidden("無權限查看此優惠券")
	}

	totalClaimed, err := u.claims.CountByCoupon(ctx, couponID)
	if err != nil {
		return nil, err
	}
	totalUsed, err := u.claims.CountUsedByCoupon(ctx, couponID)
	if err != nil {
		return nil, err
	}
	return &entities.CouponDetail{
		Coupon:       coupon,
		TotalClaimed: totalClaimed,
		TotalUsed:    totalUsed,
	}, nil
}

// Usages lists every claim of the coupon for its owner. The lookup does not
// filter by archived state, so archived coupons still report their usage.
func (u *CouponUsecase) Usages(ctx context.Context, user *entities.User, couponID uuid.UUID) (*entities.CouponUsageReport, error) {
	coupon, err := u.coupons.GetByID(ctx, couponID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("優惠券不存在")
		}
		return nil, err
	}
	if !user.RestaurantID.Valid || user.RestaurantID.UUID != coupon.RestaurantID {
		return nil, domainerrors.Forbidden("無權限查看此優惠券")
	}

	usages, err := u.claims.ListByCoupon(ctx, couponID)
	if err != nil {
		return nil, err
	}
	return &entities.CouponUsageReport{Title: coupon.Title, Usages: usages}, nil
}
