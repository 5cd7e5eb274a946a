package repositories

import (
	"context"

	"github.com/google/uuid"

	"eathub.backend/internal/domain/entities"
)

// CouponRepository defines coupon data operations. Lookup variants differ in
// their predicate on purpose: scoped lookups collapse "not yours" into
// ErrNotFound, unscoped ones leave the ownership check to the caller.
type CouponRepository interface {
	Create(ctx context.Context, coupon *entities.Coupon) error
	// GetActive returns the coupon only while it is not archived.
	GetActive(ctx context.Context, id uuid.UUID) (*entities.Coupon, error)
	// GetByID returns the coupon regardless of its archived state.
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Coupon, error)
	CountActive(ctx context.Context, restaurantID uuid.UUID) (int64, error)
	ListActive(ctx context.Context, restaurantID uuid.UUID) ([]*entities.Coupon, error)
	// Archive flips is_archived on the restaurant's coupon. The predicate does
	// not filter on is_archived, so re-archiving succeeds silently.
	Archive(ctx context.Context, id, restaurantID uuid.UUID) error
}

// UserCouponRepository defines claim data operations
type UserCouponRepository interface {
	// Create inserts a claim; a duplicate (user, coupon) pair yields
	// ErrAlreadyClaimed.
	Create(ctx context.Context, claim *entities.UserCoupon) error
	Exists(ctx context.Context, userID, couponID uuid.UUID) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.UserCoupon, error)
	CountByCoupon(ctx context.Context, couponID uuid.UUID) (int64, error)
	CountUsedByCoupon(ctx context.Context, couponID uuid.UUID) (int64, error)
	ListByCoupon(ctx context.Context, couponID uuid.UUID) ([]entities.CouponUsage, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entities.ClaimedCoupon, error)
	DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error
	SetUsed(ctx context.Context, id uuid.UUID, isUsed bool) error
}
