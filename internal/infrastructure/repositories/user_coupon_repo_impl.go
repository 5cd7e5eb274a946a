package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"eathub.backend/internal/domain/entities"
	domainerrors "eathub.backend/internal/domain/errors"
	"eathub.backend/internal/infrastructure/models"
)

// UserCouponRepository implements claim data operations
type UserCouponRepository struct {
	db *gorm.DB
}

// NewUserCouponRepository creates a new user coupon repository
func NewUserCouponRepository(db *gorm.DB) *UserCouponRepository {
	return &UserCouponRepository{db: db}
}

// Create inserts a claim. The (user_id, coupon_id) unique index turns a
// concurrent double-claim into ErrAlreadyClaimed instead of a second row.
func (r *UserCouponRepository) Create(ctx context.Context, claim *entities.UserCoupon) error {
	m := &models.UserCoupon{
		ID:        claim.ID,
		UserID:    claim.UserID,
		CouponID:  claim.CouponID,
		IsUsed:    claim.IsUsed,
		UsedAt:    claim.UsedAt.Ptr(),
		CreatedAt: claim.CreatedAt,
	}
	if err := dbFromContext(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if isDuplicateKey(err) {
			return domainerrors.ErrAlreadyClaimed
		}
		return err
	}
	claim.CreatedAt = m.CreatedAt
	return nil
}

// Exists reports whether the user already claimed the coupon
func (r *UserCouponRepository) Exists(ctx context.Context, userID, couponID uuid.UUID) (bool, error) {
	var count int64
	err := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&models.UserCoupon{}).
		Where("user_id = ? AND coupon_id = ?", userID, couponID).
		Count(&count).Error
	return count > 0, err
}

// GetByID gets a claim by ID
func (r *UserCouponRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.UserCoupon, error) {
	var m models.UserCoupon
	if err := dbFromContext(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.UserCoupon{
		ID:        m.ID,
		UserID:    m.UserID,
		CouponID:  m.CouponID,
		IsUsed:    m.IsUsed,
		UsedAt:    null.TimeFromPtr(m.UsedAt),
		CreatedAt: m.CreatedAt,
	}, nil
}

// CountByCoupon counts all claims of a coupon
func (r *UserCouponRepository) CountByCoupon(ctx context.Context, couponID uuid.UUID) (int64, error) {
	var count int64
	err := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&models.UserCoupon{}).
		Where("coupon_id = ?", couponID).
		Count(&count).Error
	return count, err
}

// CountUsedByCoupon counts redeemed claims of a coupon
func (r *UserCouponRepository) CountUsedByCoupon(ctx context.Context, couponID uuid.UUID) (int64, error) {
	var count int64
	err := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&models.UserCoupon{}).
		Where("coupon_id = ? AND is_used = ?", couponID, true).
		Count(&count).Error
	return count, err
}

// ListByCoupon lists claims of a coupon joined with claimant identity
func (r *UserCouponRepository) ListByCoupon(ctx context.Context, couponID uuid.UUID) ([]entities.CouponUsage, error) {
	var rows []struct {
		UserName  string
		IsUsed    bool
		CreatedAt time.Time
	}
	err := dbFromContext(ctx, r.db).WithContext(ctx).
		Table("user_coupons").
		Select("users.user_name, user_coupons.is_used, user_coupons.created_at").
		Joins("JOIN users ON users.id = user_coupons.user_id").
		Where("user_coupons.coupon_id = ?", couponID).
		Order("user_coupons.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	usages := make([]entities.CouponUsage, 0, len(rows))
	for _, row := range rows {
		usages = append(usages, entities.CouponUsage{
			UserName:  row.UserName,
			IsUsed:    row.IsUsed,
			ClaimedAt: row.CreatedAt,
		})
	}
	return usages, nil
}

// ListByUser lists a user's claims joined with coupon and restaurant
func (r *UserCouponRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entities.ClaimedCoupon, error) {
	var rows []struct {
		ID             uuid.UUID
		CouponID       uuid.UUID
		Title          string
		Terms          string
		RestaurantName string
		IsUsed         bool
		CreatedAt      time.Time
	}
	err := dbFromContext(ctx, r.db).WithContext(ctx).
		Table("user_coupons").
		Select("user_coupons.id, user_coupons.coupon_id, coupons.title, coupons.terms, restaurants.name AS restaurant_name, user_coupons.is_used, user_coupons.created_at").
		Joins("JOIN coupons ON coupons.id = user_coupons.coupon_id").
		Joins("JOIN restaurants ON restaurants.id = coupons.restaurant_id").
		Where("user_coupons.user_id = ?", userID).
		Order("user_coupons.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]entities.ClaimedCoupon, 0, len(rows))
	for _, row := range rows {
		items = append(items, entities.ClaimedCoupon{
			ID:             row.ID,
			CouponID:       row.CouponID,
			Title:          row.Title,
			Terms:          row.Terms,
			RestaurantName: row.RestaurantName,
			IsUsed:         row.IsUsed,
			ClaimedAt:      row.CreatedAt,
		})
	}
	return items, nil
}

// DeleteByIDAndUser deletes the user's own claim. The user scope in the
// predicate collapses "not yours" into ErrNotFound.
func (r *UserCouponRepository) DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error {
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.UserCoupon{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SetUsed updates the redemption state of a claim
func (r *UserCouponRepository) SetUsed(ctx context.Context, id uuid.UUID, isUsed bool) error {
	updates := map[string]interface{}{
		"is_used": isUsed,
		"used_at": nil,
	}
	if isUsed {
		updates["used_at"] = time.Now()
	}

	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&models.UserCoupon{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
