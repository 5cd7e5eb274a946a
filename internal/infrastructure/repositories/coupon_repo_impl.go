package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eathub.backend/internal/domain/entities"
	domainerrors "eathub.backend/internal/domain/errors"
	"eathub.backend/internal/infrastructure/models"
)

// CouponRepository implements coupon data operations
type CouponRepository struct {
	db *gorm.DB
}

// NewCouponRepository creates a new coupon repository
func NewCouponRepository(db *gorm.DB) *CouponRepository {
	return &CouponRepository{db: db}
}

// Create creates a new coupon
func (r *CouponRepository) Create(ctx context.Context, coupon *entities.Coupon) error {
	m := r.toModel(coupon)
	if err := dbFromContext(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	coupon.CreatedAt = m.CreatedAt
	coupon.UpdatedAt = m.UpdatedAt
	return nil
}

// GetActive gets a non-archived coupon by ID
func (r *CouponRepository) GetActive(ctx context.Context, id uuid.UUID) (*entities.Coupon, error) {
	var m models.Coupon
	err := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("id = ? AND is_archived = ?", id, false).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByID gets a coupon by ID regardless of archived state
func (r *CouponRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Coupon, error) {
	var m models.Coupon
	if err := dbFromContext(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// CountActive counts non-archived coupons of a restaurant
func (r *CouponRepository) CountActive(ctx context.Context, restaurantID uuid.UUID) (int64, error) {
	var count int64
	err := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&models.Coupon{}).
		Where("restaurant_id = ? AND is_archived = ?", restaurantID, false).
		Count(&count).Error
	return count, err
}

// ListActive lists non-archived coupons of a restaurant
func (r *CouponRepository) ListActive(ctx context.Context, restaurantID uuid.UUID) ([]*entities.Coupon, error) {
	var ms []models.Coupon
	err := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("restaurant_id = ? AND is_archived = ?", restaurantID, false).
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	items := make([]*entities.Coupon, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

// Archive sets is_archived on the restaurant's coupon. The predicate is
// scoped by restaurant but not by archived state, so an already archived
// coupon archives again without error.
func (r *CouponRepository) Archive(ctx context.Context, id, restaurantID uuid.UUID) error {
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&models.Coupon{}).
		Where("id = ? AND restaurant_id = ?", id, restaurantID).
		Updates(map[string]interface{}{
			"is_archived": true,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *CouponRepository) toEntity(m *models.Coupon) *entities.Coupon {
	return &entities.Coupon{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		Title:        m.Title,
		Terms:        m.Terms,
		IsArchived:   m.IsArchived,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *CouponRepository) toModel(e *entities.Coupon) *models.Coupon {
	return &models.Coupon{
		ID:           e.ID,
		RestaurantID: e.RestaurantID,
		Title:        e.Title,
		Terms:        e.Terms,
		IsArchived:   e.IsArchived,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// isDuplicateKey reports whether err is a unique-constraint violation. GORM
// only translates these for some drivers, so the raw messages from postgres
// and sqlite are matched as well.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint failed")
}
