package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eathub.backend/internal/domain/entities"
	domainerrors "eathub.backend/internal/domain/errors"
	"eathub.backend/internal/infrastructure/models"
)

// PromotionRepository implements promotion data operations
type PromotionRepository struct {
	db *gorm.DB
}

// NewPromotionRepository creates a new promotion repository
func NewPromotionRepository(db *gorm.DB) *PromotionRepository {
	return &PromotionRepository{db: db}
}

// Create creates a new promotion
func (r *PromotionRepository) Create(ctx context.Context, promotion *entities.Promotion) error {
	m := r.toModel(promotion)
	if err := dbFromContext(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	promotion.CreatedAt = m.CreatedAt
	promotion.UpdatedAt = m.UpdatedAt
	return nil
}

// GetActive gets a non-archived promotion by ID
func (r *PromotionRepository) GetActive(ctx context.Context, id uuid.UUID) (*entities.Promotion, error) {
	var m models.Promotion
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

// CountActive counts non-archived promotions of a restaurant
func (r *PromotionRepository) CountActive(ctx context.Context, restaurantID uuid.UUID) (int64, error) {
	var count int64
	err := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&models.Promotion{}).
		Where("restaurant_id = ? AND is_archived = ?", restaurantID, false).
		Count(&count).Error
	return count, err
}

// ListActive lists non-archived promotions of a restaurant
func (r *PromotionRepository) ListActive(ctx context.Context, restaurantID uuid.UUID) ([]*entities.Promotion, error) {
	var ms []models.Promotion
	err := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("restaurant_id = ? AND is_archived = ?", restaurantID, false).
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	items := make([]*entities.Promotion, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

// Archive sets is_archived on the restaurant's promotion; the predicate does
// not filter by archived state, so re-archiving succeeds silently.
func (r *PromotionRepository) Archive(ctx context.Context, id, restaurantID uuid.UUID) error {
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&models.Promotion{}).
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

func (r *PromotionRepository) toEntity(m *models.Promotion) *entities.Promotion {
	return &entities.Promotion{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		Title:        m.Title,
		Content:      m.Content,
		IsArchived:   m.IsArchived,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *PromotionRepository) toModel(e *entities.Promotion) *models.Promotion {
	return &models.Promotion{
		ID:           e.ID,
		RestaurantID: e.RestaurantID,
		Title:        e.Title,
		Content:      e.Content,
		IsArchived:   e.IsArchived,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
