package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eathub.backend/internal/domain/entities"
	domainerrors "eathub.backend/internal/domain/errors"
	"eathub.backend/internal/infrastructure/models"
)

// SubscriptionRepository implements subscription reads
type SubscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Create creates a new subscription
func (r *SubscriptionRepository) Create(ctx context.Context, sub *entities.Subscription) error {
	m := &models.Subscription{
		ID:        sub.ID,
		UserID:    sub.UserID,
		Product:   sub.Product,
		StartedAt: sub.StartedAt,
		EndedAt:   sub.EndedAt,
		CreatedAt: sub.CreatedAt,
	}
	if err := dbFromContext(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	sub.CreatedAt = m.CreatedAt
	return nil
}

// LatestByUser returns the subscription with the most recent ended_at
func (r *SubscriptionRepository) LatestByUser(ctx context.Context, userID uuid.UUID) (*entities.Subscription, error) {
	var m models.Subscription
	err := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("ended_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.Subscription{
		ID:        m.ID,
		UserID:    m.UserID,
		Product:   m.Product,
		StartedAt: m.StartedAt,
		EndedAt:   m.EndedAt,
		CreatedAt: m.CreatedAt,
	}, nil
}

// PaymentOrderRepository implements payment order writes
type PaymentOrderRepository struct {
	db *gorm.DB
}

// NewPaymentOrderRepository creates a new payment order repository
func NewPaymentOrderRepository(db *gorm.DB) *PaymentOrderRepository {
	return &PaymentOrderRepository{db: db}
}

// Create creates a new payment order
func (r *PaymentOrderRepository) Create(ctx context.Context, order *entities.PaymentOrder) error {
	m := &models.PaymentOrder{
		ID:        order.ID,
		OrderID:   order.OrderID,
		UserID:    order.UserID,
		Product:   order.Product,
		Amount:    order.Amount,
		Method:    order.Method,
		IsPaid:    order.IsPaid,
		CreatedAt: order.CreatedAt,
	}
	if err := dbFromContext(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if isDuplicateKey(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	order.CreatedAt = m.CreatedAt
	return nil
}
