package repositories

import (
	"context"

	"github.com/google/uuid"

	"eathub.backend/internal/domain/entities"
)

// SubscriptionRepository defines VIP subscription reads
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *entities.Subscription) error
	// LatestByUser returns the subscription with the most recent ended_at,
	// or ErrNotFound when the user never subscribed.
	LatestByUser(ctx context.Context, userID uuid.UUID) (*entities.Subscription, error)
}

// PaymentOrderRepository defines payment order writes
type PaymentOrderRepository interface {
	Create(ctx context.Context, order *entities.PaymentOrder) error
}
