package repositories

import (
	"context"

	"github.com/google/uuid"

	"eathub.backend/internal/domain/entities"
)

// PromotionRepository defines promotion data operations
type PromotionRepository interface {
	Create(ctx context.Context, promotion *entities.Promotion) error
	// GetActive returns the promotion only while it is not archived.
	GetActive(ctx context.Context, id uuid.UUID) (*entities.Promotion, error)
	CountActive(ctx context.Context, restaurantID uuid.UUID) (int64, error)
	ListActive(ctx context.Context, restaurantID uuid.UUID) ([]*entities.Promotion, error)
	// Archive flips is_archived on the restaurant's promotion; re-archiving
	// succeeds silently.
	Archive(ctx context.Context, id, restaurantID uuid.UUID) error
}
