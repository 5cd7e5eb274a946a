package entities

import (
	"time"

	"github.com/google/uuid"
)

// Promotion is a non-redeemable announcement post tied to a restaurant, with
// the same archive-only lifecycle as Coupon.
type Promotion struct {
	ID           uuid.UUID `json:"uuid"`
	RestaurantID uuid.UUID `json:"restaurant_uuid"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	IsArchived   bool      `json:"is_archived"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PromotionCreateInput represents input for promotion creation
type PromotionCreateInput struct {
	Title   string `json:"title" binding:"required,min=1,max=255"`
	Content string `json:"content" binding:"required"`
}
