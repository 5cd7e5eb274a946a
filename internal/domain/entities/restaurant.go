package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Restaurant is owned by at most one merchant account and owns the coupons
// and promotions published under it.
type Restaurant struct {
	ID        uuid.UUID   `json:"uuid"`
	Name      string      `json:"name"`
	Address   null.String `json:"address,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// RestaurantSummary is the short identity block embedded in merchant payloads.
type RestaurantSummary struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
}
