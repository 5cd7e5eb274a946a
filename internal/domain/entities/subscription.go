package entities

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is one paid VIP period for a user. Only the latest ended_at
// matters to this service; billing manages the rest.
type Subscription struct {
	ID        uuid.UUID `json:"uuid"`
	UserID    uuid.UUID `json:"user_uuid"`
	Product   string    `json:"product"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
	CreatedAt time.Time `json:"created_at"`
}

// PaymentOrder is a pending subscription purchase awaiting payment
// confirmation.
type PaymentOrder struct {
	ID        uuid.UUID `json:"uuid"`
	OrderID   string    `json:"order_id"`
	UserID    uuid.UUID `json:"user_uuid"`
	Product   string    `json:"product"`
	Amount    int64     `json:"amount"`
	Method    string    `json:"method"`
	IsPaid    bool      `json:"is_paid"`
	CreatedAt time.Time `json:"created_at"`
}

// PaymentOrderInput represents input for preparing a payment order
type PaymentOrderInput struct {
	Product string `json:"product" binding:"required"`
	Amount  int64  `json:"amount" binding:"required,gt=0"`
	Method  string `json:"method" binding:"required"`
}
