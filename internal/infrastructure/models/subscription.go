package models

import (
	"time"

	"github.com/google/uuid"
)

type Subscription struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Product   string    `gorm:"type:varchar(100);not null"`
	StartedAt time.Time `gorm:"not null"`
	EndedAt   time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

type PaymentOrder struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	OrderID   string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Product   string    `gorm:"type:varchar(100);not null"`
	Amount    int64     `gorm:"not null"`
	Method    string    `gorm:"type:varchar(50);not null"`
	IsPaid    bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}
