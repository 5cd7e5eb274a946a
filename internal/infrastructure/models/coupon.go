package models

import (
	"time"

	"github.com/google/uuid"
)

type Coupon struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Terms        string    `gorm:"type:text;not null"`
	IsArchived   bool      `gorm:"not null;default:false;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserCoupon carries the claim-once guarantee in the schema: the composite
// unique index backs up the check-then-act claim flow under concurrency.
type UserCoupon struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_user_coupon"`
	CouponID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_user_coupon"`
	IsUsed    bool       `gorm:"not null;default:false"`
	UsedAt    *time.Time `gorm:"type:timestamp"`
	CreatedAt time.Time
}
