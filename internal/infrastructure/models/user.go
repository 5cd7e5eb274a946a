package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	UserName     string     `gorm:"type:varchar(100);not null"`
	FirstName    *string    `gorm:"type:varchar(100)"`
	LastName     *string    `gorm:"type:varchar(100)"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	Role         string     `gorm:"type:varchar(50);not null;default:'user'"`
	IsVIP        bool       `gorm:"column:is_vip;not null;default:false"`
	RestaurantID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
