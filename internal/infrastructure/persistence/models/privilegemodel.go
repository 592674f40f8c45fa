package models

import (
	"time"

	"privstore/internal/shared/constants"
)

// PrivilegeModel has one row per (user, tier); the unique index backs the
// upsert in the privilege repository.
type PrivilegeModel struct {
	ID               uint   `gorm:"primaryKey"`
	UserID           uint   `gorm:"not null;uniqueIndex:idx_privileges_user_tier,priority:1"`
	PrivilegeType    string `gorm:"size:20;not null;uniqueIndex:idx_privileges_user_tier,priority:2"`
	DurationType     string `gorm:"size:20;not null"`
	Price            int    `gorm:"not null"`
	ExpiresAt        *time.Time
	PaymentConfirmed bool      `gorm:"not null"`
	IsActive         bool      `gorm:"not null;index"`
	ActivatedAt      time.Time `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (PrivilegeModel) TableName() string {
	return constants.TablePrivileges
}
