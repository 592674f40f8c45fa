package models

import (
	"time"

	"privstore/internal/shared/constants"
)

type UserModel struct {
	ID          uint      `gorm:"primaryKey"`
	SteamID     string    `gorm:"uniqueIndex;size:32;not null"`
	DisplayName string    `gorm:"size:255;not null"`
	AvatarURL   string    `gorm:"size:512;not null"`
	IsAdmin     bool      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null;index"`
	LastLoginAt time.Time `gorm:"not null"`
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
