package models

import (
	"time"

	"privstore/internal/shared/constants"
)

type PurchaseRequestModel struct {
	ID            uint       `gorm:"primaryKey"`
	UserID        uint       `gorm:"index;not null"`
	User          *UserModel `gorm:"foreignKey:UserID"`
	PrivilegeType string     `gorm:"size:20;not null"`
	DurationType  string     `gorm:"size:20;not null"`
	Price         int        `gorm:"not null"`
	PaymentProof  string     `gorm:"type:text;not null"`
	Status        string     `gorm:"size:20;not null;index:idx_purchase_requests_status_created,priority:1"`
	CreatedAt     time.Time  `gorm:"not null;index:idx_purchase_requests_status_created,priority:2"`
	ProcessedAt   *time.Time
}

func (PurchaseRequestModel) TableName() string {
	return constants.TablePurchaseRequests
}
