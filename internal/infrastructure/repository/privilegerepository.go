package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"privstore/internal/domain/privilege"
	"privstore/internal/infrastructure/persistence/mappers"
	"privstore/internal/infrastructure/persistence/models"
	"privstore/internal/shared/db"
	"privstore/internal/shared/logger"
	"privstore/internal/shared/mapper"
)

// PrivilegeRepositoryImpl implements privilege.Repository on GORM
type PrivilegeRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PrivilegeMapper
	logger logger.Interface
}

func NewPrivilegeRepository(database *gorm.DB, log logger.Interface) *PrivilegeRepositoryImpl {
	return &PrivilegeRepositoryImpl{
		db:     database,
		mapper: mappers.NewPrivilegeMapper(),
		logger: log,
	}
}

// Upsert writes the row for (user, tier) in one statement. Concurrent
// approvals for the same pair resolve on the unique index, last commit wins.
func (r *PrivilegeRepositoryImpl) Upsert(ctx context.Context, p *privilege.Privilege) error {
	model := r.mapper.ToModel(p)
	model.ID = 0

	err := db.GetTxFromContext(ctx, r.db).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "privilege_type"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"duration_type",
			"price",
			"expires_at",
			"activated_at",
			"is_active",
			"payment_confirmed",
			"updated_at",
		}),
	}).Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to upsert privilege",
			"user_id", p.UserID(),
			"tier", p.Tier(),
			"error", err)
		return fmt.Errorf("failed to upsert privilege: %w", err)
	}

	r.logger.Infow("privilege activated",
		"user_id", p.UserID(),
		"tier", p.Tier(),
		"duration", p.Duration(),
		"expires_at", p.ExpiresAt())
	return nil
}

func (r *PrivilegeRepositoryImpl) ListActiveByUser(ctx context.Context, userID uint, now time.Time) ([]*privilege.Privilege, error) {
	var rows []models.PrivilegeModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ? AND is_active = ?", userID, true).
		Where("(expires_at IS NULL OR expires_at > ?)", now).
		Order("privilege_type").
		Find(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to list active privileges", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list active privileges: %w", err)
	}

	return mapper.MapSliceWithError(rows, func(row models.PrivilegeModel) (*privilege.Privilege, error) {
		return r.mapper.ToEntity(&row)
	})
}
