package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"privstore/internal/domain/purchase"
	"privstore/internal/infrastructure/persistence/mappers"
	"privstore/internal/infrastructure/persistence/models"
	"privstore/internal/shared/db"
	"privstore/internal/shared/logger"
)

// PurchaseRequestRepositoryImpl implements purchase.Repository on GORM
type PurchaseRequestRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PurchaseRequestMapper
	logger logger.Interface
}

func NewPurchaseRequestRepository(database *gorm.DB, log logger.Interface) *PurchaseRequestRepositoryImpl {
	return &PurchaseRequestRepositoryImpl{
		db:     database,
		mapper: mappers.NewPurchaseRequestMapper(mappers.NewUserMapper()),
		logger: log,
	}
}

func (r *PurchaseRequestRepositoryImpl) Create(ctx context.Context, req *purchase.Request) error {
	model := r.mapper.ToModel(req)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create purchase request",
			"user_id", req.UserID(),
			"tier", req.Tier(),
			"duration", req.Duration(),
			"error", err)
		return fmt.Errorf("failed to create purchase request: %w", err)
	}

	if err := req.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set purchase request ID: %w", err)
	}
	req.SetCreatedAt(model.CreatedAt)
	return nil
}

func (r *PurchaseRequestRepositoryImpl) GetByID(ctx context.Context, id uint) (*purchase.Request, error) {
	var model models.PurchaseRequestModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, purchase.ErrRequestNotFound
		}
		r.logger.Errorw("failed to get purchase request", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get purchase request: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *PurchaseRequestRepositoryImpl) ListByStatus(ctx context.Context, status purchase.Status) ([]*purchase.Request, error) {
	var rows []models.PurchaseRequestModel
	err := db.GetTxFromContext(ctx, r.db).
		Preload("User").
		Where("status = ?", status.String()).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to list purchase requests", "status", status, "error", err)
		return nil, fmt.Errorf("failed to list purchase requests: %w", err)
	}
	return r.mapper.ToEntities(rows)
}

// CompareAndSetStatus is a single UPDATE guarded by the expected status, so
// two adjudications of one request cannot both succeed.
func (r *PurchaseRequestRepositoryImpl) CompareAndSetStatus(
	ctx context.Context,
	id uint,
	expected, next purchase.Status,
	processedAt time.Time,
) (int64, error) {
	if !expected.CanTransitionTo(next) {
		return 0, purchase.ErrInvalidStatusTransition(expected, next)
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.PurchaseRequestModel{}).
		Where("id = ? AND status = ?", id, expected.String()).
		Updates(map[string]any{
			"status":       next.String(),
			"processed_at": processedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update purchase request status",
			"id", id,
			"from", expected,
			"to", next,
			"error", result.Error)
		return 0, fmt.Errorf("failed to update purchase request status: %w", result.Error)
	}
	return result.RowsAffected, nil
}
