package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"privstore/internal/domain/user"
	"privstore/internal/infrastructure/persistence/mappers"
	"privstore/internal/infrastructure/persistence/models"
	"privstore/internal/shared/db"
	"privstore/internal/shared/logger"
)

// UserRepositoryImpl implements user.Repository on GORM
type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

func NewUserRepository(database *gorm.DB, log logger.Interface) *UserRepositoryImpl {
	return &UserRepositoryImpl{
		db:     database,
		mapper: mappers.NewUserMapper(),
		logger: log,
	}
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		r.logger.Errorw("failed to get user", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *UserRepositoryImpl) GetBySteamID(ctx context.Context, steamID user.SteamID) (*user.User, error) {
	var model models.UserModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("steam_id = ?", steamID.String()).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		r.logger.Errorw("failed to get user by steam id", "steam_id", steamID, "error", err)
		return nil, fmt.Errorf("failed to get user by steam id: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

// Upsert relies on the unique steam_id index. MySQL cannot report the id of
// an updated row, so the stored row is read back by SteamID.
func (r *UserRepositoryImpl) Upsert(ctx context.Context, u *user.User) (*user.User, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	model := r.mapper.ToModel(u)
	model.ID = 0

	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "steam_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"display_name", "avatar_url", "last_login_at"}),
	}).Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to upsert user", "steam_id", u.SteamID(), "error", err)
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	return r.GetBySteamID(ctx, u.SteamID())
}

type userSummaryRow struct {
	models.UserModel
	ActivePrivileges int
}

func (r *UserRepositoryImpl) ListNonAdminSummaries(ctx context.Context, limit int, now time.Time) ([]*user.Summary, error) {
	var rows []userSummaryRow
	err := db.GetTxFromContext(ctx, r.db).
		Table("users").
		Select("users.id, users.steam_id, users.display_name, users.avatar_url, users.is_admin, "+
			"users.created_at, users.last_login_at, COUNT(privileges.id) AS active_privileges").
		Joins("LEFT JOIN privileges ON privileges.user_id = users.id AND privileges.is_active = ? "+
			"AND (privileges.expires_at IS NULL OR privileges.expires_at > ?)", true, now).
		Where("users.is_admin = ?", false).
		Group("users.id, users.steam_id, users.display_name, users.avatar_url, users.is_admin, users.created_at, users.last_login_at").
		Order("users.created_at DESC, users.id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	summaries := make([]*user.Summary, 0, len(rows))
	for i := range rows {
		entity, err := r.mapper.ToEntity(&rows[i].UserModel)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, &user.Summary{
			User:             entity,
			ActivePrivileges: rows[i].ActivePrivileges,
		})
	}
	return summaries, nil
}
