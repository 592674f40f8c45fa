package usecases

import (
	"context"

	"privstore/internal/application/common"
	"privstore/internal/application/user/dto"
	"privstore/internal/domain/privilege"
	"privstore/internal/domain/user"
	"privstore/internal/shared/biztime"
	"privstore/internal/shared/logger"
)

// GetUserWithPrivilegesUseCase is the read-only profile lookup.
type GetUserWithPrivilegesUseCase struct {
	userRepo      user.Repository
	privilegeRepo privilege.Repository
	clock         biztime.Clock
	logger        logger.Interface
}

func NewGetUserWithPrivilegesUseCase(
	userRepo user.Repository,
	privilegeRepo privilege.Repository,
	clock biztime.Clock,
	logger logger.Interface,
) *GetUserWithPrivilegesUseCase {
	return &GetUserWithPrivilegesUseCase{
		userRepo:      userRepo,
		privilegeRepo: privilegeRepo,
		clock:         clock,
		logger:        logger,
	}
}

// Execute looks the user up by SteamID.
func (uc *GetUserWithPrivilegesUseCase) Execute(ctx context.Context, steamID string) (*dto.UserWithPrivilegesDTO, error) {
	id := user.SteamID(steamID)
	if err := id.Validate(); err != nil {
		return nil, common.MapError(err)
	}

	u, err := uc.userRepo.GetBySteamID(ctx, id)
	if err != nil {
		return nil, common.MapError(err)
	}
	return uc.withPrivileges(ctx, u)
}

// ExecuteByID looks the user up by internal id, used for the caller's own profile.
func (uc *GetUserWithPrivilegesUseCase) ExecuteByID(ctx context.Context, userID uint) (*dto.UserWithPrivilegesDTO, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, common.MapError(err)
	}
	return uc.withPrivileges(ctx, u)
}

func (uc *GetUserWithPrivilegesUseCase) withPrivileges(ctx context.Context, u *user.User) (*dto.UserWithPrivilegesDTO, error) {
	privileges, err := uc.privilegeRepo.ListActiveByUser(ctx, u.ID(), uc.clock())
	if err != nil {
		uc.logger.Errorw("failed to list active privileges", "user_id", u.ID(), "error", err)
		return nil, common.MapError(err)
	}
	return dto.ToUserWithPrivilegesDTO(u, privileges), nil
}
