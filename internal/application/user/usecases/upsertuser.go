package usecases

import (
	"context"

	"privstore/internal/application/common"
	"privstore/internal/application/user/dto"
	"privstore/internal/domain/privilege"
	"privstore/internal/domain/user"
	"privstore/internal/shared/biztime"
	"privstore/internal/shared/logger"
	"privstore/internal/shared/utils"
)

const maxDisplayNameRunes = 64

type UpsertUserCommand struct {
	SteamID     string
	DisplayName string
	AvatarURL   string
}

// UpsertUserUseCase records a verified login: the user is created on first
// sight, otherwise name, avatar and last login are refreshed.
type UpsertUserUseCase struct {
	userRepo      user.Repository
	privilegeRepo privilege.Repository
	clock         biztime.Clock
	logger        logger.Interface
}

func NewUpsertUserUseCase(
	userRepo user.Repository,
	privilegeRepo privilege.Repository,
	clock biztime.Clock,
	logger logger.Interface,
) *UpsertUserUseCase {
	return &UpsertUserUseCase{
		userRepo:      userRepo,
		privilegeRepo: privilegeRepo,
		clock:         clock,
		logger:        logger,
	}
}

func (uc *UpsertUserUseCase) Execute(ctx context.Context, cmd UpsertUserCommand) (*dto.UserWithPrivilegesDTO, error) {
	now := uc.clock()

	candidate, err := user.NewUser(
		user.SteamID(cmd.SteamID),
		utils.SanitizeText(cmd.DisplayName, maxDisplayNameRunes),
		cmd.AvatarURL,
		now,
	)
	if err != nil {
		return nil, common.MapError(err)
	}

	stored, err := uc.userRepo.Upsert(ctx, candidate)
	if err != nil {
		uc.logger.Errorw("failed to upsert user", "steam_id", cmd.SteamID, "error", err)
		return nil, common.MapError(err)
	}

	privileges, err := uc.privilegeRepo.ListActiveByUser(ctx, stored.ID(), now)
	if err != nil {
		uc.logger.Errorw("failed to list active privileges", "user_id", stored.ID(), "error", err)
		return nil, common.MapError(err)
	}

	uc.logger.Infow("user upserted", "user_id", stored.ID(), "steam_id", cmd.SteamID, "active_privileges", len(privileges))
	return dto.ToUserWithPrivilegesDTO(stored, privileges), nil
}
