package usecases

import (
	"context"

	"privstore/internal/application/common"
	"privstore/internal/application/user/dto"
	"privstore/internal/domain/user"
	"privstore/internal/shared/biztime"
	"privstore/internal/shared/logger"
	"privstore/internal/shared/mapper"
)

const maxListUsers = 100

type ListUsersUseCase struct {
	userRepo user.Repository
	clock    biztime.Clock
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, clock biztime.Clock, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		clock:    clock,
		logger:   logger,
	}
}

// Execute returns non-admin users newest first with their active privilege
// count. A limit outside 1..100 is treated as 100.
func (uc *ListUsersUseCase) Execute(ctx context.Context, limit int) ([]dto.UserSummaryDTO, error) {
	if limit <= 0 || limit > maxListUsers {
		limit = maxListUsers
	}

	summaries, err := uc.userRepo.ListNonAdminSummaries(ctx, limit, uc.clock())
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, common.MapError(err)
	}
	return mapper.NonNil(mapper.MapSlice(summaries, dto.ToUserSummaryDTO)), nil
}
