package handlers

import (
	"context"
	"net/url"

	purchasedto "privstore/internal/application/purchase/dto"
	purchaseusecases "privstore/internal/application/purchase/usecases"
	userdto "privstore/internal/application/user/dto"
)

// Use case interfaces consumed by the handlers

type steamLoginUseCase interface {
	BeginLogin() (string, error)
	CompleteLogin(ctx context.Context, params url.Values) (*userdto.LoginResultDTO, error)
}

type getUserWithPrivilegesUseCase interface {
	Execute(ctx context.Context, steamID string) (*userdto.UserWithPrivilegesDTO, error)
	ExecuteByID(ctx context.Context, userID uint) (*userdto.UserWithPrivilegesDTO, error)
}

type listUsersUseCase interface {
	Execute(ctx context.Context, limit int) ([]userdto.UserSummaryDTO, error)
}

type submitRequestUseCase interface {
	Execute(ctx context.Context, cmd purchaseusecases.SubmitRequestCommand) (*purchasedto.SubmitResultDTO, error)
}

type listPendingRequestsUseCase interface {
	Execute(ctx context.Context) ([]purchasedto.PurchaseRequestDTO, error)
}

type approveRequestUseCase interface {
	Execute(ctx context.Context, requestID uint) (*purchasedto.ApprovalResultDTO, error)
}

type rejectRequestUseCase interface {
	Execute(ctx context.Context, requestID uint) error
}

type databasePinger interface {
	PingContext(ctx context.Context) error
}
