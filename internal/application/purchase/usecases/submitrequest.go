package usecases

import (
	"context"
	"errors"

	"privstore/internal/application/common"
	"privstore/internal/application/purchase/dto"
	"privstore/internal/domain/pricing"
	"privstore/internal/domain/purchase"
	"privstore/internal/domain/user"
	"privstore/internal/shared/biztime"
	"privstore/internal/shared/logger"
)

type SubmitRequestCommand struct {
	UserID       uint
	Tier         string
	Duration     string
	PaymentProof string
}

// SubmitRequestUseCase records a pending purchase request at the catalog price.
type SubmitRequestUseCase struct {
	requestRepo purchase.Repository
	userRepo    user.Repository
	notifier    AdminNotifier
	clock       biztime.Clock
	logger      logger.Interface
}

func NewSubmitRequestUseCase(
	requestRepo purchase.Repository,
	userRepo user.Repository,
	notifier AdminNotifier,
	clock biztime.Clock,
	logger logger.Interface,
) *SubmitRequestUseCase {
	return &SubmitRequestUseCase{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		clock:       clock,
		logger:      logger,
	}
}

func (uc *SubmitRequestUseCase) Execute(ctx context.Context, cmd SubmitRequestCommand) (*dto.SubmitResultDTO, error) {
	uc.logger.Infow("executing submit purchase request", "user_id", cmd.UserID, "tier", cmd.Tier, "duration", cmd.Duration)

	tier := pricing.Tier(cmd.Tier)
	duration := pricing.Duration(cmd.Duration)

	// reject bad combinations before touching storage
	if _, err := pricing.ResolvePrice(tier, duration); err != nil {
		uc.logger.Warnw("invalid purchase combination", "tier", cmd.Tier, "duration", cmd.Duration, "error", err)
		return nil, common.MapError(err)
	}

	requester, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if !errors.Is(err, user.ErrUserNotFound) {
			uc.logger.Errorw("failed to load requester", "user_id", cmd.UserID, "error", err)
		}
		return nil, common.MapError(err)
	}

	req, err := purchase.NewRequest(requester.ID(), tier, duration, cmd.PaymentProof, uc.clock())
	if err != nil {
		return nil, common.MapError(err)
	}

	if err := uc.requestRepo.Create(ctx, req); err != nil {
		uc.logger.Errorw("failed to create purchase request", "user_id", cmd.UserID, "error", err)
		return nil, common.MapError(err)
	}

	uc.logger.Infow("purchase request submitted", "request_id", req.ID(), "user_id", requester.ID(), "price", req.Price())

	if err := uc.notifier.NotifyPurchaseRequested(ctx, PurchaseNotification{
		RequestID:    req.ID(),
		SteamID:      requester.SteamID().String(),
		DisplayName:  requester.DisplayName(),
		Tier:         req.Tier().String(),
		Duration:     req.Duration().String(),
		Price:        req.Price(),
		PaymentProof: req.PaymentProof(),
		CreatedAt:    req.CreatedAt(),
	}); err != nil {
		uc.logger.Warnw("failed to notify admins", "request_id", req.ID(), "error", err)
	}

	return &dto.SubmitResultDTO{
		RequestID: req.ID(),
		Price:     req.Price(),
		CreatedAt: req.CreatedAt(),
	}, nil
}
