package usecases

import (
	"context"
	"errors"

	"privstore/internal/application/common"
	"privstore/internal/application/purchase/dto"
	"privstore/internal/domain/privilege"
	"privstore/internal/domain/purchase"
	"privstore/internal/shared/biztime"
	"privstore/internal/shared/logger"
)

// ApproveRequestUseCase grants the privilege a pending request asked for.
// The status change and the privilege write commit together.
type ApproveRequestUseCase struct {
	requestRepo   purchase.Repository
	privilegeRepo privilege.Repository
	txRunner      TransactionRunner
	clock         biztime.Clock
	logger        logger.Interface
}

func NewApproveRequestUseCase(
	requestRepo purchase.Repository,
	privilegeRepo privilege.Repository,
	txRunner TransactionRunner,
	clock biztime.Clock,
	logger logger.Interface,
) *ApproveRequestUseCase {
	return &ApproveRequestUseCase{
		requestRepo:   requestRepo,
		privilegeRepo: privilegeRepo,
		txRunner:      txRunner,
		clock:         clock,
		logger:        logger,
	}
}

func (uc *ApproveRequestUseCase) Execute(ctx context.Context, requestID uint) (*dto.ApprovalResultDTO, error) {
	uc.logger.Infow("executing approve purchase request", "request_id", requestID)

	now := uc.clock()
	var granted *privilege.Privilege

	err := uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		// the conditional update locks the row, so a concurrent
		// adjudication of the same request finds it no longer pending
		changed, err := uc.requestRepo.CompareAndSetStatus(txCtx, requestID, purchase.StatusPending, purchase.StatusApproved, now)
		if err != nil {
			return err
		}
		if changed == 0 {
			return purchase.ErrRequestNotFound
		}

		req, err := uc.requestRepo.GetByID(txCtx, requestID)
		if err != nil {
			return err
		}

		p, err := privilege.Activate(req.UserID(), req.Tier(), req.Duration(), req.Price(), now)
		if err != nil {
			return err
		}
		if err := uc.privilegeRepo.Upsert(txCtx, p); err != nil {
			return err
		}
		granted = p
		return nil
	})
	if err != nil {
		if !errors.Is(err, purchase.ErrRequestNotFound) {
			uc.logger.Errorw("failed to approve purchase request", "request_id", requestID, "error", err)
		}
		return nil, common.MapError(err)
	}

	uc.logger.Infow("purchase request approved",
		"request_id", requestID,
		"user_id", granted.UserID(),
		"tier", granted.Tier(),
		"duration", granted.Duration(),
	)
	return dto.ToApprovalResultDTO(requestID, granted), nil
}
