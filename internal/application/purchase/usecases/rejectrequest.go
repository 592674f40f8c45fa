package usecases

import (
	"context"

	"privstore/internal/application/common"
	"privstore/internal/domain/purchase"
	"privstore/internal/shared/biztime"
	"privstore/internal/shared/logger"
)

type RejectRequestUseCase struct {
	requestRepo purchase.Repository
	clock       biztime.Clock
	logger      logger.Interface
}

func NewRejectRequestUseCase(requestRepo purchase.Repository, clock biztime.Clock, logger logger.Interface) *RejectRequestUseCase {
	return &RejectRequestUseCase{
		requestRepo: requestRepo,
		clock:       clock,
		logger:      logger,
	}
}

// Execute marks a pending request rejected. Privileges are untouched.
func (uc *RejectRequestUseCase) Execute(ctx context.Context, requestID uint) error {
	changed, err := uc.requestRepo.CompareAndSetStatus(ctx, requestID, purchase.StatusPending, purchase.StatusRejected, uc.clock())
	if err != nil {
		uc.logger.Errorw("failed to reject purchase request", "request_id", requestID, "error", err)
		return common.MapError(err)
	}
	if changed == 0 {
		return common.MapError(purchase.ErrRequestNotFound)
	}

	uc.logger.Infow("purchase request rejected", "request_id", requestID)
	return nil
}
