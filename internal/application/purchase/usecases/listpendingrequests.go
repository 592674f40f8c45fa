package usecases

import (
	"context"

	"privstore/internal/application/common"
	"privstore/internal/application/purchase/dto"
	"privstore/internal/domain/purchase"
	"privstore/internal/shared/logger"
	"privstore/internal/shared/mapper"
)

type ListPendingRequestsUseCase struct {
	requestRepo purchase.Repository
	logger      logger.Interface
}

func NewListPendingRequestsUseCase(requestRepo purchase.Repository, logger logger.Interface) *ListPendingRequestsUseCase {
	return &ListPendingRequestsUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

// Execute returns pending requests newest first with their requester.
func (uc *ListPendingRequestsUseCase) Execute(ctx context.Context) ([]dto.PurchaseRequestDTO, error) {
	requests, err := uc.requestRepo.ListByStatus(ctx, purchase.StatusPending)
	if err != nil {
		uc.logger.Errorw("failed to list pending requests", "error", err)
		return nil, common.MapError(err)
	}
	return mapper.NonNil(mapper.MapSlice(requests, dto.ToPurchaseRequestDTO)), nil
}
