package handlers

import (
	"github.com/gin-gonic/gin"

	"privstore/internal/application/purchase/usecases"
	"privstore/internal/interfaces/http/middleware"
	"privstore/internal/shared/errors"
	"privstore/internal/shared/logger"
	"privstore/internal/shared/utils"
)

// SubmitPurchaseRequest carries no price; the server always charges the
// catalog price.
type SubmitPurchaseRequest struct {
	PrivilegeType string `json:"privilege_type" binding:"required,tier"`
	DurationType  string `json:"duration_type" binding:"required,duration"`
	PaymentProof  string `json:"payment_proof" binding:"required,max=2000"`
}

type PurchaseHandler struct {
	submitRequestUC submitRequestUseCase
	logger          logger.Interface
}

func NewPurchaseHandler(submitRequestUC submitRequestUseCase, logger logger.Interface) *PurchaseHandler {
	return &PurchaseHandler{
		submitRequestUC: submitRequestUC,
		logger:          logger,
	}
}

func (h *PurchaseHandler) Submit(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	var req SubmitPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for submit purchase", "error", err, "user_id", userID)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	cmd := usecases.SubmitRequestCommand{
		UserID:       userID,
		Tier:         req.PrivilegeType,
		Duration:     req.DurationType,
		PaymentProof: req.PaymentProof,
	}

	result, err := h.submitRequestUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "purchase request submitted")
}
