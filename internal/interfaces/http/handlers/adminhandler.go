package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"privstore/internal/shared/logger"
	"privstore/internal/shared/utils"
)

// AdminHandler adjudicates purchase requests.
type AdminHandler struct {
	listPendingUC listPendingRequestsUseCase
	approveUC     approveRequestUseCase
	rejectUC      rejectRequestUseCase
	logger        logger.Interface
}

func NewAdminHandler(
	listPendingUC listPendingRequestsUseCase,
	approveUC approveRequestUseCase,
	rejectUC rejectRequestUseCase,
	logger logger.Interface,
) *AdminHandler {
	return &AdminHandler{
		listPendingUC: listPendingUC,
		approveUC:     approveUC,
		rejectUC:      rejectUC,
		logger:        logger,
	}
}

func (h *AdminHandler) ListPending(c *gin.Context) {
	result, err := h.listPendingUC.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to list pending requests", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *AdminHandler) Approve(c *gin.Context) {
	requestID, err := parseRequestID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.approveUC.Execute(c.Request.Context(), requestID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "request approved", result)
}

func (h *AdminHandler) Reject(c *gin.Context) {
	requestID, err := parseRequestID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.rejectUC.Execute(c.Request.Context(), requestID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "request rejected", gin.H{"request_id": requestID})
}
