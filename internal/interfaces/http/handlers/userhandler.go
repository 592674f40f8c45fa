package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"privstore/internal/interfaces/http/middleware"
	"privstore/internal/shared/errors"
	"privstore/internal/shared/logger"
	"privstore/internal/shared/utils"
)

type UserHandler struct {
	getUserUC   getUserWithPrivilegesUseCase
	listUsersUC listUsersUseCase
	logger      logger.Interface
}

func NewUserHandler(
	getUserUC getUserWithPrivilegesUseCase,
	listUsersUC listUsersUseCase,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		getUserUC:   getUserUC,
		listUsersUC: listUsersUC,
		logger:      logger,
	}
}

// GetBySteamID is the lookup the game server uses to sync privileges.
func (h *UserHandler) GetBySteamID(c *gin.Context) {
	result, err := h.getUserUC.Execute(c.Request.Context(), c.Param("steam_id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	result, err := h.getUserUC.ExecuteByID(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListUsers returns non-admin users for the admin panel.
func (h *UserHandler) ListUsers(c *gin.Context) {
	limit, err := parseLimit(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUsersUC.Execute(c.Request.Context(), limit)
	if err != nil {
		h.logger.Errorw("failed to list users", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
