package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"privstore/internal/shared/logger"
	"privstore/internal/shared/utils"
)

const healthPingTimeout = 2 * time.Second

type HealthHandler struct {
	db     databasePinger
	logger logger.Interface
}

func NewHealthHandler(db databasePinger, logger logger.Interface) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger,
	}
}

func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Errorw("health check failed", "error", err)
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "database unreachable")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"status": "ok", "database": "ok"})
}
