package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"privstore/internal/shared/logger"
	"privstore/internal/shared/utils"
)

type AuthHandler struct {
	steamLoginUC steamLoginUseCase
	logger       logger.Interface
}

func NewAuthHandler(steamLoginUC steamLoginUseCase, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		steamLoginUC: steamLoginUC,
		logger:       logger,
	}
}

// SteamLogin redirects the browser to the Steam OpenID endpoint.
func (h *AuthHandler) SteamLogin(c *gin.Context) {
	authURL, err := h.steamLoginUC.BeginLogin()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, authURL)
}

// SteamCallback completes the OpenID round trip and returns a session token.
func (h *AuthHandler) SteamCallback(c *gin.Context) {
	result, err := h.steamLoginUC.CompleteLogin(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		h.logger.Warnw("steam login failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", result)
}
