package middleware

import (
	stderrors "errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"privstore/internal/infrastructure/auth"
	"privstore/internal/shared/constants"
	"privstore/internal/shared/errors"
	"privstore/internal/shared/logger"
	"privstore/internal/shared/utils"
)

type tokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type AuthMiddleware struct {
	jwtService tokenVerifier
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService tokenVerifier, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth accepts only requests with a valid "Authorization: Bearer" token.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.AbortWithError(c, errors.NewUnauthorizedError("missing authorization token"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			utils.AbortWithError(c, errors.NewUnauthorizedError("invalid authorization header format"))
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			authErr := errors.NewTokenInvalidError()
			if stderrors.Is(err, jwt.ErrTokenExpired) {
				authErr = errors.NewTokenExpiredError()
			}
			if errors.IsSecurityEvent(authErr) {
				m.logger.Warnw("rejected session token", "error", err, "client_ip", c.ClientIP())
			}
			utils.AbortWithError(c, authErr)
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeySteamID, claims.SteamID())

		c.Next()
	}
}

// CurrentUserID returns the id stored by RequireAuth.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(constants.ContextKeyUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}
