package middleware

import (
	"context"
	stderrors "errors"

	"github.com/gin-gonic/gin"

	"privstore/internal/domain/user"
	"privstore/internal/shared/constants"
	"privstore/internal/shared/errors"
	"privstore/internal/shared/logger"
	"privstore/internal/shared/utils"
)

type permissionEnforcer interface {
	Enforce(role string, resource string, action string) (bool, error)
}

type userLookup interface {
	GetByID(ctx context.Context, id uint) (*user.User, error)
}

// PermissionMiddleware resolves the caller's role from the stored admin
// flag on every request, so promotions take effect without a new token.
type PermissionMiddleware struct {
	enforcer permissionEnforcer
	users    userLookup
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer permissionEnforcer, users userLookup, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		users:    users,
		logger:   logger,
	}
}

func (m *PermissionMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			utils.AbortWithError(c, errors.NewUnauthorizedError("user not authenticated"))
			return
		}

		u, err := m.users.GetByID(c.Request.Context(), userID)
		if err != nil {
			if stderrors.Is(err, user.ErrUserNotFound) {
				utils.AbortWithError(c, errors.NewUnauthorizedError("user no longer exists"))
				return
			}
			m.logger.Errorw("failed to load user for permission check", "user_id", userID, "error", err)
			utils.AbortWithError(c, errors.NewStorageError("storage failure", err))
			return
		}

		role := u.Role()
		allowed, err := m.enforcer.Enforce(role, resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "user_id", userID, "resource", resource, "action", action)
			utils.AbortWithError(c, errors.NewInternalError("permission check failed"))
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied", "user_id", userID, "role", role, "resource", resource, "action", action)
			utils.AbortWithError(c, errors.NewForbiddenError("insufficient permissions"))
			return
		}

		c.Set(constants.ContextKeyUserRole, role)
		c.Next()
	}
}
