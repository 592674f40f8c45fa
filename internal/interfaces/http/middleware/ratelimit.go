package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"privstore/internal/shared/errors"
	"privstore/internal/shared/logger"
	"privstore/internal/shared/utils"
)

type rateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// SubmissionRateLimiter caps purchase submissions per authenticated user.
// When Redis is unavailable requests are let through.
type SubmissionRateLimiter struct {
	limiter rateLimiter
	limit   int
	window  time.Duration
	logger  logger.Interface
}

func NewSubmissionRateLimiter(limiter rateLimiter, limit int, window time.Duration, logger logger.Interface) *SubmissionRateLimiter {
	return &SubmissionRateLimiter{
		limiter: limiter,
		limit:   limit,
		window:  window,
		logger:  logger,
	}
}

// Limit must run after RequireAuth.
func (rl *SubmissionRateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || rl.limiter == nil {
			c.Next()
			return
		}

		userID, ok := CurrentUserID(c)
		if !ok {
			c.Next()
			return
		}

		allowed, err := rl.limiter.Allow(c.Request.Context(), fmt.Sprintf("submit:user:%d", userID), rl.limit, rl.window)
		if err != nil {
			rl.logger.Warnw("rate limiter unavailable, allowing request", "user_id", userID, "error", err)
			c.Next()
			return
		}

		if !allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", int(rl.window.Seconds())))
			utils.AbortWithError(c, errors.NewRateLimitedError("too many purchase requests, please try again later"))
			return
		}

		c.Next()
	}
}
