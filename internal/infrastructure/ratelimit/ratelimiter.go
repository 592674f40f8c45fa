// Package ratelimit throttles purchase submissions per user.
package ratelimit

import (
	"context"
	"time"
)

type RateLimiter interface {
	// Allow records an attempt for key and reports whether it fits within
	// limit attempts over the trailing window.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}
