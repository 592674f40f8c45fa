package privilege

import (
	"time"

	"privstore/internal/domain/pricing"
)

const (
	twoWeeks = 14 * 24 * time.Hour
	oneMonth = 30 * 24 * time.Hour
)

// ComputeExpiresAt returns when a privilege bought for duration and activated
// at now runs out. Forever, and any duration not listed here, never expires
// and yields nil.
func ComputeExpiresAt(duration pricing.Duration, now time.Time) *time.Time {
	var ttl time.Duration
	switch duration {
	case pricing.DurationTwoWeeks:
		ttl = twoWeeks
	case pricing.DurationOneMonth:
		ttl = oneMonth
	default:
		return nil
	}
	expiresAt := now.Add(ttl)
	return &expiresAt
}
