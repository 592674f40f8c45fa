package privilege

import (
	"context"
	"time"
)

// Repository defines the interface for privilege persistence operations
type Repository interface {
	// Upsert inserts p, or overwrites duration, price, expiration and
	// activation time of the existing (user, tier) row and forces it active
	// with payment confirmed.
	Upsert(ctx context.Context, p *Privilege) error

	// ListActiveByUser returns the user's privileges that are active at now
	ListActiveByUser(ctx context.Context, userID uint, now time.Time) ([]*Privilege, error)
}
