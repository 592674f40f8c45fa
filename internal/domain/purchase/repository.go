package purchase

import (
	"context"
	"time"
)

// Repository defines the interface for purchase request persistence
type Repository interface {
	// Create persists a new request and assigns its id and creation time
	Create(ctx context.Context, r *Request) error

	// GetByID returns ErrRequestNotFound when the id is unknown
	GetByID(ctx context.Context, id uint) (*Request, error)

	// ListByStatus returns requests in the given status, newest first, with
	// the requester attached
	ListByStatus(ctx context.Context, status Status) ([]*Request, error)

	// CompareAndSetStatus moves request id from expected to next and stamps
	// processedAt in a single conditional write. It returns the number of
	// rows changed, zero when the request is missing or not in expected.
	CompareAndSetStatus(ctx context.Context, id uint, expected, next Status, processedAt time.Time) (int64, error)
}
