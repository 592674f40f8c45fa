package purchase

import (
	"fmt"
	"time"

	"privstore/internal/domain/pricing"
	"privstore/internal/domain/user"
)

// Request is a player's request to buy a privilege tier. It is created
// pending and adjudicated exactly once.
type Request struct {
	id           uint
	userID       uint
	tier         pricing.Tier
	duration     pricing.Duration
	price        int
	paymentProof string
	status       Status
	createdAt    time.Time
	processedAt  *time.Time

	// requester is only populated by listings that join the users table
	requester *user.User
}

// NewRequest creates a pending request. The price is always resolved from
// the catalog; callers cannot provide one.
func NewRequest(userID uint, tier pricing.Tier, duration pricing.Duration, paymentProof string, now time.Time) (*Request, error) {
	price, err := pricing.ResolvePrice(tier, duration)
	if err != nil {
		return nil, err
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	return &Request{
		userID:       userID,
		tier:         tier,
		duration:     duration,
		price:        price,
		paymentProof: paymentProof,
		status:       StatusPending,
		createdAt:    now,
	}, nil
}

// ReconstructRequest rebuilds a request from persistence. Rows written by
// older releases may carry tiers or durations no longer sold, so only the
// status is validated.
func ReconstructRequest(
	id, userID uint,
	tier pricing.Tier,
	duration pricing.Duration,
	price int,
	paymentProof string,
	status Status,
	createdAt time.Time,
	processedAt *time.Time,
) (*Request, error) {
	if id == 0 {
		return nil, fmt.Errorf("purchase request ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
	return &Request{
		id:           id,
		userID:       userID,
		tier:         tier,
		duration:     duration,
		price:        price,
		paymentProof: paymentProof,
		status:       status,
		createdAt:    createdAt,
		processedAt:  processedAt,
	}, nil
}

func (r *Request) ID() uint                   { return r.id }
func (r *Request) UserID() uint               { return r.userID }
func (r *Request) Tier() pricing.Tier         { return r.tier }
func (r *Request) Duration() pricing.Duration { return r.duration }
func (r *Request) Price() int                 { return r.price }
func (r *Request) PaymentProof() string       { return r.paymentProof }
func (r *Request) Status() Status             { return r.status }
func (r *Request) CreatedAt() time.Time       { return r.createdAt }
func (r *Request) ProcessedAt() *time.Time    { return r.processedAt }

// Requester returns the embedded user, or nil when the request was loaded
// without it.
func (r *Request) Requester() *user.User { return r.requester }

// AttachRequester embeds the requesting user.
func (r *Request) AttachRequester(u *user.User) {
	r.requester = u
}

// SetID sets the request ID (only for persistence layer use)
func (r *Request) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("purchase request ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("purchase request ID cannot be zero")
	}
	r.id = id
	return nil
}

// SetCreatedAt records the creation time assigned by storage.
func (r *Request) SetCreatedAt(t time.Time) {
	r.createdAt = t
}
