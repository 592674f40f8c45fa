package privilege

import (
	"fmt"
	"time"

	"privstore/internal/domain/pricing"
)

// Privilege is the entitlement a user holds for one tier. There is at most
// one per (user, tier); a later approval replaces it.
type Privilege struct {
	id               uint
	userID           uint
	tier             pricing.Tier
	duration         pricing.Duration
	price            int
	expiresAt        *time.Time
	paymentConfirmed bool
	isActive         bool
	activatedAt      time.Time
}

// Activate builds the privilege granted by an approval evaluated at now.
// The expiration comes from duration, not from when the request was made.
func Activate(userID uint, tier pricing.Tier, duration pricing.Duration, price int, now time.Time) (*Privilege, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !tier.IsValid() {
		return nil, fmt.Errorf("%w: %s", pricing.ErrInvalidTier, tier)
	}
	return &Privilege{
		userID:           userID,
		tier:             tier,
		duration:         duration,
		price:            price,
		expiresAt:        ComputeExpiresAt(duration, now),
		paymentConfirmed: true,
		isActive:         true,
		activatedAt:      now,
	}, nil
}

// ReconstructPrivilege rebuilds a privilege from persistence
func ReconstructPrivilege(
	id, userID uint,
	tier pricing.Tier,
	duration pricing.Duration,
	price int,
	expiresAt *time.Time,
	paymentConfirmed, isActive bool,
	activatedAt time.Time,
) (*Privilege, error) {
	if id == 0 {
		return nil, fmt.Errorf("privilege ID cannot be zero")
	}
	return &Privilege{
		id:               id,
		userID:           userID,
		tier:             tier,
		duration:         duration,
		price:            price,
		expiresAt:        expiresAt,
		paymentConfirmed: paymentConfirmed,
		isActive:         isActive,
		activatedAt:      activatedAt,
	}, nil
}

func (p *Privilege) ID() uint                   { return p.id }
func (p *Privilege) UserID() uint               { return p.userID }
func (p *Privilege) Tier() pricing.Tier         { return p.tier }
func (p *Privilege) Duration() pricing.Duration { return p.duration }
func (p *Privilege) Price() int                 { return p.price }
func (p *Privilege) ExpiresAt() *time.Time      { return p.expiresAt }
func (p *Privilege) PaymentConfirmed() bool     { return p.paymentConfirmed }
func (p *Privilege) IsActive() bool             { return p.isActive }
func (p *Privilege) ActivatedAt() time.Time     { return p.activatedAt }

// IsActiveAt reports whether the privilege is switched on and not expired at t.
func (p *Privilege) IsActiveAt(t time.Time) bool {
	if !p.isActive {
		return false
	}
	return p.expiresAt == nil || p.expiresAt.After(t)
}
