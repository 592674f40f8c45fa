// Package pricing holds the fixed privilege price table.
package pricing

// Tier is the privilege category a player buys.
type Tier string

const (
	TierLow    Tier = "Low"
	TierNice   Tier = "Nice"
	TierEscape Tier = "Escape"
)

// IsValid reports whether t is a known tier.
func (t Tier) IsValid() bool {
	switch t {
	case TierLow, TierNice, TierEscape:
		return true
	}
	return false
}

func (t Tier) String() string {
	return string(t)
}

// Duration is how long a tier lasts once activated.
type Duration string

const (
	DurationTwoWeeks Duration = "2weeks"
	DurationOneMonth Duration = "1month"
	DurationForever  Duration = "forever"
)

// IsValid reports whether d is a known duration option.
func (d Duration) IsValid() bool {
	switch d {
	case DurationTwoWeeks, DurationOneMonth, DurationForever:
		return true
	}
	return false
}

func (d Duration) String() string {
	return string(d)
}

// Tiers lists every tier in storefront order.
var Tiers = []Tier{TierLow, TierNice, TierEscape}

// Durations lists every duration option in storefront order.
var Durations = []Duration{DurationTwoWeeks, DurationOneMonth, DurationForever}

// prices is never written after package init and is safe for concurrent reads.
var prices = map[Tier]map[Duration]int{
	TierLow:    {DurationTwoWeeks: 20, DurationForever: 100},
	TierNice:   {DurationOneMonth: 100, DurationForever: 300},
	TierEscape: {DurationOneMonth: 200, DurationForever: 550},
}

// ResolvePrice returns the price of a (tier, duration) pair. Unknown tiers
// are reported before unknown durations, and both before pairs missing from
// the table.
func ResolvePrice(tier Tier, duration Duration) (int, error) {
	if !tier.IsValid() {
		return 0, ErrInvalidTier
	}
	if !duration.IsValid() {
		return 0, ErrInvalidDuration
	}
	price, ok := prices[tier][duration]
	if !ok {
		return 0, ErrInvalidPriceCombination
	}
	return price, nil
}

// Offer is one purchasable (tier, duration) pair.
type Offer struct {
	Tier     Tier
	Duration Duration
	Price    int
}

// Offers returns every purchasable pair ordered by tier, then duration.
func Offers() []Offer {
	offers := make([]Offer, 0, 6)
	for _, tier := range Tiers {
		for _, duration := range Durations {
			if price, ok := prices[tier][duration]; ok {
				offers = append(offers, Offer{Tier: tier, Duration: duration, Price: price})
			}
		}
	}
	return offers
}
