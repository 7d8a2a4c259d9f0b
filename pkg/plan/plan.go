// Package plan defines subscription tiers and the limits they grant.
// Limits use -1 for "unlimited" throughout.
package plan

import (
	"context"
	"time"
)

// Tier identifies a subscription plan.
type Tier string

// Subscription tiers.
const (
	TierFree       Tier = "free"
	TierPro        Tier = "pro"
	TierEnterprise Tier = "enterprise"
)

// Unlimited marks a limit with no ceiling.
const Unlimited = -1

// Plan carries the limits granted by a tier.
type Plan struct {
	Tier Tier

	// MaxActiveMocks caps concurrently active mocks per organization.
	MaxActiveMocks int

	// MaxRecordsPerMock caps persisted resources per mock.
	MaxRecordsPerMock int

	// DailyRequestLimit caps served requests per mock per calendar day.
	DailyRequestLimit int64

	// MockTTL is how long a freshly created or reactivated mock lives
	// before expiring. Zero means it never expires.
	MockTTL time.Duration
}

// The plan table.
var (
	Free = Plan{
		Tier:              TierFree,
		MaxActiveMocks:    3,
		MaxRecordsPerMock: 100,
		DailyRequestLimit: 500,
		MockTTL:           7 * 24 * time.Hour,
	}
	Pro = Plan{
		Tier:              TierPro,
		MaxActiveMocks:    25,
		MaxRecordsPerMock: 1000,
		DailyRequestLimit: 10000,
		MockTTL:           30 * 24 * time.Hour,
	}
	Enterprise = Plan{
		Tier:              TierEnterprise,
		MaxActiveMocks:    Unlimited,
		MaxRecordsPerMock: Unlimited,
		DailyRequestLimit: Unlimited,
		MockTTL:           0,
	}
)

// ByTier resolves a tier name to its plan. Unknown tiers resolve to Free.
func ByTier(t Tier) Plan {
	switch t {
	case TierPro:
		return Pro
	case TierEnterprise:
		return Enterprise
	default:
		return Free
	}
}

// Subscription is the billing state consumed read-only from the external
// subscription provider.
type Subscription struct {
	Plan        Tier       `json:"plan" bson:"plan"`
	Status      string     `json:"status" bson:"status"`
	IsTrialing  bool       `json:"isTrialing" bson:"isTrialing"`
	TrialEndsAt *time.Time `json:"trialEndsAt,omitempty" bson:"trialEndsAt,omitempty"`
}

// Effective resolves the plan that actually applies to a subscription: an
// active trial upgrades to Pro regardless of the stored plan value. A nil
// subscription resolves to Free.
func Effective(sub *Subscription, now time.Time) Plan {
	if sub == nil {
		return Free
	}
	if sub.IsTrialing && sub.TrialEndsAt != nil && sub.TrialEndsAt.After(now) {
		return Pro
	}
	return ByTier(sub.Plan)
}

// Provider supplies subscription state per organization. Implementations
// stand in for the external billing collaborator.
type Provider interface {
	Subscription(ctx context.Context, organizationID string) (*Subscription, error)
}

// StaticProvider serves subscriptions from a fixed map, keyed by
// organization id. Organizations not in the map get no subscription
// (effective plan Free). Useful for development deployments and tests.
type StaticProvider map[string]*Subscription

// Subscription implements Provider.
func (p StaticProvider) Subscription(_ context.Context, organizationID string) (*Subscription, error) {
	return p[organizationID], nil
}
