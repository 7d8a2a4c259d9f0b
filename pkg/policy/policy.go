// Package policy enforces the plan rules that gate mocks at serve time and
// management time: the active-mock ceiling, the per-mock daily request
// limit, and lifetime expiration.
package policy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mocksmith/mocksmith/pkg/mock"
	"github.com/mocksmith/mocksmith/pkg/plan"
	"github.com/mocksmith/mocksmith/pkg/store"
)

// ErrNotExpired rejects reactivation of a mock that is still live.
var ErrNotExpired = errors.New("mock has not expired")

// RateLimitResult is the outcome of a rate-limit check, carrying the
// values the serving layer exposes as X-RateLimit-* headers. Limit and
// Remaining are -1 for unlimited plans. Reset is the Unix timestamp of the
// next local midnight, when the daily window rolls over.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	Reset     int64
}

// Enforcer applies plan policy against stored mock state.
type Enforcer struct {
	store store.Store
	log   *slog.Logger
}

// NewEnforcer creates a policy enforcer over the given store.
func NewEnforcer(s store.Store, log *slog.Logger) *Enforcer {
	return &Enforcer{store: s, log: log}
}

// sameDay reports whether two instants fall on the same calendar day in
// local time. The daily window is a calendar day, not a rolling 24 hours.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// nextMidnight returns the start of the calendar day after now, local time.
func nextMidnight(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
}

// CheckActiveMockCeiling verifies the organization can activate one more
// mock under its plan. Counts only mocks that are both flagged active and
// unexpired.
func (e *Enforcer) CheckActiveMockCeiling(ctx context.Context, organizationID string, p plan.Plan, now time.Time) error {
	if p.MaxActiveMocks == plan.Unlimited {
		return nil
	}
	active, err := e.store.CountActiveMocks(ctx, organizationID, now)
	if err != nil {
		return fmt.Errorf("counting active mocks: %w", err)
	}
	if active >= p.MaxActiveMocks {
		return &plan.QuotaError{Plan: p.Tier, Limit: p.MaxActiveMocks, What: "active mocks"}
	}
	return nil
}

// CheckRateLimit evaluates the mock's daily request counter against the
// plan limit without mutating anything. A counter stamped on an earlier
// calendar day counts as zero.
func (e *Enforcer) CheckRateLimit(mc *mock.Config, p plan.Plan, now time.Time) RateLimitResult {
	reset := nextMidnight(now).Unix()

	if p.DailyRequestLimit == plan.Unlimited {
		return RateLimitResult{Allowed: true, Limit: -1, Remaining: -1, Reset: reset}
	}

	used := int64(0)
	if mc.LastRequestDate != nil && sameDay(*mc.LastRequestDate, now) {
		used = mc.DailyRequestCount
	}

	remaining := p.DailyRequestLimit - used
	if remaining < 0 {
		remaining = 0
	}
	return RateLimitResult{
		Allowed:   used < p.DailyRequestLimit,
		Limit:     p.DailyRequestLimit,
		Remaining: remaining,
		Reset:     reset,
	}
}

// RecordRequest bumps the mock's access counters after a served request.
// The day boundary is recomputed here rather than reusing the check's
// verdict, so a request straddling midnight resets rather than double
// counts.
func (e *Enforcer) RecordRequest(ctx context.Context, mc *mock.Config, now time.Time) error {
	resetDaily := mc.LastRequestDate == nil || !sameDay(*mc.LastRequestDate, now)
	return e.store.RecordMockAccess(ctx, mc.ID, resetDaily, now)
}

// Reactivate brings an expired mock back with a fresh lifetime from the
// plan's TTL. A mock that has not expired is rejected; reactivation is not
// a lifetime extension.
func (e *Enforcer) Reactivate(ctx context.Context, mc *mock.Config, p plan.Plan, now time.Time) error {
	if !mc.IsExpired(now) {
		return ErrNotExpired
	}

	mc.IsActive = true
	if p.MockTTL > 0 {
		exp := now.Add(p.MockTTL)
		mc.ExpiresAt = &exp
	} else {
		mc.ExpiresAt = nil
	}
	mc.UpdatedAt = now

	if err := e.store.UpdateMock(ctx, mc); err != nil {
		return fmt.Errorf("reactivating mock: %w", err)
	}
	e.log.Info("mock reactivated", "mock", mc.ID, "plan", p.Tier, "expiresAt", mc.ExpiresAt)
	return nil
}

// ExpiresAtFor computes the expiry timestamp a newly created mock gets
// under a plan, or nil when the plan never expires mocks.
func ExpiresAtFor(p plan.Plan, now time.Time) *time.Time {
	if p.MockTTL <= 0 {
		return nil
	}
	exp := now.Add(p.MockTTL)
	return &exp
}
