package policy

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mocksmith/mocksmith/pkg/logging"
	"github.com/mocksmith/mocksmith/pkg/mock"
	"github.com/mocksmith/mocksmith/pkg/plan"
	"github.com/mocksmith/mocksmith/pkg/store/memstore"
)

func newEnforcer(t *testing.T) (*Enforcer, *memstore.Store) {
	t.Helper()
	s := memstore.New()
	return NewEnforcer(s, logging.Nop()), s
}

func TestCheckActiveMockCeiling(t *testing.T) {
	e, s := newEnforcer(t)
	ctx := context.Background()
	now := time.Now()

	for i := 0; i < 3; i++ {
		require.NoError(t, s.CreateMock(ctx, &mock.Config{
			ID:             fmt.Sprintf("m-%d", i),
			OrganizationID: "org-1",
			BasePath:       fmt.Sprintf("api-%d", i),
			IsActive:       true,
		}))
	}

	err := e.CheckActiveMockCeiling(ctx, "org-1", plan.Free, now)
	var qe *plan.QuotaError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, 3, qe.Limit)

	// Another org is unaffected.
	assert.NoError(t, e.CheckActiveMockCeiling(ctx, "org-2", plan.Free, now))

	// Unlimited plans never hit the ceiling.
	assert.NoError(t, e.CheckActiveMockCeiling(ctx, "org-1", plan.Enterprise, now))
}

func TestCheckActiveMockCeilingIgnoresExpired(t *testing.T) {
	e, s := newEnforcer(t)
	ctx := context.Background()
	now := time.Now()
	past := now.Add(-time.Hour)

	require.NoError(t, s.CreateMock(ctx, &mock.Config{
		ID: "m-1", OrganizationID: "org-1", BasePath: "a", IsActive: true, ExpiresAt: &past,
	}))
	require.NoError(t, s.CreateMock(ctx, &mock.Config{
		ID: "m-2", OrganizationID: "org-1", BasePath: "b", IsActive: false,
	}))

	p := plan.Plan{Tier: plan.TierFree, MaxActiveMocks: 1}
	assert.NoError(t, e.CheckActiveMockCeiling(ctx, "org-1", p, now),
		"expired and inactive mocks do not count")
}

func TestCheckRateLimit(t *testing.T) {
	e, _ := newEnforcer(t)
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.Local)
	p := plan.Plan{Tier: plan.TierFree, DailyRequestLimit: 500}

	t.Run("fresh mock", func(t *testing.T) {
		res := e.CheckRateLimit(&mock.Config{}, p, now)
		assert.True(t, res.Allowed)
		assert.EqualValues(t, 500, res.Limit)
		assert.EqualValues(t, 500, res.Remaining)
	})

	t.Run("under limit", func(t *testing.T) {
		res := e.CheckRateLimit(&mock.Config{DailyRequestCount: 499, LastRequestDate: &now}, p, now)
		assert.True(t, res.Allowed)
		assert.EqualValues(t, 1, res.Remaining)
	})

	t.Run("at limit", func(t *testing.T) {
		res := e.CheckRateLimit(&mock.Config{DailyRequestCount: 500, LastRequestDate: &now}, p, now)
		assert.False(t, res.Allowed)
		assert.EqualValues(t, 0, res.Remaining)
	})

	t.Run("counter from a previous day resets", func(t *testing.T) {
		yesterday := now.Add(-24 * time.Hour)
		res := e.CheckRateLimit(&mock.Config{DailyRequestCount: 500, LastRequestDate: &yesterday}, p, now)
		assert.True(t, res.Allowed)
		assert.EqualValues(t, 500, res.Remaining)
	})

	t.Run("unlimited plan", func(t *testing.T) {
		res := e.CheckRateLimit(&mock.Config{DailyRequestCount: 1 << 30, LastRequestDate: &now}, plan.Enterprise, now)
		assert.True(t, res.Allowed)
		assert.EqualValues(t, -1, res.Limit)
		assert.EqualValues(t, -1, res.Remaining)
	})

	t.Run("reset is next local midnight", func(t *testing.T) {
		res := e.CheckRateLimit(&mock.Config{}, p, now)
		want := time.Date(2026, 3, 11, 0, 0, 0, 0, time.Local).Unix()
		assert.Equal(t, want, res.Reset)
	})
}

func TestRecordRequest(t *testing.T) {
	e, s := newEnforcer(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, s.CreateMock(ctx, &mock.Config{ID: "m-1", OrganizationID: "org-1", BasePath: "a"}))

	mc, err := s.GetMock(ctx, "m-1")
	require.NoError(t, err)
	require.NoError(t, e.RecordRequest(ctx, mc, now))
	require.NoError(t, e.RecordRequest(ctx, mc, now))

	mc, err = s.GetMock(ctx, "m-1")
	require.NoError(t, err)
	// The in-memory copy passed to RecordRequest was stale both times, so
	// the second call still saw a nil LastRequestDate and reset the window.
	assert.EqualValues(t, 1, mc.DailyRequestCount)
	assert.EqualValues(t, 2, mc.AccessCount)

	// With fresh state the counter increments.
	require.NoError(t, e.RecordRequest(ctx, mc, now))
	mc, err = s.GetMock(ctx, "m-1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, mc.DailyRequestCount)

	// A new day resets the counter back to one.
	tomorrow := now.Add(24 * time.Hour)
	require.NoError(t, e.RecordRequest(ctx, mc, tomorrow))
	mc, err = s.GetMock(ctx, "m-1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, mc.DailyRequestCount)
}

func TestReactivate(t *testing.T) {
	e, s := newEnforcer(t)
	ctx := context.Background()
	now := time.Now()
	past := now.Add(-time.Hour)

	require.NoError(t, s.CreateMock(ctx, &mock.Config{
		ID: "m-1", OrganizationID: "org-1", BasePath: "a", IsActive: false, ExpiresAt: &past,
	}))

	mc, err := s.GetMock(ctx, "m-1")
	require.NoError(t, err)
	require.NoError(t, e.Reactivate(ctx, mc, plan.Free, now))

	mc, err = s.GetMock(ctx, "m-1")
	require.NoError(t, err)
	assert.True(t, mc.IsActive)
	require.NotNil(t, mc.ExpiresAt)
	assert.WithinDuration(t, now.Add(plan.Free.MockTTL), *mc.ExpiresAt, time.Second)
}

func TestReactivateRejectsLiveMock(t *testing.T) {
	e, s := newEnforcer(t)
	ctx := context.Background()
	now := time.Now()
	future := now.Add(time.Hour)

	require.NoError(t, s.CreateMock(ctx, &mock.Config{
		ID: "m-1", OrganizationID: "org-1", BasePath: "a", IsActive: true, ExpiresAt: &future,
	}))

	mc, err := s.GetMock(ctx, "m-1")
	require.NoError(t, err)
	assert.ErrorIs(t, e.Reactivate(ctx, mc, plan.Free, now), ErrNotExpired)
}

func TestReactivateEnterpriseNeverExpires(t *testing.T) {
	e, s := newEnforcer(t)
	ctx := context.Background()
	now := time.Now()
	past := now.Add(-time.Hour)

	require.NoError(t, s.CreateMock(ctx, &mock.Config{
		ID: "m-1", OrganizationID: "org-1", BasePath: "a", ExpiresAt: &past,
	}))

	mc, err := s.GetMock(ctx, "m-1")
	require.NoError(t, err)
	require.NoError(t, e.Reactivate(ctx, mc, plan.Enterprise, now))

	mc, err = s.GetMock(ctx, "m-1")
	require.NoError(t, err)
	assert.Nil(t, mc.ExpiresAt)
}

func TestExpiresAtFor(t *testing.T) {
	now := time.Now()

	exp := ExpiresAtFor(plan.Free, now)
	require.NotNil(t, exp)
	assert.Equal(t, now.Add(7*24*time.Hour), *exp)

	assert.Nil(t, ExpiresAtFor(plan.Enterprise, now))
}
