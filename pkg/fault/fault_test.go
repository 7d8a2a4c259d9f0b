package fault

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollZeroRateNeverFires(t *testing.T) {
	inj := New(rand.New(rand.NewSource(1)))
	for i := 0; i < 1000; i++ {
		_, fired := inj.Roll(0)
		assert.False(t, fired)
	}
}

func TestRollFullRateAlwaysFires(t *testing.T) {
	inj := New(rand.New(rand.NewSource(1)))
	valid := make(map[int]bool, len(Codes))
	for _, c := range Codes {
		valid[c] = true
	}
	for i := 0; i < 1000; i++ {
		code, fired := inj.Roll(100)
		require.True(t, fired)
		assert.True(t, valid[code], "unexpected injected code %d", code)
	}
}

func TestRollRateIsApproximate(t *testing.T) {
	inj := New(rand.New(rand.NewSource(42)))
	fired := 0
	const n = 10000
	for i := 0; i < n; i++ {
		if _, f := inj.Roll(25); f {
			fired++
		}
	}
	// 25% +- 3 points over 10k rolls.
	assert.InDelta(t, 0.25, float64(fired)/n, 0.03)
}

func TestRollClampsRate(t *testing.T) {
	inj := New(rand.New(rand.NewSource(1)))
	_, fired := inj.Roll(250)
	assert.True(t, fired)
	_, fired = inj.Roll(-10)
	assert.False(t, fired)
}

func TestRollCoversAllCodes(t *testing.T) {
	inj := New(rand.New(rand.NewSource(7)))
	seen := make(map[int]bool)
	for i := 0; i < 5000; i++ {
		code, fired := inj.Roll(100)
		require.True(t, fired)
		seen[code] = true
	}
	for _, c := range Codes {
		assert.True(t, seen[c], "code %d never drawn", c)
	}
}

func TestStats(t *testing.T) {
	inj := New(rand.New(rand.NewSource(1)))
	for i := 0; i < 100; i++ {
		inj.Roll(100)
	}
	counts, rolls := inj.Stats().Snapshot()
	assert.EqualValues(t, 100, rolls)

	total := int64(0)
	for _, n := range counts {
		total += n
	}
	assert.EqualValues(t, 100, total)
}

func TestDelay(t *testing.T) {
	start := time.Now()
	require.NoError(t, Delay(context.Background(), 20*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestDelayZeroReturnsImmediately(t *testing.T) {
	start := time.Now()
	require.NoError(t, Delay(context.Background(), 0))
	assert.Less(t, time.Since(start), 5*time.Millisecond)
}

func TestDelayHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Delay(ctx, time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
}
