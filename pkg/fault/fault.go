// Package fault implements probabilistic error injection and artificial
// latency for served mock endpoints.
package fault

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Codes is the pool of HTTP status codes injected faults draw from, each
// with equal probability.
var Codes = []int{400, 401, 403, 404, 500, 502, 503}

// Stats counts injected faults per status code. Safe for concurrent use.
type Stats struct {
	mu       sync.Mutex
	injected map[int]int64
	rolls    int64
}

// Snapshot returns a copy of the per-code injection counts and the total
// number of rolls performed.
func (s *Stats) Snapshot() (map[int]int64, int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int]int64, len(s.injected))
	for code, n := range s.injected {
		out[code] = n
	}
	return out, s.rolls
}

func (s *Stats) record(code int, fired bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rolls++
	if fired {
		s.injected[code]++
	}
}

// Injector rolls for random errors at a configured rate.
type Injector struct {
	mu    sync.Mutex
	rng   *rand.Rand
	stats *Stats
}

// New creates an injector. A nil rng gets a time-seeded source; tests pass
// a fixed seed for determinism.
func New(rng *rand.Rand) *Injector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Injector{
		rng:   rng,
		stats: &Stats{injected: make(map[int]int64)},
	}
}

// Roll decides whether a fault fires for this request. rate is a
// percentage in [0, 100]; values outside are clamped. When the roll fires
// it returns a status code drawn uniformly from Codes and true.
func (i *Injector) Roll(rate float64) (int, bool) {
	if rate <= 0 {
		return 0, false
	}
	if rate > 100 {
		rate = 100
	}

	i.mu.Lock()
	fired := i.rng.Float64()*100 < rate
	code := 0
	if fired {
		code = Codes[i.rng.Intn(len(Codes))]
	}
	i.mu.Unlock()

	i.stats.record(code, fired)
	return code, fired
}

// Stats exposes the injector's counters.
func (i *Injector) Stats() *Stats {
	return i.stats
}

// Delay sleeps for the configured artificial latency, honoring context
// cancellation so a disconnecting client frees the handler immediately.
func Delay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
