package game

import "time"

// TickGate throttles logical updates: Poll only fires once at least the
// minimum interval has elapsed since the previous firing, and returns the
// catch-up multiplier elapsed/interval. The multiplier is not clamped.
type TickGate struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time
}

// NewTickGate creates a gate whose clock starts now. A nil clock uses time.Now.
func NewTickGate(interval time.Duration, now func() time.Time) *TickGate {
	if now == nil {
		now = time.Now
	}
	return &TickGate{interval: interval, last: now(), now: now}
}

func (g *TickGate) Poll() (float64, bool) {
	t := g.now()
	elapsed := t.Sub(g.last)
	if elapsed < g.interval {
		return 0, false
	}
	g.last = t
	return float64(elapsed) / float64(g.interval), true
}

// Reset restarts the interval from the current clock reading.
func (g *TickGate) Reset() {
	g.last = g.now()
}
