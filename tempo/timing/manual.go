package timing

import "time"

// ManualClock is a Clock whose time only moves when told to. Sleep advances
// the clock by the full requested duration, which makes loop timing fully
// deterministic in tests and batch runs.
type ManualClock struct {
	now    uint64
	slept  []time.Duration
	onWake func()
}

func NewManualClock() *ManualClock {
	return &ManualClock{}
}

func (c *ManualClock) Now() uint64 {
	return c.now
}

func (c *ManualClock) Sleep(d time.Duration) {
	if d > 0 {
		c.now += uint64(d)
	}
	c.slept = append(c.slept, d)
	if c.onWake != nil {
		c.onWake()
	}
}

// Advance moves the clock forward by d without recording a sleep.
func (c *ManualClock) Advance(d time.Duration) {
	c.now += uint64(d)
}

// Sleeps returns every duration passed to Sleep, in order.
func (c *ManualClock) Sleeps() []time.Duration {
	return c.slept
}

// OnWake registers a callback invoked after each Sleep, useful for
// injecting input "arriving" while the loop was suspended.
func (c *ManualClock) OnWake(fn func()) {
	c.onWake = fn
}
