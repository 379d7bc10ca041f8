package timing

import "time"

// Clock provides monotonic time readings and thread suspension for the
// event loop. The loop only ever compares and subtracts readings, so the
// zero point is arbitrary as long as Now never goes backwards.
type Clock interface {
	// Now returns the current monotonic time in nanoseconds.
	Now() uint64

	// Sleep blocks the calling goroutine for at least d.
	Sleep(d time.Duration)
}

// New returns a Clock backed by the system monotonic clock.
func New() Clock {
	return &systemClock{start: time.Now()}
}

type systemClock struct {
	start time.Time
}

func (c *systemClock) Now() uint64 {
	// time.Since uses the monotonic reading carried by c.start.
	return uint64(time.Since(c.start))
}

func (c *systemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
