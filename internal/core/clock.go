package core

import "time"

// Clock supplies simulation time. The round controller never reads the wall
// clock directly so tests can step frames deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock only moves when told to.
type ManualClock struct {
	current time.Time
}

// NewManualClock creates a manual clock starting at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{current: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time {
	return c.current
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

// Set jumps the clock to t.
func (c *ManualClock) Set(t time.Time) {
	c.current = t
}

// FrameClock advances by one fixed frame per Frame call. Simulated time then
// tracks the tick count exactly, which is how score and difficulty already
// progress.
type FrameClock struct {
	ManualClock
	frame time.Duration
}

// NewFrameClock creates a frame clock for the given tick rate.
func NewFrameClock(tickRate int) *FrameClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FrameClock{
		ManualClock: ManualClock{current: time.Unix(0, 0)},
		frame:       time.Second / time.Duration(tickRate),
	}
}

// Frame advances the clock by one frame and returns the new time.
func (c *FrameClock) Frame() time.Time {
	c.Advance(c.frame)
	return c.current
}

// FrameDuration returns the length of one frame.
func (c *FrameClock) FrameDuration() time.Duration {
	return c.frame
}
