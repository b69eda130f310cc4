package dash

import "time"

// Timers runs fire-and-forget callbacks on simulation time. Each callback
// remembers the generation it was scheduled in and is dropped if the
// generation has moved on, so nothing scheduled before a reset can touch
// the next round.
type Timers struct {
	gen     uint64
	pending []timer
}

type timer struct {
	at  time.Time
	gen uint64
	fn  func()
}

// After schedules fn to run on the first Fire at or after now+d.
func (t *Timers) After(now time.Time, d time.Duration, fn func()) {
	t.pending = append(t.pending, timer{at: now.Add(d), gen: t.gen, fn: fn})
}

// Fire runs every due callback from the current generation and returns
// how many ran.
func (t *Timers) Fire(now time.Time) int {
	ran := 0
	due := t.pending[:0:0]
	kept := t.pending[:0]
	for _, tm := range t.pending {
		switch {
		case tm.gen != t.gen:
			// stale, drop
		case now.Before(tm.at):
			kept = append(kept, tm)
		default:
			due = append(due, tm)
		}
	}
	t.pending = kept

	for _, tm := range due {
		if tm.gen != t.gen {
			continue
		}
		tm.fn()
		ran++
	}
	return ran
}

// Invalidate bumps the generation and discards pending callbacks.
func (t *Timers) Invalidate() {
	t.gen++
	t.pending = nil
}

// Generation returns the current generation.
func (t *Timers) Generation() uint64 {
	return t.gen
}

// Len returns the number of pending callbacks.
func (t *Timers) Len() int {
	return len(t.pending)
}
