package dash

import (
	"math"
	"time"

	"github.com/vovakirdan/vector-dash/internal/config"
)

// Difficulty is the scroll speed and spawn cadence shared by every lane.
// Speed only grows and interval only shrinks while a round runs.
type Difficulty struct {
	cfg      config.DifficultyConfig
	speed    float64
	interval time.Duration
	steps    int
}

// NewDifficulty creates a controller seeded from the configured base speed.
func NewDifficulty(cfg config.DifficultyConfig) *Difficulty {
	d := &Difficulty{cfg: cfg}
	d.Seed(cfg.BaseSpeed)
	return d
}

// Seed restarts progression from a base speed.
func (d *Difficulty) Seed(baseSpeed float64) {
	d.speed = baseSpeed
	d.interval = d.cfg.SpawnInterval(baseSpeed)
	d.steps = 0
}

// Speed returns the stored scroll speed in world units per tick.
func (d *Difficulty) Speed() float64 {
	return d.speed
}

// Interval returns the time between spawns.
func (d *Difficulty) Interval() time.Duration {
	return d.interval
}

// Steps returns how many escalations happened this round.
func (d *Difficulty) Steps() int {
	return d.steps
}

// Effective returns the lane scroll speed, boosted or not.
// The stored speed is never changed by a boost.
func (d *Difficulty) Effective(boosting bool, multiplier float64) float64 {
	if boosting {
		return d.speed * multiplier
	}
	return d.speed
}

// Observe escalates once when a player's floored score crosses a
// ScoreStep boundary. Returns true if it escalated.
func (d *Difficulty) Observe(oldScore, newScore float64) bool {
	if !d.cfg.Enabled || d.cfg.ScoreStep <= 0 {
		return false
	}
	step := d.cfg.ScoreStep
	before := int(math.Floor(oldScore)) / step
	after := int(math.Floor(newScore)) / step
	if before == after {
		return false
	}

	d.speed += d.cfg.SpeedIncrease
	d.interval = max(config.Millis(d.cfg.MinIntervalMs), d.interval-config.Millis(d.cfg.IntervalDecreaseMs))
	d.steps++
	return true
}
