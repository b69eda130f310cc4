package dash

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/vector-dash/internal/core"
)

// Snapshot is a read-only copy of round state for HUDs and tests.
type Snapshot struct {
	Phase     Phase
	Mode      Mode
	Ticks     int
	Speed     float64
	Interval  time.Duration
	HighScore int
	Players   []PlayerSnapshot
	Lanes     []LaneSnapshot
}

// PlayerSnapshot is a copy of one player's state.
type PlayerSnapshot struct {
	Player
	Floored int
}

// LaneSnapshot is a copy of one lane's entities.
type LaneSnapshot struct {
	ID        core.PlayerID
	Obstacles []Obstacle
	Coins     []Coin
	Pending   PendingPattern
}

// Snapshot copies the current state of every active player and lane.
func (r *Round) Snapshot() Snapshot {
	s := Snapshot{
		Phase:     r.phase,
		Mode:      r.mode,
		Ticks:     r.ticks,
		Speed:     r.diff.Speed(),
		Interval:  r.diff.Interval(),
		HighScore: r.highScore,
	}
	for _, id := range r.active() {
		p := *r.player(id)
		l := r.lane(id)
		s.Players = append(s.Players, PlayerSnapshot{Player: p, Floored: p.FlooredScore()})
		s.Lanes = append(s.Lanes, LaneSnapshot{
			ID:        id,
			Obstacles: append([]Obstacle(nil), l.obstacles...),
			Coins:     append([]Coin(nil), l.coins...),
			Pending:   l.gen.Pending(),
		})
	}
	return s
}

// HUD formats the score line for one player, e.g.
// "P1 Score: 120 | Coins: 3 (E: Boost)".
func (p PlayerSnapshot) HUD(boostKey string) string {
	line := fmt.Sprintf("%s Score: %d | Coins: %d", p.ID, p.Floored, p.Coins)
	if boostKey != "" {
		line += fmt.Sprintf(" (%s: Boost)", strings.ToUpper(boostKey))
	}
	return line
}
