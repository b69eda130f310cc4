package dash

import (
	"math"
	"time"

	"github.com/vovakirdan/vector-dash/internal/config"
	"github.com/vovakirdan/vector-dash/internal/core"
)

// Gravity is the sign of vertical acceleration.
type Gravity int

const (
	GravityNormal  Gravity = -1 // pulls toward the floor
	GravityFlipped Gravity = 1  // pulls toward the ceiling
)

// Orientation is how the player sprite is drawn.
type Orientation int

const (
	Upright Orientation = iota
	Inverted
)

// Orientation returns the sprite orientation matching this gravity.
func (g Gravity) Orientation() Orientation {
	if g == GravityFlipped {
		return Inverted
	}
	return Upright
}

// Player is the per-player simulation state.
//
// Y is the bottom edge of the player box and always lies in
// [floorY, ceilingY]. Dead is monotonic within a round.
type Player struct {
	ID         core.PlayerID
	Y          float64
	VY         float64
	Gravity    Gravity
	Dead       bool
	Score      float64
	Coins      int
	Boosting   bool
	BoostUntil time.Time // valid only while Boosting
}

func newPlayer(id core.PlayerID, floorY float64) Player {
	return Player{ID: id, Y: floorY, Gravity: GravityNormal}
}

// FlooredScore is the score shown to players and used for ranking.
func (p Player) FlooredScore() int {
	return int(math.Floor(p.Score))
}

// Grounded reports whether the player rests against the floor or ceiling.
func (p Player) Grounded() bool {
	return p.VY == 0
}

// Box returns the player's collision box.
func (p Player) Box(cfg config.PlayerConfig) core.Rect {
	return core.NewRect(cfg.X, p.Y, cfg.Width, cfg.Height)
}

// flip inverts gravity and launches away from the current surface.
// Airborne or dead players cannot flip; the attempt is dropped.
func (p *Player) flip(launch float64) bool {
	if p.Dead || !p.Grounded() {
		return false
	}
	p.Gravity = -p.Gravity
	p.VY = launch * float64(p.Gravity)
	return true
}

// boost spends cost coins for a timed speed boost.
func (p *Player) boost(now time.Time, cfg config.BoostConfig) bool {
	if p.Dead || p.Boosting || p.Coins < cfg.Cost {
		return false
	}
	p.Coins -= cfg.Cost
	p.Boosting = true
	p.BoostUntil = now.Add(cfg.Duration())
	return true
}
