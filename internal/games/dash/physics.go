package dash

import (
	"time"

	"github.com/vovakirdan/vector-dash/internal/config"
	"github.com/vovakirdan/vector-dash/internal/core"
)

// pointer is the last known pointer position, in one lane's coordinates.
type pointer struct {
	lane   core.PlayerID
	pos    core.Vec
	active bool
}

func (p pointer) in(l *Lane) bool {
	return p.active && p.lane == l.ID &&
		core.NewRect(0, 0, l.width, l.height).Contains(p.pos)
}

// box is a size x size square centred on the pointer.
func (p pointer) box(size float64) core.Rect {
	return core.NewRect(p.pos.X-size/2, p.pos.Y-size/2, size, size)
}

// stepReport lists what happened to one player during a tick.
type stepReport struct {
	boostEnded bool
	escalated  bool
	died       bool
	collected  []Coin
}

// stepPlayer advances one player by a tick. Dead players are left untouched.
//
// Score grows by a fixed amount per tick, not per unit of time, so a
// faster tick rate also means faster scoring and escalation.
func stepPlayer(p *Player, lane *Lane, now time.Time, cfg config.DashConfig, diff *Difficulty, ptr pointer) stepReport {
	var rep stepReport
	if p.Dead {
		return rep
	}

	if p.Boosting && now.After(p.BoostUntil) {
		p.Boosting = false
		rep.boostEnded = true
	}

	p.VY += float64(p.Gravity) * cfg.Physics.Gravity
	p.Y += p.VY

	if floor := cfg.Player.FloorY; p.Y <= floor {
		p.Y = floor
		p.VY = 0
	}
	if ceiling := cfg.CeilingY(); p.Y >= ceiling {
		p.Y = ceiling
		p.VY = 0
	}

	old := p.Score
	p.Score += cfg.Physics.ScorePerTick
	rep.escalated = diff.Observe(old, p.Score)

	box := p.Box(cfg.Player)
	for _, o := range lane.obstacles {
		if box.Intersects(o.Box()) {
			p.Dead = true
			rep.died = true
			break
		}
	}
	if p.Dead && p.Boosting {
		p.Boosting = false
		rep.boostEnded = true
	}

	// Coins touched on the death tick still count; the pointer does not.
	padded := box.Expand(cfg.Coins.HitboxPadding)
	rep.collected = lane.collect(func(c Coin) bool {
		return padded.Intersects(c.Box())
	})

	if !p.Dead && ptr.in(lane) {
		cursor := ptr.box(cfg.Coins.PointerSize)
		rep.collected = append(rep.collected, lane.collect(func(c Coin) bool {
			return cursor.Intersects(c.Box())
		})...)
	}

	p.Coins += len(rep.collected)
	return rep
}
