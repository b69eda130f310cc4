package dash

import (
	"github.com/vovakirdan/vector-dash/internal/config"
	"github.com/vovakirdan/vector-dash/internal/core"
)

// Ref identifies a scene element for the lifetime of a round.
type Ref uint64

// Anchor says which lane edge an obstacle hangs from.
type Anchor int

const (
	AnchorBottom Anchor = iota
	AnchorTop
	AnchorFloating
)

// Obstacle is a solid block. Only X changes after spawn.
type Obstacle struct {
	Ref    Ref
	X      float64
	Y      float64
	Width  float64
	Height float64
	Anchor Anchor
}

// Floating reports whether the block hangs free of both edges.
func (o Obstacle) Floating() bool {
	return o.Anchor == AnchorFloating
}

// Box returns the obstacle's collision box.
func (o Obstacle) Box() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// Coin is a collectible. Collected coins are removed from the lane.
type Coin struct {
	Ref  Ref
	X    float64
	Y    float64
	Size float64
}

// Box returns the coin's unpadded box.
func (c Coin) Box() core.Rect {
	return core.NewRect(c.X, c.Y, c.Size, c.Size)
}

// Lane is one player's strip of the world. It exclusively owns its
// obstacles, coins and pattern generator.
type Lane struct {
	ID        core.PlayerID
	width     float64
	height    float64
	obstacles []Obstacle
	coins     []Coin
	gen       *PatternGenerator
	refs      *Ref
}

func newLane(id core.PlayerID, cfg config.DashConfig, gen *PatternGenerator, refs *Ref) *Lane {
	return &Lane{
		ID:     id,
		width:  cfg.Lane.Width,
		height: cfg.Lane.Height,
		gen:    gen,
		refs:   refs,
	}
}

func (l *Lane) nextRef() Ref {
	*l.refs++
	return *l.refs
}

// Obstacles returns the live obstacles, oldest first.
func (l *Lane) Obstacles() []Obstacle {
	return l.obstacles
}

// Coins returns the uncollected coins, oldest first.
func (l *Lane) Coins() []Coin {
	return l.coins
}

// spawn materializes one generator emission at the right edge.
func (l *Lane) spawn(e Emission, coinLead float64) (placed []Ref) {
	for _, s := range e.Obstacles {
		o := Obstacle{
			Ref:    l.nextRef(),
			X:      l.width,
			Y:      s.Y,
			Width:  s.Width,
			Height: s.Height,
			Anchor: s.Anchor,
		}
		l.obstacles = append(l.obstacles, o)
		placed = append(placed, o.Ref)
	}
	if e.Coin != nil {
		c := Coin{
			Ref:  l.nextRef(),
			X:    l.width + coinLead,
			Y:    e.Coin.Y,
			Size: e.Coin.Size,
		}
		l.coins = append(l.coins, c)
		placed = append(placed, c.Ref)
	}
	return placed
}

// scroll moves everything left by dx and drops entities that have fully
// left the lane.
func (l *Lane) scroll(dx float64) (removed []Ref) {
	kept := l.obstacles[:0]
	for _, o := range l.obstacles {
		o.X -= dx
		if o.X < -o.Width {
			removed = append(removed, o.Ref)
			continue
		}
		kept = append(kept, o)
	}
	l.obstacles = kept

	keptCoins := l.coins[:0]
	for _, c := range l.coins {
		c.X -= dx
		if c.X < -c.Size {
			removed = append(removed, c.Ref)
			continue
		}
		keptCoins = append(keptCoins, c)
	}
	l.coins = keptCoins
	return removed
}

// collect removes coins matching hit and returns them.
func (l *Lane) collect(hit func(Coin) bool) []Coin {
	var got []Coin
	kept := l.coins[:0]
	for _, c := range l.coins {
		if hit(c) {
			got = append(got, c)
			continue
		}
		kept = append(kept, c)
	}
	l.coins = kept
	return got
}

// clear drops every entity and resets the generator.
func (l *Lane) clear() (removed []Ref) {
	for _, o := range l.obstacles {
		removed = append(removed, o.Ref)
	}
	for _, c := range l.coins {
		removed = append(removed, c.Ref)
	}
	l.obstacles = nil
	l.coins = nil
	l.gen.Reset()
	return removed
}
