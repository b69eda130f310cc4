package dash

import (
	"math"
	"math/rand/v2"

	"github.com/vovakirdan/vector-dash/internal/config"
)

// PatternKind is an obstacle formation.
type PatternKind int

const (
	PatternNone PatternKind = iota
	PatternSingle
	PatternGate
	PatternStairs
	PatternTunnel
)

func (k PatternKind) String() string {
	switch k {
	case PatternSingle:
		return "single"
	case PatternGate:
		return "gate"
	case PatternStairs:
		return "stairs"
	case PatternTunnel:
		return "tunnel"
	default:
		return "none"
	}
}

// Steps returns how many generator calls one pattern spans.
func (k PatternKind) Steps() int {
	switch k {
	case PatternSingle, PatternGate:
		return 1
	case PatternStairs:
		return 3
	case PatternTunnel:
		return 5
	default:
		return 0
	}
}

// Selection thresholds on a uniform draw. Below minPatternLevel only
// singles are produced.
const (
	singleBelow     = 0.4
	gateBelow       = 0.7
	stairsBelow     = 0.9
	minPatternLevel = 3
	maxPatternLevel = 10
)

// PendingPattern is the formation currently being emitted.
type PendingPattern struct {
	Kind      PatternKind
	Remaining int
}

// ObstacleSpec is obstacle geometry before it is placed in a lane.
type ObstacleSpec struct {
	Anchor Anchor
	Y      float64
	Width  float64
	Height float64
}

// CoinSpec is coin geometry before it is placed in a lane.
type CoinSpec struct {
	Y    float64
	Size float64
}

// Emission is the output of one generator call.
type Emission struct {
	Pattern   PatternKind
	Obstacles []ObstacleSpec
	Coin      *CoinSpec
}

// Rand is the subset of *rand.Rand the generator draws from.
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded PCG source.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// PatternGenerator emits one obstacle step (and maybe a coin) per call.
type PatternGenerator struct {
	cfg     config.DashConfig
	rng     Rand
	pending PendingPattern
}

// NewPatternGenerator creates a generator drawing from rng.
func NewPatternGenerator(cfg config.DashConfig, rng Rand) *PatternGenerator {
	return &PatternGenerator{cfg: cfg, rng: rng}
}

// Pending returns the formation in progress, if any.
func (g *PatternGenerator) Pending() PendingPattern {
	return g.pending
}

// Reset drops any formation in progress.
func (g *PatternGenerator) Reset() {
	g.pending = PendingPattern{}
}

// PatternLevel maps scroll speed to the 0-10 level used for selection.
func PatternLevel(speed float64) int {
	return min(maxPatternLevel, int(math.Floor(speed/2)))
}

// choose picks the next formation from a uniform draw r.
func choose(level int, r float64) PatternKind {
	switch {
	case level < minPatternLevel || r < singleBelow:
		return PatternSingle
	case r < gateBelow:
		return PatternGate
	case r < stairsBelow:
		return PatternStairs
	default:
		return PatternTunnel
	}
}

// Next emits one step of the current formation, starting a new one if idle.
func (g *PatternGenerator) Next(speed float64) Emission {
	if g.pending.Kind == PatternNone {
		kind := choose(PatternLevel(speed), g.rng.Float64())
		g.pending = PendingPattern{Kind: kind, Remaining: kind.Steps()}
	}

	e := Emission{Pattern: g.pending.Kind}
	o := g.cfg.Obstacles
	h := g.cfg.Lane.Height

	switch g.pending.Kind {
	case PatternSingle:
		bottom := g.rng.Float64() < 0.5
		height := o.SingleMinHeight + g.rng.Float64()*o.SingleHeightRange
		if bottom {
			e.Obstacles = append(e.Obstacles, g.anchored(AnchorBottom, height, o.Width))
		} else {
			e.Obstacles = append(e.Obstacles, g.anchored(AnchorTop, height, o.Width))
		}

	case PatternGate:
		center := o.GateMargin + g.rng.Float64()*(h-2*o.GateMargin)
		topH := h - (center + o.GateSafeZone/2)
		botH := center - o.GateSafeZone/2
		e.Obstacles = append(e.Obstacles,
			g.anchored(AnchorTop, topH, o.Width),
			g.anchored(AnchorBottom, botH, o.Width),
		)

	case PatternStairs:
		step := PatternStairs.Steps() - g.pending.Remaining
		height := o.StairsBaseHeight + float64(step)*o.StairsStepHeight
		e.Obstacles = append(e.Obstacles, g.anchored(AnchorBottom, height, o.Width))

	case PatternTunnel:
		y := o.TunnelMinY + g.rng.Float64()*(h-o.TunnelMargin)
		e.Obstacles = append(e.Obstacles, ObstacleSpec{
			Anchor: AnchorFloating,
			Y:      y,
			Width:  o.TunnelWidth,
			Height: o.TunnelHeight,
		})
	}

	g.pending.Remaining--
	if g.pending.Remaining <= 0 {
		g.pending = PendingPattern{}
	}

	e.Coin = g.maybeCoin()
	return e
}

func (g *PatternGenerator) anchored(a Anchor, height, width float64) ObstacleSpec {
	y := 0.0
	if a == AnchorTop {
		y = g.cfg.Lane.Height - height
	}
	return ObstacleSpec{Anchor: a, Y: y, Width: width, Height: height}
}

// maybeCoin places a coin one launch arc away from the floor or ceiling.
func (g *PatternGenerator) maybeCoin() *CoinSpec {
	c := g.cfg.Coins
	if g.rng.Float64() >= c.SpawnChance {
		return nil
	}

	var y float64
	if g.rng.Float64() < 0.5 {
		y = g.cfg.Player.FloorY + c.OffsetY + g.rng.Float64()*c.RangeY
	} else {
		top := g.cfg.Lane.Height - c.Size - c.TopInset
		y = top - c.OffsetY - g.rng.Float64()*c.RangeY
	}
	return &CoinSpec{Y: y, Size: c.Size}
}
