// Package dash implements Vector Dash, a gravity-flip runner for one or two
// players. Each player has a lane of scrolling obstacles; flipping gravity
// moves between floor and ceiling, and collected coins buy speed boosts.
package dash

import (
	"time"

	"github.com/vovakirdan/vector-dash/internal/config"
	"github.com/vovakirdan/vector-dash/internal/core"
	"github.com/vovakirdan/vector-dash/internal/registry"
)

// Registered game IDs.
const (
	GameID       = "vectordash"
	VersusGameID = "vectordash_versus"
)

// Options are host choices applied on the next Reset.
type Options struct {
	ConfigPath string
	Preset     config.DifficultyPreset
	BaseSpeed  float64 // 0 keeps the preset or config value
	Skin       core.Skin
	Realtime   bool // drive the round from the wall clock instead of frame time
	Store      HighScoreStore
}

var defaultOptions Options

// SetOptions sets the options used by games created through the registry.
func SetOptions(o Options) {
	defaultOptions = o
}

// CurrentOptions returns the options new games will use.
func CurrentOptions() Options {
	return defaultOptions
}

// Game adapts a Round to the registry.Game interface.
type Game struct {
	mode    Mode
	opts    Options
	cfg     config.DashConfig
	runtime core.RuntimeConfig
	round   *Round
	scene   *SceneBuffer

	clock       core.Clock
	frames      *core.FrameClock // nil in realtime mode
	paused      bool
	pausedAt    time.Time
	pausedTotal time.Duration

	shake map[core.PlayerID]int
	state core.GameState
	err   error
}

// New creates a single-player game using the current options.
func New() *Game {
	return NewWithOptions(ModeSingle, defaultOptions)
}

// NewVersus creates a two-player game using the current options.
func NewVersus() *Game {
	return NewWithOptions(ModeTwo, defaultOptions)
}

// NewWithOptions creates a game for mode with explicit options.
func NewWithOptions(mode Mode, opts Options) *Game {
	return &Game{mode: mode, opts: opts}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeTwo {
		return VersusGameID
	}
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeTwo {
		return "Vector Dash (2P)"
	}
	return "Vector Dash"
}

// Reset loads config and starts a fresh round.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadDash(g.opts.ConfigPath)
	if err != nil {
		cfg = config.DefaultDashConfig()
	}
	g.err = err
	if g.opts.Preset != "" {
		config.ApplyDashPreset(&cfg, g.opts.Preset)
	}
	if g.opts.BaseSpeed > 0 {
		cfg.Difficulty.BaseSpeed = g.opts.BaseSpeed
	}
	g.cfg = cfg

	if g.opts.Realtime {
		g.clock, g.frames = core.SystemClock{}, nil
	} else {
		g.frames = core.NewFrameClock(runtime.TickRate)
		g.clock = g.frames
	}
	g.paused = false
	g.pausedTotal = 0
	g.shake = make(map[core.PlayerID]int)

	g.scene = NewSceneBuffer()
	opts := []Option{WithScene(g.scene), WithSeed(uint64(runtime.Seed))}
	if g.opts.Store != nil {
		opts = append(opts, WithHighScoreStore(g.opts.Store))
	}
	if g.round != nil {
		// Survives restarts even when nothing is persisted.
		opts = append(opts, WithHighScore(g.round.HighScore()))
	}
	g.round = NewRound(cfg, opts...)
	if err := g.round.Configure(g.mode, cfg.Difficulty.BaseSpeed); err == nil {
		if err := g.round.Start(g.now()); err != nil {
			g.err = err
		}
	}
	g.state = g.buildState()
}

// Step applies this frame's input and advances the round by one tick.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	if g.round.Phase() != PhaseRunning {
		return core.StepResult{State: g.state}
	}

	if in.Has(core.Player1, core.ActionPause) {
		g.togglePause()
	}
	if g.paused {
		g.state = g.buildState()
		return core.StepResult{State: g.state}
	}

	for _, id := range g.round.Active() {
		if in.Has(id, core.ActionFlip) {
			g.round.Flip(id)
		}
		if in.Has(id, core.ActionBoost) {
			g.round.Boost(id)
		}
	}

	if g.frames != nil {
		g.frames.Frame()
	}
	ended := g.round.Tick(g.now())

	for id, n := range g.shake {
		if n > 0 {
			g.shake[id] = n - 1
		}
	}
	for _, fx := range g.scene.DrainEffects() {
		if fx.Kind == EffectDeath {
			g.shake[fx.Lane] = shakeTicks
		}
	}

	g.state = g.buildState()
	return core.StepResult{State: g.state, Ended: ended}
}

// now is simulation time with paused spans removed.
func (g *Game) now() time.Time {
	return g.clock.Now().Add(-g.pausedTotal)
}

func (g *Game) togglePause() {
	if g.paused {
		g.pausedTotal += g.clock.Now().Sub(g.pausedAt)
		g.paused = false
		return
	}
	g.pausedAt = g.clock.Now()
	g.paused = true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.state
}

func (g *Game) buildState() core.GameState {
	st := core.GameState{Paused: g.paused}
	for _, id := range g.round.Active() {
		st.Score = max(st.Score, g.round.Player(id).FlooredScore())
	}
	if res, ok := g.round.Result(); ok {
		st.GameOver = true
		st.Summary = res.Message()
	}
	return st
}

// Result returns the round-end payload once the round is over.
func (g *Game) Result() (Result, bool) {
	return g.round.Result()
}

// Snapshot exposes round state to hosts.
func (g *Game) Snapshot() Snapshot {
	return g.round.Snapshot()
}

// Mode returns the player count this game was created for.
func (g *Game) Mode() Mode {
	return g.mode
}

// Players returns how many local players share the keyboard.
func (g *Game) Players() int {
	if g.mode == ModeTwo {
		return 2
	}
	return 1
}

// Generation changes whenever the underlying round restarts.
func (g *Game) Generation() uint64 {
	return g.round.Generation()
}

// Err returns the last config or start error, if any. The game still runs
// on defaults after a config error.
func (g *Game) Err() error {
	return g.err
}

// Config returns the tuning in effect.
func (g *Game) Config() config.DashConfig {
	return g.cfg
}

// Resize changes the screen area used for layout. The round keeps running.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
}

// Pointer maps a screen cell to lane coordinates for coin pickup.
// inside is false when the pointer left the screen.
func (g *Game) Pointer(x, y int, inside bool) {
	if !inside {
		g.round.ClearPointer()
		return
	}
	for _, v := range g.layout() {
		if pos, ok := v.toWorld(x, y); ok {
			g.round.SetPointer(v.id, pos)
			return
		}
	}
	g.round.ClearPointer()
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
	registry.Register(VersusGameID, func() registry.Game {
		return NewVersus()
	})
}
