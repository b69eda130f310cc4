package dash

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/vector-dash/internal/config"
	"github.com/vovakirdan/vector-dash/internal/core"
)

var (
	// ErrModeNotSelected is returned by Start before a mode is configured.
	ErrModeNotSelected = errors.New("dash: select a game mode first")
	// ErrRoundRunning is returned when a running round is started or reconfigured.
	ErrRoundRunning = errors.New("dash: round already running")
)

// Mode is the number of active players.
type Mode int

const (
	ModeNone Mode = iota
	ModeSingle
	ModeTwo
)

func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeTwo:
		return "two"
	default:
		return "none"
	}
}

// ParseMode accepts "single"/"1" and "two"/"2".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "single", "1":
		return ModeSingle, nil
	case "two", "2", "versus":
		return ModeTwo, nil
	default:
		return ModeNone, fmt.Errorf("dash: unknown mode %q (want single or two)", s)
	}
}

// Phase is the round lifecycle state: idle -> running -> ended -> idle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "idle"
	}
}

// HighScoreStore persists the single-player high score.
type HighScoreStore interface {
	HighScore() (int, error)
	SetHighScore(score int) error
}

// Sparkle burst around a collected coin.
const (
	sparkleCount = 8
	sparkleDist  = 40.0
	sparkleSize  = 4.0
)

// Round owns all simulation state for one match and drives it one tick at
// a time. It is not safe for concurrent use; the host calls it from a
// single loop.
type Round struct {
	cfg   config.DashConfig
	scene Scene
	store HighScoreStore
	seed  uint64

	mode      Mode
	baseSpeed float64
	phase     Phase

	players [2]Player
	lanes   [2]*Lane
	refs    Ref
	diff    *Difficulty
	timers  Timers
	ptr     pointer
	live    map[Ref]core.PlayerID // placed transients awaiting removal

	now       time.Time
	lastSpawn time.Time
	ticks     int
	highScore int
	result    *Result
}

// Option configures a Round.
type Option func(*Round)

// WithScene sets the scene sink. Defaults to NopScene.
func WithScene(s Scene) Option {
	return func(r *Round) {
		r.scene = s
	}
}

// WithHighScoreStore loads and saves the high score through s.
func WithHighScoreStore(s HighScoreStore) Option {
	return func(r *Round) {
		r.store = s
	}
}

// WithHighScore starts the round from a high score already known to the
// caller. A higher stored value still wins.
func WithHighScore(score int) Option {
	return func(r *Round) {
		r.highScore = score
	}
}

// WithSeed seeds obstacle generation. Both lanes get the same seed so
// versus players face the same course.
func WithSeed(seed uint64) Option {
	return func(r *Round) {
		r.seed = seed
	}
}

// NewRound creates an idle round with no mode selected.
func NewRound(cfg config.DashConfig, opts ...Option) *Round {
	r := &Round{
		cfg:       cfg,
		scene:     NopScene{},
		baseSpeed: cfg.Difficulty.BaseSpeed,
		live:      make(map[Ref]core.PlayerID),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.diff = NewDifficulty(cfg.Difficulty)
	for i, id := range []core.PlayerID{core.Player1, core.Player2} {
		gen := NewPatternGenerator(cfg, NewRand(r.seed))
		r.lanes[i] = newLane(id, cfg, gen, &r.refs)
		r.players[i] = newPlayer(id, cfg.Player.FloorY)
	}

	if r.store != nil {
		// A missing or unreadable value starts from zero.
		if hs, err := r.store.HighScore(); err == nil {
			r.highScore = max(r.highScore, hs)
		}
	}
	return r
}

// Configure selects the mode and base speed for the next Start.
func (r *Round) Configure(mode Mode, baseSpeed float64) error {
	if r.phase == PhaseRunning {
		return ErrRoundRunning
	}
	r.mode = mode
	r.baseSpeed = config.ClampBaseSpeed(baseSpeed)
	return nil
}

// Start begins a round at now. An ended round is reset first.
func (r *Round) Start(now time.Time) error {
	switch {
	case r.mode == ModeNone:
		return ErrModeNotSelected
	case r.phase == PhaseRunning:
		return ErrRoundRunning
	case r.phase == PhaseEnded:
		r.Reset()
	}

	r.timers.Invalidate()
	r.diff.Seed(r.baseSpeed)
	r.now = now
	r.lastSpawn = now
	r.phase = PhaseRunning
	for _, id := range r.active() {
		r.project(id)
	}
	return nil
}

// Tick advances the simulation to now. It does nothing unless the round
// is running and returns true only on the tick the round ends.
func (r *Round) Tick(now time.Time) bool {
	if r.phase != PhaseRunning {
		return false
	}
	r.now = now
	r.ticks++
	r.timers.Fire(now)

	if now.Sub(r.lastSpawn) > r.diff.Interval() {
		for _, id := range r.active() {
			r.lane(id).spawn(r.lane(id).gen.Next(r.diff.Speed()), r.cfg.Coins.SpawnLead)
		}
		r.lastSpawn = now
	}

	for _, id := range r.active() {
		rep := stepPlayer(r.player(id), r.lane(id), now, r.cfg, r.diff, r.ptr)
		r.report(id, rep)
	}

	for _, id := range r.active() {
		r.scroll(id)
	}

	r.trail()

	for _, id := range r.active() {
		if !r.player(id).Dead {
			return false
		}
	}
	r.end()
	return true
}

// Flip inverts the player's gravity if they are resting on a surface.
func (r *Round) Flip(id core.PlayerID) bool {
	if !r.accepts(id) {
		return false
	}
	p := r.player(id)
	if !p.flip(r.cfg.Physics.LaunchVelocity) {
		return false
	}

	r.project(id)
	r.scene.Effect(id, EffectFlipHighlight, r.center(id))
	r.timers.After(r.now, config.Millis(r.cfg.Effects.FlipHighlightMs), func() {
		r.scene.Effect(id, EffectFlipHighlightEnd, r.center(id))
	})
	return true
}

// Boost spends coins on a speed boost for the player's lane.
func (r *Round) Boost(id core.PlayerID) bool {
	if !r.accepts(id) {
		return false
	}
	if !r.player(id).boost(r.now, r.cfg.Boost) {
		return false
	}
	r.scene.Effect(id, EffectBoostStart, r.center(id))
	return true
}

// SetPointer records a pointer position in a lane's coordinates.
func (r *Round) SetPointer(lane core.PlayerID, pos core.Vec) {
	r.ptr = pointer{lane: lane, pos: pos, active: true}
}

// ClearPointer forgets the pointer, e.g. when it leaves every lane.
func (r *Round) ClearPointer() {
	r.ptr = pointer{}
}

// Reset returns to idle: players and lanes are restored and callbacks
// scheduled by the previous round are discarded. Mode and base speed are kept.
func (r *Round) Reset() {
	r.timers.Invalidate()
	for ref := range r.live {
		r.scene.Remove(ref)
		delete(r.live, ref)
	}
	for i, l := range r.lanes {
		for _, ref := range l.clear() {
			r.scene.Remove(ref)
		}
		r.players[i] = newPlayer(l.ID, r.cfg.Player.FloorY)
		r.scene.Effect(l.ID, EffectReset, core.Vec{})
	}
	r.diff.Seed(r.baseSpeed)
	r.phase = PhaseIdle
	r.result = nil
	r.ticks = 0
	r.ptr = pointer{}
}

// Result returns the outcome once the round has ended.
func (r *Round) Result() (Result, bool) {
	if r.result == nil {
		return Result{}, false
	}
	return *r.result, true
}

// Generation changes on every Start and Reset. Hosts compare it to drop
// frame callbacks scheduled for an earlier round.
func (r *Round) Generation() uint64 {
	return r.timers.Generation()
}

// Phase returns the lifecycle state.
func (r *Round) Phase() Phase { return r.phase }

// Mode returns the configured mode.
func (r *Round) Mode() Mode { return r.mode }

// BaseSpeed returns the configured base speed.
func (r *Round) BaseSpeed() float64 { return r.baseSpeed }

// HighScore returns the best single-player score seen by this process.
func (r *Round) HighScore() int { return r.highScore }

// Ticks returns the number of ticks simulated this round.
func (r *Round) Ticks() int { return r.ticks }

// Speed returns the shared scroll speed.
func (r *Round) Speed() float64 { return r.diff.Speed() }

// Interval returns the shared spawn interval.
func (r *Round) Interval() time.Duration { return r.diff.Interval() }

// Player returns a copy of a player's state.
func (r *Round) Player(id core.PlayerID) Player {
	return *r.player(id)
}

// Active returns the players taking part in the configured mode.
func (r *Round) Active() []core.PlayerID {
	return r.active()
}

func (r *Round) active() []core.PlayerID {
	switch r.mode {
	case ModeSingle:
		return []core.PlayerID{core.Player1}
	case ModeTwo:
		return []core.PlayerID{core.Player1, core.Player2}
	default:
		return nil
	}
}

func (r *Round) accepts(id core.PlayerID) bool {
	if r.phase != PhaseRunning {
		return false
	}
	if id != core.Player1 && id != core.Player2 {
		return false
	}
	return id == core.Player1 || r.mode == ModeTwo
}

func (r *Round) player(id core.PlayerID) *Player {
	return &r.players[id.Index()]
}

func (r *Round) lane(id core.PlayerID) *Lane {
	return r.lanes[id.Index()]
}

func (r *Round) nextRef() Ref {
	r.refs++
	return r.refs
}

func (r *Round) center(id core.PlayerID) core.Vec {
	return r.player(id).Box(r.cfg.Player).Center()
}

func (r *Round) project(id core.PlayerID) {
	p := r.player(id)
	r.scene.Transform(id, core.Vec{X: r.cfg.Player.X, Y: p.Y}, p.Gravity.Orientation())
}

// report turns a player's step into scene calls.
func (r *Round) report(id core.PlayerID, rep stepReport) {
	if rep.boostEnded {
		r.scene.Effect(id, EffectBoostEnd, r.center(id))
	}
	if !r.player(id).Dead || rep.died {
		r.project(id)
	}
	if rep.died {
		r.scene.Effect(id, EffectDeath, r.center(id))
	}
	for _, c := range rep.collected {
		r.scene.Remove(c.Ref)
		r.coinFeedback(id, c)
	}
}

func (r *Round) coinFeedback(id core.PlayerID, c Coin) {
	at := c.Box().Center()
	r.scene.Effect(id, EffectCoin, at)

	fx := r.cfg.Effects
	for i := range sparkleCount {
		angle := 2 * math.Pi * float64(i) / sparkleCount
		box := core.NewRect(
			at.X+math.Cos(angle)*sparkleDist-sparkleSize/2,
			at.Y+math.Sin(angle)*sparkleDist-sparkleSize/2,
			sparkleSize, sparkleSize,
		)
		r.transient(id, ElementSparkle, box, config.Millis(fx.SparkleMs))
	}
	r.transient(id, ElementFloatText, c.Box(), config.Millis(fx.FloatTextMs))
}

// transient places an element that removes itself after d.
func (r *Round) transient(id core.PlayerID, kind ElementKind, box core.Rect, d time.Duration) {
	ref := r.nextRef()
	r.scene.Place(ref, id, kind, box)
	r.live[ref] = id
	r.timers.After(r.now, d, func() {
		r.scene.Remove(ref)
		delete(r.live, ref)
	})
}

// scroll moves a lane by its effective speed and syncs the scene.
func (r *Round) scroll(id core.PlayerID) {
	l := r.lane(id)
	speed := r.diff.Effective(r.player(id).Boosting, r.cfg.Boost.Multiplier)
	for _, ref := range l.scroll(speed) {
		r.scene.Remove(ref)
	}
	for _, o := range l.obstacles {
		kind := ElementObstacle
		if o.Floating() {
			kind = ElementFloating
		}
		r.scene.Place(o.Ref, id, kind, o.Box())
	}
	for _, c := range l.coins {
		r.scene.Place(c.Ref, id, ElementCoin, c.Box())
	}
}

func (r *Round) trail() {
	every := r.cfg.Effects.TrailEvery
	if every <= 0 || r.ticks%every != 0 {
		return
	}
	for _, id := range r.active() {
		p := r.player(id)
		if p.Dead {
			continue
		}
		kind := ElementTrail
		if p.Boosting {
			kind = ElementBoostTrail
		}
		r.transient(id, kind, p.Box(r.cfg.Player), config.Millis(r.cfg.Effects.TrailMs))
	}
}

func (r *Round) end() {
	r.phase = PhaseEnded

	res := Result{Mode: r.mode, HighScore: r.highScore}
	for _, id := range r.active() {
		p := r.player(id)
		res.Players = append(res.Players, PlayerResult{ID: id, Score: p.FlooredScore(), Coins: p.Coins})
	}

	if r.mode == ModeSingle {
		res.Outcome = OutcomeSingle
		if s := res.Players[0].Score; s > r.highScore {
			r.highScore = s
			res.HighScore = s
			res.NewHighScore = true
			if r.store != nil {
				res.SaveErr = r.store.SetHighScore(s)
			}
		}
	} else {
		res.Outcome = decide(res.Players[0], res.Players[1])
	}
	r.result = &res
}
