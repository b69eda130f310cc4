package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/vector-dash/internal/config"
	"github.com/vovakirdan/vector-dash/internal/core"
	"github.com/vovakirdan/vector-dash/internal/games/dash"
	"github.com/vovakirdan/vector-dash/internal/registry"
	"github.com/vovakirdan/vector-dash/internal/storage"
)

// Game is a mode the terminal host can run: a registry game that also
// brings its own controls and reports how its round ended.
type Game interface {
	registry.Game
	Config() config.DashConfig
	Result() (dash.Result, bool)
	Err() error
}

// GameModel runs one game: it drives ticks, maps keys and mouse to
// per-player actions, restarts on request and records finished rounds.
type GameModel struct {
	game   Game
	screen *core.Screen
	store  *storage.Store
	logger *log.Logger
	config core.RuntimeConfig
	keys   KeyMap

	input core.MultiInputFrame
	state core.GameState
	gen   uint64 // tick generation of the current round

	exitOnBack bool // standalone play: leaving the game ends the program
	quitting   bool
	backToMenu bool
	saved      bool
}

// NewGameModel creates a model for game and starts its first round.
// A nil logger discards output.
func NewGameModel(game Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := GameModel{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		logger: logger,
		config: cfg,
		input:  core.NewMultiInputFrame(),
	}
	m.start()
	m.keys = NewKeyMap(game.Config().Controls)
	return m
}

// start resets the game under a fresh tick generation.
func (m *GameModel) start() {
	m.gen = nextGen()
	m.game.Reset(m.config)
	m.state = m.game.State()
	m.saved = false
	m.input.Clear()

	if err := m.game.Err(); err != nil {
		m.logger.Warn("using default config", "game", m.game.ID(), "error", err)
	}
	m.logger.Debug("round started", "game", m.game.ID(), "seed", m.config.Seed, "gen", m.gen)
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if p, ok := m.game.(registry.PointerAware); ok {
			p.Pointer(msg.X, msg.Y, true)
		}
		return m, nil

	case tea.BlurMsg:
		if p, ok := m.game.(registry.PointerAware); ok {
			p.Pointer(0, 0, false)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input. Player actions are buffered until
// the next tick; platform keys act immediately.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		if m.state.GameOver || m.state.Paused {
			m.backToMenu = true
			if m.exitOnBack {
				return m, tea.Quit
			}
		}
		return m, nil

	case core.ActionRestart:
		if m.state.GameOver {
			m.config.Seed = time.Now().UnixNano()
			m.start()
			return m, tickCmd(m.config.TickRate, m.gen)
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	m.keys.MapKeyToFrame(msg, &m.input)
	return m, nil
}

// handleResize follows the terminal size. Games that cannot resize in
// place are restarted unless their round is already over.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}
	if !m.state.GameOver {
		m.start()
		return m, tickCmd(m.config.TickRate, m.gen)
	}
	return m, nil
}

// handleTick advances the simulation. The loop stops once the round ends
// and resumes only through a restart.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen {
		m.logger.Debug("dropping stale tick", "gen", msg.Gen, "current", m.gen)
		return m, nil
	}

	result := m.game.Step(m.input)
	m.input.Clear()
	m.state = result.State

	if m.state.GameOver {
		m.saveResult()
		return m, nil
	}
	return m, tickCmd(m.config.TickRate, m.gen)
}

// saveResult records a finished round once.
func (m *GameModel) saveResult() {
	if m.saved {
		return
	}
	m.saved = true

	id := m.game.ID()
	res, ok := m.game.Result()
	if !ok {
		return
	}
	m.logger.Info("round ended", "game", id, "outcome", res.Outcome, "summary", res.Message())
	if res.SaveErr != nil {
		m.logger.Warn("could not save high score", "error", res.SaveErr)
	}
	if m.store == nil {
		return
	}

	switch res.Mode {
	case dash.ModeSingle:
		p := res.Players[0]
		if p.Score == 0 {
			return
		}
		if _, err := m.store.SaveScore(id, p.Score, p.Coins); err != nil {
			m.logger.Warn("could not save score", "game", id, "error", err)
		}

	case dash.ModeTwo:
		p1, _ := res.Player(core.Player1)
		p2, _ := res.Player(core.Player2)
		matchID, err := m.store.SaveVersusMatch(storage.VersusMatch{
			P1Score: p1.Score,
			P1Coins: p1.Coins,
			P2Score: p2.Score,
			P2Coins: p2.Coins,
			Outcome: res.Outcome.String(),
		})
		if err != nil {
			m.logger.Warn("could not save versus match", "error", err)
			return
		}
		m.logger.Debug("versus match saved", "match", matchID)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := config.UserPath("screenshots")
	if dir == "" {
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.state
}

// Run plays game in the terminal until the user leaves it.
// quit is true if the user asked to exit the program rather than return to a menu.
func Run(game Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (quit bool, err error) {
	model := NewGameModel(game, store, cfg, logger)
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // hovering a coin collects it
		tea.WithReportFocus(),
	)

	final, err := p.Run()
	if err != nil {
		return true, err
	}
	if m, ok := final.(GameModel); ok {
		return m.IsQuitting(), nil
	}
	return true, nil
}

// NewGame builds a Vector Dash game from a menu selection.
func NewGame(sel MenuResult, store *storage.Store) *dash.Game {
	opts := dash.CurrentOptions()
	opts.BaseSpeed = float64(sel.Speed)
	opts.Skin = sel.Skin
	opts.Store = storage.NewHighScoreKeeper(store)
	return dash.NewWithOptions(sel.Mode, opts)
}
