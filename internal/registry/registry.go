// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/vector-dash/internal/core"
)

// Game is the core interface that every game mode implements.
// Games hold pure logic with no Bubble Tea dependency; the platform
// handles input mapping, timing and terminal output.
type Game interface {
	// ID is the unique mode identifier (e.g., "vectordash_versus").
	// It also keys score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Vector Dash").
	Title() string

	// Reset loads configuration and starts a fresh round.
	// Called once at start and again on every restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick. Input holds the
	// per-player actions (Flip, Boost, Pause) resolved by the platform.
	Step(in core.MultiInputFrame) core.StepResult

	// Render draws the current state into a cleared screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// PointerAware is implemented by games that react to the mouse.
// x and y are screen cells; inside is false once the pointer leaves.
type PointerAware interface {
	Pointer(x, y int, inside bool)
}

// Resizer is implemented by games that can follow a terminal resize
// without restarting. Games without it are Reset with the new size.
type Resizer interface {
	Resize(w, h int)
}

// PlayerCounter is implemented by modes with more than one local player.
type PlayerCounter interface {
	Players() int
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID      string
	Title   string
	Players int
}

// Factory creates a new instance of a game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a game factory under id. Metadata is read from one
// probe instance. Panics if id is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	probe := f()
	info := GameInfo{ID: id, Title: probe.Title(), Players: 1}
	if pc, ok := probe.(PlayerCounter); ok {
		info.Players = pc.Players()
	}
	entries[id] = entry{info: info, factory: f}
}

// List returns all registered modes sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return result
}

// Lookup returns the metadata registered for id.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
