// Package registry lets games announce themselves from init() so the host
// can list and build them by ID without importing each one by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Game is what the terminal host drives. Implementations hold pure logic:
// no terminal, timers or I/O. The host maps keys to actions, owns the clock
// and paints the screen buffer.
type Game interface {
	// ID returns the identifier used on the command line and in logs.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset starts a fresh session. Called once at start and on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one host frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns the current session flags.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID      string
	Title   string
	Summary string
}

// Factory builds a new game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	games = make(map[string]entry)
	mu    sync.RWMutex
)

// Register adds a game under info.ID.
// Panics if the ID is empty or already registered.
func Register(info GameInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if info.ID == "" {
		panic("registry: empty game id")
	}
	if _, exists := games[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	if info.Title == "" {
		info.Title = info.ID
	}

	games[info.ID] = entry{info: info, factory: f}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(games))
	for _, e := range games {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the metadata for id.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := games[id]
	return e.info, ok
}

// Create builds a new instance of the game registered as id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := games[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}

// unregister removes id. Tests use it to keep the global table clean.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()
	delete(games, id)
}
