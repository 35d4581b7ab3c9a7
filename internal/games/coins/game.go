// Package coins implements Coin Rush: a player token walks a tile grid
// collecting coins while the coin population churns at random every tick.
package coins

import (
	"math/rand"

	"github.com/vovakirdan/coinrush/internal/config"
	"github.com/vovakirdan/coinrush/internal/core"
	"github.com/vovakirdan/coinrush/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "coins"

// sessionConfig is applied to games created through the registry.
var sessionConfig = config.DefaultCoinsConfig()

// SetConfig sets the configuration used by New (and so by registry.Create).
func SetConfig(cfg config.CoinsConfig) {
	sessionConfig = cfg
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// Game adapts an Engine to the platform's Reset/Step/Render loop and adds
// pause and restart on top of it.
type Game struct {
	cfg    config.CoinsConfig
	rng    *rand.Rand
	engine *Engine
	err    error // Set when the config cannot start a session
	paused bool
}

// New creates a game using the configuration set with SetConfig.
func New() *Game {
	return NewWithConfig(sessionConfig)
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.CoinsConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Coin Rush"
}

// Reset starts a new session seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.paused = false
	g.engine, g.err = NewEngine(g.cfg, g.rng)
}

// Err returns the error that prevented the last Reset from starting a session.
func (g *Game) Err() error {
	return g.err
}

// Engine exposes the running session, or nil before Reset.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Step applies the frame's input and advances one tick unless paused.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{Seed: g.rng.Int63()})
		return core.StepResult{
			State:  g.State(),
			Events: []core.Event{{Name: "session restarted"}},
		}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if d := in.Direction(); d != core.DirNone {
		g.engine.SetIntent(d)
	}
	res := g.engine.Tick()

	return core.StepResult{
		State:  g.State(),
		Events: tickEvents(res),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{Paused: g.paused}
	}
	return core.GameState{
		Score:   g.engine.Score(),
		Elapsed: g.engine.Elapsed(),
		Paused:  g.paused,
	}
}

func tickEvents(res TickResult) []core.Event {
	var events []core.Event
	if n := len(res.Collected); n > 0 {
		events = append(events, core.Event{
			Name:   "coins collected",
			Fields: []any{"tick", res.Tick, "pos", res.Pos, "count", n, "score", res.Score},
		})
	}
	if res.Churn.Added {
		events = append(events, core.Event{
			Name:   "coin spawned",
			Fields: []any{"tick", res.Tick, "pos", res.Churn.New.Pos},
		})
	}
	if res.Churn.Removed {
		events = append(events, core.Event{
			Name:   "coin removed",
			Fields: []any{"tick", res.Tick, "pos", res.Churn.Old.Pos},
		})
	}
	return events
}
