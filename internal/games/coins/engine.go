package coins

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/coinrush/internal/config"
	"github.com/vovakirdan/coinrush/internal/core"
)

// TickResult reports what a single tick changed.
type TickResult struct {
	Tick        uint64         // Tick number, starting at 1
	Pos         core.Pos       // Player position after the move
	Moved       core.Direction // Intent applied this tick
	Collected   []Coin         // Coins picked up this tick
	Replenished int            // Coins respawned to replace the collected ones
	PoolAfter   int            // Pool size after replenishment, before churn
	Churn       ChurnResult
	Score       int
	Elapsed     time.Duration
}

// Engine runs one coin game session. It owns the player and the pool;
// callers only submit intents and read state.
type Engine struct {
	bounds    core.Bounds
	increment time.Duration
	rng       Rand

	player *Player
	pool   *Pool
	ticks  uint64
}

// NewEngine validates cfg, places the player and spawns the initial coins.
func NewEngine(cfg config.CoinsConfig, rng Rand) (*Engine, error) {
	if rng == nil {
		return nil, errors.New("coins: nil random source")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("coins: %w", err)
	}

	odds := Odds{
		Add:    cfg.Churn.AddChance.Float64(),
		Remove: cfg.Churn.RemoveChance.Float64(),
	}
	e := &Engine{
		bounds:    cfg.Bounds(),
		increment: cfg.Timing.TickIncrement.Std(),
		rng:       rng,
		player:    NewPlayer(cfg.Start()),
		pool:      NewPool(cfg.Bounds(), cfg.Coins.Value, odds),
	}
	e.pool.SpawnRandom(cfg.Coins.Initial, rng)
	return e, nil
}

// SetIntent forwards a movement request to the player.
func (e *Engine) SetIntent(d core.Direction) {
	e.player.SetIntent(d)
}

// Tick advances the session by one step. The order is fixed: move, collect
// at the new tile, score, replenish one coin per coin collected, churn,
// then advance the clock.
func (e *Engine) Tick() TickResult {
	moved, pos := e.player.advance(e.bounds)

	collected := e.pool.CollectAt(pos)
	for _, c := range collected {
		if err := e.player.AddScore(c.Value); err != nil {
			// Coin values come from validated config; a negative one is an engine bug.
			panic(err)
		}
	}

	replenished := len(e.pool.SpawnRandom(len(collected), e.rng))
	poolAfter := e.pool.Len()

	churn := e.pool.Churn(e.rng)

	e.ticks++

	return TickResult{
		Tick:        e.ticks,
		Pos:         pos,
		Moved:       moved,
		Collected:   collected,
		Replenished: replenished,
		PoolAfter:   poolAfter,
		Churn:       churn,
		Score:       e.player.Score(),
		Elapsed:     e.Elapsed(),
	}
}

// Bounds returns the board size.
func (e *Engine) Bounds() core.Bounds {
	return e.bounds
}

// PlayerPos returns the player's tile.
func (e *Engine) PlayerPos() core.Pos {
	return e.player.Pos()
}

// Intent returns the move that the next tick will apply.
func (e *Engine) Intent() core.Direction {
	return e.player.Intent()
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.player.Score()
}

// Ticks returns how many ticks have run.
func (e *Engine) Ticks() uint64 {
	return e.ticks
}

// Elapsed returns the simulated session time, exactly ticks * increment.
func (e *Engine) Elapsed() time.Duration {
	return time.Duration(e.ticks) * e.increment
}

// Coins returns a copy of the active coins in insertion order.
func (e *Engine) Coins() []Coin {
	return e.pool.Coins()
}

// CoinCount returns the number of active coins.
func (e *Engine) CoinCount() int {
	return e.pool.Len()
}

// CoinsAt returns how many coins are stacked on pos.
func (e *Engine) CoinsAt(pos core.Pos) int {
	return e.pool.CountAt(pos)
}
