package coins

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/vovakirdan/coinrush/internal/core"
)

// ErrInvalidAmount is returned when a negative score delta is applied.
var ErrInvalidAmount = errors.New("invalid score amount")

// Player holds the token position, the score and the pending move.
type Player struct {
	pos   core.Pos
	score int

	// intent is a single-slot mailbox: the input side stores, the tick
	// swaps it back to DirNone. Only the last store before a tick counts.
	intent atomic.Int32
}

// NewPlayer places a player on start with zero score.
func NewPlayer(start core.Pos) *Player {
	return &Player{pos: start}
}

// SetIntent records a one-tile move for the next tick.
// Safe to call from a different goroutine than the one ticking.
func (p *Player) SetIntent(d core.Direction) {
	p.intent.Store(int32(d))
}

// Intent returns the pending move without consuming it.
func (p *Player) Intent() core.Direction {
	return core.Direction(p.intent.Load())
}

// Advance consumes the pending move and applies it, clamped to b.
func (p *Player) Advance(b core.Bounds) core.Pos {
	_, pos := p.advance(b)
	return pos
}

func (p *Player) advance(b core.Bounds) (core.Direction, core.Pos) {
	d := core.Direction(p.intent.Swap(int32(core.DirNone)))
	p.pos = p.pos.Step(d, b)
	return d, p.pos
}

// AddScore adds a non-negative amount to the score.
func (p *Player) AddScore(amount int) error {
	if amount < 0 {
		return fmt.Errorf("coins: add %d to score: %w", amount, ErrInvalidAmount)
	}
	p.score += amount
	return nil
}

// Pos returns the current tile.
func (p *Player) Pos() core.Pos {
	return p.pos
}

// Score returns the accumulated score.
func (p *Player) Score() int {
	return p.score
}
