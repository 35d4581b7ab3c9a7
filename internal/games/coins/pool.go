package coins

import (
	"iter"
	"slices"

	"github.com/vovakirdan/coinrush/internal/core"
)

// Rand is the random source used for coin placement and churn.
// *rand.Rand satisfies it; inject a seeded one for deterministic replays.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Coin is a collectible worth Value points. Coins are fungible: only the
// position and value matter.
type Coin struct {
	Pos   core.Pos
	Value int
}

// Odds holds the per-tick churn probabilities.
type Odds struct {
	Add    float64
	Remove float64
}

// ChurnResult describes what one churn pass changed.
type ChurnResult struct {
	Added   bool
	New     Coin // Valid when Added
	Removed bool
	Old     Coin // Valid when Removed
}

// Pool owns the active coins. Several coins may share a tile.
// Coins are kept in insertion order because churn removal always takes
// the oldest coin still on the board.
type Pool struct {
	bounds core.Bounds
	value  int
	odds   Odds
	coins  []Coin
}

// NewPool creates an empty pool spawning coins of the given value on b.
func NewPool(b core.Bounds, value int, odds Odds) *Pool {
	return &Pool{
		bounds: b,
		value:  value,
		odds:   odds,
	}
}

// Add appends a coin as the newest entry.
func (p *Pool) Add(c Coin) {
	p.coins = append(p.coins, c)
}

// SpawnRandom adds n coins at independent uniformly random tiles.
// There is no check against existing coins or the player.
func (p *Pool) SpawnRandom(n int, rng Rand) []Coin {
	if n <= 0 {
		return nil
	}
	spawned := make([]Coin, 0, n)
	for range n {
		c := Coin{
			Pos: core.Pos{
				Col: rng.Intn(p.bounds.Columns),
				Row: rng.Intn(p.bounds.Rows),
			},
			Value: p.value,
		}
		p.coins = append(p.coins, c)
		spawned = append(spawned, c)
	}
	return spawned
}

// CollectAt removes and returns every coin on pos, oldest first.
// The remaining coins keep their relative order.
func (p *Pool) CollectAt(pos core.Pos) []Coin {
	var collected []Coin
	kept := p.coins[:0]
	for _, c := range p.coins {
		if c.Pos == pos {
			collected = append(collected, c)
			continue
		}
		kept = append(kept, c)
	}
	p.coins = kept
	return collected
}

// RemoveOldest drops the first-inserted coin. It reports false on an empty pool.
func (p *Pool) RemoveOldest() (Coin, bool) {
	if len(p.coins) == 0 {
		return Coin{}, false
	}
	c := p.coins[0]
	p.coins = slices.Delete(p.coins, 0, 1)
	return c, true
}

// Churn runs two independent trials: with probability odds.Add one random
// coin is spawned, then with probability odds.Remove the oldest coin is
// removed. Both draws are always taken so the random stream does not
// depend on the pool contents. Removal on an empty pool does nothing.
func (p *Pool) Churn(rng Rand) ChurnResult {
	var res ChurnResult

	if rng.Float64() < p.odds.Add {
		res.New = p.SpawnRandom(1, rng)[0]
		res.Added = true
	}

	if rng.Float64() < p.odds.Remove {
		res.Old, res.Removed = p.RemoveOldest()
	}
	return res
}

// Len returns the number of coins on the board.
func (p *Pool) Len() int {
	return len(p.coins)
}

// CountAt returns how many coins are stacked on pos.
func (p *Pool) CountAt(pos core.Pos) int {
	n := 0
	for _, c := range p.coins {
		if c.Pos == pos {
			n++
		}
	}
	return n
}

// Coins returns a copy of the coins in insertion order.
func (p *Pool) Coins() []Coin {
	return slices.Clone(p.coins)
}

// All iterates over the coins in insertion order without copying.
// The pool must not be modified during iteration.
func (p *Pool) All() iter.Seq[Coin] {
	return func(yield func(Coin) bool) {
		for _, c := range p.coins {
			if !yield(c) {
				return
			}
		}
	}
}
