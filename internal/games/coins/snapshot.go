package coins

import (
	"github.com/vovakirdan/coinrush/internal/config"
	"github.com/vovakirdan/coinrush/internal/core"
)

// Snapshot captures the complete session state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64          `yaml:"tick"`
	Score   int             `yaml:"score"`
	Elapsed config.Duration `yaml:"elapsed"`
	Player  core.Pos        `yaml:"player"`
	Intent  string          `yaml:"intent"`
	Coins   []core.Pos      `yaml:"coins"`
}

// Snapshot returns the current session snapshot.
func (e *Engine) Snapshot() Snapshot {
	positions := make([]core.Pos, 0, e.pool.Len())
	for c := range e.pool.All() {
		positions = append(positions, c.Pos)
	}
	return Snapshot{
		Tick:    e.ticks,
		Score:   e.player.Score(),
		Elapsed: config.Duration(e.Elapsed()),
		Player:  e.player.Pos(),
		Intent:  e.player.Intent().String(),
		Coins:   positions,
	}
}
