// Package config provides YAML-based session configuration for the coin
// game: board size, coin economy, churn odds and tick timing.
package config

import (
	"github.com/vovakirdan/coinrush/internal/core"
)

// CoinsConfig contains all configuration for one coin game session.
// It is read once when the session is created.
type CoinsConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Coins  CoinSettings `yaml:"coins"`
	Churn  ChurnConfig  `yaml:"churn"`
	Player PlayerConfig `yaml:"player"`
	Timing TimingConfig `yaml:"timing"`
}

// BoardConfig defines the tile grid.
type BoardConfig struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// CoinSettings defines the coin economy.
type CoinSettings struct {
	Initial int `yaml:"initial"` // Coins spawned at session start
	Value   int `yaml:"value"`   // Score awarded per coin collected
}

// ChurnConfig defines the per-tick odds of random coin changes.
type ChurnConfig struct {
	AddChance    Chance `yaml:"add_chance"`
	RemoveChance Chance `yaml:"remove_chance"`
}

// PlayerConfig defines where the player starts.
type PlayerConfig struct {
	StartCol int `yaml:"start_col"`
	StartRow int `yaml:"start_row"`
}

// TimingConfig defines how time advances.
type TimingConfig struct {
	// TickIncrement is the simulated time added to the clock on every tick.
	TickIncrement Duration `yaml:"tick_increment"`
	// TickPeriod is the wall-clock interval at which drivers call Tick.
	TickPeriod Duration `yaml:"tick_period"`
}

// Bounds returns the board dimensions as grid bounds.
func (c CoinsConfig) Bounds() core.Bounds {
	return core.NewBounds(c.Board.Columns, c.Board.Rows)
}

// Start returns the player's starting tile.
func (c CoinsConfig) Start() core.Pos {
	return core.Pos{Col: c.Player.StartCol, Row: c.Player.StartRow}
}
