package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/coins.yaml
var defaultCoinsYAML []byte

// DefaultCoinsConfig returns the default coin game configuration:
// an 18x12 board with five 50-point coins and 1/30 add, 1/20 remove churn.
func DefaultCoinsConfig() CoinsConfig {
	return CoinsConfig{
		Board: BoardConfig{
			Columns: 18,
			Rows:    12,
		},
		Coins: CoinSettings{
			Initial: 5,
			Value:   50,
		},
		Churn: ChurnConfig{
			AddChance:    OneIn(30),
			RemoveChance: OneIn(20),
		},
		Player: PlayerConfig{
			StartCol: 0,
			StartRow: 0,
		},
		Timing: TimingConfig{
			TickIncrement: Duration(40 * time.Millisecond),
			TickPeriod:    Duration(25 * time.Millisecond),
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultCoinsYAML
}
