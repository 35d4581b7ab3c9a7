package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

const coinsFile = "coins.yaml"

// LoadCoins loads the coin game configuration.
// Search order: customPath -> ~/.coinrush/configs/coins.yaml -> ./configs/coins.yaml -> embedded default.
// A custom path must exist and parse; unreadable files on the other paths are skipped.
func LoadCoins(customPath string) (CoinsConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CoinsConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseCoins(data)
		if err != nil {
			return CoinsConfig{}, fmt.Errorf("failed to load config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(coinsFile), filepath.Join("configs", coinsFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := ParseCoins(data)
		if err != nil {
			return CoinsConfig{}, fmt.Errorf("failed to load config %s: %w", path, err)
		}
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := ParseCoins(defaultCoinsYAML)
	if err != nil {
		return DefaultCoinsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseCoins decodes YAML on top of the defaults, so a file only needs the
// keys it changes, then validates the result.
func ParseCoins(data []byte) (CoinsConfig, error) {
	cfg := DefaultCoinsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CoinsConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return CoinsConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c CoinsConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks that the configuration describes a playable session.
func (c CoinsConfig) Validate() error {
	switch {
	case !c.Bounds().Valid():
		return fmt.Errorf("config: board must be at least 1x1, got %dx%d: %w",
			c.Board.Columns, c.Board.Rows, ErrInvalidConfig)
	case c.Coins.Initial < 0:
		return fmt.Errorf("config: initial coins must not be negative, got %d: %w", c.Coins.Initial, ErrInvalidConfig)
	case c.Coins.Value < 0:
		return fmt.Errorf("config: coin value must not be negative, got %d: %w", c.Coins.Value, ErrInvalidConfig)
	case c.Timing.TickIncrement <= 0:
		return fmt.Errorf("config: tick increment must be positive, got %s: %w",
			c.Timing.TickIncrement.Std(), ErrInvalidConfig)
	case c.Timing.TickPeriod <= 0:
		return fmt.Errorf("config: tick period must be positive, got %s: %w",
			c.Timing.TickPeriod.Std(), ErrInvalidConfig)
	case !validChance(c.Churn.AddChance):
		return fmt.Errorf("config: add chance must be within [0, 1], got %v: %w", c.Churn.AddChance, ErrInvalidConfig)
	case !validChance(c.Churn.RemoveChance):
		return fmt.Errorf("config: remove chance must be within [0, 1], got %v: %w", c.Churn.RemoveChance, ErrInvalidConfig)
	case !c.Bounds().Contains(c.Start()):
		return fmt.Errorf("config: start tile %v is off the %dx%d board: %w",
			c.Start(), c.Board.Columns, c.Board.Rows, ErrInvalidConfig)
	}
	return nil
}

func validChance(c Chance) bool {
	return c >= 0 && c <= 1
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".coinrush", "configs", filename)
}
