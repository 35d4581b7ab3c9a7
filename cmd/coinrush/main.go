// coinrush is a terminal coin-collecting game on a tile grid.
//
// Usage:
//
//	coinrush play            - Play in the terminal
//	coinrush sim             - Run a headless session and print its final state
//	coinrush list            - List available games
//	coinrush config dump     - Print the effective configuration
//
// Global flags (also read from COINRUSH_* environment variables):
//
//	--seed <value>      - RNG seed for reproducible sessions (0 = time based)
//	--config <path>     - Path to a custom coins.yaml
//	--period <dur>      - Wall-clock tick period (default: from config)
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vovakirdan/coinrush/internal/config"
	"github.com/vovakirdan/coinrush/internal/games/coins"
)

// settings holds global flags merged with COINRUSH_* environment variables.
var settings = viper.New()

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "coinrush",
	Short: "Coin Rush - collect coins on a tile grid in your terminal",
	Long: `Coin Rush moves a token around a checkered board. Every coin you step on
is worth points and is replaced somewhere else; coins also appear and vanish
at random while you play.

Examples:
  coinrush play
  coinrush play --seed 42 --config ./coins.yaml
  coinrush sim --ticks 2000 --intents RRDDLLUU
  COINRUSH_LOG_LEVEL=debug coinrush play --log-file coinrush.log`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Int64("seed", 0, "RNG seed (0 = random based on time)")
	flags.String("config", "", "Path to custom coins config YAML")
	flags.Duration("period", 0, "Wall-clock tick period (0 = timing.tick_period from config)")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.String("log-file", "", "Append logs to this file")

	//nolint:errcheck // Flags are defined just above
	settings.BindPFlags(flags)
	settings.SetEnvPrefix("coinrush")
	settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cobra.OnInitialize(settings.AutomaticEnv)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the coins config from --config or the default search path
// and installs it for games created through the registry.
func loadConfig() (config.CoinsConfig, error) {
	cfg, err := config.LoadCoins(settings.GetString("config"))
	if err != nil {
		return cfg, err
	}
	coins.SetConfig(cfg)
	return cfg, nil
}

// seed returns the --seed value, or a time-based seed when it is zero.
func seed() int64 {
	if s := settings.GetInt64("seed"); s != 0 {
		return s
	}
	return time.Now().UnixNano()
}

// tickPeriod returns --period, falling back to the config value.
func tickPeriod(cfg config.CoinsConfig) time.Duration {
	if p := settings.GetDuration("period"); p > 0 {
		return p
	}
	return cfg.Timing.TickPeriod.Std()
}

// newLogger builds a logger honoring --log-level and --log-file. When no log
// file is set, logs go to fallback. The returned closer releases the file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(settings.GetString("log-level"))
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	w, closer := fallback, func() error { return nil }
	if path := settings.GetString("log-file"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}
