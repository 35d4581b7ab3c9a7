package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/coinrush/internal/core"
	"github.com/vovakirdan/coinrush/internal/games/coins"
	"github.com/vovakirdan/coinrush/internal/platform/headless"
)

var (
	flagTicks    int
	flagIntents  string
	flagRealtime bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless session and print its final state",
	Long: `Run the coin game without a terminal for a fixed number of ticks.

Intents are one letter per tick: U, D, L, R, or '.' to stand still; ticks
after the script ends stand still. The final snapshot is printed as YAML, so
two runs with the same --seed and --intents print the same output.

Examples:
  coinrush sim --seed 7 --ticks 500
  coinrush sim --seed 7 --intents RRRRDDDD --ticks 8
  coinrush sim --realtime --ticks 250 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 1000, "Number of ticks to simulate")
	simCmd.Flags().StringVar(&flagIntents, "intents", "", "Per-tick moves (U/D/L/R/.)")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks at the tick period")
}

func runSim(cmd *cobra.Command, _ []string) error {
	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagTicks)
	}
	script, err := headless.ParseScript(flagIntents)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("coinrush-sim", os.Stderr)
	if err != nil {
		return err
	}
	//nolint:errcheck // Best-effort close on exit
	defer closeLog()

	s := seed()
	game := coins.NewWithConfig(cfg)
	rc := core.DefaultConfig()
	rc.Seed = s
	rc.TickPeriod = tickPeriod(cfg)
	game.Reset(rc)
	if err := game.Err(); err != nil {
		return err
	}
	logger.Info("simulation started", "seed", s, "ticks", flagTicks, "board", cfg.Bounds().String())

	opts := headless.Options{
		MaxTicks: flagTicks,
		Script:   script,
		OnStep: func(_ int, res core.StepResult) {
			for _, ev := range res.Events {
				logger.Debug(ev.Name, ev.Fields...)
			}
		},
	}
	if flagRealtime {
		opts.Period = rc.TickPeriod
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	ran, err := headless.Run(ctx, game, opts)
	if err != nil && ctx.Err() == nil {
		return err
	}
	if err != nil {
		logger.Warn("simulation interrupted", "ticks", ran)
	}

	snap := game.Engine().Snapshot()
	logger.Info("simulation finished", "ticks", ran, "score", snap.Score, "coins", len(snap.Coins))

	out, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
