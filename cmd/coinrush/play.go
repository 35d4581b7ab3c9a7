package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/coinrush/internal/core"
	"github.com/vovakirdan/coinrush/internal/games/coins"
	"github.com/vovakirdan/coinrush/internal/platform/tui"
	"github.com/vovakirdan/coinrush/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start a session in the terminal. The game defaults to "coins".

Controls:
  Arrows/WASD/HJKL - Move one tile
  P/Esc            - Pause
  R                - Restart
  Q/Ctrl+C         - Quit

Logs are discarded unless --log-file is set, since the board owns the terminal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := coins.ID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'coinrush list' to see available games", gameID)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("coinrush", io.Discard)
	if err != nil {
		return err
	}
	//nolint:errcheck // Best-effort close on exit
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	rc := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickPeriod: tickPeriod(cfg),
		Seed:       seed(),
	}
	if err := tui.Run(game, rc, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
