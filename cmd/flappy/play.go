package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing Flappy Bird.

Controls:
  Space/Up/W - Flap
  P          - Pause
  Y/Enter    - Answer yes (start / play again)
  N/Esc      - Answer no (exit)
  Ctrl+S     - Save a text screenshot to ~/.flappy/screenshots
  Q/Ctrl+C   - Quit

Examples:
  flappy play
  flappy play --fps 30
  flappy play --seed 7 --log-file flappy.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The TUI owns the terminal, so logs go nowhere unless a file is given.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	gameCfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	game := flappy.New(gameCfg)
	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
