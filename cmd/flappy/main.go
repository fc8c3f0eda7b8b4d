// flappy is a terminal Flappy Bird.
//
// Usage:
//
//	flappy                   - Play (same as "flappy play")
//	flappy play              - Play the game
//	flappy config            - Print the effective game configuration
//	flappy sim               - Run the simulation headless with a scripted flap cadence
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 50)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--config <path>    - Path to a game config YAML
//	--log-file <path>  - Write logs to a file
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Flappy Bird in your terminal.

Flap through the gaps between the pipes. Touching a pipe, the top
or the bottom of the screen ends the game.

Available commands:
  play     - Play the game (default)
  config   - Print the effective configuration
  sim      - Run the simulation without a terminal UI

Examples:
  flappy
  flappy --seed 42
  flappy --config ./my-flappy.yaml
  flappy sim --ticks 500 --flap-every 12`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultTickRate, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger builds the process logger. The returned closer releases the log file, if any.
// fallback receives logs when no --log-file is given.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closer := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, closer, fmt.Errorf("failed to open log file %s: %w", flagLogFile, err)
		}
		out = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// loadConfig loads the game configuration and logs where it came from.
func loadConfig(logger *log.Logger) (config.FlappyConfig, error) {
	cfg, src, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "source", src)
	return cfg, nil
}
