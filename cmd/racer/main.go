// racer is an endless lane-based driving game for the terminal.
//
// Usage:
//
//	racer play               - Play the game
//	racer simulate           - Run the simulation headless with scripted input
//	racer config dump        - Print the effective configuration as YAML
//	racer config check <f>   - Validate a configuration file
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--config <path>        - Custom config YAML
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--log <path>           - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-racer/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/tui-racer/internal/games/racer"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "racer",
	Short: "Lane Racer - an endless driving game in your terminal",
	Long: `Lane Racer is an endless lane-based driving game.

Steer across the road, collect points and diamonds, and dodge rocks,
potholes and barriers. Two of every three obstacles are harmless fakes.
Every 30 points the road gets faster and the obstacles bigger.

Available commands:
  play      - Play the game
  simulate  - Run the simulation without a terminal
  config    - Inspect and validate configuration

Examples:
  racer play
  racer play --difficulty hard --seed 42
  racer simulate --ticks 10000 --steer random
  racer config dump > configs/racer.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the program logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "racer",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openLogger returns a logger for the --log file, or fallback when no
// file was requested. The returned close function is always safe to call.
func openLogger(fallback io.Writer) (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return newLogger(fallback), func() {}, nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return newLogger(f), func() { f.Close() }, nil
}

// loadConfig loads the racer configuration from the flags and validates it.
func loadConfig() (config.RacerConfig, error) {
	cfg, err := config.LoadRacer(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyRacerPreset(&cfg, preset)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
