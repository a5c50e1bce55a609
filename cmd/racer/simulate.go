package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/games/racer"
	"github.com/vovakirdan/tui-racer/internal/platform/headless"
)

var (
	flagTicks         uint64
	flagRate          int
	flagSteer         string
	flagUntilGameOver bool
	flagLogEvery      uint64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the simulation without a terminal",
	Long: `Run the game headless with scripted input and print a summary.

Steering policies:
  none    - Drive straight down the middle
  random  - Random steering and acceleration, seeded by --seed

The same seed, config and policy always produce the same result.

Examples:
  racer simulate --ticks 5000
  racer simulate --steer random --seed 7 --until-game-over
  racer simulate --rate 60 --log-every 600`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().Uint64Var(&flagTicks, "ticks", 3600, "Maximum ticks to run (0 = no limit)")
	simulateCmd.Flags().IntVar(&flagRate, "rate", 0, "Ticks per second (0 = as fast as possible)")
	simulateCmd.Flags().StringVar(&flagSteer, "steer", "random", "Steering policy: none, random")
	simulateCmd.Flags().BoolVar(&flagUntilGameOver, "until-game-over", false, "Stop when the game ends")
	simulateCmd.Flags().Uint64Var(&flagLogEvery, "log-every", 0, "Log progress every N ticks (0 = off)")
}

func runSimulate(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	input, err := steeringPolicy(flagSteer, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	racer.SetConfig(cfg)
	racer.SetLogger(logger)
	game := racer.New()
	game.Reset(core.RuntimeConfig{TickRate: flagRate, Seed: seed})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	logger.Info("simulation started", "seed", seed, "steer", flagSteer, "max_ticks", flagTicks)
	res, err := headless.Run(ctx, game, headless.Options{
		Rate:           flagRate,
		MaxTicks:       flagTicks,
		StopOnGameOver: flagUntilGameOver,
		Input:          input,
		Logger:         logger,
		LogEvery:       flagLogEvery,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	snap := game.Snapshot()
	fmt.Printf("Seed:      %d\n", seed)
	fmt.Printf("Ticks:     %d (%s)\n", res.Ticks, res.Reason)
	fmt.Printf("Phase:     %s\n", snap.Phase)
	fmt.Printf("Score:     %d (best %d)\n", snap.Score, game.Best())
	fmt.Printf("Lives:     %d/%d\n", snap.Lives, snap.MaxLives)
	fmt.Printf("Level:     %d/%d\n", snap.Level+1, snap.MaxLevel+1)
	fmt.Printf("Speed:     x%.2f\n", snap.SpeedMultiplier)
	fmt.Printf("Obstacles: %d/%d active\n", snap.ActiveObstacles(), snap.TargetObstacles)
}

// steeringPolicy returns the input source for a named policy.
func steeringPolicy(name string, seed int64) (headless.InputSource, error) {
	switch name {
	case "none":
		return nil, nil
	case "random":
		rng := rand.New(rand.NewSource(seed))
		actions := []core.Action{core.ActionNone, core.ActionLeft, core.ActionRight, core.ActionAccelerate}
		return func(_ uint64, state core.GameState) core.InputFrame {
			in := core.NewInputFrame()
			if state.GameOver {
				in.Set(core.ActionRestart)
				return in
			}
			// Act on roughly one tick in four
			if a := actions[rng.Intn(len(actions))]; a != core.ActionNone && rng.Intn(4) == 0 {
				in.Set(a)
			}
			return in
		}, nil
	default:
		return nil, fmt.Errorf("unknown steering policy %q (want none or random)", name)
	}
}
