// Package headless drives a game without a terminal: a fixed-rate (or
// unthrottled) loop that feeds scripted input and reports each tick.
// It is used for simulations, soak runs and tests.
package headless

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-racer/internal/core"
)

// Stepper is the part of a game the runner needs.
type Stepper interface {
	Step(in core.InputFrame) core.StepResult
}

// InputSource supplies the input frame for a tick. state is the result
// of the previous tick.
type InputSource func(tick uint64, state core.GameState) core.InputFrame

// StopReason tells why a run ended.
type StopReason int

const (
	StopMaxTicks StopReason = iota
	StopGameOver
	StopCanceled
)

// String returns a human-readable name for the reason.
func (r StopReason) String() string {
	switch r {
	case StopMaxTicks:
		return "max_ticks"
	case StopGameOver:
		return "game_over"
	case StopCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// ErrNoLimit is returned when a run has neither a tick limit nor a way to stop.
var ErrNoLimit = errors.New("headless: run needs max ticks or stop on game over")

// Options configure a run.
type Options struct {
	Rate           int    // Ticks per second; 0 runs unthrottled
	MaxTicks       uint64 // Stop after this many ticks; 0 means no limit
	StopOnGameOver bool
	Input          InputSource
	OnTick         func(tick uint64, res core.StepResult)
	Logger         *log.Logger
	LogEvery       uint64 // Log progress every N ticks; 0 disables
}

// Result summarizes a finished run.
type Result struct {
	Ticks  uint64
	State  core.GameState
	Reason StopReason
}

// Run steps game until a stop condition is met or ctx is canceled.
// A canceled run returns the partial result together with the context error.
func Run(ctx context.Context, game Stepper, opts Options) (Result, error) {
	if opts.MaxTicks == 0 && !opts.StopOnGameOver {
		return Result{}, ErrNoLimit
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	var res Result

	var tickC <-chan time.Time
	if opts.Rate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(opts.Rate))
		defer ticker.Stop()
		tickC = ticker.C
	}

	for {
		if tickC != nil {
			select {
			case <-ctx.Done():
				return cancel(res, ctx.Err(), opts.Logger)
			case <-tickC:
			}
		} else if err := ctx.Err(); err != nil {
			return cancel(res, err, opts.Logger)
		}

		in := core.NewInputFrame()
		if opts.Input != nil {
			in = opts.Input(res.Ticks, res.State)
		}

		step := game.Step(in)
		res.Ticks++
		res.State = step.State

		if opts.OnTick != nil {
			opts.OnTick(res.Ticks, step)
		}
		if opts.LogEvery > 0 && res.Ticks%opts.LogEvery == 0 {
			opts.Logger.Info("progress",
				"tick", res.Ticks,
				"score", res.State.Score,
				"lives", res.State.Lives,
				"level", res.State.Level+1,
			)
		}

		if opts.StopOnGameOver && res.State.GameOver {
			res.Reason = StopGameOver
			return res, nil
		}
		if opts.MaxTicks > 0 && res.Ticks >= opts.MaxTicks {
			res.Reason = StopMaxTicks
			return res, nil
		}
	}
}

func cancel(res Result, err error, logger *log.Logger) (Result, error) {
	res.Reason = StopCanceled
	logger.Debug("run canceled", "tick", res.Ticks)
	return res, fmt.Errorf("headless: %w", err)
}
