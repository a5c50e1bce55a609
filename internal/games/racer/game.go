package racer

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/registry"
)

// accelHoldTicks is how long acceleration stays on after the last
// accelerate key event. Terminals report key repeats but no key release.
const accelHoldTicks = 30

// Game adapts World to the platform game contract.
type Game struct {
	world     *World
	runtime   core.RuntimeConfig
	best      int
	accelHold int
}

var (
	gameConfig *config.RacerConfig
	gameLogger = log.New(io.Discard)
)

// SetConfig sets the configuration used by games created afterwards.
// Without it, Reset falls back to the defaults.
func SetConfig(cfg config.RacerConfig) {
	gameConfig = &cfg
}

// SetLogger sets the logger handed to every world.
func SetLogger(l *log.Logger) {
	if l != nil {
		gameLogger = l
	}
}

// New creates a new racer game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "racer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Lane Racer"
}

// Reset builds a fresh world for the runtime seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.accelHold = 0

	cfg := config.DefaultRacerConfig()
	if gameConfig != nil {
		cfg = *gameConfig
	}

	w, err := NewWorld(cfg, runtime.Seed, WithLogger(gameLogger))
	if err != nil {
		gameLogger.Warn("invalid config, using defaults", "err", err)
		w, err = NewWorld(config.DefaultRacerConfig(), runtime.Seed, WithLogger(gameLogger))
		if err != nil {
			// Built-in defaults always validate
			panic(err)
		}
	}
	g.world = w
}

// Step translates the input frame into commands and advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		g.Reset(core.DefaultConfig())
	}
	w := g.world

	if in.Has(core.ActionPause) {
		w.Enqueue(CmdPauseToggle)
	}
	if in.Has(core.ActionRestart) {
		w.Enqueue(CmdRestart)
	}
	if in.Has(core.ActionLeft) {
		w.Enqueue(CmdSteerLeft)
	}
	if in.Has(core.ActionRight) {
		w.Enqueue(CmdSteerRight)
	}
	g.updateAcceleration(in.Has(core.ActionAccelerate))

	w.Tick()

	if w.score > g.best {
		g.best = w.score
	}
	return core.StepResult{State: g.State()}
}

// updateAcceleration keeps the boost on while accelerate events keep
// arriving and releases it once the hold window runs out.
func (g *Game) updateAcceleration(pressed bool) {
	w := g.world
	if pressed {
		if !w.accelerating {
			w.Enqueue(CmdAccelerateStart)
		}
		g.accelHold = accelHoldTicks
		return
	}

	if g.accelHold > 0 {
		g.accelHold--
		if g.accelHold == 0 && w.accelerating {
			w.Enqueue(CmdAccelerateStop)
		}
	}
}

// Render draws the current snapshot.
func (g *Game) Render(dst *core.Screen) {
	if g.world == nil {
		return
	}
	RenderSnapshot(dst, g.world.Snapshot(), g.best)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.world.score,
		Lives:    g.world.lives,
		Level:    g.world.level,
		GameOver: g.world.phase == PhaseGameOver,
		Paused:   g.world.phase == PhasePaused,
	}
}

// Snapshot returns the world snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.world == nil {
		return Snapshot{}
	}
	return g.world.Snapshot()
}

// Best returns the highest score reached by this game instance.
func (g *Game) Best() int {
	return g.best
}

// Register the game with the registry
func init() {
	registry.Register("racer", func() registry.Game {
		return New()
	})
}
