// Package racer implements an endless lane-based driving game.
// The player steers a car across the road, collecting points and
// diamonds while dodging rocks, potholes and barriers that scroll
// towards them. Difficulty grows with score.
//
// World holds the complete simulation state and advances one tick at a
// time. It never blocks and is not safe for concurrent use: the platform
// layer owns the scheduler, pushes commands with Enqueue and reads the
// result through Snapshot between ticks.
package racer

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
)

// Rand is the random source used for spawn placement.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// RandFactory creates a random source for a seed.
type RandFactory func(seed int64) Rand

func defaultRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// Option customizes a World.
type Option func(*World)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithRandFactory replaces the default math/rand source.
func WithRandFactory(f RandFactory) Option {
	return func(w *World) {
		if f != nil {
			w.newRand = f
		}
	}
}

// World is the racer simulation state.
type World struct {
	cfg        config.RacerConfig
	difficulty *config.DifficultyManager
	baseTypes  TypeTable
	types      TypeTable // baseTypes rescaled for the current level

	seed    int64
	newRand RandFactory
	rng     Rand
	logger  *log.Logger

	tick            uint64
	phase           Phase
	score           int
	lives           int
	level           int
	speedMultiplier float64
	boost           float64
	accelerating    bool
	message         Message
	carX            float64
	targetObstacles int
	spawnCount      uint64

	points    []Point
	diamond   Diamond
	obstacles []Obstacle
	scenery   Scenery

	queue []Command
}

// NewWorld validates cfg and creates a world in its initial state.
// The same seed always produces the same initial layout.
func NewWorld(cfg config.RacerConfig, seed int64, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("racer: %w", err)
	}

	w := &World{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		baseTypes:  newTypeTable(cfg.Obstacles.Types),
		seed:       seed,
		newRand:    defaultRand,
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.Reset()
	return w, nil
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.RacerConfig {
	return w.cfg
}

// Seed returns the seed used by Reset.
func (w *World) Seed() int64 {
	return w.seed
}

// Reset replaces the entire state with the canonical initial configuration.
// The random source is reseeded, so every reset yields an identical world.
func (w *World) Reset() {
	w.rng = w.newRand(w.seed)

	w.tick = 0
	w.phase = PhasePlaying
	w.score = 0
	w.lives = w.cfg.Gameplay.MaxLives
	w.level = 0
	w.speedMultiplier = 1.0
	w.boost = 0
	w.accelerating = false
	w.message = Message{}
	w.carX = w.cfg.Road.CenterX()
	w.spawnCount = 0
	w.queue = nil

	w.applyLevel()
	w.points = w.initialPoints()
	w.diamond = w.initialDiamond()
	w.obstacles = w.initialObstacles()
	w.scenery = newScenery(w.cfg.Scroll.NearZ)

	w.logger.Info("world reset", "seed", w.seed, "lives", w.lives, "obstacles", w.targetObstacles)
}

// Tick advances the simulation by one step.
//
// Queued commands are applied first. The message countdown runs on every
// tick, before the pause and game-over gate. Only while playing does the
// world then re-evaluate difficulty, scroll and resolve collisions.
func (w *World) Tick() {
	w.drainCommands()
	w.tick++

	w.message.countdown()

	if w.phase != PhasePlaying {
		return
	}

	w.updateDifficulty()
	w.scroll()
	w.resolveCollisions()
}

// Phase returns the current game phase.
func (w *World) Phase() Phase {
	return w.phase
}

func (w *World) initialPoints() []Point {
	pc := w.cfg.Points
	points := make([]Point, pc.Count)
	for i := range points {
		points[i] = Point{
			Pos: core.Vec3{
				X: w.uniformLane(pc.LaneMargin),
				Y: pc.Y,
				Z: w.uniform(pc.Initial),
			},
			Active: true,
		}
	}
	return points
}

func (w *World) initialDiamond() Diamond {
	dc := w.cfg.Diamond
	return Diamond{
		Pos: core.Vec3{
			X: w.uniformLane(dc.LaneMargin),
			Y: dc.Y,
			Z: dc.InitialZ,
		},
		Size:   core.Vec3{X: dc.Size, Y: dc.Size, Z: dc.Size},
		Active: true,
	}
}

// initialObstacles fills the pool. The first targetObstacles slots start
// active and evenly spaced; the rest wait inactive on the reserve line.
func (w *World) initialObstacles() []Obstacle {
	oc := w.cfg.Obstacles
	obstacles := make([]Obstacle, oc.MaxCount)
	for i := range obstacles {
		if i >= w.targetObstacles {
			obstacles[i] = Obstacle{
				Pos:  core.Vec3{X: w.cfg.Road.CenterX(), Z: oc.ReserveZ},
				Size: w.types[Rock].Size,
				Type: Rock,
			}
			continue
		}

		kind := w.randomType()
		pos := core.Vec3{
			X: w.randomLane(),
			Z: oc.InitialZ - float64(i)*oc.InitialSpacing,
		}
		obstacles[i] = newObstacle(kind, w.types[kind], pos, w.nextFake())
	}
	return obstacles
}

// uniform returns a value in [b.Min, b.Max).
func (w *World) uniform(b config.Band) float64 {
	return b.Min + w.rng.Float64()*(b.Max-b.Min)
}

// uniformLane returns a random X on the road, keeping margin from both edges.
func (w *World) uniformLane(margin float64) float64 {
	return w.uniform(config.Band{Min: w.cfg.Road.MinX + margin, Max: w.cfg.Road.MaxX() - margin})
}

func (w *World) randomLane() float64 {
	lanes := w.cfg.Road.Lanes
	return lanes[w.rng.Intn(len(lanes))]
}

func (w *World) randomType() ObstacleType {
	return ObstacleType(w.rng.Intn(numObstacleTypes))
}

// nextFake consumes one spawn number and reports whether it is a fake.
func (w *World) nextFake() bool {
	fake := isFakeSpawn(w.spawnCount)
	w.spawnCount++
	return fake
}
