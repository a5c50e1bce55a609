package racer

import (
	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
)

// Snapshot is an immutable copy of the world taken between ticks.
// It carries everything a presentation layer needs and shares no
// memory with the World.
type Snapshot struct {
	Tick            uint64
	Phase           Phase
	Score           int
	Lives           int
	MaxLives        int
	Level           int // Zero-based; displayed as Level+1
	MaxLevel        int
	SpeedMultiplier float64 // Effective multiplier, including acceleration
	Boosting        bool
	Message         string
	MessageTicks    int
	CarX            float64
	Car             core.Box // Car collision box
	TargetObstacles int

	Road      config.RoadConfig
	NearZ     float64
	PointSize float64

	Points    []Point
	Diamond   Diamond
	Obstacles []Obstacle
	Scenery   Scenery

	// BaseTypes is the unscaled obstacle table, for penalty legends.
	BaseTypes TypeTable
}

// Snapshot returns a copy of the current state.
func (w *World) Snapshot() Snapshot {
	road := w.cfg.Road
	road.Lanes = append([]float64(nil), road.Lanes...)

	return Snapshot{
		Tick:            w.tick,
		Phase:           w.phase,
		Score:           w.score,
		Lives:           w.lives,
		MaxLives:        w.cfg.Gameplay.MaxLives,
		Level:           w.level,
		MaxLevel:        w.difficulty.MaxLevel(),
		SpeedMultiplier: w.speedFactor(),
		Boosting:        w.accelerating,
		Message:         w.message.Text,
		MessageTicks:    w.message.Ticks,
		CarX:            w.carX,
		Car:             w.carBox(),
		TargetObstacles: w.targetObstacles,
		Road:            road,
		NearZ:           w.cfg.Scroll.NearZ,
		PointSize:       w.cfg.Points.Size,
		Points:          append([]Point(nil), w.points...),
		Diamond:         w.diamond,
		Obstacles:       append([]Obstacle(nil), w.obstacles...),
		Scenery:         w.scenery.clone(),
		BaseTypes:       w.baseTypes,
	}
}

// Paused reports whether the game is paused.
func (s Snapshot) Paused() bool {
	return s.Phase == PhasePaused
}

// GameOver reports whether the game has ended.
func (s Snapshot) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// ActiveObstacles counts active obstacles in the snapshot.
func (s Snapshot) ActiveObstacles() int {
	n := 0
	for _, o := range s.Obstacles {
		if o.Active {
			n++
		}
	}
	return n
}
