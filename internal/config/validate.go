package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid racer config")

// Validate checks the configuration for values the simulation cannot run with.
// All problems are reported together.
func (c RacerConfig) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("config: %w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Gameplay.MaxLives <= 0 {
		fail("gameplay.max_lives must be positive, got %d", c.Gameplay.MaxLives)
	}
	if c.Gameplay.MessageDuration < 0 {
		fail("gameplay.message_duration must not be negative, got %d", c.Gameplay.MessageDuration)
	}

	if c.Road.Width <= 0 {
		fail("road.width must be positive, got %g", c.Road.Width)
	}
	if len(c.Road.Lanes) == 0 {
		fail("road.lanes must list at least one lane")
	}
	for _, lane := range c.Road.Lanes {
		if lane < c.Road.MinX || lane > c.Road.MaxX() {
			fail("road.lanes entry %g is outside the road [%g, %g]", lane, c.Road.MinX, c.Road.MaxX())
		}
	}
	if c.Car.Width+2*c.Car.EdgeMargin >= c.Road.Width {
		fail("car.width %g does not fit on the road", c.Car.Width)
	}

	if c.Points.Count <= 0 {
		fail("points.count must be positive, got %d", c.Points.Count)
	}
	if 2*c.Points.LaneMargin >= c.Road.Width || 2*c.Diamond.LaneMargin >= c.Road.Width {
		fail("lane margins leave no room on the road")
	}
	checkBand := func(name string, b Band) {
		if b.Min > b.Max {
			fail("%s: min %g is greater than max %g", name, b.Min, b.Max)
		}
	}
	checkBand("points.initial", c.Points.Initial)
	checkBand("points.respawn", c.Points.Respawn)
	checkBand("diamond.respawn", c.Diamond.Respawn)
	checkBand("obstacles.gap", c.Obstacles.Gap)

	if c.Obstacles.BaseCount <= 0 {
		fail("obstacles.base_count must be positive, got %d", c.Obstacles.BaseCount)
	}
	if c.Obstacles.MaxCount < c.Obstacles.BaseCount {
		fail("obstacles.max_count %d is less than base_count %d", c.Obstacles.MaxCount, c.Obstacles.BaseCount)
	}
	if c.Obstacles.ParkZ >= c.Obstacles.DriftFloor {
		fail("obstacles.park_z %g must be below drift_floor %g", c.Obstacles.ParkZ, c.Obstacles.DriftFloor)
	}
	if c.Obstacles.ReserveZ < c.Obstacles.DriftFloor {
		fail("obstacles.reserve_z %g must not be below drift_floor %g", c.Obstacles.ReserveZ, c.Obstacles.DriftFloor)
	}

	checkSpec := func(name string, s ObstacleSpec) {
		if s.Width <= 0 || s.Height <= 0 || s.Depth <= 0 {
			fail("obstacles.types.%s: dimensions must be positive", name)
		}
		if s.ScorePenalty < 0 || s.LifePenalty < 0 {
			fail("obstacles.types.%s: penalties must not be negative", name)
		}
	}
	checkSpec("rock", c.Obstacles.Types.Rock)
	checkSpec("pothole", c.Obstacles.Types.Pothole)
	checkSpec("barrier", c.Obstacles.Types.Barrier)

	if c.Difficulty.ScorePerLevel <= 0 {
		fail("difficulty.score_per_level must be positive, got %d", c.Difficulty.ScorePerLevel)
	}
	if c.Difficulty.MaxLevel < 0 {
		fail("difficulty.max_level must not be negative, got %d", c.Difficulty.MaxLevel)
	}
	if c.Difficulty.SizeScale <= 0 {
		fail("difficulty.size_scale must be positive, got %g", c.Difficulty.SizeScale)
	}

	return errors.Join(errs...)
}
