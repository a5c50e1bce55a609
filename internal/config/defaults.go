package config

import (
	_ "embed"
)

//go:embed defaults/racer.yaml
var defaultRacerYAML []byte

// DefaultRacerConfig returns the built-in racer configuration.
// It mirrors defaults/racer.yaml and is used when the embedded file cannot be parsed.
func DefaultRacerConfig() RacerConfig {
	return RacerConfig{
		Road: RoadConfig{
			MinX:  20,
			Width: 60,
			Lanes: []float64{30, 50, 70},
		},
		Car: CarConfig{
			Width:            2.0,
			Height:           1.0,
			Depth:            4.0,
			CenterY:          0.6,
			Z:                -5,
			LaneChangeSpeed:  1.5,
			BoostSteerFactor: 1.2,
			EdgeMargin:       0.5,
		},
		Scroll: ScrollConfig{
			Environment:       0.50,
			Points:            0.55,
			Diamond:           0.60,
			Obstacles:         0.78,
			NearZ:             10,
			AccelerationBoost: 2.0,
		},
		Points: PointsConfig{
			Count:      15,
			Size:       0.6,
			Y:          1,
			LaneMargin: 5,
			Initial:    Band{Min: -150, Max: -50},
			Respawn:    Band{Min: -150, Max: -100},
		},
		Diamond: DiamondConfig{
			Size:       1.5,
			Y:          1,
			LaneMargin: 10,
			InitialZ:   -120,
			Respawn:    Band{Min: -200, Max: -150},
		},
		Obstacles: ObstaclesConfig{
			BaseCount:      6,
			MaxCount:       20,
			InitialZ:       -80,
			InitialSpacing: 40,
			Gap:            Band{Min: 30, Max: 60},
			SpawnFloor:     -350,
			DriftFloor:     -400,
			ParkZ:          -500,
			ReserveZ:       20,
			Types: ObstacleTypes{
				Rock:    ObstacleSpec{Width: 2.0, Height: 2.0, Depth: 2.0, ScorePenalty: 5, LifePenalty: 1, Color: "gray"},
				Pothole: ObstacleSpec{Width: 3.0, Height: 0.2, Depth: 3.0, ScorePenalty: 10, LifePenalty: 1, Color: "brown"},
				Barrier: ObstacleSpec{Width: 5.0, Height: 2.5, Depth: 1.5, ScorePenalty: 8, LifePenalty: 2, Color: "orange"},
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:           true,
			ScorePerLevel:     30,
			MaxLevel:          5,
			ObstaclesPerLevel: 1,
			SizeScale:         1.05,
			SpeedIncrease:     0.08,
		},
		Gameplay: GameplayConfig{
			MaxLives:        3,
			MessageDuration: 90,
		},
	}
}

// DefaultRacerYAML returns the embedded default configuration file.
func DefaultRacerYAML() []byte {
	return defaultRacerYAML
}
