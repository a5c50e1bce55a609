// Package config provides YAML-based game configuration loading,
// validation and difficulty formulas for the racer.
package config

// RacerConfig contains every tunable parameter of the racer simulation.
// Values are fixed for the lifetime of a session.
type RacerConfig struct {
	Road       RoadConfig       `yaml:"road"`
	Car        CarConfig        `yaml:"car"`
	Scroll     ScrollConfig     `yaml:"scroll"`
	Points     PointsConfig     `yaml:"points"`
	Diamond    DiamondConfig    `yaml:"diamond"`
	Obstacles  ObstaclesConfig  `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
}

// RoadConfig defines the drivable road strip.
type RoadConfig struct {
	MinX  float64   `yaml:"min_x"`
	Width float64   `yaml:"width"`
	Lanes []float64 `yaml:"lanes"` // X positions obstacles may spawn on
}

// MaxX returns the right edge of the road.
func (r RoadConfig) MaxX() float64 {
	return r.MinX + r.Width
}

// CenterX returns the middle of the road.
func (r RoadConfig) CenterX() float64 {
	return r.MinX + r.Width/2
}

// CarConfig defines the player's car.
type CarConfig struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`   // Collision height
	Depth            float64 `yaml:"depth"`    // Length along Z
	CenterY          float64 `yaml:"center_y"` // Vertical center of the collision box
	Z                float64 `yaml:"z"`        // Rear of the car along the road
	LaneChangeSpeed  float64 `yaml:"lane_change_speed"`
	BoostSteerFactor float64 `yaml:"boost_steer_factor"` // Steering multiplier while accelerating
	EdgeMargin       float64 `yaml:"edge_margin"`        // Gap kept from the road edge
}

// ScrollConfig defines per-class forward speeds and the despawn line.
type ScrollConfig struct {
	Environment       float64 `yaml:"environment"`
	Points            float64 `yaml:"points"`
	Diamond           float64 `yaml:"diamond"`
	Obstacles         float64 `yaml:"obstacles"`
	NearZ             float64 `yaml:"near_z"`             // Entities past this Z have left the view
	AccelerationBoost float64 `yaml:"acceleration_boost"` // Added to the speed multiplier while accelerating
}

// Band is a closed numeric range used for random placement.
type Band struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// PointsConfig defines the collectible point pool.
type PointsConfig struct {
	Count      int     `yaml:"count"`
	Size       float64 `yaml:"size"`
	Y          float64 `yaml:"y"`
	LaneMargin float64 `yaml:"lane_margin"`
	Initial    Band    `yaml:"initial"`
	Respawn    Band    `yaml:"respawn"`
}

// DiamondConfig defines the extra-life pickup.
type DiamondConfig struct {
	Size       float64 `yaml:"size"`
	Y          float64 `yaml:"y"`
	LaneMargin float64 `yaml:"lane_margin"`
	InitialZ   float64 `yaml:"initial_z"`
	Respawn    Band    `yaml:"respawn"`
}

// ObstaclesConfig defines the obstacle pool and its recycling rules.
type ObstaclesConfig struct {
	BaseCount      int           `yaml:"base_count"`
	MaxCount       int           `yaml:"max_count"`
	InitialZ       float64       `yaml:"initial_z"`
	InitialSpacing float64       `yaml:"initial_spacing"`
	Gap            Band          `yaml:"gap"`         // Distance behind the farthest obstacle on respawn
	SpawnFloor     float64       `yaml:"spawn_floor"` // Respawns never go deeper than this
	DriftFloor     float64       `yaml:"drift_floor"` // Inactive obstacles below this are respawned
	ParkZ          float64       `yaml:"park_z"`      // Where hit obstacles are moved
	ReserveZ       float64       `yaml:"reserve_z"`   // Where unused pool slots wait
	Types          ObstacleTypes `yaml:"types"`
}

// ObstacleTypes holds the base geometry and penalties of every obstacle kind.
type ObstacleTypes struct {
	Rock    ObstacleSpec `yaml:"rock"`
	Pothole ObstacleSpec `yaml:"pothole"`
	Barrier ObstacleSpec `yaml:"barrier"`
}

// ObstacleSpec is the base geometry and penalty of one obstacle kind.
type ObstacleSpec struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Depth        float64 `yaml:"depth"`
	ScorePenalty int     `yaml:"score_penalty"`
	LifePenalty  int     `yaml:"life_penalty"`
	Color        string  `yaml:"color"`
}

// DifficultyConfig defines the level progression.
type DifficultyConfig struct {
	Enabled           bool    `yaml:"enabled"`
	ScorePerLevel     int     `yaml:"score_per_level"`
	MaxLevel          int     `yaml:"max_level"`
	ObstaclesPerLevel int     `yaml:"obstacles_per_level"`
	SizeScale         float64 `yaml:"size_scale"`     // Compounded per level on obstacle width/height
	SpeedIncrease     float64 `yaml:"speed_increase"` // Added to the speed multiplier per level
}

// GameplayConfig defines lives and HUD timing.
type GameplayConfig struct {
	MaxLives        int `yaml:"max_lives"`
	MessageDuration int `yaml:"message_duration"` // Ticks a hit message stays visible
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
