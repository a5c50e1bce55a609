package config

import "math"

// DifficultyManager derives level-dependent game parameters from score.
// All results are functions of the level alone, so re-deriving at any
// level from scratch gives the same answer as stepping up to it.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.MaxLevel > 0
}

// MaxLevel returns the highest reachable level.
func (d *DifficultyManager) MaxLevel() int {
	if !d.IsEnabled() {
		return 0
	}
	return d.cfg.MaxLevel
}

// Level returns the level for the given score: score div score_per_level, capped.
func (d *DifficultyManager) Level(score int) int {
	if !d.IsEnabled() || score <= 0 || d.cfg.ScorePerLevel <= 0 {
		return 0
	}
	level := score / d.cfg.ScorePerLevel
	if level > d.cfg.MaxLevel {
		level = d.cfg.MaxLevel
	}
	return level
}

// SizeScale returns the factor applied to obstacle width and height at a level.
func (d *DifficultyManager) SizeScale(level int) float64 {
	if level <= 0 {
		return 1
	}
	return math.Pow(d.cfg.SizeScale, float64(level))
}

// TargetObstacles returns how many obstacles should be active at a level.
func (d *DifficultyManager) TargetObstacles(base, limit, level int) int {
	target := base + level*d.cfg.ObstaclesPerLevel
	if target > limit {
		target = limit
	}
	return target
}

// SpeedIncrease returns the speed multiplier gained by climbing the given number of levels.
func (d *DifficultyManager) SpeedIncrease(levels int) float64 {
	if levels <= 0 {
		return 0
	}
	return float64(levels) * d.cfg.SpeedIncrease
}
