package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := RacerConfig{}
	if err := yaml.Unmarshal(DefaultRacerYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultRacerConfig()) {
		t.Errorf("embedded YAML differs from DefaultRacerConfig()\nyaml: %+v\ncode: %+v", cfg, DefaultRacerConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultRacerConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RacerConfig)
	}{
		{"zero max lives", func(c *RacerConfig) { c.Gameplay.MaxLives = 0 }},
		{"negative max lives", func(c *RacerConfig) { c.Gameplay.MaxLives = -1 }},
		{"zero score per level", func(c *RacerConfig) { c.Difficulty.ScorePerLevel = 0 }},
		{"no lanes", func(c *RacerConfig) { c.Road.Lanes = nil }},
		{"lane off road", func(c *RacerConfig) { c.Road.Lanes = []float64{5} }},
		{"empty point pool", func(c *RacerConfig) { c.Points.Count = 0 }},
		{"inverted respawn band", func(c *RacerConfig) { c.Points.Respawn = Band{Min: -100, Max: -150} }},
		{"max below base count", func(c *RacerConfig) { c.Obstacles.MaxCount = 2 }},
		{"park above drift floor", func(c *RacerConfig) { c.Obstacles.ParkZ = 0 }},
		{"non-positive size scale", func(c *RacerConfig) { c.Difficulty.SizeScale = 0 }},
		{"negative life penalty", func(c *RacerConfig) { c.Obstacles.Types.Rock.LifePenalty = -1 }},
		{"flat barrier", func(c *RacerConfig) { c.Obstacles.Types.Barrier.Height = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRacerConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error should wrap ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoadRacerCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "racer.yaml")
	data := []byte("gameplay:\n  max_lives: 7\nroad:\n  lanes: [25, 75]\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRacer(path)
	if err != nil {
		t.Fatalf("LoadRacer() failed: %v", err)
	}

	if cfg.Gameplay.MaxLives != 7 {
		t.Errorf("max_lives = %d, expected 7", cfg.Gameplay.MaxLives)
	}
	if !reflect.DeepEqual(cfg.Road.Lanes, []float64{25, 75}) {
		t.Errorf("lanes = %v, expected [25 75]", cfg.Road.Lanes)
	}
	// Untouched keys keep defaults
	if cfg.Difficulty.ScorePerLevel != 30 {
		t.Errorf("score_per_level = %d, expected default 30", cfg.Difficulty.ScorePerLevel)
	}
}

func TestLoadRacerMissingCustomPath(t *testing.T) {
	_, err := LoadRacer(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("LoadRacer() should fail for a missing custom file")
	}
}

func TestLoadRacerBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "racer.yaml")
	if err := os.WriteFile(path, []byte("gameplay: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadRacer(path); err == nil {
		t.Fatal("LoadRacer() should fail for malformed YAML")
	}
}

func TestMarshalRoundTripKeepsLives(t *testing.T) {
	cfg := DefaultRacerConfig()
	cfg.Gameplay.MaxLives = 4

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	var back RacerConfig
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("cannot parse marshaled config: %v", err)
	}
	if back.Gameplay.MaxLives != 4 {
		t.Errorf("max_lives = %d after round trip, expected 4", back.Gameplay.MaxLives)
	}
}

func TestApplyRacerPreset(t *testing.T) {
	cfg := DefaultRacerConfig()
	ApplyRacerPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultRacerConfig()
	ApplyRacerPreset(&cfg, DifficultyHard)
	if cfg.Gameplay.MaxLives != 2 || cfg.Difficulty.ScorePerLevel != 20 {
		t.Errorf("hard preset not applied: lives=%d spl=%d", cfg.Gameplay.MaxLives, cfg.Difficulty.ScorePerLevel)
	}

	cfg = DefaultRacerConfig()
	ApplyRacerPreset(&cfg, DifficultyNormal)
	if !reflect.DeepEqual(cfg, DefaultRacerConfig()) {
		t.Error("normal preset should keep defaults")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should parse to empty")
	}
}

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(DefaultRacerConfig().Difficulty)

	tests := []struct {
		score, expected int
	}{
		{0, 0},
		{29, 0},
		{30, 1},
		{59, 1},
		{150, 5},
		{10000, 5}, // capped at max level
		{-5, 0},
	}

	for _, tc := range tests {
		if got := d.Level(tc.score); got != tc.expected {
			t.Errorf("Level(%d) = %d, expected %d", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := DefaultRacerConfig().Difficulty
	cfg.Enabled = false
	d := NewDifficultyManager(cfg)

	if d.Level(1000) != 0 {
		t.Error("disabled progression should stay at level 0")
	}
	if d.MaxLevel() != 0 {
		t.Error("disabled progression should report max level 0")
	}
}

func TestDifficultySizeScaleCompounds(t *testing.T) {
	d := NewDifficultyManager(DefaultRacerConfig().Difficulty)

	if d.SizeScale(0) != 1 {
		t.Errorf("SizeScale(0) = %f, expected 1", d.SizeScale(0))
	}

	stepped := 1.0
	for level := 1; level <= 5; level++ {
		stepped *= 1.05
		if math.Abs(d.SizeScale(level)-stepped) > 1e-12 {
			t.Errorf("SizeScale(%d) = %f, expected %f", level, d.SizeScale(level), stepped)
		}
	}
}

func TestDifficultyTargetObstacles(t *testing.T) {
	d := NewDifficultyManager(DefaultRacerConfig().Difficulty)

	if got := d.TargetObstacles(6, 20, 0); got != 6 {
		t.Errorf("TargetObstacles level 0 = %d, expected 6", got)
	}
	if got := d.TargetObstacles(6, 20, 3); got != 9 {
		t.Errorf("TargetObstacles level 3 = %d, expected 9", got)
	}
	if got := d.TargetObstacles(18, 20, 5); got != 20 {
		t.Errorf("TargetObstacles should cap at 20, got %d", got)
	}
}

func TestDifficultySpeedIncrease(t *testing.T) {
	d := NewDifficultyManager(DefaultRacerConfig().Difficulty)

	if d.SpeedIncrease(0) != 0 {
		t.Error("no levels gained should add no speed")
	}
	if math.Abs(d.SpeedIncrease(2)-0.16) > 1e-12 {
		t.Errorf("SpeedIncrease(2) = %f, expected 0.16", d.SpeedIncrease(2))
	}
}
