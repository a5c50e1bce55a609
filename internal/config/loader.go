package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRacer loads the racer configuration.
// Search order: customPath -> ~/.arcade/configs/racer.yaml -> ./configs/racer.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides the keys it sets.
func LoadRacer(customPath string) (RacerConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("racer.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(filepath.Join("configs", "racer.yaml")); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultRacerConfig()
	if err := yaml.Unmarshal(defaultRacerYAML, &cfg); err != nil {
		return DefaultRacerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile decodes a YAML file on top of the default configuration.
func loadFile(path string) (RacerConfig, error) {
	cfg := DefaultRacerConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyRacerPreset modifies the config based on a difficulty preset.
func ApplyRacerPreset(cfg *RacerConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.MaxLives = 5
		cfg.Difficulty.ScorePerLevel = 40
		cfg.Difficulty.SpeedIncrease = 0.05
	case DifficultyHard:
		cfg.Gameplay.MaxLives = 2
		cfg.Difficulty.ScorePerLevel = 20
		cfg.Difficulty.SizeScale = 1.10
		cfg.Difficulty.SpeedIncrease = 0.12
	}
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg RacerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}
