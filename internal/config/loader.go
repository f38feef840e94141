package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDrifter loads the Drifter configuration.
// Search order: customPath -> ~/.arcade/configs/drifter.yaml -> ./configs/drifter.yaml -> embedded default
func LoadDrifter(customPath string) (DrifterConfig, error) {
	var cfg DrifterConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("drifter.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/drifter.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultDrifterYAML, &cfg); err != nil {
		return DefaultDrifterConfig(), nil // Fallback to hardcoded if embed fails
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

// ApplyDrifterPreset modifies the config based on a difficulty preset.
func ApplyDrifterPreset(cfg *DrifterConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.Level = LevelForPreset(preset)
	}

	// Adjust survival margins per preset
	switch preset {
	case DifficultyEasy:
		cfg.Supply.CraftSeconds = 90
	case DifficultyHard:
		cfg.Supply.CraftSeconds = 45
		cfg.Supply.PickupSeconds = 10
	}
}
