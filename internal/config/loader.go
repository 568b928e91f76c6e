package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// LoadWorld loads the simulation configuration.
// Search order: customPath -> ~/.cubeworld/configs/world.yaml -> ./configs/world.yaml -> embedded default
func LoadWorld(customPath string) (WorldConfig, error) {
	var cfg WorldConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.validate()
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("world.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				cfg.validate()
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/world.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			cfg.validate()
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultWorldYAML, &cfg); err != nil {
		return DefaultWorldConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.validate()
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cubeworld", "configs", filename)
}

// validate clamps values the simulation cannot run with back to defaults,
// warning about each.
func (c *WorldConfig) validate() {
	def := DefaultWorldConfig()

	if c.Physics.Friction <= 0 || c.Physics.Friction > 1 {
		log.Warn("config: friction out of (0, 1], using default",
			"value", c.Physics.Friction, "default", def.Physics.Friction)
		c.Physics.Friction = def.Physics.Friction
	}
	if c.Physics.RestEpsilon <= 0 {
		log.Warn("config: rest_epsilon must be positive, using default",
			"value", c.Physics.RestEpsilon, "default", def.Physics.RestEpsilon)
		c.Physics.RestEpsilon = def.Physics.RestEpsilon
	}
	if c.Physics.Gravity < 0 {
		log.Warn("config: gravity must not point up, using default",
			"value", c.Physics.Gravity, "default", def.Physics.Gravity)
		c.Physics.Gravity = def.Physics.Gravity
	}
	if c.Generation.SolidDensity < 0 || c.Generation.SolidDensity > 1 {
		log.Warn("config: solid_density out of [0, 1], using default",
			"value", c.Generation.SolidDensity, "default", def.Generation.SolidDensity)
		c.Generation.SolidDensity = def.Generation.SolidDensity
	}
	if c.Camera.FOVDegrees <= 0 || c.Camera.FOVDegrees >= 180 {
		log.Warn("config: fov_degrees out of (0, 180), using default",
			"value", c.Camera.FOVDegrees, "default", def.Camera.FOVDegrees)
		c.Camera.FOVDegrees = def.Camera.FOVDegrees
	}
	if c.Camera.Distance <= 0 {
		log.Warn("config: camera distance must be positive, using default",
			"value", c.Camera.Distance, "default", def.Camera.Distance)
		c.Camera.Distance = def.Camera.Distance
	}
}
