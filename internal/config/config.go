// Package config provides YAML-based configuration loading for the cube
// world simulation.
package config

import (
	"github.com/vovakirdan/cubeworld/internal/world"
)

// WorldConfig contains all tunables of a simulation run.
type WorldConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Generation GenerationConfig `yaml:"generation"`
	Camera     CameraConfig     `yaml:"camera"`
}

// PhysicsConfig defines the per-tick movement constants. Down is positive
// y, so jumps are negative and gravity is positive.
type PhysicsConfig struct {
	MoveImpulse  float32 `yaml:"move_impulse"`
	JumpVelocity float32 `yaml:"jump_velocity"`
	Gravity      float32 `yaml:"gravity"`
	Friction     float32 `yaml:"friction"`
	RestEpsilon  float32 `yaml:"rest_epsilon"`
}

// GenerationConfig defines world generation parameters.
type GenerationConfig struct {
	SolidDensity float64 `yaml:"solid_density"`
}

// CameraConfig defines the renderer's projection parameters.
type CameraConfig struct {
	FOVDegrees float64 `yaml:"fov_degrees"`
	Distance   float64 `yaml:"distance"`
}

// Params converts the physics and generation sections into the simulation's
// tuning struct.
func (c WorldConfig) Params() world.Params {
	return world.Params{
		MoveImpulse:  c.Physics.MoveImpulse,
		JumpVelocity: c.Physics.JumpVelocity,
		Gravity:      c.Physics.Gravity,
		Friction:     c.Physics.Friction,
		RestEpsilon:  c.Physics.RestEpsilon,
		SolidDensity: c.Generation.SolidDensity,
	}
}
