package config

import (
	_ "embed"
)

//go:embed defaults/world.yaml
var defaultWorldYAML []byte

// DefaultWorldConfig returns the default simulation configuration.
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		Physics: PhysicsConfig{
			MoveImpulse:  0.002,
			JumpVelocity: -0.018,
			Gravity:      0.001,
			Friction:     0.8,
			RestEpsilon:  1e-5,
		},
		Generation: GenerationConfig{
			SolidDensity: 0.17,
		},
		Camera: CameraConfig{
			FOVDegrees: 60,
			Distance:   2.6,
		},
	}
}
