package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default Flappy Bird configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Screen: FlappyScreen{
			Width:  400,
			Height: 600,
		},
		Bird: FlappyBird{
			X:      100,
			Radius: 15,
		},
		Physics: FlappyPhysics{
			Gravity:     1,
			FlapImpulse: -10,
			ScrollSpeed: 3,
		},
		Obstacles: FlappyObstacles{
			Width:          70,
			GapHeight:      200,
			Spacing:        200,
			GapCenterMin:   150,
			GapCenterRange: 200,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultFlappyYAML
}
