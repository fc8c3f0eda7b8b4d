// Package config provides YAML-based game configuration loading for the
// flappy simulation.
package config

import "fmt"

// FlappyConfig contains all configuration for the Flappy Bird game.
// Distances are logical playfield units, speeds are units per tick.
type FlappyConfig struct {
	Screen    FlappyScreen    `yaml:"screen"`
	Bird      FlappyBird      `yaml:"bird"`
	Physics   FlappyPhysics   `yaml:"physics"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
}

// FlappyScreen defines the logical playfield size.
type FlappyScreen struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FlappyBird defines the bird's fixed column and collision radius.
type FlappyBird struct {
	X      int `yaml:"x"`
	Radius int `yaml:"radius"`
}

// FlappyPhysics defines physics parameters for Flappy Bird.
type FlappyPhysics struct {
	Gravity     int `yaml:"gravity"`
	FlapImpulse int `yaml:"flap_impulse"` // Negative = up
	ScrollSpeed int `yaml:"scroll_speed"`
}

// FlappyObstacles defines obstacle parameters for Flappy Bird.
type FlappyObstacles struct {
	Width          int `yaml:"width"`
	GapHeight      int `yaml:"gap_height"`
	Spacing        int `yaml:"spacing"`          // Min distance from the right edge before the next spawn
	GapCenterMin   int `yaml:"gap_center_min"`   // Smallest gap centre, measured from the top
	GapCenterRange int `yaml:"gap_center_range"` // Centre is GapCenterMin + [0, GapCenterRange)
}

// Validate reports the first setting that would make the simulation meaningless.
func (c FlappyConfig) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	case c.Bird.Radius <= 0:
		return fmt.Errorf("bird radius must be positive, got %d", c.Bird.Radius)
	case c.Bird.X < 0 || c.Bird.X >= c.Screen.Width:
		return fmt.Errorf("bird x %d outside screen width %d", c.Bird.X, c.Screen.Width)
	case c.Physics.ScrollSpeed <= 0:
		return fmt.Errorf("scroll speed must be positive, got %d", c.Physics.ScrollSpeed)
	case c.Obstacles.Width <= 0:
		return fmt.Errorf("obstacle width must be positive, got %d", c.Obstacles.Width)
	case c.Obstacles.GapHeight <= 0 || c.Obstacles.GapHeight > c.Screen.Height:
		return fmt.Errorf("gap height %d must be in (0, %d]", c.Obstacles.GapHeight, c.Screen.Height)
	case c.Obstacles.GapCenterRange <= 0:
		return fmt.Errorf("gap center range must be positive, got %d", c.Obstacles.GapCenterRange)
	case c.Obstacles.Spacing < 0:
		return fmt.Errorf("obstacle spacing must not be negative, got %d", c.Obstacles.Spacing)
	}
	return nil
}
