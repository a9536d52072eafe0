package config

import (
	_ "embed"
)

//go:embed defaults/gravflip.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It reproduces the reference
// game exactly: 800x400 canvas, 30-unit square, 20-unit obstacles every 600ms.
func Default() Config {
	return Config{
		Canvas: CanvasConfig{
			Width:  800,
			Height: 400,
		},
		Player: PlayerConfig{
			Size:   30,
			Margin: 10,
		},
		Obstacles: ObstacleConfig{
			Width:           20,
			Height:          20,
			Margin:          10,
			SpawnIntervalMS: 600,
		},
		Physics: PhysicsConfig{
			InitialSpeed:     0.25,
			SpeedRamp:        0.00005,
			ScoreRate:        0.01,
			Motion:           MotionFrame,
			ReferenceFrameMS: 16.667,
			MaxFrameDeltaMS:  250,
		},
		Loop: LoopConfig{
			TickRate: 60,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
