// Package config provides YAML-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for configurations the engine cannot run.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config contains all tunables of the game.
type Config struct {
	Canvas    CanvasConfig   `yaml:"canvas"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Loop      LoopConfig     `yaml:"loop"`
}

// CanvasConfig defines the logical drawing surface.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player square.
type PlayerConfig struct {
	Size   float64 `yaml:"size"`
	Margin float64 `yaml:"margin"` // Gap between the square and the active edge
}

// ObstacleConfig defines obstacle geometry and spawn cadence.
type ObstacleConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Margin          float64 `yaml:"margin"` // Gap between a band and its edge
	SpawnIntervalMS float64 `yaml:"spawn_interval_ms"`
}

// MotionMode selects how obstacle movement relates to elapsed time.
type MotionMode string

const (
	// MotionFrame moves obstacles by speed once per tick.
	MotionFrame MotionMode = "frame"
	// MotionScaled moves obstacles by speed per reference frame of elapsed time.
	MotionScaled MotionMode = "scaled"
)

// PhysicsConfig defines speed, score and timing parameters.
type PhysicsConfig struct {
	InitialSpeed     float64    `yaml:"initial_speed"`
	SpeedRamp        float64    `yaml:"speed_ramp"` // Speed gained per millisecond
	ScoreRate        float64    `yaml:"score_rate"` // Score gained per millisecond
	Motion           MotionMode `yaml:"motion"`
	ReferenceFrameMS float64    `yaml:"reference_frame_ms"`
	MaxFrameDeltaMS  float64    `yaml:"max_frame_delta_ms"`
}

// LoopConfig defines the frame scheduler.
type LoopConfig struct {
	TickRate int `yaml:"tick_rate"` // Frames per second
}

// TopBandY returns the y position of obstacles in the top band.
func (c Config) TopBandY() float64 {
	return c.Obstacles.Margin
}

// BottomBandY returns the y position of obstacles in the bottom band.
func (c Config) BottomBandY() float64 {
	return c.Canvas.Height - c.Obstacles.Margin - c.Obstacles.Height
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("%w: canvas must have positive size, got %vx%v",
			ErrInvalidConfig, c.Canvas.Width, c.Canvas.Height)
	case c.Player.Size <= 0 || c.Player.Margin < 0:
		return fmt.Errorf("%w: player size must be positive and margin non-negative", ErrInvalidConfig)
	case c.Player.Size+2*c.Player.Margin > c.Canvas.Height:
		return fmt.Errorf("%w: player does not fit the canvas height", ErrInvalidConfig)
	case c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0 || c.Obstacles.Margin < 0:
		return fmt.Errorf("%w: obstacle size must be positive and margin non-negative", ErrInvalidConfig)
	case c.TopBandY()+c.Obstacles.Height > c.BottomBandY():
		return fmt.Errorf("%w: obstacle bands overlap", ErrInvalidConfig)
	case c.Obstacles.SpawnIntervalMS <= 0:
		return fmt.Errorf("%w: spawn_interval_ms must be positive", ErrInvalidConfig)
	case c.Physics.InitialSpeed <= 0:
		return fmt.Errorf("%w: initial_speed must be positive", ErrInvalidConfig)
	case c.Physics.SpeedRamp < 0 || c.Physics.ScoreRate < 0:
		return fmt.Errorf("%w: speed_ramp and score_rate must not be negative", ErrInvalidConfig)
	case c.Physics.ReferenceFrameMS <= 0 || c.Physics.MaxFrameDeltaMS <= 0:
		return fmt.Errorf("%w: frame timings must be positive", ErrInvalidConfig)
	case c.Loop.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive", ErrInvalidConfig)
	}

	switch c.Physics.Motion {
	case MotionFrame, MotionScaled:
	default:
		return fmt.Errorf("%w: unknown motion mode %q", ErrInvalidConfig, c.Physics.Motion)
	}
	return nil
}
