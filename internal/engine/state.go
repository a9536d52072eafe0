package engine

import (
	"math"

	"github.com/vovakirdan/gravflip/internal/core"
)

// Gravity is the sign of gravity: the edge the player rests against.
type Gravity int

const (
	// GravityDown pins the player to the bottom edge.
	GravityDown Gravity = 1
	// GravityUp pins the player to the top edge.
	GravityUp Gravity = -1
)

// Flipped returns the opposite gravity.
func (g Gravity) Flipped() Gravity {
	return -g
}

// String returns a human-readable name for the gravity direction.
func (g Gravity) String() string {
	switch g {
	case GravityDown:
		return "down"
	case GravityUp:
		return "up"
	default:
		return "unknown"
	}
}

// Status is the engine's state machine position.
type Status int

const (
	StatusRunning Status = iota
	StatusOver
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// Obstacle is a block scrolling from right to left in one of the two bands.
type Obstacle struct {
	X, Y          float64
	Width, Height float64
}

// Rect returns the collision rectangle for this obstacle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// Snapshot is a read-only copy of the game state taken at the end of a frame.
// Renderers draw from a snapshot and never observe the engine mid-update.
type Snapshot struct {
	Score     float64
	Speed     float64
	Gravity   Gravity
	Obstacles []Obstacle
	Over      bool
	Player    core.Rect
	CanvasW   float64
	CanvasH   float64
	Elapsed   float64 // Milliseconds of play since the last restart
	Flips     int
}

// Status returns the state machine position captured by the snapshot.
func (s Snapshot) Status() Status {
	if s.Over {
		return StatusOver
	}
	return StatusRunning
}

// DisplayScore returns the integer part of the score, as shown on screen.
func (s Snapshot) DisplayScore() int {
	return int(math.Floor(s.Score))
}
