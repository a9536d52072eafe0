// Package engine implements the gravity flip game loop: physics, obstacle
// spawning, collision detection and restart. It owns all game state and has
// no knowledge of terminals, windows or input devices.
package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/gravflip/internal/config"
	"github.com/vovakirdan/gravflip/internal/core"
)

// ErrInvalidDelta is returned by Tick for negative, NaN or infinite deltas.
var ErrInvalidDelta = errors.New("engine: invalid frame delta")

// Engine advances the game state one frame at a time.
// It is not safe for concurrent use; callers drive it from a single loop.
type Engine struct {
	cfg       config.Config
	obstacles *ObstacleField
	score     float64
	speed     float64
	gravity   Gravity
	over      bool
	elapsed   float64
	flips     int
}

// New creates an engine in its initial Running state.
func New(cfg config.Config, seed int64) *Engine {
	e := &Engine{cfg: cfg}
	e.obstacles = NewObstacleField(seed, &e.cfg)
	e.Restart()
	return e
}

// Restart resets the game to its initial state in one step.
func (e *Engine) Restart() {
	e.obstacles.Reset()
	e.score = 0
	e.speed = e.cfg.Physics.InitialSpeed
	e.gravity = GravityDown
	e.over = false
	e.elapsed = 0
	e.flips = 0
}

// Tick advances the simulation by dt milliseconds.
// It does nothing once the game is over or when dt is zero.
func (e *Engine) Tick(dt float64) error {
	if e.over {
		return nil
	}
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidDelta, dt)
	}
	if dt == 0 {
		return nil
	}

	e.obstacles.Advance(e.shift(dt))
	e.obstacles.Accumulate(dt)

	e.speed += dt * e.cfg.Physics.SpeedRamp
	e.score += dt * e.cfg.Physics.ScoreRate
	e.elapsed += dt
	return nil
}

// shift returns how far obstacles move this tick.
func (e *Engine) shift(dt float64) float64 {
	if e.cfg.Physics.Motion == config.MotionScaled {
		return e.speed * dt / e.cfg.Physics.ReferenceFrameMS
	}
	return e.speed
}

// FlipGravity moves the player to the opposite edge. Ignored once over.
func (e *Engine) FlipGravity() {
	if e.over {
		return
	}
	e.gravity = e.gravity.Flipped()
	e.flips++
}

// CheckCollision ends the game if the player overlaps any obstacle and
// reports whether the game is over. Repeated calls after the end are no-ops.
func (e *Engine) CheckCollision() bool {
	if e.over {
		return true
	}
	if _, hit := e.obstacles.FirstHit(e.PlayerRect()); hit {
		e.over = true
		e.obstacles.Clear()
	}
	return e.over
}

// Frame runs one full frame: tick, then collision check, then snapshot.
// On an invalid delta the state is left untouched and the current snapshot
// is returned with the error.
func (e *Engine) Frame(dt float64) (Snapshot, error) {
	if err := e.Tick(dt); err != nil {
		return e.Snapshot(), err
	}
	e.CheckCollision()
	return e.Snapshot(), nil
}

// PlayerRect returns the player's bounding box. The player sits at a quarter
// of the canvas width, flush against the edge gravity points at.
func (e *Engine) PlayerRect() core.Rect {
	size, margin := e.cfg.Player.Size, e.cfg.Player.Margin
	y := margin
	if e.gravity == GravityDown {
		y = e.cfg.Canvas.Height - size - margin
	}
	return core.NewRect(e.cfg.Canvas.Width/4, y, size, size)
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	live := e.obstacles.Obstacles()
	obstacles := make([]Obstacle, len(live))
	copy(obstacles, live)

	return Snapshot{
		Score:     e.score,
		Speed:     e.speed,
		Gravity:   e.gravity,
		Obstacles: obstacles,
		Over:      e.over,
		Player:    e.PlayerRect(),
		CanvasW:   e.cfg.Canvas.Width,
		CanvasH:   e.cfg.Canvas.Height,
		Elapsed:   e.elapsed,
		Flips:     e.flips,
	}
}

// Status returns Running or Over.
func (e *Engine) Status() Status {
	if e.over {
		return StatusOver
	}
	return StatusRunning
}

// IsOver reports whether the game has ended.
func (e *Engine) IsOver() bool {
	return e.over
}

// Score returns the current score.
func (e *Engine) Score() float64 {
	return e.score
}

// Speed returns the current obstacle speed.
func (e *Engine) Speed() float64 {
	return e.speed
}

// Gravity returns the current gravity direction.
func (e *Engine) Gravity() Gravity {
	return e.gravity
}
