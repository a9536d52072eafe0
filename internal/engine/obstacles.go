package engine

import (
	"math/rand"

	"github.com/vovakirdan/gravflip/internal/config"
	"github.com/vovakirdan/gravflip/internal/core"
)

// ObstacleField handles spawning, movement, and removal of obstacles.
type ObstacleField struct {
	obstacles []Obstacle
	rng       *rand.Rand
	timer     float64 // Milliseconds accumulated towards the next spawn
	cfg       *config.Config
}

// NewObstacleField creates an empty obstacle field with the given RNG seed.
func NewObstacleField(seed int64, cfg *config.Config) *ObstacleField {
	return &ObstacleField{
		obstacles: make([]Obstacle, 0, 16),
		rng:       rand.New(rand.NewSource(seed)),
		cfg:       cfg,
	}
}

// Reset clears all obstacles and the spawn timer. The RNG keeps its sequence.
func (f *ObstacleField) Reset() {
	f.Clear()
	f.timer = 0
}

// Clear removes every obstacle.
func (f *ObstacleField) Clear() {
	f.obstacles = f.obstacles[:0]
}

// Advance shifts every obstacle left by dx and drops the ones whose right
// edge has reached x=0. Filtering happens in place on the owned slice.
func (f *ObstacleField) Advance(dx float64) {
	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		o.X -= dx
		if o.X+o.Width > 0 {
			kept = append(kept, o)
		}
	}
	f.obstacles = kept
}

// Accumulate adds dt to the spawn timer and spawns a pair once the interval
// is reached.
func (f *ObstacleField) Accumulate(dt float64) {
	f.timer += dt
	if f.timer < f.cfg.Obstacles.SpawnIntervalMS {
		return
	}
	f.timer = 0
	f.spawnPair()
}

// spawnPair places one obstacle in a random band at the right edge and its
// mirror in the opposite band, so the pair blocks both lanes at the same x.
func (f *ObstacleField) spawnPair() {
	top, bottom := f.cfg.TopBandY(), f.cfg.BottomBandY()
	first, second := bottom, top
	if f.rng.Float64() < 0.5 {
		first, second = top, bottom
	}

	x := f.cfg.Canvas.Width
	w, h := f.cfg.Obstacles.Width, f.cfg.Obstacles.Height
	f.obstacles = append(f.obstacles,
		Obstacle{X: x, Y: first, Width: w, Height: h},
		Obstacle{X: x, Y: second, Width: w, Height: h},
	)
}

// FirstHit returns the first obstacle overlapping r, in spawn order.
func (f *ObstacleField) FirstHit(r core.Rect) (Obstacle, bool) {
	for _, o := range f.obstacles {
		if r.Intersects(o.Rect()) {
			return o, true
		}
	}
	return Obstacle{}, false
}

// Obstacles returns the live obstacle list. Callers must not retain it.
func (f *ObstacleField) Obstacles() []Obstacle {
	return f.obstacles
}
