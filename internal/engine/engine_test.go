package engine

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gravflip/internal/config"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return New(config.Default(), 42)
}

// place puts a single obstacle on the field, replacing whatever was there.
func place(e *Engine, obstacles ...Obstacle) {
	e.obstacles.Clear()
	e.obstacles.obstacles = append(e.obstacles.obstacles, obstacles...)
}

func TestNewStartsWithDefaults(t *testing.T) {
	e := newTestEngine(t)

	assert.Equal(t, 0.0, e.Score())
	assert.Equal(t, 0.25, e.Speed())
	assert.Equal(t, GravityDown, e.Gravity())
	assert.Equal(t, StatusRunning, e.Status())
	assert.Empty(t, e.Snapshot().Obstacles)
}

func TestTickSpawnScenario(t *testing.T) {
	e := newTestEngine(t)

	require.NoError(t, e.Tick(600))

	snap := e.Snapshot()
	require.Len(t, snap.Obstacles, 2, "exactly one pair should spawn")
	for _, o := range snap.Obstacles {
		assert.Equal(t, 800.0, o.X)
		assert.Equal(t, 20.0, o.Width)
		assert.Equal(t, 20.0, o.Height)
	}
	assert.InDelta(t, 0.28, snap.Speed, 1e-12)
	assert.InDelta(t, 6.0, snap.Score, 1e-12)
}

func TestSpawnTimerAccumulates(t *testing.T) {
	e := newTestEngine(t)

	require.NoError(t, e.Tick(300))
	require.NoError(t, e.Tick(299))
	assert.Equal(t, 0, len(e.obstacles.Obstacles()))

	require.NoError(t, e.Tick(1))
	assert.Equal(t, 2, len(e.obstacles.Obstacles()))

	// Timer restarts from zero after a spawn
	require.NoError(t, e.Tick(599))
	assert.Equal(t, 2, len(e.obstacles.Obstacles()))
}

func TestEverySpawnIsAMirroredPair(t *testing.T) {
	e := New(config.Default(), 7)
	seenTopFirst, seenBottomFirst := false, false

	for i := 0; i < 50; i++ {
		require.NoError(t, e.Tick(600))

		obs := e.Snapshot().Obstacles
		require.Zero(t, len(obs)%2, "obstacles come in pairs")

		first, second := obs[len(obs)-2], obs[len(obs)-1]
		assert.Equal(t, first.X, second.X)
		assert.ElementsMatch(t, []float64{10, 370}, []float64{first.Y, second.Y})
		if first.Y == 10 {
			seenTopFirst = true
		} else {
			seenBottomFirst = true
		}

		// Drop older pairs so the newest is always last
		place(e, obs[len(obs)-2:]...)
	}

	assert.True(t, seenTopFirst && seenBottomFirst, "band choice should be random")
}

func TestObstaclesMoveBySpeedPerTick(t *testing.T) {
	e := newTestEngine(t)
	place(e, Obstacle{X: 500, Y: 10, Width: 20, Height: 20})

	require.NoError(t, e.Tick(16))
	assert.InDelta(t, 499.75, e.Snapshot().Obstacles[0].X, 1e-12)

	// Movement in frame mode does not depend on dt
	speed := e.Speed()
	require.NoError(t, e.Tick(100))
	assert.InDelta(t, 499.75-speed, e.Snapshot().Obstacles[0].X, 1e-12)
}

func TestScaledMotion(t *testing.T) {
	cfg := config.Default()
	cfg.Physics.Motion = config.MotionScaled
	cfg.Physics.ReferenceFrameMS = 10
	e := New(cfg, 1)
	place(e, Obstacle{X: 500, Y: 10, Width: 20, Height: 20})

	require.NoError(t, e.Tick(20))
	assert.InDelta(t, 499.5, e.Snapshot().Obstacles[0].X, 1e-12)
}

func TestObstaclesRemovedOffLeftEdge(t *testing.T) {
	e := newTestEngine(t)
	place(e,
		Obstacle{X: -19.75, Y: 10, Width: 20, Height: 20}, // right edge lands on 0
		Obstacle{X: -19.5, Y: 370, Width: 20, Height: 20}, // still visible
	)

	require.NoError(t, e.Tick(1))

	obs := e.Snapshot().Obstacles
	require.Len(t, obs, 1)
	assert.Equal(t, 370.0, obs[0].Y)
}

func TestNoObstaclePersistsForever(t *testing.T) {
	e := newTestEngine(t)
	place(e, Obstacle{X: 800, Y: 10, Width: 20, Height: 20})

	// 820 units at >= 0.25 per tick takes at most 3280 ticks
	for i := 0; i < 3280; i++ {
		require.NoError(t, e.Tick(0.1))
	}
	assert.Equal(t, 0, len(e.obstacles.Obstacles()))
}

func TestTickNeverDecreasesScoreOrSpeed(t *testing.T) {
	e := newTestEngine(t)
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 500 && !e.IsOver(); i++ {
		score, speed := e.Score(), e.Speed()
		require.NoError(t, e.Tick(rng.Float64()*50))
		require.GreaterOrEqual(t, e.Score(), score)
		require.GreaterOrEqual(t, e.Speed(), speed)
		e.CheckCollision()
	}
}

func TestTickRejectsInvalidDelta(t *testing.T) {
	for _, dt := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		e := newTestEngine(t)
		require.NoError(t, e.Tick(100))
		before := e.Snapshot()

		err := e.Tick(dt)
		assert.ErrorIs(t, err, ErrInvalidDelta)
		assert.Equal(t, before, e.Snapshot(), "invalid delta must not mutate state")
	}
}

func TestZeroDeltaIsNoop(t *testing.T) {
	e := newTestEngine(t)
	place(e, Obstacle{X: 500, Y: 10, Width: 20, Height: 20})
	before := e.Snapshot()

	require.NoError(t, e.Tick(0))
	assert.Equal(t, before, e.Snapshot())
}

func TestCollisionScenario(t *testing.T) {
	e := newTestEngine(t)
	player := e.PlayerRect()
	assert.Equal(t, 200.0, player.X)
	assert.Equal(t, 360.0, player.Y)

	place(e, Obstacle{X: 100, Y: 370, Width: 20, Height: 20})
	assert.False(t, e.CheckCollision())
	assert.Equal(t, StatusRunning, e.Status())

	place(e, Obstacle{X: 210, Y: 370, Width: 20, Height: 20})
	assert.True(t, e.CheckCollision())
	assert.Equal(t, StatusOver, e.Status())
	assert.Empty(t, e.Snapshot().Obstacles)
}

func TestFlipAvoidsCollision(t *testing.T) {
	e := newTestEngine(t)
	place(e, Obstacle{X: 210, Y: 370, Width: 20, Height: 20})

	e.FlipGravity()
	assert.Equal(t, GravityUp, e.Gravity())
	assert.Equal(t, 10.0, e.PlayerRect().Y)
	assert.False(t, e.CheckCollision())

	// Flipping back into the obstacle ends the game
	e.FlipGravity()
	assert.True(t, e.CheckCollision())
}

func TestOverIsFrozen(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.Tick(600))
	place(e, Obstacle{X: 210, Y: 370, Width: 20, Height: 20})
	require.True(t, e.CheckCollision())

	before := e.Snapshot()
	require.NoError(t, e.Tick(1000))
	e.FlipGravity()
	assert.True(t, e.CheckCollision(), "collision check is idempotent once over")
	assert.Equal(t, before, e.Snapshot())
}

func TestRestartResetsEverything(t *testing.T) {
	e := newTestEngine(t)
	for i := 0; i < 5; i++ {
		require.NoError(t, e.Tick(450))
		e.FlipGravity()
	}
	place(e, Obstacle{X: 200, Y: 10, Width: 20, Height: 20})
	require.True(t, e.CheckCollision())

	e.Restart()

	snap := e.Snapshot()
	assert.Equal(t, 0.0, snap.Score)
	assert.Equal(t, 0.25, snap.Speed)
	assert.Equal(t, GravityDown, snap.Gravity)
	assert.Empty(t, snap.Obstacles)
	assert.False(t, snap.Over)
	assert.Zero(t, snap.Elapsed)
	assert.Zero(t, snap.Flips)

	// Spawn timer was reset too
	require.NoError(t, e.Tick(599))
	assert.Equal(t, 0, len(e.obstacles.Obstacles()))
}

func TestFrameRunsTickThenCollision(t *testing.T) {
	e := newTestEngine(t)
	place(e, Obstacle{X: 230.2, Y: 370, Width: 20, Height: 20})

	// After one tick the obstacle's left edge is at 229.95, inside the player
	snap, err := e.Frame(16)
	require.NoError(t, err)
	assert.True(t, snap.Over)
	assert.Equal(t, StatusOver, snap.Status())
	assert.Empty(t, snap.Obstacles)
}

func TestFrameInvalidDelta(t *testing.T) {
	e := newTestEngine(t)

	snap, err := e.Frame(-5)
	assert.ErrorIs(t, err, ErrInvalidDelta)
	assert.Equal(t, e.Snapshot(), snap)
}

func TestSnapshotIsIsolated(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.Tick(600))

	snap := e.Snapshot()
	snap.Obstacles[0].X = -1000

	assert.Equal(t, 800.0, e.Snapshot().Obstacles[0].X)
}

func TestDisplayScoreTruncates(t *testing.T) {
	assert.Equal(t, 6, Snapshot{Score: 6.99}.DisplayScore())
	assert.Equal(t, 0, Snapshot{Score: 0.4}.DisplayScore())
}

func TestDeterministicWithSeed(t *testing.T) {
	run := func() []Obstacle {
		e := New(config.Default(), 99)
		for i := 0; i < 10; i++ {
			require.NoError(t, e.Tick(600))
		}
		return e.Snapshot().Obstacles
	}
	assert.Equal(t, run(), run())
}
