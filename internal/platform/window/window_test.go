// Ebiten only builds with cgo on Linux.
//go:build !linux || cgo

package window

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gravflip/internal/config"
	"github.com/vovakirdan/gravflip/internal/core"
	"github.com/vovakirdan/gravflip/internal/engine"
	"github.com/vovakirdan/gravflip/internal/input"
)

func newTestGame(t *testing.T) (*Game, *engine.Engine) {
	t.Helper()
	eng := engine.New(config.Default(), 7)
	return NewGame(eng, Options{MaxDelta: 250 * time.Millisecond}), eng
}

func TestRGBAFallsBackToDefault(t *testing.T) {
	assert.Equal(t, palette[core.ColorBrightCyan], rgba(core.ColorPlayer))
	assert.Equal(t, palette[core.ColorDefault], rgba(core.Color(200)))
}

func TestLayoutIsCanvasSize(t *testing.T) {
	g, _ := newTestGame(t)

	w, h := g.Layout(1920, 1080)
	assert.Equal(t, 800, w)
	assert.Equal(t, 400, h)
}

func TestApplyFlipRefreshesSnapshot(t *testing.T) {
	g, eng := newTestGame(t)

	g.apply(input.ActionFlip)
	assert.Equal(t, engine.GravityUp, eng.Gravity())
	assert.Equal(t, engine.GravityUp, g.snap.Gravity)
	assert.Equal(t, 10.0, g.snap.Player.Y)
}

func TestApplyRestartResetsClock(t *testing.T) {
	g, eng := newTestGame(t)
	t0 := time.Unix(0, 0)
	g.clock.Delta(t0)

	for i := 0; i < 10000 && !eng.IsOver(); i++ {
		snap, err := eng.Frame(16)
		require.NoError(t, err)
		g.snap = snap
	}
	require.True(t, eng.IsOver())

	g.apply(input.ActionFlip)
	assert.True(t, g.snap.Over, "flips are ignored after game over")

	g.apply(input.ActionRestart)
	assert.False(t, g.snap.Over)
	assert.Zero(t, g.snap.Score)
	assert.Empty(t, g.snap.Obstacles)
	assert.Equal(t, 0.0, g.clock.Delta(t0.Add(time.Hour)), "first frame after restart has no delta")
}
