// Package window draws the game in a desktop window using Ebiten.
//
// On Linux, Ebiten builds with cgo and needs the X11 and OpenGL development
// headers. Nothing here opens a display until Run is called.
package window

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/gravflip/internal/core"
	"github.com/vovakirdan/gravflip/internal/engine"
	"github.com/vovakirdan/gravflip/internal/input"
)

// Debug font glyph size, used to centre text.
const (
	glyphW = 6
	glyphH = 16
)

// Options configures the window.
type Options struct {
	Title    string
	Scale    float64 // Window size relative to the canvas
	TickRate int
	MaxDelta time.Duration
	Logger   *log.Logger
}

// Game implements ebiten.Game on top of the engine.
type Game struct {
	engine *engine.Engine
	clock  *engine.FrameClock
	snap   engine.Snapshot
	logger *log.Logger
	width  int
	height int
}

// NewGame creates a window game driving the given engine.
func NewGame(eng *engine.Engine, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	snap := eng.Snapshot()
	return &Game{
		engine: eng,
		clock:  engine.NewFrameClock(opts.MaxDelta),
		snap:   snap,
		logger: logger,
		width:  int(snap.CanvasW),
		height: int(snap.CanvasH),
	}
}

// Update handles input and advances one frame while the game is running.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	for _, action := range g.pressedActions() {
		g.apply(action)
	}
	for _, p := range g.clicks() {
		g.apply(input.ClickAction(g.engine.Snapshot(), p[0], p[1]))
	}

	if g.engine.IsOver() {
		return nil
	}

	snap, err := g.engine.Frame(g.clock.Delta(time.Now()))
	if err != nil {
		g.logger.Warn("frame skipped", "error", err)
	}
	g.snap = snap
	if snap.Over {
		g.logger.Info("game over", "score", snap.DisplayScore(), "flips", snap.Flips)
	}
	return nil
}

func (g *Game) pressedActions() []input.Action {
	var actions []input.Action
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		actions = append(actions, input.ActionFlip)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		actions = append(actions, input.ActionRestart)
	}
	return actions
}

// clicks returns the canvas positions of mouse presses and new touches.
func (g *Game) clicks() [][2]float64 {
	var points [][2]float64
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		points = append(points, [2]float64{float64(x), float64(y)})
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		points = append(points, [2]float64{float64(x), float64(y)})
	}
	return points
}

func (g *Game) apply(action input.Action) {
	switch input.Apply(g.engine, action) {
	case input.OutcomeRestarted:
		g.logger.Debug("game restarted")
		g.clock.Reset()
		g.snap = g.engine.Snapshot()
	case input.OutcomeFlipped:
		g.snap = g.engine.Snapshot()
	}
}

// Draw clears the canvas and draws the last snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	snap := g.snap

	w, h := float32(snap.CanvasW), float32(snap.CanvasH)
	vector.StrokeRect(screen, 1, 1, w-2, h-2, 2, rgba(core.ColorBorder), false)

	if !snap.Over {
		fillRect(screen, snap.Player, core.ColorPlayer)
	}
	for _, o := range snap.Obstacles {
		fillRect(screen, o.Rect(), core.ColorObstacle)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", snap.DisplayScore()), 10, 10)

	if snap.Over {
		g.drawGameOver(screen, snap)
	}
}

func (g *Game) drawGameOver(screen *ebiten.Image, snap engine.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, float32(snap.CanvasW), float32(snap.CanvasH), dimOverlay, false)

	printCentered(screen, "Game Over", snap.CanvasW/2, snap.CanvasH*0.3)
	printCentered(screen, fmt.Sprintf("Score: %d", snap.DisplayScore()), snap.CanvasW/2, snap.CanvasH*0.45)

	btn := core.RestartButton(snap.CanvasW, snap.CanvasH)
	fillRect(screen, btn, core.ColorGray)
	vector.StrokeRect(screen, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), 2,
		rgba(core.ColorBorder), false)
	cx, cy := btn.Center()
	printCentered(screen, "Restart", cx, cy)
}

func fillRect(screen *ebiten.Image, r core.Rect, c core.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(c), false)
}

func printCentered(screen *ebiten.Image, text string, cx, cy float64) {
	x := int(cx) - len(text)*glyphW/2
	y := int(cy) - glyphH/2
	ebitenutil.DebugPrintAt(screen, text, x, y)
}

// Layout returns the fixed logical canvas size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it is closed.
func Run(eng *engine.Engine, opts Options) error {
	game := NewGame(eng, opts)

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	title := opts.Title
	if title == "" {
		title = "Gravity Flip"
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(int(float64(game.width)*scale), int(float64(game.height)*scale))
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
