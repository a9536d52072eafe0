package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gravflip/internal/core"
	"github.com/vovakirdan/gravflip/internal/engine"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	ObstacleChar = '▓'
)

// Smallest terminal area the canvas can be drawn in.
const (
	minViewW = 20
	minViewH = 8
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
}

// Viewport maps the logical canvas onto the inside of the border drawn on a
// Screen.
type Viewport struct {
	X, Y    int // Top-left cell of the canvas area
	W, H    int // Canvas area size in cells
	CanvasW float64
	CanvasH float64
}

// NewViewport fits a canvas of the given logical size inside a bordered
// screen of w x h cells.
func NewViewport(w, h int, canvasW, canvasH float64) Viewport {
	return Viewport{X: 1, Y: 1, W: w - 2, H: h - 2, CanvasW: canvasW, CanvasH: canvasH}
}

// Fits reports whether the viewport is large enough to draw the game.
func (v Viewport) Fits() bool {
	return v.W >= minViewW-2 && v.H >= minViewH-2
}

func (v Viewport) scaleX() float64 { return float64(v.W) / v.CanvasW }
func (v Viewport) scaleY() float64 { return float64(v.H) / v.CanvasH }

// Cells converts a logical rectangle to a cell rectangle. Anything with a
// positive size covers at least one cell.
func (v Viewport) Cells(r core.Rect) (x, y, w, h int) {
	x, w = span(r.X, r.Right(), v.scaleX())
	y, h = span(r.Y, r.Bottom(), v.scaleY())
	return v.X + x, v.Y + y, w, h
}

// ButtonCells returns the cells the restart button occupies. The box is at
// least three rows tall so the label fits between its borders. Drawing and
// click hit-testing both use this rectangle.
func (v Viewport) ButtonCells() (x, y, w, h int) {
	x, y, w, h = v.clip(v.Cells(core.RestartButton(v.CanvasW, v.CanvasH)))
	return v.clip(x, y, w, core.Max(h, 3))
}

// OnButton reports whether a cell lies inside the restart button.
func (v Viewport) OnButton(cellX, cellY int) bool {
	x, y, w, h := v.ButtonCells()
	return cellX >= x && cellX < x+w && cellY >= y && cellY < y+h
}

// Row returns the screen row for a logical y coordinate.
func (v Viewport) Row(y float64) int {
	return v.Y + int(math.Floor(y*v.scaleY()))
}

func span(a, b, scale float64) (start, length int) {
	start = int(math.Floor(a * scale))
	end := int(math.Ceil(b * scale))
	if end <= start {
		end = start + 1
	}
	return start, end - start
}

// clip limits a cell rectangle to the viewport so shapes never paint over
// the border.
func (v Viewport) clip(x, y, w, h int) (int, int, int, int) {
	x0, y0 := core.Max(x, v.X), core.Max(y, v.Y)
	x1, y1 := core.Min(x+w, v.X+v.W), core.Min(y+h, v.Y+v.H)
	return x0, y0, x1 - x0, y1 - y0
}

// DrawSnapshot clears dst and draws one frame: border, obstacles, player,
// score and, once the game is over, the restart overlay.
func DrawSnapshot(dst *core.Screen, snap engine.Snapshot) {
	dst.Clear()

	vp := NewViewport(dst.Width(), dst.Height(), snap.CanvasW, snap.CanvasH)
	if !vp.Fits() {
		dst.DrawText(0, 0, "Terminal too small", core.ColorRed)
		return
	}

	dst.DrawBox(0, 0, dst.Width(), dst.Height(), core.ColorBorder)

	for _, o := range snap.Obstacles {
		x, y, w, h := vp.clip(vp.Cells(o.Rect()))
		dst.FillRect(x, y, w, h, ObstacleChar, core.ColorObstacle)
	}

	if !snap.Over {
		x, y, w, h := vp.clip(vp.Cells(snap.Player))
		dst.FillRect(x, y, w, h, PlayerChar, core.ColorPlayer)
	}

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", snap.DisplayScore()), core.ColorScore)

	if snap.Over {
		drawGameOver(dst, vp, snap)
	}
}

// drawGameOver draws the title, final score and restart button.
func drawGameOver(dst *core.Screen, vp Viewport, snap engine.Snapshot) {
	dst.DrawTextCentered(vp.Row(snap.CanvasH*0.3), "GAME OVER", core.ColorOverlay)
	dst.DrawTextCentered(vp.Row(snap.CanvasH*0.45), fmt.Sprintf("Score: %d", snap.DisplayScore()), core.ColorOverlay)

	x, y, w, h := vp.ButtonCells()
	dst.FillRect(x, y, w, h, ' ', core.ColorDefault)
	dst.DrawBox(x, y, w, h, core.ColorBorder)

	label := "Restart"
	dst.DrawText(x+(w-len(label))/2, y+h/2, label, core.ColorScore)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
