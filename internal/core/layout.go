package core

// Overlay button dimensions in logical canvas units.
const (
	ButtonWidth  = 160
	ButtonHeight = 40
)

// RestartButton returns the restart button's rectangle for a canvas of the
// given size. It sits centred, slightly below the middle, under the
// "Game Over" title and the final score.
func RestartButton(canvasW, canvasH float64) Rect {
	return NewRect(
		(canvasW-ButtonWidth)/2,
		canvasH/2+ButtonHeight/2,
		ButtonWidth,
		ButtonHeight,
	)
}
