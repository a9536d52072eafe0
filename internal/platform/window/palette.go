package window

import (
	"image/color"

	"github.com/vovakirdan/gravflip/internal/core"
)

var (
	background = color.RGBA{A: 0xff}
	dimOverlay = color.RGBA{A: 0xb3}
)

// palette maps core.Color to RGBA.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	core.ColorCyan:          {G: 0xff, B: 0xff, A: 0xff},
	core.ColorMagenta:       {R: 0xff, B: 0xff, A: 0xff},
	core.ColorWhite:         {R: 0xee, G: 0xee, B: 0xee, A: 0xff},
	core.ColorGray:          {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	core.ColorBrightCyan:    {R: 0x66, G: 0xff, B: 0xff, A: 0xff},
	core.ColorBrightMagenta: {R: 0xff, G: 0x66, B: 0xff, A: 0xff},
	core.ColorBrightWhite:   {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	core.ColorRed:           {R: 0xff, G: 0x40, B: 0x40, A: 0xff},
}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}
