package core

import "image/color"

// Color is a foreground color for a screen cell. Front-ends map it to
// ANSI codes (terminal) or RGBA (window).
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorOrange
	ColorYellow
	ColorGreen
	ColorCyan
	ColorMagenta
	ColorWhite
	ColorBrightWhite
	ColorGray
)

// palette holds the RGBA used by pixel front-ends for each Color.
var palette = map[Color]color.RGBA{
	ColorDefault:     {200, 200, 200, 255},
	ColorRed:         {220, 50, 47, 255},
	ColorOrange:      {255, 140, 0, 255},
	ColorYellow:      {240, 200, 40, 255},
	ColorGreen:       {80, 200, 80, 255},
	ColorCyan:        {40, 190, 210, 255},
	ColorMagenta:     {200, 70, 200, 255},
	ColorWhite:       {220, 220, 220, 255},
	ColorBrightWhite: {255, 255, 255, 255},
	ColorGray:        {128, 128, 128, 255},
}

// ToRGBA returns the color as 8-bit RGBA. Unknown colors map to ColorDefault.
func (c Color) ToRGBA() color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[ColorDefault]
}
