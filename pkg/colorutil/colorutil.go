// Package colorutil provides shared color utilities for the floor planner.
package colorutil

import (
	"image/color"
)

// Common colors used throughout the application.
var (
	Black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red    = color.RGBA{R: 220, G: 53, B: 69, A: 255}
	Green  = color.RGBA{R: 40, G: 167, B: 69, A: 255}
	Blue   = color.RGBA{R: 0, G: 123, B: 255, A: 255}
	Yellow = color.RGBA{R: 255, G: 193, B: 7, A: 255}
	Gray   = color.RGBA{R: 108, G: 117, B: 125, A: 255}
	Orange = color.RGBA{R: 253, G: 126, B: 20, A: 255}
	Purple = color.RGBA{R: 111, G: 66, B: 193, A: 255}
	Teal   = color.RGBA{R: 32, G: 201, B: 151, A: 255}
)

// Blend mixes fg over bg at the given opacity (0..1).
func Blend(bg, fg color.RGBA, opacity float64) color.RGBA {
	if opacity <= 0 {
		return bg
	}
	if opacity >= 1 {
		return fg
	}
	inv := 1 - opacity
	return color.RGBA{
		R: uint8(float64(fg.R)*opacity + float64(bg.R)*inv),
		G: uint8(float64(fg.G)*opacity + float64(bg.G)*inv),
		B: uint8(float64(fg.B)*opacity + float64(bg.B)*inv),
		A: 255,
	}
}

// Lighten moves a color toward white by the given fraction (0..1).
func Lighten(c color.RGBA, fraction float64) color.RGBA {
	return Blend(c, White, fraction)
}
