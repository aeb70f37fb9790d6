package editor

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"floor-planner/pkg/colorutil"
)

// Pixel-level drawing primitives for the renderer. Everything clips
// against the output bounds; callers pass unclipped coordinates.

// fillRect fills the pixel rectangle [x1,x2) x [y1,y2).
func fillRect(out *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	b := out.Bounds()
	for y := y1; y < y2; y++ {
		if y < b.Min.Y || y >= b.Max.Y {
			continue
		}
		for x := x1; x < x2; x++ {
			if x >= b.Min.X && x < b.Max.X {
				out.SetRGBA(x, y, col)
			}
		}
	}
}

// blendRect blends col over the pixel rectangle at the given opacity.
func blendRect(out *image.RGBA, x1, y1, x2, y2 int, col color.RGBA, opacity float64) {
	b := out.Bounds()
	for y := y1; y < y2; y++ {
		if y < b.Min.Y || y >= b.Max.Y {
			continue
		}
		for x := x1; x < x2; x++ {
			if x >= b.Min.X && x < b.Max.X {
				out.SetRGBA(x, y, colorutil.Blend(out.RGBAAt(x, y), col, opacity))
			}
		}
	}
}

// drawLine draws a line between two points using Bresenham's algorithm.
func drawLine(out *image.RGBA, x1, y1, x2, y2 int, col color.RGBA, thickness int) {
	b := out.Bounds()

	dx := x2 - x1
	dy := y2 - y1
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		for t := -thickness / 2; t <= thickness/2; t++ {
			for s := -thickness / 2; s <= thickness/2; s++ {
				px, py := x1+s, y1+t
				if px >= b.Min.X && px < b.Max.X && py >= b.Min.Y && py < b.Max.Y {
					out.SetRGBA(px, py, col)
				}
			}
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// drawDashedRect draws a dashed rectangle outline. Dashing alternates on
// the pixel's position along each edge so the pattern is stable across
// redraws.
func drawDashedRect(out *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	const dash = 8
	b := out.Bounds()

	set := func(x, y int) {
		if x >= b.Min.X && x < b.Max.X && y >= b.Min.Y && y < b.Max.Y {
			out.SetRGBA(x, y, col)
		}
	}

	for x := x1; x <= x2; x++ {
		if (x-x1)%dash < dash/2 {
			set(x, y1)
			set(x, y2)
		}
	}
	for y := y1; y <= y2; y++ {
		if (y-y1)%dash < dash/2 {
			set(x1, y)
			set(x2, y)
		}
	}
}

// fillCircle fills a circle centered at (cx, cy).
func fillCircle(out *image.RGBA, cx, cy int, radius float64, col color.RGBA) {
	b := out.Bounds()
	r := int(radius + 1)
	r2 := radius * radius

	for y := cy - r; y <= cy+r; y++ {
		if y < b.Min.Y || y >= b.Max.Y {
			continue
		}
		for x := cx - r; x <= cx+r; x++ {
			if x < b.Min.X || x >= b.Max.X {
				continue
			}
			dx := float64(x - cx)
			dy := float64(y - cy)
			if dx*dx+dy*dy <= r2 {
				out.SetRGBA(x, y, col)
			}
		}
	}
}

// fillDiamond fills a diamond (rotated square) centered at (cx, cy) with
// the given half-diagonal.
func fillDiamond(out *image.RGBA, cx, cy int, half float64, col color.RGBA) {
	b := out.Bounds()
	r := int(half + 1)

	for y := cy - r; y <= cy+r; y++ {
		if y < b.Min.Y || y >= b.Max.Y {
			continue
		}
		for x := cx - r; x <= cx+r; x++ {
			if x < b.Min.X || x >= b.Max.X {
				continue
			}
			dx := float64(x - cx)
			dy := float64(y - cy)
			if dx < 0 {
				dx = -dx
			}
			if dy < 0 {
				dy = -dy
			}
			if dx+dy <= half {
				out.SetRGBA(x, y, col)
			}
		}
	}
}

// labelFace is the fixed-size face used for all canvas labels.
var labelFace = basicfont.Face7x13

// drawLabel draws text centered on (cx, cy).
func drawLabel(out *image.RGBA, text string, cx, cy int, col color.RGBA) {
	if text == "" {
		return
	}
	width := font.MeasureString(labelFace, text).Ceil()
	metrics := labelFace.Metrics()
	// Center vertically on the glyph box rather than the full line height.
	baseline := cy + metrics.Ascent.Ceil()/2

	d := font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(col),
		Face: labelFace,
		Dot:  fixed.P(cx-width/2, baseline),
	}
	d.DrawString(text)
}
