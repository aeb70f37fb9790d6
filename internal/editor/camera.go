// Package editor implements the interactive floor-plan editor core: the
// camera, the pointer-to-grid coordinate mapper, the tool state machine,
// and the software renderer. The package is headless; ui/canvas adapts it
// to a Fyne widget.
package editor

import (
	"floor-planner/pkg/geometry"
)

const (
	minZoom  = 0.5
	maxZoom  = 2.5
	zoomStep = 0.1

	// minCellPx is the smallest on-screen cell edge at zoom 1.
	minCellPx = 25.0
)

// Camera is the pan offset plus zoom factor controlling the affine map
// from grid space to canvas space. It is owned exclusively by the Editor.
type Camera struct {
	Pan  geometry.Point2D
	Zoom float64
}

// NewCamera returns a camera at the origin with zoom 1.
func NewCamera() Camera {
	return Camera{Zoom: 1.0}
}

// SetZoom sets the zoom level, clamped to the supported range.
func (c *Camera) SetZoom(zoom float64) {
	if zoom < minZoom {
		zoom = minZoom
	}
	if zoom > maxZoom {
		zoom = maxZoom
	}
	c.Zoom = zoom
}

// ZoomIn increases the zoom level by one step.
func (c *Camera) ZoomIn() {
	c.SetZoom(c.Zoom + zoomStep)
}

// ZoomOut decreases the zoom level by one step.
func (c *Camera) ZoomOut() {
	c.SetZoom(c.Zoom - zoomStep)
}

// PanBy shifts the pan offset by the given pixel delta.
func (c *Camera) PanBy(dx, dy float64) {
	c.Pan.X += dx
	c.Pan.Y += dy
}
