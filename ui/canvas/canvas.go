// Package canvas provides the floor-plan canvas widget with pan, zoom,
// and tool-driven editing.
package canvas

import (
	"image"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"floor-planner/internal/editor"
	"floor-planner/pkg/geometry"
)

// FloorCanvas adapts the headless editor core to a Fyne widget. It owns no
// editing state of its own: pointer events are forwarded to the editor and
// the raster redraws from the editor's current state.
type FloorCanvas struct {
	widget.BaseWidget

	editor *editor.Editor
	raster *fynecanvas.Raster

	onZoomChange func(zoom float64)
}

// New creates a canvas widget for the given editor.
func New(ed *editor.Editor) *FloorCanvas {
	fc := &FloorCanvas{editor: ed}
	fc.raster = fynecanvas.NewRaster(fc.draw)
	fc.raster.ScaleMode = fynecanvas.ImageScalePixels
	fc.ExtendBaseWidget(fc)
	return fc
}

// Editor returns the underlying editor core.
func (fc *FloorCanvas) Editor() *editor.Editor {
	return fc.editor
}

// OnZoomChange sets a callback fired after wheel zooming.
func (fc *FloorCanvas) OnZoomChange(cb func(zoom float64)) {
	fc.onZoomChange = cb
}

// draw is the raster generator; it renders the editor state at the
// requested pixel size.
func (fc *FloorCanvas) draw(w, h int) image.Image {
	fc.editor.Resize(geometry.Size{Width: float64(w), Height: float64(h)})
	return fc.editor.Render(w, h)
}

// Redraw requests a fresh render of the current editor state. All state
// changes funnel through this single redraw trigger.
func (fc *FloorCanvas) Redraw() {
	fc.raster.Refresh()
}

// MouseDown implements desktop.Mouseable.
func (fc *FloorCanvas) MouseDown(ev *desktop.MouseEvent) {
	fc.editor.PointerDown(eventPos(ev))
	fc.Redraw()
}

// MouseUp implements desktop.Mouseable.
func (fc *FloorCanvas) MouseUp(*desktop.MouseEvent) {
	fc.editor.PointerUp()
	fc.Redraw()
}

// MouseIn implements desktop.Hoverable.
func (fc *FloorCanvas) MouseIn(*desktop.MouseEvent) {}

// MouseMoved implements desktop.Hoverable. Fyne keeps delivering moves
// while a button is held, so drags and pans arrive here too.
func (fc *FloorCanvas) MouseMoved(ev *desktop.MouseEvent) {
	fc.editor.PointerMove(eventPos(ev))
	fc.Redraw()
}

// MouseOut implements desktop.Hoverable. Leaving the canvas terminates any
// in-flight gesture exactly like a pointer release, without committing.
func (fc *FloorCanvas) MouseOut() {
	fc.editor.PointerLeave()
	fc.Redraw()
}

// Scrolled zooms with the mouse wheel.
func (fc *FloorCanvas) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY > 0 {
		fc.editor.ZoomIn()
	} else if ev.Scrolled.DY < 0 {
		fc.editor.ZoomOut()
	}
	fc.Redraw()
	if fc.onZoomChange != nil {
		fc.onZoomChange(fc.editor.Camera().Zoom)
	}
}

// CreateRenderer implements fyne.Widget.
func (fc *FloorCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(fc.raster)
}

// MinSize keeps the canvas usable inside splits and borders.
func (fc *FloorCanvas) MinSize() fyne.Size {
	return fyne.NewSize(200, 200)
}

func eventPos(ev *desktop.MouseEvent) geometry.Point2D {
	return geometry.Point2D{X: float64(ev.Position.X), Y: float64(ev.Position.Y)}
}
