package editor

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"floor-planner/internal/floorplan"
	"floor-planner/pkg/colorutil"
	"floor-planner/pkg/geometry"
)

// Render colors. Entities keep distinct hues so the floor plan reads at a
// glance; unselected pickups are dimmed toward the background.
var (
	backgroundColor = color.RGBA{R: 248, G: 249, B: 250, A: 255}
	gridLineColor   = color.RGBA{R: 222, G: 226, B: 230, A: 255}

	shelfFillColor  = colorutil.Blue
	shelfLabelColor = colorutil.White

	dropoffColor = colorutil.Green
	stationColor = colorutil.Purple
	navColor     = colorutil.Gray

	pickupSelectedColor   = colorutil.Orange
	pickupUnselectedColor = colorutil.Lighten(colorutil.Orange, 0.6)

	graphEdgeColor = colorutil.Teal
	graphNodeColor = colorutil.Purple

	previewValidColor   = colorutil.Green
	previewInvalidColor = colorutil.Red
)

// Entity sizes relative to the smaller cell dimension.
const (
	dropoffRadiusFactor = 0.3
	pickupRadiusFactor  = 0.2
	stationHalfFactor   = 0.35
	navRadiusFactor     = 0.1
)

// Frame is the complete input of one render pass: grid, elements, camera
// (inside the mapper), selection, optional graph overlay, and the active
// drag session. Rendering is a pure function of the Frame; rendering the
// same Frame twice produces identical images.
type Frame struct {
	Mapper    Mapper
	Elements  floorplan.Elements
	Pickups   []floorplan.PickupPoint
	Selected  floorplan.IDSet
	Graph     *floorplan.Graph
	ShowGraph bool
	Session   *DragSession
}

// Render draws the frame into a fresh RGBA image of the given pixel size.
// Draw order, bottom to top: grid lines, shelves, dropoffs, pickups,
// robot stations, navigation points, graph overlay, drag preview.
func (f Frame) Render(w, h int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	fillRect(out, 0, 0, w, h, backgroundColor)

	if !f.Mapper.Ready() {
		return out
	}

	f.drawGrid(out)
	f.drawShelves(out)
	f.drawDropoffs(out)
	f.drawPickups(out)
	f.drawStations(out)
	f.drawNavPoints(out)
	if f.ShowGraph {
		f.drawGraph(out)
	}
	if f.Session != nil {
		f.drawPreview(out)
	}
	return out
}

// minCell returns the smaller on-screen cell dimension.
func (f Frame) minCell() float64 {
	cell := f.Mapper.CellSize()
	return math.Min(cell.Width, cell.Height)
}

func (f Frame) drawGrid(out *image.RGBA) {
	grid := f.Mapper.Grid
	for gx := 0; gx <= grid.Width; gx++ {
		top := f.Mapper.GridToCanvas(geometry.Point2D{X: float64(gx)})
		bottom := f.Mapper.GridToCanvas(geometry.Point2D{X: float64(gx), Y: float64(grid.Height)})
		drawLine(out, int(top.X), int(top.Y), int(bottom.X), int(bottom.Y), gridLineColor, 1)
	}
	for gy := 0; gy <= grid.Height; gy++ {
		left := f.Mapper.GridToCanvas(geometry.Point2D{Y: float64(gy)})
		right := f.Mapper.GridToCanvas(geometry.Point2D{X: float64(grid.Width), Y: float64(gy)})
		drawLine(out, int(left.X), int(left.Y), int(right.X), int(right.Y), gridLineColor, 1)
	}
}

func (f Frame) drawShelves(out *image.RGBA) {
	for _, shelf := range f.Elements.Shelves {
		r := shelf.Rect()
		tl := f.Mapper.GridToCanvas(geometry.Point2D{X: r.X, Y: r.Y})
		br := f.Mapper.GridToCanvas(geometry.Point2D{X: r.X + r.Width, Y: r.Y + r.Height})
		fillRect(out, int(tl.X), int(tl.Y), int(br.X), int(br.Y), shelfFillColor)

		center := f.Mapper.GridToCanvas(r.Center())
		drawLabel(out, shelf.ID, int(center.X), int(center.Y), shelfLabelColor)
	}
}

func (f Frame) drawDropoffs(out *image.RGBA) {
	radius := dropoffRadiusFactor * f.minCell()
	for _, d := range f.Elements.Dropoffs {
		p := f.Mapper.GridToCanvas(d.Pos)
		fillCircle(out, int(p.X), int(p.Y), radius, dropoffColor)
		drawLabel(out, d.ID, int(p.X), int(p.Y-radius)-8, colorutil.Black)
	}
}

func (f Frame) drawPickups(out *image.RGBA) {
	radius := pickupRadiusFactor * f.minCell()
	for _, p := range f.Pickups {
		pos := f.Mapper.GridToCanvas(p.Pos)
		col := pickupUnselectedColor
		if f.Selected.Has(p.ID) {
			col = pickupSelectedColor
		}
		fillCircle(out, int(pos.X), int(pos.Y), radius, col)
	}
}

func (f Frame) drawStations(out *image.RGBA) {
	half := stationHalfFactor * f.minCell()
	for _, s := range f.Elements.RobotStations {
		p := f.Mapper.GridToCanvas(s.Pos)
		fillDiamond(out, int(p.X), int(p.Y), half, stationColor)

		label := s.ID
		if s.Robots > 0 {
			label = fmt.Sprintf("%s (%d)", s.ID, s.Robots)
		}
		drawLabel(out, label, int(p.X), int(p.Y-half)-8, colorutil.Black)
	}
}

func (f Frame) drawNavPoints(out *image.RGBA) {
	radius := navRadiusFactor * f.minCell()
	for _, n := range f.Elements.NavigationPoints {
		p := f.Mapper.GridToCanvas(n.Pos)
		fillCircle(out, int(p.X), int(p.Y), radius, navColor)
	}
}

func (f Frame) drawGraph(out *image.RGBA) {
	nodeRadius := navRadiusFactor * f.minCell() * 1.5

	for _, e := range f.Graph.Edges() {
		from, ok := f.Graph.NodePos(e.From)
		if !ok {
			continue
		}
		to, ok := f.Graph.NodePos(e.To)
		if !ok {
			continue
		}
		p1 := f.Mapper.GridToCanvas(from)
		p2 := f.Mapper.GridToCanvas(to)
		drawLine(out, int(p1.X), int(p1.Y), int(p2.X), int(p2.Y), graphEdgeColor, 2)

		mid := geometry.Point2D{X: (p1.X + p2.X) / 2, Y: (p1.Y + p2.Y) / 2}
		drawLabel(out, fmt.Sprintf("%g", e.Weight), int(mid.X), int(mid.Y), colorutil.Black)
	}

	for _, n := range f.Graph.Nodes() {
		p := f.Mapper.GridToCanvas(n.Pos)
		fillCircle(out, int(p.X), int(p.Y), nodeRadius, graphNodeColor)
	}
}

// drawPreview draws the active drag session as a dashed rectangle over the
// covered cells, stroke keyed to the validity flag, with a translucent
// fill when invalid.
func (f Frame) drawPreview(out *image.RGBA) {
	span := f.Session.CellSpan()
	tl := f.Mapper.GridToCanvas(geometry.Point2D{X: float64(span.X), Y: float64(span.Y)})
	br := f.Mapper.GridToCanvas(geometry.Point2D{X: float64(span.X + span.Width), Y: float64(span.Y + span.Height)})

	if !f.Session.Valid {
		blendRect(out, int(tl.X), int(tl.Y), int(br.X), int(br.Y), previewInvalidColor, 0.25)
		drawDashedRect(out, int(tl.X), int(tl.Y), int(br.X), int(br.Y), previewInvalidColor)
		return
	}
	drawDashedRect(out, int(tl.X), int(tl.Y), int(br.X), int(br.Y), previewValidColor)
}
