// Package panels provides the side panel of the main window.
package panels

import (
	"fmt"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"floor-planner/internal/app"
	"floor-planner/internal/editor"
	floorcanvas "floor-planner/ui/canvas"
)

// toolOrder maps the radio group entries to editor tools.
var toolOrder = []editor.Tool{
	editor.ToolSelect,
	editor.ToolShelf,
	editor.ToolDropoff,
	editor.ToolRobotStation,
	editor.ToolPickupSelect,
	editor.ToolErase,
}

var toolLabels = map[editor.Tool]string{
	editor.ToolSelect:       "Select / Pan",
	editor.ToolShelf:        "Place Shelf",
	editor.ToolDropoff:      "Place Drop-off",
	editor.ToolRobotStation: "Place Robot Station",
	editor.ToolPickupSelect: "Toggle Pickup",
	editor.ToolErase:        "Erase",
}

// SidePanel hosts the tool selector and an environment summary.
type SidePanel struct {
	state  *app.State
	canvas *floorcanvas.FloorCanvas

	tools    *widget.RadioGroup
	readOnly *widget.Check
	graph    *widget.Check
	summary  *widget.Label
	pickups  *widget.Label

	content fyne.CanvasObject
}

// New creates the side panel and subscribes it to state events.
func New(state *app.State, canvas *floorcanvas.FloorCanvas) *SidePanel {
	sp := &SidePanel{state: state, canvas: canvas}

	options := make([]string, len(toolOrder))
	for i, t := range toolOrder {
		options[i] = toolLabels[t]
	}
	sp.tools = widget.NewRadioGroup(options, sp.onToolSelected)
	sp.tools.SetSelected(toolLabels[editor.ToolSelect])

	sp.readOnly = widget.NewCheck("Read-only", func(on bool) {
		canvas.Editor().SetReadOnly(on)
		if on {
			sp.tools.Disable()
		} else {
			sp.tools.Enable()
		}
		canvas.Redraw()
	})

	sp.graph = widget.NewCheck("Show navigation graph", func(on bool) {
		state.SetGraph(state.Graph, on)
	})

	sp.summary = widget.NewLabel("")
	sp.pickups = widget.NewLabel("")
	sp.refresh()

	state.On(app.EventElementsChanged, func(interface{}) { sp.refresh() })
	state.On(app.EventPickupSelectionChanged, func(interface{}) { sp.refresh() })
	state.On(app.EventGraphChanged, func(interface{}) {
		sp.graph.SetChecked(state.ShowGraph)
	})

	sp.content = container.NewVBox(
		widget.NewLabelWithStyle("Tools", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		sp.tools,
		widget.NewSeparator(),
		sp.readOnly,
		sp.graph,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Environment", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		sp.summary,
		sp.pickups,
	)
	return sp
}

// Container returns the panel for embedding in layouts.
func (sp *SidePanel) Container() fyne.CanvasObject {
	return sp.content
}

// SelectTool updates the radio group, which in turn activates the tool on
// the editor. Used when restoring the tool preference.
func (sp *SidePanel) SelectTool(t editor.Tool) {
	if label, ok := toolLabels[t]; ok {
		sp.tools.SetSelected(label)
	}
}

func (sp *SidePanel) onToolSelected(label string) {
	for _, t := range toolOrder {
		if toolLabels[t] == label {
			sp.canvas.Editor().SetTool(t)
			return
		}
	}
}

// refresh rebuilds the summary labels from the current state.
func (sp *SidePanel) refresh() {
	e := sp.state.Elements
	sp.summary.SetText(fmt.Sprintf(
		"%d×%d grid\n%d shelves\n%d drop-offs\n%d robot stations\n%d pickups\n%d waypoints",
		sp.state.Grid.Width, sp.state.Grid.Height,
		len(e.Shelves), len(e.Dropoffs), len(e.RobotStations),
		len(e.PickupPoints), len(e.NavigationPoints)))

	if len(sp.state.SelectedPickups) == 0 {
		sp.pickups.SetText("No pickups selected")
		return
	}
	ids := make([]string, 0, len(sp.state.SelectedPickups))
	for id := range sp.state.SelectedPickups {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	sp.pickups.SetText("Selected: " + strings.Join(ids, ", "))
}
