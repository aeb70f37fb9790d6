// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"floor-planner/internal/app"
	"floor-planner/internal/editor"
	"floor-planner/internal/version"
	floorcanvas "floor-planner/ui/canvas"
	"floor-planner/ui/panels"
	"floor-planner/ui/prefs"
)

const (
	prefKeyZoom         = "lastZoom"
	prefKeyTool         = "lastTool"
	prefKeyShowGraph    = "showGraph"
	prefKeyWindowWidth  = "windowWidth"
	prefKeyWindowHeight = "windowHeight"

	prefsAutosaveInterval = 30 * time.Second
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	state     *app.State
	prefs     *prefs.Prefs
	canvas    *floorcanvas.FloorCanvas
	sidePanel *panels.SidePanel
	statusBar *widget.Label
}

// New creates a new main window around the given state and editor.
func New(fyneApp fyne.App, state *app.State, ed *editor.Editor, appPrefs *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow(fmt.Sprintf("Warehouse Floor Planner v%s", version.Version))

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  appPrefs,
	}

	mw.canvas = floorcanvas.New(ed)
	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()
	mw.restorePreferences()

	win.SetCloseIntercept(func() {
		mw.savePreferences()
		fyneApp.Quit()
	})

	go mw.autosavePreferences()

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.sidePanel = panels.New(mw.state, mw.canvas)
	mw.statusBar = widget.NewLabel("Ready")

	toolbar := mw.createToolbar()

	canvasArea := container.NewBorder(
		toolbar, // top
		nil,     // bottom
		nil,     // left
		nil,     // right
		mw.canvas,
	)

	split := container.NewHSplit(
		mw.sidePanel.Container(),
		canvasArea,
	)
	split.SetOffset(0.22)

	content := container.NewBorder(
		nil,                               // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		split,
	)

	mw.SetContent(content)
}

// createToolbar creates the toolbar with zoom controls.
func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	zoomOutBtn := widget.NewButton("-", mw.onZoomOut)
	zoomInBtn := widget.NewButton("+", mw.onZoomIn)

	return container.NewHBox(
		widget.NewLabel("Zoom:"),
		zoomOutBtn,
		zoomInBtn,
	)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Quit", func() {
			mw.savePreferences()
			mw.app.Quit()
		}),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Zoom In", mw.onZoomIn),
		fyne.NewMenuItem("Zoom Out", mw.onZoomOut),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu))
}

// setupEventHandlers wires state events to the status bar and canvas.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventElementsChanged, func(interface{}) {
		mw.statusBar.SetText("Environment modified")
		mw.canvas.Redraw()
	})
	mw.state.On(app.EventPickupSelectionChanged, func(data interface{}) {
		if id, ok := data.(string); ok {
			mw.statusBar.SetText(fmt.Sprintf("Pickup %s toggled", id))
		}
		mw.canvas.Editor().SetSelectedPickups(mw.state.SelectedPickups)
		mw.canvas.Redraw()
	})
	mw.state.On(app.EventGraphChanged, func(interface{}) {
		mw.canvas.Editor().SetGraph(mw.state.Graph, mw.state.ShowGraph)
		mw.prefs.Set(prefKeyShowGraph, mw.state.ShowGraph)
		mw.canvas.Redraw()
	})
	mw.canvas.OnZoomChange(func(zoom float64) {
		mw.prefs.Set(prefKeyZoom, zoom)
		mw.statusBar.SetText(fmt.Sprintf("Zoom %.0f%%", zoom*100))
	})
}

func (mw *MainWindow) onZoomIn() {
	mw.canvas.Editor().ZoomIn()
	mw.canvas.Redraw()
	zoom := mw.canvas.Editor().Camera().Zoom
	mw.prefs.Set(prefKeyZoom, zoom)
	mw.statusBar.SetText(fmt.Sprintf("Zoom %.0f%%", zoom*100))
}

func (mw *MainWindow) onZoomOut() {
	mw.canvas.Editor().ZoomOut()
	mw.canvas.Redraw()
	zoom := mw.canvas.Editor().Camera().Zoom
	mw.prefs.Set(prefKeyZoom, zoom)
	mw.statusBar.SetText(fmt.Sprintf("Zoom %.0f%%", zoom*100))
}

// restorePreferences applies saved window and editor preferences.
func (mw *MainWindow) restorePreferences() {
	w := mw.prefs.Float(prefKeyWindowWidth, 1100)
	h := mw.prefs.Float(prefKeyWindowHeight, 720)
	mw.Resize(fyne.NewSize(float32(w), float32(h)))

	mw.canvas.Editor().SetZoom(mw.prefs.Float(prefKeyZoom, 1.0))
	if name := mw.prefs.String(prefKeyTool, ""); name != "" {
		if tool, ok := editor.ToolFromName(name); ok {
			mw.sidePanel.SelectTool(tool)
		}
	}
	if mw.prefs.Bool(prefKeyShowGraph, false) {
		mw.state.SetGraph(mw.state.Graph, true)
	}
}

// savePreferences records the current window and editor state and writes
// the preferences file.
func (mw *MainWindow) savePreferences() {
	size := mw.Canvas().Size()
	mw.prefs.Set(prefKeyWindowWidth, float64(size.Width))
	mw.prefs.Set(prefKeyWindowHeight, float64(size.Height))
	mw.prefs.Set(prefKeyZoom, mw.canvas.Editor().Camera().Zoom)
	mw.prefs.Set(prefKeyTool, mw.canvas.Editor().Tool().String())

	if err := mw.prefs.Save(); err != nil {
		mw.state.Logger().Warn("preferences not saved", "err", err)
	}
}

// autosavePreferences periodically flushes dirty preferences so a crash
// loses at most one interval of changes.
func (mw *MainWindow) autosavePreferences() {
	ticker := time.NewTicker(prefsAutosaveInterval)
	defer ticker.Stop()
	for range ticker.C {
		if !mw.prefs.Changed() {
			continue
		}
		if err := mw.prefs.Save(); err != nil {
			mw.state.Logger().Warn("preferences autosave failed", "err", err)
		}
	}
}
