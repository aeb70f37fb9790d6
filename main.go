// Package main provides the entry point for the warehouse floor planner.
package main

import (
	"os"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/charmbracelet/log"

	"floor-planner/internal/app"
	"floor-planner/internal/editor"
	"floor-planner/internal/version"
	"floor-planner/ui/mainwindow"
	"floor-planner/ui/prefs"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           logLevel(),
	})
	logger.Info("starting floor planner", "version", version.Version)

	grid, elems, graph := app.DemoEnvironment()
	state := app.NewState(logger, grid, elems)
	state.SetGraph(graph, false)

	ed := editor.New(grid)
	ed.SetElements(elems)
	ed.OnElementsChanged(state.SetElements)
	ed.OnPickupToggled(state.TogglePickup)

	appPrefs := prefs.Load()

	fa := fyneapp.New()
	win := mainwindow.New(fa, state, ed, appPrefs)
	win.Show()
	fa.Run()
}

func logLevel() log.Level {
	if os.Getenv("FLOORPLANNER_DEBUG") != "" {
		return log.DebugLevel
	}
	return log.InfoLevel
}
