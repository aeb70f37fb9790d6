package editor

// Tool represents the current interaction tool.
type Tool int

const (
	// ToolSelect pans the view; it never mutates elements.
	ToolSelect Tool = iota
	ToolShelf
	ToolDropoff
	ToolRobotStation
	ToolPickupSelect
	ToolErase
)

// String returns the tool name for logs and status display.
func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "select"
	case ToolShelf:
		return "shelf"
	case ToolDropoff:
		return "dropoff"
	case ToolRobotStation:
		return "robot_station"
	case ToolPickupSelect:
		return "pickup_select"
	case ToolErase:
		return "erase"
	}
	return "unknown"
}

// ToolFromName returns the tool with the given String name, used to
// restore the tool preference.
func ToolFromName(name string) (Tool, bool) {
	for t := ToolSelect; t <= ToolErase; t++ {
		if t.String() == name {
			return t, true
		}
	}
	return ToolSelect, false
}

// Drags reports whether the tool opens a drag session on pointer-down.
func (t Tool) Drags() bool {
	switch t {
	case ToolShelf, ToolDropoff, ToolRobotStation, ToolErase:
		return true
	}
	return false
}
