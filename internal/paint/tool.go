package paint

import (
	"fmt"
	"strings"
)

// Tool is the active pointer tool. Exactly one is active at a time.
type Tool uint8

const (
	ToolPaint Tool = iota
	ToolLighten
	ToolDarken
	ToolErase
	ToolFill
	ToolPicker
	toolCount // sentinel for iteration
)

// ToolVisitor has one method per tool. Adding a tool means adding a method
// here, which every visitor must then implement.
type ToolVisitor interface {
	Paint()
	Lighten()
	Darken()
	Erase()
	Fill()
	Picker()
}

// Visit calls the visitor method matching t.
func (t Tool) Visit(v ToolVisitor) {
	switch t {
	case ToolPaint:
		v.Paint()
	case ToolLighten:
		v.Lighten()
	case ToolDarken:
		v.Darken()
	case ToolErase:
		v.Erase()
	case ToolFill:
		v.Fill()
	case ToolPicker:
		v.Picker()
	default:
		panic(fmt.Sprintf("paint: unknown tool %d", t))
	}
}

// String returns the lowercase tool name.
func (t Tool) String() string {
	switch t {
	case ToolPaint:
		return "paint"
	case ToolLighten:
		return "lighten"
	case ToolDarken:
		return "darken"
	case ToolErase:
		return "erase"
	case ToolFill:
		return "fill"
	case ToolPicker:
		return "picker"
	default:
		return "unknown"
	}
}

// Valid reports whether t names a real tool.
func (t Tool) Valid() bool {
	return t < toolCount
}

// ParseTool converts a tool name to a Tool.
func ParseTool(s string) (Tool, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, t := range Tools() {
		if t.String() == name {
			return t, nil
		}
	}
	return ToolPaint, fmt.Errorf("paint: unknown tool %q", s)
}

// Tools returns all tools in toolbar order.
func Tools() []Tool {
	tools := make([]Tool, 0, toolCount)
	for t := Tool(0); t < toolCount; t++ {
		tools = append(tools, t)
	}
	return tools
}

// EventKind distinguishes a fresh press from a drag across a cell.
type EventKind uint8

const (
	PrimaryDown EventKind = iota // primary button pressed on the cell
	DragOver                     // pointer entered the cell
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case PrimaryDown:
		return "PrimaryDown"
	case DragOver:
		return "DragOver"
	default:
		return "Unknown"
	}
}

// PointerState is owned by the view. The engine only consults it to decide
// whether a DragOver should act.
type PointerState interface {
	PrimaryHeld() bool
}
