package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sketchpad/internal/paint"
)

// EditorKeyMap defines the key bindings for the editor.
type EditorKeyMap struct {
	Paint   key.Binding
	Lighten key.Binding
	Darken  key.Binding
	Erase   key.Binding
	Fill    key.Binding
	Picker  key.Binding

	Color    key.Binding
	Palette  key.Binding
	Grow     key.Binding
	Shrink   key.Binding
	Clear    key.Binding
	Grid     key.Binding
	Swatches key.Binding
	Palettes key.Binding

	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Apply key.Binding

	Help key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k EditorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Color, k.Palette, k.Grow, k.Shrink, k.Clear, k.Grid, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k EditorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Paint, k.Lighten, k.Darken, k.Erase, k.Fill, k.Picker},
		{k.Color, k.Palette, k.Palettes, k.Swatches},
		{k.Grow, k.Shrink, k.Clear, k.Grid},
		{k.Up, k.Down, k.Left, k.Right, k.Apply},
		{k.Help, k.Quit},
	}
}

// DefaultEditorKeyMap returns default key bindings.
func DefaultEditorKeyMap() EditorKeyMap {
	return EditorKeyMap{
		Paint:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "paint")),
		Lighten: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "lighten")),
		Darken:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "darken")),
		Erase:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "erase")),
		Fill:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fill")),
		Picker:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "picker")),

		Color: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "color"),
		),
		Palette: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "palette"),
		),
		Grow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "bigger grid"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "smaller grid"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear"),
		),
		Grid: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "gridlines"),
		),
		Swatches: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "recent colors"),
		),
		Palettes: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "palettes"),
		),

		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "cursor up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "cursor down")),
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "cursor left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "cursor right")),
		Apply: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "apply tool")),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ToolForKey returns the tool a key selects.
func (k EditorKeyMap) ToolForKey(msg tea.KeyMsg) (paint.Tool, bool) {
	bindings := []struct {
		b    key.Binding
		tool paint.Tool
	}{
		{k.Paint, paint.ToolPaint},
		{k.Lighten, paint.ToolLighten},
		{k.Darken, paint.ToolDarken},
		{k.Erase, paint.ToolErase},
		{k.Fill, paint.ToolFill},
		{k.Picker, paint.ToolPicker},
	}
	for _, tb := range bindings {
		if key.Matches(msg, tb.b) {
			return tb.tool, true
		}
	}
	return 0, false
}

// PaletteSlot returns the 1-based palette slot of a number key.
func PaletteSlot(msg tea.KeyMsg) (int, bool) {
	s := msg.String()
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '0'), true
}
