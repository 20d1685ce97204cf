package paint

// Event is a notification from the engine to the view.
type Event interface {
	paintEvent()
}

// Observer receives engine notifications synchronously, in mutation order.
type Observer func(Event)

// CellChanged is emitted for every cell whose paint state changed.
type CellChanged struct {
	At      Coord
	Color   RGB  // meaningful only when Painted
	Painted bool // false when the cell was cleared
}

func (CellChanged) paintEvent() {}

// GridRebuilt is emitted after a resize replaced the grid.
type GridRebuilt struct {
	Size int
}

func (GridRebuilt) paintEvent() {}

// ToolChanged is emitted on every tool selection, including the automatic
// return from Picker.
type ToolChanged struct {
	Tool     Tool
	Previous Tool
}

func (ToolChanged) paintEvent() {}

// ColorSource says who changed the paint color.
type ColorSource uint8

const (
	SourceInput ColorSource = iota // color input widget or palette
	SourcePicker                   // eyedropper sample
)

// PaintColorChanged is emitted when the paint color changes.
type PaintColorChanged struct {
	Color  RGB
	Source ColorSource
}

func (PaintColorChanged) paintEvent() {}

// GridLinesToggled is emitted when gridline visibility flips.
type GridLinesToggled struct {
	Visible bool
}

func (GridLinesToggled) paintEvent() {}
