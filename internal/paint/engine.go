// Package paint is the pixel-art drawing core: color math, the square grid
// model, flood fill and the tool state machine. It has no UI or I/O
// dependencies; views drive it through Engine and listen to its events.
package paint

import (
	"fmt"
)

// Config holds the initial engine state.
type Config struct {
	Size       int  // grid is Size×Size
	PaintColor RGB  // foreground color
	Background RGB  // color of unpainted cells
	GridLines  bool // gridlines shown
	Tool       Tool // initially active tool
	ShadeStep  int  // per-channel step for Lighten/Darken
}

// DefaultConfig returns the stock engine configuration.
func DefaultConfig() Config {
	return Config{
		Size:       16,
		PaintColor: Black,
		Background: White,
		GridLines:  true,
		Tool:       ToolPaint,
		ShadeStep:  LightenStep,
	}
}

// Result describes the outcome of a single Dispatch.
type Result struct {
	Tool     Tool // tool that handled the event
	Resolved bool // the cell ref resolved and the tool ran
	Changed  int  // number of cells whose paint state changed
}

// Engine owns the grid, the tool selection and the colors of one drawing
// session. It is not safe for concurrent use; a session drives it from a
// single event loop.
type Engine struct {
	grid       *Grid
	tool       Tool
	previous   Tool
	paintColor RGB
	background RGB
	gridLines  bool
	shadeStep  int
	pointer    PointerState
	observer   Observer
}

// NewEngine creates an engine from cfg. pointer may be nil, in which case
// DragOver events never act. observer may be nil.
func NewEngine(cfg Config, pointer PointerState, observer Observer) (*Engine, error) {
	grid, err := NewGrid(cfg.Size)
	if err != nil {
		return nil, err
	}
	if !cfg.Tool.Valid() {
		return nil, fmt.Errorf("paint: invalid initial tool %d", cfg.Tool)
	}
	step := cfg.ShadeStep
	if step <= 0 {
		step = LightenStep
	}

	return &Engine{
		grid:       grid,
		tool:       cfg.Tool,
		previous:   ToolPaint,
		paintColor: cfg.PaintColor,
		background: cfg.Background,
		gridLines:  cfg.GridLines,
		shadeStep:  step,
		pointer:    pointer,
		observer:   observer,
	}, nil
}

// SetObserver replaces the notification callback.
func (e *Engine) SetObserver(o Observer) {
	e.observer = o
}

func (e *Engine) emit(ev Event) {
	if e.observer != nil {
		e.observer(ev)
	}
}

// Grid exposes the grid for reading. Callers must not mutate it directly.
func (e *Engine) Grid() *Grid {
	return e.grid
}

// Ref returns the cell reference for c in the current grid.
func (e *Engine) Ref(c Coord) (CellRef, error) {
	return e.grid.Ref(c)
}

// Tool returns the active tool.
func (e *Engine) Tool() Tool {
	return e.tool
}

// PreviousTool returns the tool Picker will return to.
func (e *Engine) PreviousTool() Tool {
	return e.previous
}

// PaintColor returns the current foreground color.
func (e *Engine) PaintColor() RGB {
	return e.paintColor
}

// Background returns the color unpainted cells show.
func (e *Engine) Background() RGB {
	return e.background
}

// GridLinesVisible reports whether gridlines are shown.
func (e *Engine) GridLinesVisible() bool {
	return e.gridLines
}

// EffectiveColor returns the color shown at c.
func (e *Engine) EffectiveColor(c Coord) RGB {
	return e.grid.EffectiveColor(c, e.background)
}

// SelectTool activates t. The outgoing tool is remembered as the previous
// tool unless it is Picker, so re-selecting Picker never loses the tool
// Picker returns to.
func (e *Engine) SelectTool(t Tool) {
	if !t.Valid() {
		return
	}
	if e.tool != ToolPicker {
		e.previous = e.tool
	}
	e.tool = t
	e.emit(ToolChanged{Tool: e.tool, Previous: e.previous})
}

// SetPaintColor sets the foreground color.
func (e *Engine) SetPaintColor(c RGB) {
	e.setPaintColor(c, SourceInput)
}

// SetPaintColorString parses s and sets the foreground color. On error the
// paint color is unchanged.
func (e *Engine) SetPaintColorString(s string) error {
	c, err := ParseColor(s)
	if err != nil {
		return err
	}
	e.setPaintColor(c, SourceInput)
	return nil
}

func (e *Engine) setPaintColor(c RGB, src ColorSource) {
	e.paintColor = c
	e.emit(PaintColorChanged{Color: c, Source: src})
}

// SetBackground sets the color unpainted cells show.
func (e *Engine) SetBackground(c RGB) {
	e.background = c
}

// SetBackgroundString parses s and sets the background. On error the
// background is unchanged.
func (e *Engine) SetBackgroundString(s string) error {
	c, err := ParseColor(s)
	if err != nil {
		return err
	}
	e.background = c
	return nil
}

// Resize discards the grid and builds an unpainted n×n one. Tool and paint
// color are kept. A non-positive n is rejected and the grid is kept.
func (e *Engine) Resize(n int) error {
	if err := e.grid.Resize(n); err != nil {
		return err
	}
	e.emit(GridRebuilt{Size: n})
	return nil
}

// ClearAll unpaints every cell without resizing. It returns the number of
// cells cleared.
func (e *Engine) ClearAll() int {
	painted := e.grid.PaintedCoords()
	e.grid.ClearAll()
	for _, c := range painted {
		e.emit(CellChanged{At: c})
	}
	return len(painted)
}

// ToggleGridLines flips gridline visibility and returns the new state.
func (e *Engine) ToggleGridLines() bool {
	e.gridLines = !e.gridLines
	e.emit(GridLinesToggled{Visible: e.gridLines})
	return e.gridLines
}

// Dispatch applies the active tool to the cell behind ref. DragOver only
// acts while the view reports the primary button held. A ref that does not
// resolve in the current grid is ignored.
func (e *Engine) Dispatch(ref CellRef, kind EventKind) Result {
	res := Result{Tool: e.tool}

	if kind == DragOver && (e.pointer == nil || !e.pointer.PrimaryHeld()) {
		return res
	}

	at, err := e.grid.IndexOf(ref)
	if err != nil {
		return res
	}

	d := &dispatcher{e: e, at: at}
	e.tool.Visit(d)

	res.Resolved = true
	res.Changed = d.changed
	return res
}

// dispatcher applies one tool to one cell.
type dispatcher struct {
	e       *Engine
	at      Coord
	changed int
}

var _ ToolVisitor = (*dispatcher)(nil)

func (d *dispatcher) Paint() {
	d.set(d.e.paintColor)
}

func (d *dispatcher) Lighten() {
	d.shade(d.e.shadeStep)
}

func (d *dispatcher) Darken() {
	d.shade(-d.e.shadeStep)
}

// shade leaves unpainted cells alone.
func (d *dispatcher) shade(amount int) {
	cell, err := d.e.grid.CellAt(d.at)
	if err != nil || !cell.Painted {
		return
	}
	d.set(Shade(cell.Color, amount))
}

func (d *dispatcher) Erase() {
	cell, err := d.e.grid.CellAt(d.at)
	if err != nil || !cell.Painted {
		return
	}
	if err := d.e.grid.ClearColor(d.at); err != nil {
		return
	}
	d.changed++
	d.e.emit(CellChanged{At: d.at})
}

func (d *dispatcher) Fill() {
	e := d.e
	d.changed += floodFill(e.grid, d.at, e.paintColor, e.background, func(c Coord) {
		e.emit(CellChanged{At: c, Color: e.paintColor, Painted: true})
	})
}

// Picker samples the effective color, then hands control back to the tool
// that was active before Picker.
func (d *dispatcher) Picker() {
	e := d.e
	e.setPaintColor(e.grid.EffectiveColor(d.at, e.background), SourcePicker)
	e.SelectTool(e.previous)
}

// set paints the cell and reports a change only when its state differs.
func (d *dispatcher) set(c RGB) {
	cell, err := d.e.grid.CellAt(d.at)
	if err != nil {
		return
	}
	if cell.Painted && cell.Color == c {
		return
	}
	if err := d.e.grid.SetColor(d.at, c); err != nil {
		return
	}
	d.changed++
	d.e.emit(CellChanged{At: d.at, Color: c, Painted: true})
}
