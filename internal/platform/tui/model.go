package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-sketchpad/internal/config"
	"github.com/vovakirdan/tui-sketchpad/internal/paint"
	"github.com/vovakirdan/tui-sketchpad/internal/palette"
	"github.com/vovakirdan/tui-sketchpad/internal/storage"
)

// UsageStore records color and session usage. *storage.Store implements it.
type UsageStore interface {
	RecordSwatch(hex string) error
	RecentSwatches(limit int) ([]storage.Swatch, error)
	SaveSession(st storage.SessionStats) (int64, error)
}

var _ UsageStore = (*storage.Store)(nil)

// Options configures a new editor model.
type Options struct {
	Config    config.EditorConfig
	Palette   palette.Palette
	Store     UsageStore         // may be nil
	Logger    *log.Logger        // may be nil
	Renderer  *lipgloss.Renderer // may be nil
	User      string
	SessionID string // generated when empty
	Width     int
	Height    int
}

// Model is the Bubble Tea model for the drawing editor.
type Model struct {
	engine  *paint.Engine
	pointer *Pointer
	events  *eventQueue
	cfg     config.EditorConfig
	palette palette.Palette
	store   UsageStore
	logger  *log.Logger
	styles  styles
	layout  Layout
	keys    EditorKeyMap
	help    help.Model
	input   textinput.Model

	swatches *SwatchesModel     // non-nil while the swatch picker is open
	menu     *PaletteMenuModel // non-nil while the palette menu is open

	cursor    paint.Coord
	editing   bool // color input focused
	status    string
	statusErr bool
	statusSeq int

	stats   storage.SessionStats
	started time.Time
	saved   bool

	width    int
	height   int
	quitting bool
}

// NewModel creates a new editor model.
func NewModel(opts Options) (Model, error) {
	ec, err := opts.Config.EngineConfig()
	if err != nil {
		return Model{}, err
	}

	pointer := &Pointer{}
	events := &eventQueue{}
	engine, err := paint.NewEngine(ec, pointer, events.push)
	if err != nil {
		return Model{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sessionID := opts.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	ti := textinput.New()
	ti.Prompt = "color: "
	ti.Placeholder = "#rrggbb or rgb(r, g, b)"
	ti.CharLimit = 32
	ti.Width = 28

	h := help.New()
	h.ShowAll = false
	h.Width = opts.Width

	return Model{
		engine:  engine,
		pointer: pointer,
		events:  events,
		cfg:     opts.Config,
		palette: opts.Palette,
		store:   opts.Store,
		logger:  logger,
		styles:  newStyles(opts.Renderer, opts.Config.UI),
		layout:  NewLayout(ec.Size, opts.Config.UI.CellWidth, ec.GridLines),
		keys:    DefaultEditorKeyMap(),
		help:    h,
		input:   ti,
		stats: storage.SessionStats{
			SessionID: sessionID,
			User:      opts.User,
			GridSize:  ec.Size,
		},
		started: time.Now(),
		width:   opts.Width,
		height:  opts.Height,
	}, nil
}

// Engine exposes the underlying engine.
func (m Model) Engine() *paint.Engine {
	return m.engine
}

// Stats returns the usage counters of this session so far.
func (m Model) Stats() storage.SessionStats {
	st := m.stats
	st.GridSize = m.engine.Grid().Size()
	st.Duration = int(time.Since(m.started).Seconds())
	return st
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("session started", "session", m.stats.SessionID, "size", m.engine.Grid().Size())
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.swatches != nil {
			sw, cmd := m.swatches.Update(msg)
			m.swatches = &sw
			return m, cmd
		}
		if m.menu != nil {
			menu, cmd := m.menu.Update(msg)
			m.menu = &menu
			return m, cmd
		}
		return m, nil

	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil

	case tea.MouseMsg:
		if m.swatches != nil || m.menu != nil || m.editing {
			return m, nil
		}
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.swatches != nil {
			return m.updateSwatches(msg)
		}
		if m.menu != nil {
			return m.updateMenu(msg)
		}
		if m.editing {
			return m.handleInput(msg)
		}
		return m.handleKey(msg)
	}

	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input on the canvas.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if t, ok := m.keys.ToolForKey(msg); ok {
		m.engine.SelectTool(t)
		cmd := m.drain()
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.finish()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Color):
		m.editing = true
		m.input.SetValue("")
		cmd := m.input.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Palette):
		slot, _ := PaletteSlot(msg)
		cmd := m.selectSlot(slot)
		return m, cmd

	case key.Matches(msg, m.keys.Grow):
		cmd := m.resize(1)
		return m, cmd

	case key.Matches(msg, m.keys.Shrink):
		cmd := m.resize(-1)
		return m, cmd

	case key.Matches(msg, m.keys.Clear):
		n := m.engine.ClearAll()
		cmd := tea.Batch(m.drain(), m.flash(fmt.Sprintf("cleared %d cells", n), false))
		return m, cmd

	case key.Matches(msg, m.keys.Grid):
		m.engine.ToggleGridLines()
		cmd := m.drain()
		return m, cmd

	case key.Matches(msg, m.keys.Swatches):
		cmd := m.openSwatches()
		return m, cmd

	case key.Matches(msg, m.keys.Palettes):
		menu := NewPaletteMenuModel(m.palette.ID, m.styles, m.width)
		m.menu = &menu
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)

	case key.Matches(msg, m.keys.Apply):
		cmd := m.apply(m.cursor, paint.PrimaryDown)
		return m, cmd

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleInput processes keys while the color input is focused.
func (m Model) handleInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeInput()
		return m, nil

	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		m.closeInput()
		if err := m.engine.SetPaintColorString(value); err != nil {
			m.logger.Debug("rejected color input", "value", value, "error", err)
			cmd := m.flash(fmt.Sprintf("invalid color %q", value), true)
			return m, cmd
		}
		cmd := m.drain()
		return m, cmd

	case tea.KeyCtrlC:
		m.finish()
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.editing = false
	m.input.Blur()
	m.input.SetValue("")
}

// handleMouse maps mouse events onto the canvas, toolbar and palette.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionRelease:
		m.pointer.release()
		return m, nil

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.pointer.press()

		if c, ok := m.layout.CellAt(msg.X, msg.Y); ok {
			m.pointer.enter(c)
			m.cursor = c
			cmd := m.apply(c, paint.PrimaryDown)
			return m, cmd
		}

		switch msg.Y {
		case toolbarRow:
			if i := toolbarLabels().hit(msg.X); i >= 0 {
				m.engine.SelectTool(paint.Tools()[i])
				cmd := m.drain()
				return m, cmd
			}
		case paletteRow:
			if i := paletteLabels(m.palette).hit(msg.X); i >= 0 {
				cmd := m.selectSlot(i + 1)
				return m, cmd
			}
		}
		return m, nil

	case tea.MouseActionMotion:
		c, ok := m.layout.CellAt(msg.X, msg.Y)
		if !ok {
			m.pointer.leave()
			return m, nil
		}
		if !m.pointer.enter(c) {
			return m, nil
		}
		if m.pointer.PrimaryHeld() {
			m.cursor = c
		}
		cmd := m.apply(c, paint.DragOver)
		return m, cmd
	}

	return m, nil
}

// apply dispatches the active tool at c and updates the session counters.
func (m *Model) apply(c paint.Coord, kind paint.EventKind) tea.Cmd {
	ref, err := m.engine.Ref(c)
	if err != nil {
		return nil
	}

	res := m.engine.Dispatch(ref, kind)
	if res.Resolved {
		switch res.Tool {
		case paint.ToolFill:
			m.stats.Fills++
		case paint.ToolPicker:
			m.stats.Picks++
		}
		if res.Changed > 0 {
			m.stats.Strokes++
		}
	}
	return m.drain()
}

func (m *Model) selectSlot(slot int) tea.Cmd {
	c, ok := m.palette.Color(slot)
	if !ok {
		return nil
	}
	m.engine.SetPaintColor(c)
	return m.drain()
}

func (m *Model) resize(dir int) tea.Cmd {
	size := m.engine.Grid().Size()
	next := m.cfg.Canvas.StepSize(size, dir)
	if next == size {
		return m.flash(fmt.Sprintf("grid size limit %d", size), false)
	}
	if err := m.engine.Resize(next); err != nil {
		m.logger.Warn("resize rejected", "size", next, "error", err)
		return m.flash(err.Error(), true)
	}
	return m.drain()
}

func (m *Model) moveCursor(dr, dc int) {
	size := m.engine.Grid().Size()
	m.cursor.Row = min(max(m.cursor.Row+dr, 0), size-1)
	m.cursor.Col = min(max(m.cursor.Col+dc, 0), size-1)
}

// drain reacts to the notifications the engine emitted since the last call.
func (m *Model) drain() tea.Cmd {
	var cmds []tea.Cmd
	for _, ev := range m.events.take() {
		switch ev := ev.(type) {
		case paint.CellChanged:
			m.stats.CellsChanged++

		case paint.ToolChanged:
			m.logger.Debug("tool changed", "tool", ev.Tool, "previous", ev.Previous)

		case paint.PaintColorChanged:
			m.recordSwatch(ev.Color)
			if ev.Source == paint.SourcePicker {
				cmds = append(cmds, m.flash("picked "+ev.Color.Hex(), false))
			}

		case paint.GridRebuilt:
			m.layout.Size = ev.Size
			m.stats.GridSize = ev.Size
			m.moveCursor(0, 0)
			m.logger.Debug("grid rebuilt", "size", ev.Size)
			cmds = append(cmds, m.flash(fmt.Sprintf("grid %dx%d", ev.Size, ev.Size), false))

		case paint.GridLinesToggled:
			m.layout.GridLines = ev.Visible
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) recordSwatch(c paint.RGB) {
	if m.store == nil {
		return
	}
	if err := m.store.RecordSwatch(c.Hex()); err != nil {
		m.logger.Warn("could not record swatch", "color", c.Hex(), "error", err)
	}
}

// flash shows a status message and schedules its removal.
func (m *Model) flash(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusErr = isErr
	return expireStatusCmd(m.statusSeq, statusTimeout)
}

// finish saves the session statistics once.
func (m *Model) finish() {
	if m.saved {
		return
	}
	m.saved = true
	st := m.Stats()
	m.logger.Debug("session finished",
		"session", st.SessionID,
		"strokes", st.Strokes,
		"cells", st.CellsChanged,
	)
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveSession(st); err != nil {
		m.logger.Warn("could not save session stats", "error", err)
	}
}

func (m *Model) openSwatches() tea.Cmd {
	if m.store == nil {
		return m.flash("no usage database, recent colors unavailable", true)
	}
	sw := NewSwatchesModel(m.store, m.styles, m.width, m.height)
	m.swatches = &sw
	return nil
}

// updateSwatches routes keys to the swatch picker until it closes.
func (m Model) updateSwatches(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sw, cmd := m.swatches.Update(msg)

	if sw.IsQuitting() {
		m.swatches = nil
		m.finish()
		m.quitting = true
		return m, tea.Quit
	}
	if hex := sw.Chosen(); hex != "" {
		m.swatches = nil
		if err := m.engine.SetPaintColorString(hex); err != nil {
			cmd = m.flash(err.Error(), true)
			return m, cmd
		}
		cmd = m.drain()
		return m, cmd
	}
	if sw.IsGoingBack() {
		m.swatches = nil
		return m, nil
	}

	m.swatches = &sw
	return m, cmd
}

// updateMenu routes keys to the palette menu until it closes.
func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	menu, cmd := m.menu.Update(msg)

	switch {
	case menu.IsQuitting():
		m.menu = nil
		m.finish()
		m.quitting = true
		return m, tea.Quit
	case menu.Selected() != nil:
		m.menu = nil
		m.palette = *menu.Selected()
		m.logger.Debug("palette changed", "palette", m.palette.ID)
		cmd = m.flash("palette "+m.palette.Title, false)
		return m, cmd
	case menu.IsGoingBack():
		m.menu = nil
		return m, nil
	}

	m.menu = &menu
	return m, cmd
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.swatches != nil {
		return m.swatches.View()
	}
	if m.menu != nil {
		return m.menu.View()
	}

	var b strings.Builder

	b.WriteString(renderToolbar(m.engine, m.styles))
	b.WriteString("\n")
	b.WriteString(renderPalette(m.palette, m.styles))
	b.WriteString("\n")
	b.WriteString(renderCanvas(m.engine, m.layout, m.styles, &m.cursor))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")

	if m.editing {
		b.WriteString(m.input.View())
	} else {
		b.WriteString(m.styles.help.Render(m.help.View(m.keys)))
	}

	return b.String()
}

func (m Model) renderStatus() string {
	e := m.engine
	grid := "on"
	if !e.GridLinesVisible() {
		grid = "off"
	}
	size := e.Grid().Size()

	parts := []string{
		m.styles.title.Render(e.Tool().String()),
		m.styles.chip(e.PaintColor(), " "+e.PaintColor().Hex()+" "),
		m.styles.status.Render(fmt.Sprintf("%dx%d  grid %s", size, size, grid)),
	}

	if m.width > 0 && m.layout.Width()+2 > m.width {
		parts = append(parts, m.styles.errStatus.Render("canvas wider than terminal"))
	}
	if m.status != "" {
		style := m.styles.status
		if m.statusErr {
			style = m.styles.errStatus
		}
		parts = append(parts, style.Render(m.status))
	}
	return strings.Join(parts, "  ")
}

// Run starts the Bubble Tea program with an editor model.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Report motion while a button is held
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	// Sessions ended by a signal still record their stats.
	if m, ok := finalModel.(Model); ok {
		m.finish()
	}
	return nil
}
