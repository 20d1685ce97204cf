package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sketchpad/internal/config"
	"github.com/vovakirdan/tui-sketchpad/internal/paint"
	"github.com/vovakirdan/tui-sketchpad/internal/palette"
)

// styles holds the per-renderer lipgloss styles. Over SSH every session has
// its own renderer so color profiles follow the client terminal.
type styles struct {
	r           *lipgloss.Renderer
	gridLine    lipgloss.Style
	gridColor   lipgloss.Color
	borderColor lipgloss.Color
	tool        lipgloss.Style
	activeTool  lipgloss.Style
	returnTool  lipgloss.Style
	status      lipgloss.Style
	errStatus   lipgloss.Style
	help        lipgloss.Style
	title       lipgloss.Style
}

func newStyles(r *lipgloss.Renderer, ui config.UIConfig) styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	gridColor := lipgloss.Color(ui.GridLineColor)
	return styles{
		r:           r,
		gridLine:    r.NewStyle().Foreground(gridColor),
		gridColor:   gridColor,
		borderColor: lipgloss.Color(ui.BorderColor),
		tool:        r.NewStyle().Foreground(lipgloss.Color("245")),
		activeTool: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")),
		returnTool: r.NewStyle().Foreground(lipgloss.Color("245")).Underline(true),
		status:     r.NewStyle().Foreground(lipgloss.Color("252")),
		errStatus:  r.NewStyle().Foreground(lipgloss.Color("9")),
		help:       r.NewStyle().Foreground(lipgloss.Color("241")),
		title:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
	}
}

// fill returns a style whose background is c.
func (s styles) fill(c paint.RGB) lipgloss.Style {
	return s.r.NewStyle().Background(lipgloss.Color(c.Hex()))
}

// chip renders text on c with a foreground that stays readable.
func (s styles) chip(c paint.RGB, text string) string {
	fg := paint.White
	if c.Luminance() > 0.5 {
		fg = paint.Black
	}
	return s.fill(c).Foreground(lipgloss.Color(fg.Hex())).Render(text)
}

// toolbarLabels returns the toolbar strip in Tools() order.
func toolbarLabels() strip {
	tools := paint.Tools()
	labels := make(strip, len(tools))
	for i, t := range tools {
		labels[i] = fmt.Sprintf(" %s %s ", toolKey(t), t)
	}
	return labels
}

func toolKey(t paint.Tool) string {
	if t == paint.ToolPicker {
		return "i"
	}
	return t.String()[:1]
}

// paletteLabels returns one label per palette slot: the slot number, a gap
// and a two-column swatch.
func paletteLabels(p palette.Palette) strip {
	labels := make(strip, len(p.Colors))
	for i := range p.Colors {
		labels[i] = fmt.Sprintf("%d   ", i+1)
	}
	return labels
}

func renderToolbar(e *paint.Engine, st styles) string {
	labels := toolbarLabels()
	parts := make([]string, len(labels))
	for i, t := range paint.Tools() {
		switch {
		case t == e.Tool():
			parts[i] = st.activeTool.Render(labels[i])
		case e.Tool() == paint.ToolPicker && t == e.PreviousTool():
			parts[i] = st.returnTool.Render(labels[i])
		default:
			parts[i] = st.tool.Render(labels[i])
		}
	}
	return strings.Join(parts, " ")
}

func renderPalette(p palette.Palette, st styles) string {
	parts := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		parts[i] = st.tool.Render(fmt.Sprintf("%d ", i+1)) + st.fill(c).Render("  ")
	}
	return strings.Join(parts, " ")
}

// renderCanvas draws the grid inside its frame. The frame takes the
// gridline color while gridlines are shown and the border color otherwise,
// so edge cells appear to touch the frame.
func renderCanvas(e *paint.Engine, l Layout, st styles, cursor *paint.Coord) string {
	var sb strings.Builder
	size := e.Grid().Size()

	for row := range size {
		if row > 0 {
			sb.WriteByte('\n')
			if l.GridLines {
				sb.WriteString(separatorRow(size, l.CellWidth, st))
				sb.WriteByte('\n')
			}
		}
		if l.GridLines {
			sb.WriteString(gridRow(e, l, st, row, cursor))
		} else {
			sb.WriteString(runRow(e, l, st, row, cursor))
		}
	}

	frame := st.gridColor
	if !l.GridLines {
		frame = st.borderColor
	}
	return st.r.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(frame).
		Render(sb.String())
}

func separatorRow(size, cellWidth int, st styles) string {
	seg := strings.Repeat("─", cellWidth)
	parts := make([]string, size)
	for i := range parts {
		parts[i] = seg
	}
	return st.gridLine.Render(strings.Join(parts, "┼"))
}

func gridRow(e *paint.Engine, l Layout, st styles, row int, cursor *paint.Coord) string {
	var sb strings.Builder
	sep := st.gridLine.Render("│")
	for col := range e.Grid().Size() {
		if col > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(cellText(e, l, st, paint.At(row, col), cursor))
	}
	return sb.String()
}

// runRow groups consecutive cells of the same color to minimize ANSI
// escape sequences.
func runRow(e *paint.Engine, l Layout, st styles, row int, cursor *paint.Coord) string {
	var sb strings.Builder
	size := e.Grid().Size()
	blank := strings.Repeat(" ", l.CellWidth)

	col := 0
	for col < size {
		at := paint.At(row, col)
		if cursor != nil && *cursor == at {
			sb.WriteString(cellText(e, l, st, at, cursor))
			col++
			continue
		}

		start := e.EffectiveColor(at)
		n := 0
		for col < size {
			at = paint.At(row, col)
			if e.EffectiveColor(at) != start || (cursor != nil && *cursor == at) {
				break
			}
			n++
			col++
		}
		sb.WriteString(st.fill(start).Render(strings.Repeat(blank, n)))
	}
	return sb.String()
}

func cellText(e *paint.Engine, l Layout, st styles, at paint.Coord, cursor *paint.Coord) string {
	c := e.EffectiveColor(at)
	if cursor != nil && *cursor == at {
		return st.chip(c, cursorGlyph(l.CellWidth))
	}
	return st.fill(c).Render(strings.Repeat(" ", l.CellWidth))
}

func cursorGlyph(width int) string {
	if width < 2 {
		return "+"
	}
	return "[" + strings.Repeat(" ", width-2) + "]"
}
