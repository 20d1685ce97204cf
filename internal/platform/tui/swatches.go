package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sketchpad/internal/paint"
	"github.com/vovakirdan/tui-sketchpad/internal/storage"
)

// Swatch picker layout constants
const (
	minWidthForPreview = 60 // Minimum width to show the color preview
	previewWidth       = 14 // Width of the color preview block
	maxSwatches        = 50 // Max swatches to load
)

// SwatchesKeyMap defines the key bindings for the swatch picker.
type SwatchesKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SwatchesKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k SwatchesKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Back, k.Quit},
	}
}

// DefaultSwatchesKeyMap returns default key bindings.
func DefaultSwatchesKeyMap() SwatchesKeyMap {
	return SwatchesKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "use color"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "s"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SwatchesModel lists recently used paint colors and lets the user pick one.
type SwatchesModel struct {
	swatches    []storage.Swatch
	loadErr     error
	table       table.Model
	help        help.Model
	keys        SwatchesKeyMap
	styles      styles
	width       int
	height      int
	chosen      string
	quitting    bool
	goingBack   bool
	showPreview bool
}

// NewSwatchesModel creates a swatch picker backed by store.
func NewSwatchesModel(store UsageStore, st styles, width, height int) SwatchesModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := SwatchesModel{
		keys:        DefaultSwatchesKeyMap(),
		help:        h,
		styles:      st,
		width:       width,
		height:      height,
		showPreview: width >= minWidthForPreview,
	}

	m.table = m.createTable()
	m.swatches, m.loadErr = store.RecentSwatches(maxSwatches)
	m.updateTableRows()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *SwatchesModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Color", Width: 9},
		{Title: "Uses", Width: 6},
		{Title: "Last used", Width: 14},
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows updates the table with current swatches.
func (m *SwatchesModel) updateTableRows() {
	rows := make([]table.Row, len(m.swatches))
	for i, sw := range m.swatches {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			sw.Hex,
			fmt.Sprintf("%d", sw.Uses),
			sw.LastUsed.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the swatch picker.
func (m SwatchesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the swatch picker.
func (m SwatchesModel) Update(msg tea.Msg) (SwatchesModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Select):
			if i := m.table.Cursor(); i >= 0 && i < len(m.swatches) {
				m.chosen = m.swatches[i].Hex
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showPreview = m.width >= minWidthForPreview
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the swatch picker.
func (m SwatchesModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("RECENT COLORS"))
	b.WriteString("\n\n")

	frame := m.styles.r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	content := frame.Render(m.renderTableContent())
	if m.showPreview && len(m.swatches) > 0 {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, "  ", m.renderPreview())
	}
	b.WriteString(content)

	b.WriteString("\n")
	b.WriteString(m.styles.help.Render(m.help.View(m.keys)))

	return b.String()
}

// renderPreview renders a block of the highlighted color.
func (m SwatchesModel) renderPreview() string {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.swatches) {
		return ""
	}
	c, err := paint.ParseColor(m.swatches[i].Hex)
	if err != nil {
		return ""
	}
	line := strings.Repeat(" ", previewWidth)
	block := make([]string, 5)
	for j := range block {
		block[j] = line
	}
	block[2] = fmt.Sprintf("%-*s", previewWidth, "  "+c.Hex())
	return m.styles.chip(c, strings.Join(block, "\n"))
}

// renderTableContent renders the table or empty message.
func (m SwatchesModel) renderTableContent() string {
	empty := m.styles.r.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.loadErr != nil {
		return empty.Render("Could not load colors:\n" + m.loadErr.Error())
	}
	if len(m.swatches) == 0 {
		return empty.Render("No colors recorded yet.\nPick a color to start a history!")
	}

	return m.table.View()
}

// Chosen returns the picked color, or "" while none is picked.
func (m SwatchesModel) Chosen() string {
	return m.chosen
}

// IsGoingBack returns true if user wants to go back to the canvas.
func (m SwatchesModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m SwatchesModel) IsQuitting() bool {
	return m.quitting
}
