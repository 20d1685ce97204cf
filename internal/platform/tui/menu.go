package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sketchpad/internal/palette"
)

// PaletteMenuKeyMap defines the key bindings for the palette menu.
type PaletteMenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// DefaultPaletteMenuKeyMap returns default key bindings.
func DefaultPaletteMenuKeyMap() PaletteMenuKeyMap {
	return PaletteMenuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k", "w")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Back:   key.NewBinding(key.WithKeys("esc", "b", "tab")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
	}
}

// PaletteMenuModel is the picker for the palette bound to the number keys.
type PaletteMenuModel struct {
	items     []palette.Palette
	cursor    int
	width     int
	styles    styles
	keys      PaletteMenuKeyMap
	quitting  bool
	goingBack bool
	selected  *palette.Palette // Set when user selects a palette
}

// NewPaletteMenuModel creates a palette menu with the cursor on current.
func NewPaletteMenuModel(current string, st styles, width int) PaletteMenuModel {
	infos := palette.List()
	items := make([]palette.Palette, 0, len(infos))
	cursor := 0

	for _, info := range infos {
		p, err := palette.Get(info.ID)
		if err != nil {
			continue
		}
		if p.ID == current {
			cursor = len(items)
		}
		items = append(items, p)
	}

	return PaletteMenuModel{
		items:  items,
		cursor: cursor,
		width:  width,
		styles: st,
		keys:   DefaultPaletteMenuKeyMap(),
	}
}

// Init initializes the menu model.
func (m PaletteMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m PaletteMenuModel) Update(msg tea.Msg) (PaletteMenuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Select):
			if len(m.items) > 0 {
				selected := m.items[m.cursor]
				m.selected = &selected
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	return m, nil
}

// View renders the menu.
func (m PaletteMenuModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.styles.title.Render("  P A L E T T E S  "), m.width, len("  P A L E T T E S  ")))
	b.WriteString("\n\n")

	for i, p := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		label := fmt.Sprintf("%s%-12s ", cursor, p.Title)
		line := label + renderPalette(p, m.styles)
		b.WriteString(centerText(line, m.width, len(label)+len(strings.Join(paletteLabels(p), " "))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Esc: Back  |  Q: Quit"
	b.WriteString(centerText(m.styles.help.Render(controls), m.width, len(controls)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected palette, or nil if none selected.
func (m PaletteMenuModel) Selected() *palette.Palette {
	return m.selected
}

// IsGoingBack returns true if user closed the menu without choosing.
func (m PaletteMenuModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user requested to quit.
func (m PaletteMenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text of the given visible width within width columns.
func centerText(text string, width, textWidth int) string {
	if textWidth >= width {
		return text
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text
}
