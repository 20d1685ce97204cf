package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sketchpad/internal/paint"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestToolForKey(t *testing.T) {
	keys := DefaultEditorKeyMap()

	tests := []struct {
		key    string
		want   paint.Tool
		wantOK bool
	}{
		{"p", paint.ToolPaint, true},
		{"l", paint.ToolLighten, true},
		{"d", paint.ToolDarken, true},
		{"e", paint.ToolErase, true},
		{"f", paint.ToolFill, true},
		{"i", paint.ToolPicker, true},
		{"x", 0, false},
		{"1", 0, false},
	}

	for _, tt := range tests {
		got, ok := keys.ToolForKey(runes(tt.key))
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ToolForKey(%q) = %v, %v; want %v, %v", tt.key, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestToolbarKeysMatchBindings(t *testing.T) {
	keys := DefaultEditorKeyMap()
	for _, tool := range paint.Tools() {
		got, ok := keys.ToolForKey(runes(toolKey(tool)))
		if !ok || got != tool {
			t.Errorf("toolbar key %q selects %v, %v; want %v", toolKey(tool), got, ok, tool)
		}
	}
}

func TestPaletteSlot(t *testing.T) {
	tests := []struct {
		msg    tea.KeyMsg
		want   int
		wantOK bool
	}{
		{runes("1"), 1, true},
		{runes("5"), 5, true},
		{runes("9"), 9, true},
		{runes("0"), 0, false},
		{runes("a"), 0, false},
		{runes("12"), 0, false},
		{tea.KeyMsg{Type: tea.KeyTab}, 0, false},
	}

	for _, tt := range tests {
		got, ok := PaletteSlot(tt.msg)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("PaletteSlot(%q) = %d, %v; want %d, %v", tt.msg.String(), got, ok, tt.want, tt.wantOK)
		}
	}
}
