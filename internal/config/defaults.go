package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-sketchpad/internal/paint"
)

//go:embed defaults/sketchpad.yaml
var defaultEditorYAML []byte

// DefaultEditorConfig returns the default editor configuration.
func DefaultEditorConfig() EditorConfig {
	d := paint.DefaultConfig()
	return EditorConfig{
		Canvas: CanvasConfig{
			Size:       d.Size,
			MinSize:    1,
			MaxSize:    64,
			SizeStep:   1,
			Background: d.Background.Hex(),
			GridLines:  d.GridLines,
		},
		Paint: PaintConfig{
			Color:     d.PaintColor.Hex(),
			ShadeStep: d.ShadeStep,
			Tool:      d.Tool.String(),
			Palette:   "classic",
		},
		UI: UIConfig{
			GridLineColor: "#c9c9c9",
			BorderColor:   "#161f6d",
			CellWidth:     2,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultEditorYAML
}
