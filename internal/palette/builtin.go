package palette

import "github.com/vovakirdan/tui-sketchpad/internal/paint"

func init() {
	Register(Palette{
		ID:    "classic",
		Title: "Classic",
		Colors: hexes(
			"#000000", "#ffffff", "#ff0000", "#ff8800", "#ffee00",
			"#00c040", "#0080ff", "#8040ff", "#ff40a0",
		),
	})

	Register(Palette{
		ID:    "pico8",
		Title: "PICO-8",
		Colors: hexes(
			"#000000", "#1d2b53", "#7e2553", "#008751", "#ab5236",
			"#5f574f", "#c2c3c7", "#fff1e8", "#ff004d",
		),
	})

	Register(Palette{
		ID:     "gameboy",
		Title:  "Game Boy",
		Colors: hexes("#0f380f", "#306230", "#8bac0f", "#9bbc0f"),
	})

	Register(Palette{
		ID:    "grayscale",
		Title: "Grayscale",
		Colors: hexes(
			"#000000", "#202020", "#404040", "#606060", "#808080",
			"#a0a0a0", "#c0c0c0", "#e0e0e0", "#ffffff",
		),
	})
}

func hexes(values ...string) []paint.RGB {
	out := make([]paint.RGB, len(values))
	for i, v := range values {
		out[i] = paint.MustParseColor(v)
	}
	return out
}
