package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sketchpad/internal/palette"
)

var palettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "List all available palettes",
	Long:  `Shows the palettes that can be bound to the number keys 1-9.`,
	Args:  cobra.NoArgs,
	Run:   runPalettes,
}

func runPalettes(_ *cobra.Command, _ []string) {
	palettes := palette.List()

	if len(palettes) == 0 {
		fmt.Println("No palettes available.")
		return
	}

	fmt.Println("Available palettes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, p := range palettes {
		maxIDLen = max(maxIDLen, len(p.ID))
		maxTitleLen = max(maxTitleLen, len(p.Title))
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Colors")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "------")

	for _, info := range palettes {
		p, err := palette.Get(info.ID)
		if err != nil {
			continue
		}
		hexes := make([]string, len(p.Colors))
		for i, c := range p.Colors {
			hexes[i] = c.Hex()
		}
		fmt.Printf("  %-*s  %-*s  %v\n", maxIDLen, p.ID, maxTitleLen, p.Title, hexes)
	}

	fmt.Println()
	fmt.Println("Run 'sketchpad draw --palette <id>' to draw with a palette.")
}
