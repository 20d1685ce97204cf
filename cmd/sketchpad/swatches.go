package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sketchpad/internal/storage"
)

var (
	flagSwatchLimit int
	flagTopSwatches bool
	flagClear       bool
)

var swatchesCmd = &cobra.Command{
	Use:   "swatches",
	Short: "Show recently used paint colors",
	Long: `Display the paint colors recorded while drawing, most recent first.

Examples:
  sketchpad swatches
  sketchpad swatches --top --limit 5
  sketchpad swatches --clear`,
	Args: cobra.NoArgs,
	Run:  runSwatches,
}

func init() {
	swatchesCmd.Flags().IntVar(&flagSwatchLimit, "limit", 10, "Number of colors to show")
	swatchesCmd.Flags().BoolVar(&flagTopSwatches, "top", false, "Order by number of uses")
	swatchesCmd.Flags().BoolVar(&flagClear, "clear", false, "Forget all recorded colors")
}

func runSwatches(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening usage database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearSwatches(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		fmt.Println("Recorded colors cleared.")
		return
	}

	var swatches []storage.Swatch
	if flagTopSwatches {
		swatches, err = store.TopSwatches(flagSwatchLimit)
	} else {
		swatches, err = store.RecentSwatches(flagSwatchLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving colors: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	fmt.Println("Recent Colors")
	fmt.Println()

	if len(swatches) == 0 {
		fmt.Println("No colors recorded yet.")
		fmt.Println()
		fmt.Println("Run 'sketchpad draw' and pick a color to start a history!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-7s  %-5s  %s\n", "#", "Color", "Uses", "Last used")
	fmt.Printf("  %-4s  %-7s  %-5s  %s\n", "-", "-----", "----", "---------")

	for i, sw := range swatches {
		fmt.Printf("  %-4d  %-7s  %-5d  %s\n", i+1, sw.Hex, sw.Uses, sw.LastUsed.Format("2006-01-02 15:04"))
	}
}
