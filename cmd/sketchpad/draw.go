package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sketchpad/internal/palette"
	"github.com/vovakirdan/tui-sketchpad/internal/platform/tui"
	"github.com/vovakirdan/tui-sketchpad/internal/storage"
)

var (
	flagSize       int
	flagColor      string
	flagBackground string
	flagPalette    string
	flagNoGrid     bool
)

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Open the editor",
	Long: `Open the pixel-art editor in the terminal.

Mouse:
  Click a cell         - Apply the active tool
  Drag                 - Keep painting while the button is held
  Click toolbar/colors - Select a tool or palette color

Keys:
  p l d e f i   - Paint, lighten, darken, erase, fill, picker
  1-9           - Palette color
  c             - Type a color (#rrggbb or rgb(r, g, b))
  +/-           - Grow or shrink the grid (clears it)
  x             - Clear the canvas
  g             - Toggle gridlines
  s             - Recently used colors
  tab           - Choose a palette
  Arrows/Space  - Move the cursor and apply the tool
  q/Ctrl+C      - Quit

Examples:
  sketchpad draw
  sketchpad draw --size 32
  sketchpad draw --color "#ff0000" --background "rgb(30, 30, 30)"
  sketchpad draw --palette gameboy --no-grid`,
	Args: cobra.NoArgs,
	Run:  runDraw,
}

func init() {
	drawCmd.Flags().IntVar(&flagSize, "size", 0, "Grid size N for an N×N canvas (default from config)")
	drawCmd.Flags().StringVar(&flagColor, "color", "", "Initial paint color")
	drawCmd.Flags().StringVar(&flagBackground, "background", "", "Canvas background color")
	drawCmd.Flags().StringVar(&flagPalette, "palette", "", "Palette bound to the number keys")
	drawCmd.Flags().BoolVar(&flagNoGrid, "no-grid", false, "Start with gridlines hidden")
}

func runDraw(cmd *cobra.Command, _ []string) {
	cfg, source := loadConfig()

	// Flags override the loaded config
	if cmd.Flags().Changed("size") {
		cfg.Canvas.Size = flagSize
	}
	if flagColor != "" {
		cfg.Paint.Color = flagColor
	}
	if flagBackground != "" {
		cfg.Canvas.Background = flagBackground
	}
	if flagPalette != "" {
		cfg.Paint.Palette = flagPalette
	}
	if flagNoGrid {
		cfg.Canvas.GridLines = false
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	pal, err := palette.Get(cfg.Paint.Palette)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'sketchpad palettes' to see available palettes.")
		os.Exit(1)
	}

	// The alt screen owns the terminal, so logs only go to --log-file
	logger, closeLog, err := newLogger(io.Discard, "sketchpad")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	logger.Debug("config loaded", "source", source)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Config:  cfg,
		Palette: pal,
		Logger:  logger,
		User:    os.Getenv("USER"),
		Width:   width,
		Height:  height,
	}

	// Open usage storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open usage database: %v\n", err)
		// Continue without storage - the editor still works
		store = nil
	}
	if store != nil {
		opts.Store = store
	}

	runErr := tui.Run(opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running editor: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
