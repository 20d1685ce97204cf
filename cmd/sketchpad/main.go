// sketchpad is a pixel-art editor for the terminal.
//
// Usage:
//
//	sketchpad draw            - Open the editor
//	sketchpad serve           - Start SSH server for remote drawing
//	sketchpad palettes        - List available palettes
//	sketchpad swatches        - Show recently used paint colors
//	sketchpad stats           - Show drawing session statistics
//	sketchpad config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>    - Editor config YAML
//	--db <path>        - Set database path (default: ~/.sketchpad/sketchpad.db)
//	--log-file <path>  - Write logs to a file
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sketchpad/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sketchpad",
	Short: "TUI Sketchpad - Draw pixel art in your terminal",
	Long: `TUI Sketchpad is a grid-based pixel-art editor that runs in your
terminal. Paint with the mouse, flood fill regions, pick colors from the
canvas and lighten or darken cells.

Available commands:
  draw      - Open the editor
  serve     - Start SSH server for remote drawing
  palettes  - Show all available palettes
  swatches  - Show recently used paint colors
  stats     - Show drawing session statistics
  config    - Print the effective configuration

Examples:
  sketchpad draw
  sketchpad draw --size 32 --palette pico8
  sketchpad serve --ssh :2222
  sketchpad stats`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom editor config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sketchpad/sketchpad.db", "Path to usage database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(drawCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(palettesCmd)
	rootCmd.AddCommand(swatchesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger returns a logger writing to --log-file, or to fallback when no
// file is given. The returned func closes the file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	out := fallback
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// loadConfig resolves the editor config or exits.
func loadConfig() (config.EditorConfig, string) {
	cfg, source, err := config.Resolve(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg, source
}
