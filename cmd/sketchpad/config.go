package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sketchpad/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the editor configuration as YAML, with the file it was loaded from.

Search order:
  --config <path>
  ~/.sketchpad/config.yaml
  ./configs/sketchpad.yaml
  built-in defaults

Examples:
  sketchpad config > ~/.sketchpad/config.yaml
  sketchpad config --config ./my-sketchpad.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, source := loadConfig()

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# source: %s\n", source)
	os.Stdout.Write(data)
}
