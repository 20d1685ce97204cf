// Package config provides YAML-based editor configuration loading for the
// sketchpad.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-sketchpad/internal/paint"
)

// EditorConfig contains all configuration for a drawing session.
type EditorConfig struct {
	Canvas CanvasConfig `yaml:"canvas"`
	Paint  PaintConfig  `yaml:"paint"`
	UI     UIConfig     `yaml:"ui"`
}

// CanvasConfig defines the grid and its background.
type CanvasConfig struct {
	Size       int    `yaml:"size"`
	MinSize    int    `yaml:"min_size"`
	MaxSize    int    `yaml:"max_size"`
	SizeStep   int    `yaml:"size_step"`
	Background string `yaml:"background"`
	GridLines  bool   `yaml:"grid_lines"`
}

// PaintConfig defines the initial brush state.
type PaintConfig struct {
	Color     string `yaml:"color"`
	ShadeStep int    `yaml:"shade_step"`
	Tool      string `yaml:"tool"`
	Palette   string `yaml:"palette"` // palette ID, see internal/palette
}

// UIConfig defines terminal presentation.
type UIConfig struct {
	GridLineColor string `yaml:"grid_line_color"`
	BorderColor   string `yaml:"border_color"`
	CellWidth     int    `yaml:"cell_width"` // terminal columns per cell
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration describes a usable editor.
func (c EditorConfig) Validate() error {
	var errs []error

	if c.Canvas.MinSize <= 0 {
		errs = append(errs, fmt.Errorf("canvas.min_size must be positive, got %d", c.Canvas.MinSize))
	}
	if c.Canvas.MaxSize < c.Canvas.MinSize {
		errs = append(errs, fmt.Errorf("canvas.max_size %d is below min_size %d", c.Canvas.MaxSize, c.Canvas.MinSize))
	}
	if c.Canvas.Size < c.Canvas.MinSize || c.Canvas.Size > c.Canvas.MaxSize {
		errs = append(errs, fmt.Errorf("canvas.size %d outside [%d, %d]", c.Canvas.Size, c.Canvas.MinSize, c.Canvas.MaxSize))
	}
	if c.Canvas.SizeStep <= 0 {
		errs = append(errs, fmt.Errorf("canvas.size_step must be positive, got %d", c.Canvas.SizeStep))
	}
	if c.Paint.ShadeStep <= 0 || c.Paint.ShadeStep > 255 {
		errs = append(errs, fmt.Errorf("paint.shade_step must be in [1, 255], got %d", c.Paint.ShadeStep))
	}
	if _, err := paint.ParseTool(c.Paint.Tool); err != nil {
		errs = append(errs, fmt.Errorf("paint.tool: %w", err))
	}
	if c.UI.CellWidth <= 0 {
		errs = append(errs, fmt.Errorf("ui.cell_width must be positive, got %d", c.UI.CellWidth))
	}

	colors := []struct {
		field, value string
	}{
		{"canvas.background", c.Canvas.Background},
		{"paint.color", c.Paint.Color},
		{"ui.grid_line_color", c.UI.GridLineColor},
		{"ui.border_color", c.UI.BorderColor},
	}
	for _, col := range colors {
		if _, err := paint.ParseColor(col.value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", col.field, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// EngineConfig converts the configuration into the initial engine state.
// The configuration must have passed Validate.
func (c EditorConfig) EngineConfig() (paint.Config, error) {
	fg, err := paint.ParseColor(c.Paint.Color)
	if err != nil {
		return paint.Config{}, fmt.Errorf("paint.color: %w", err)
	}
	bg, err := paint.ParseColor(c.Canvas.Background)
	if err != nil {
		return paint.Config{}, fmt.Errorf("canvas.background: %w", err)
	}
	tool, err := paint.ParseTool(c.Paint.Tool)
	if err != nil {
		return paint.Config{}, fmt.Errorf("paint.tool: %w", err)
	}

	return paint.Config{
		Size:       c.Canvas.Size,
		PaintColor: fg,
		Background: bg,
		GridLines:  c.Canvas.GridLines,
		Tool:       tool,
		ShadeStep:  c.Paint.ShadeStep,
	}, nil
}

// StepSize moves size by dir steps of SizeStep, clamped to [MinSize, MaxSize].
func (c CanvasConfig) StepSize(size, dir int) int {
	step := c.SizeStep
	if step <= 0 {
		step = 1
	}
	return clampInt(size+dir*step, c.MinSize, c.MaxSize)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
