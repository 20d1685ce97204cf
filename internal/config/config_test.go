package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-sketchpad/internal/paint"
)

// isolate points the user and local search paths at empty directories.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	isolate(t)

	cfg, source, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if cfg != DefaultEditorConfig() {
		t.Errorf("embedded config %+v differs from DefaultEditorConfig %+v", cfg, DefaultEditorConfig())
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := DefaultEditorConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "canvas:\n  size: 32\npaint:\n  color: \"rgb(255, 0, 0)\"\n  tool: fill\n")

	cfg, source, err := Resolve(path)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Canvas.Size != 32 || cfg.Paint.Tool != "fill" {
		t.Errorf("custom values not applied: %+v", cfg)
	}
	// Keys missing from the file keep their defaults.
	if cfg.Canvas.MaxSize != 64 || cfg.UI.CellWidth != 2 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "canvas: [not a map")
	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "canvas:\n  size: 0\n")

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml")},
		{"malformed yaml", bad},
		{"fails validation", invalid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(tc.path); err == nil {
				t.Errorf("Load(%s) should fail", tc.path)
			}
		})
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := isolate(t)

	writeFile(t, filepath.Join("configs", "sketchpad.yaml"), "canvas:\n  size: 8\n")
	cfg, source, err := Resolve("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Canvas.Size != 8 || source != filepath.Join("configs", "sketchpad.yaml") {
		t.Errorf("local config not used: size=%d source=%q", cfg.Canvas.Size, source)
	}

	userPath := filepath.Join(home, ".sketchpad", "config.yaml")
	writeFile(t, userPath, "canvas:\n  size: 24\n")
	cfg, source, err = Resolve("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Canvas.Size != 24 || source != userPath {
		t.Errorf("user config should win: size=%d source=%q", cfg.Canvas.Size, source)
	}
}

func TestLoadSkipsInvalidSearchFiles(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".sketchpad", "config.yaml"), "paint:\n  color: nope\n")

	cfg, source, err := Resolve("")
	if err != nil {
		t.Fatal(err)
	}
	if source != SourceEmbedded || cfg.Paint.Color != "#000000" {
		t.Errorf("invalid user config should be skipped, got source=%q color=%q", source, cfg.Paint.Color)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*EditorConfig)
	}{
		{"zero size", func(c *EditorConfig) { c.Canvas.Size = 0 }},
		{"size above max", func(c *EditorConfig) { c.Canvas.Size = 65 }},
		{"min above max", func(c *EditorConfig) { c.Canvas.MinSize = 10; c.Canvas.MaxSize = 5 }},
		{"zero step", func(c *EditorConfig) { c.Canvas.SizeStep = 0 }},
		{"bad background", func(c *EditorConfig) { c.Canvas.Background = "#zzz" }},
		{"bad paint color", func(c *EditorConfig) { c.Paint.Color = "" }},
		{"bad tool", func(c *EditorConfig) { c.Paint.Tool = "spray" }},
		{"shade step too large", func(c *EditorConfig) { c.Paint.ShadeStep = 300 }},
		{"zero cell width", func(c *EditorConfig) { c.UI.CellWidth = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultEditorConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestEngineConfig(t *testing.T) {
	cfg := DefaultEditorConfig()
	cfg.Paint.Color = "#ff0000"
	cfg.Paint.Tool = "darken"
	cfg.Canvas.GridLines = false

	ec, err := cfg.EngineConfig()
	if err != nil {
		t.Fatalf("EngineConfig failed: %v", err)
	}
	if ec.PaintColor != (paint.RGB{R: 255}) || ec.Tool != paint.ToolDarken || ec.GridLines {
		t.Errorf("EngineConfig() = %+v", ec)
	}
	if ec.Background != paint.White || ec.Size != 16 || ec.ShadeStep != 10 {
		t.Errorf("EngineConfig() defaults = %+v", ec)
	}
}

func TestStepSize(t *testing.T) {
	c := CanvasConfig{MinSize: 1, MaxSize: 64, SizeStep: 4}

	tests := []struct {
		size, dir, expected int
	}{
		{16, 1, 20},
		{16, -1, 12},
		{62, 1, 64},
		{3, -1, 1},
		{1, -1, 1},
		{64, 1, 64},
	}

	for _, tc := range tests {
		if got := c.StepSize(tc.size, tc.dir); got != tc.expected {
			t.Errorf("StepSize(%d, %d) = %d, expected %d", tc.size, tc.dir, got, tc.expected)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultEditorConfig()
	cfg.Canvas.Size = 40

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	got, err := parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if got != cfg {
		t.Errorf("round trip = %+v, expected %+v", got, cfg)
	}
}
