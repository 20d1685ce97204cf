// Package palette provides a global registry of named color palettes.
// Built-in palettes register themselves in init(), allowing the editor
// and CLI to discover them without hardcoded lists.
package palette

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-sketchpad/internal/paint"
)

// MaxColors is the number of palette slots reachable from the number keys.
const MaxColors = 9

// Palette is an ordered set of colors bound to the number keys 1..9.
type Palette struct {
	ID     string
	Title  string
	Colors []paint.RGB
}

// Color returns the color in slot n (1-based) and whether the slot exists.
func (p Palette) Color(n int) (paint.RGB, bool) {
	if n < 1 || n > len(p.Colors) {
		return paint.RGB{}, false
	}
	return p.Colors[n-1], true
}

// Info contains metadata about a registered palette.
type Info struct {
	ID     string
	Title  string
	Colors int
}

var (
	palettes = make(map[string]Palette)
	mu       sync.RWMutex
)

// Register adds a palette to the registry.
// Panics if a palette with the same ID is already registered, or if it has
// no colors or more colors than there are number keys.
func Register(p Palette) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := palettes[p.ID]; exists {
		panic(fmt.Sprintf("palette: %q already registered", p.ID))
	}
	if len(p.Colors) == 0 || len(p.Colors) > MaxColors {
		panic(fmt.Sprintf("palette: %q has %d colors, want 1..%d", p.ID, len(p.Colors), MaxColors))
	}

	p.Colors = append([]paint.RGB(nil), p.Colors...)
	palettes[p.ID] = p
}

// List returns information about all registered palettes, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(palettes))
	for id, p := range palettes {
		result = append(result, Info{
			ID:     id,
			Title:  p.Title,
			Colors: len(p.Colors),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a copy of the palette registered under id.
// Returns an error if the ID is not registered.
func Get(id string) (Palette, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := palettes[id]
	if !ok {
		return Palette{}, fmt.Errorf("palette: unknown palette %q", id)
	}

	p.Colors = append([]paint.RGB(nil), p.Colors...)
	return p, nil
}

// Exists checks if a palette with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := palettes[id]
	return ok
}
