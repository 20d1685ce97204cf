package paint

import "fmt"

// Coord addresses a cell. Row grows downward, Col grows to the right.
type Coord struct {
	Row int
	Col int
}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// neighbors4 lists the up/down/left/right offsets.
var neighbors4 = [4]Coord{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// CellRef is the stable identity a view keeps for a rendered cell.
// Refs from a grid generation that has since been rebuilt no longer resolve.
type CellRef struct {
	Gen   uint64
	Index int
}

// Cell is the paint state of a single grid cell.
type Cell struct {
	Painted bool // false means unpainted (background shows through)
	Color   RGB  // valid only when Painted is true
}

// Grid is an N×N board of cells stored row-major: index = row*N + col.
type Grid struct {
	size  int
	gen   uint64
	cells []Cell
}

// NewGrid builds a size×size grid of unpainted cells.
func NewGrid(size int) (*Grid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return &Grid{
		size:  size,
		gen:   1,
		cells: make([]Cell, size*size),
	}, nil
}

// Size returns N.
func (g *Grid) Size() int {
	return g.size
}

// Gen returns the grid generation. It changes whenever the grid is rebuilt.
func (g *Grid) Gen() uint64 {
	return g.gen
}

// InBounds reports whether c lies inside [0,N)².
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

func (g *Grid) index(c Coord) int {
	return c.Row*g.size + c.Col
}

// CellAt returns the cell at c.
func (g *Grid) CellAt(c Coord) (Cell, error) {
	if !g.InBounds(c) {
		return Cell{}, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.size, g.size)
	}
	return g.cells[g.index(c)], nil
}

// Ref returns the stable reference for the cell at c.
func (g *Grid) Ref(c Coord) (CellRef, error) {
	if !g.InBounds(c) {
		return CellRef{}, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.size, g.size)
	}
	return CellRef{Gen: g.gen, Index: g.index(c)}, nil
}

// IndexOf resolves a cell reference back to its coordinate.
func (g *Grid) IndexOf(ref CellRef) (Coord, error) {
	if ref.Gen != g.gen || ref.Index < 0 || ref.Index >= len(g.cells) {
		return Coord{}, fmt.Errorf("%w: ref %d/%d", ErrNotFound, ref.Gen, ref.Index)
	}
	return Coord{Row: ref.Index / g.size, Col: ref.Index % g.size}, nil
}

// SetColor paints the cell at c.
func (g *Grid) SetColor(c Coord, color RGB) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	g.cells[g.index(c)] = Cell{Painted: true, Color: color}
	return nil
}

// ClearColor returns the cell at c to unpainted.
func (g *Grid) ClearColor(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	g.cells[g.index(c)] = Cell{}
	return nil
}

// EffectiveColor returns the cell's paint color, or background if it is
// unpainted. Out-of-bounds coordinates report the background.
func (g *Grid) EffectiveColor(c Coord, background RGB) RGB {
	if !g.InBounds(c) {
		return background
	}
	cell := g.cells[g.index(c)]
	if !cell.Painted {
		return background
	}
	return cell.Color
}

// Resize discards all cells and rebuilds an unpainted newSize×newSize grid.
// A non-positive size is rejected and the current grid is kept.
func (g *Grid) Resize(newSize int) error {
	if newSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, newSize)
	}
	g.size = newSize
	g.gen++
	g.cells = make([]Cell, newSize*newSize)
	return nil
}

// ClearAll sets every cell to unpainted without resizing.
func (g *Grid) ClearAll() {
	for i := range g.cells {
		g.cells[i] = Cell{}
	}
}

// PaintedCount returns the number of painted cells.
func (g *Grid) PaintedCount() int {
	count := 0
	for _, cell := range g.cells {
		if cell.Painted {
			count++
		}
	}
	return count
}

// PaintedCoords returns the coordinates of all painted cells in row-major order.
func (g *Grid) PaintedCoords() []Coord {
	coords := make([]Coord, 0)
	for i, cell := range g.cells {
		if cell.Painted {
			coords = append(coords, Coord{Row: i / g.size, Col: i % g.size})
		}
	}
	return coords
}

// Clone returns a deep copy of the grid, generation included.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{size: g.size, gen: g.gen, cells: cells}
}

// Equal reports whether two grids have the same size and cell contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.size != other.size {
		return false
	}
	for i, cell := range g.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}
