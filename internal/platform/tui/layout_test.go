package tui

import (
	"testing"

	"github.com/vovakirdan/tui-sketchpad/internal/paint"
)

func TestLayoutSize(t *testing.T) {
	tests := []struct {
		name      string
		layout    Layout
		wantWidth int
		wantH     int
	}{
		{"gridlines", NewLayout(3, 2, true), 8, 5},
		{"no gridlines", NewLayout(3, 2, false), 6, 3},
		{"single cell", NewLayout(1, 2, true), 2, 1},
		{"wide cells", NewLayout(4, 3, true), 15, 7},
		{"empty", NewLayout(0, 2, true), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.layout.Width(); got != tt.wantWidth {
				t.Errorf("Width() = %d, want %d", got, tt.wantWidth)
			}
			if got := tt.layout.Height(); got != tt.wantH {
				t.Errorf("Height() = %d, want %d", got, tt.wantH)
			}
		})
	}
}

func TestNewLayoutDefaultsCellWidth(t *testing.T) {
	l := NewLayout(4, 0, false)
	if l.CellWidth != 2 {
		t.Errorf("CellWidth = %d, want 2", l.CellWidth)
	}
}

func TestLayoutCellAtWithGridLines(t *testing.T) {
	l := NewLayout(3, 2, true)

	tests := []struct {
		x, y   int
		want   paint.Coord
		wantOK bool
	}{
		{1, 3, paint.At(0, 0), true},
		{2, 3, paint.At(0, 0), true},
		{3, 3, paint.Coord{}, false}, // vertical gridline
		{4, 3, paint.At(0, 1), true},
		{1, 4, paint.Coord{}, false}, // horizontal gridline
		{1, 5, paint.At(1, 0), true},
		{8, 7, paint.At(2, 2), true},
		{9, 7, paint.Coord{}, false}, // right of canvas
		{0, 3, paint.Coord{}, false}, // frame
		{1, 2, paint.Coord{}, false}, // frame
		{1, 8, paint.Coord{}, false}, // below canvas
	}

	for _, tt := range tests {
		got, ok := l.CellAt(tt.x, tt.y)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("CellAt(%d, %d) = %v, %v; want %v, %v", tt.x, tt.y, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestLayoutCellAtWithoutGridLines(t *testing.T) {
	l := NewLayout(3, 2, false)

	tests := []struct {
		x, y   int
		want   paint.Coord
		wantOK bool
	}{
		{1, 3, paint.At(0, 0), true},
		{3, 3, paint.At(0, 1), true},
		{1, 4, paint.At(1, 0), true},
		{6, 5, paint.At(2, 2), true},
		{7, 5, paint.Coord{}, false},
		{1, 6, paint.Coord{}, false},
	}

	for _, tt := range tests {
		got, ok := l.CellAt(tt.x, tt.y)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("CellAt(%d, %d) = %v, %v; want %v, %v", tt.x, tt.y, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestLayoutCellOriginRoundTrip(t *testing.T) {
	for _, grid := range []bool{true, false} {
		l := NewLayout(5, 2, grid)
		for row := range 5 {
			for col := range 5 {
				c := paint.At(row, col)
				x, y := l.CellOrigin(c)
				got, ok := l.CellAt(x, y)
				if !ok || got != c {
					t.Errorf("grid=%v: CellAt(CellOrigin(%v)) = %v, %v", grid, c, got, ok)
				}
				got, ok = l.CellAt(x+1, y)
				if !ok || got != c {
					t.Errorf("grid=%v: second column of %v maps to %v, %v", grid, c, got, ok)
				}
			}
		}
	}
}

func TestStripHit(t *testing.T) {
	s := strip{"ab", "cde"}

	tests := []struct {
		x    int
		want int
	}{
		{-1, -1},
		{0, 0},
		{1, 0},
		{2, -1},
		{3, 1},
		{5, 1},
		{6, -1},
	}

	for _, tt := range tests {
		if got := s.hit(tt.x); got != tt.want {
			t.Errorf("hit(%d) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestPointerEnterOncePerCell(t *testing.T) {
	p := &Pointer{}

	if !p.enter(paint.At(0, 0)) {
		t.Fatal("first enter should report a new cell")
	}
	if p.enter(paint.At(0, 0)) {
		t.Error("moving within the same cell should not report a new cell")
	}
	if !p.enter(paint.At(0, 1)) {
		t.Error("moving to a neighbor should report a new cell")
	}

	p.leave()
	if !p.enter(paint.At(0, 1)) {
		t.Error("re-entering after leaving should report a new cell")
	}

	p.press()
	if !p.PrimaryHeld() {
		t.Error("PrimaryHeld() = false after press")
	}
	if !p.enter(paint.At(0, 1)) {
		t.Error("press should reset the hovered cell")
	}
	p.release()
	if p.PrimaryHeld() {
		t.Error("PrimaryHeld() = true after release")
	}
}
