package core

import "fmt"

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// Coordinates outside the grid are never dereferenced.
type ByteGrid struct {
	W, H int
	data []uint8
}

// MaxCells bounds the number of cells a single grid may hold.
const MaxCells = 1 << 26

// CheckSize reports ErrInvalidSize unless w and h are positive and w*h fits
// within MaxCells.
func CheckSize(w, h int) error {
	if w <= 0 || h <= 0 || w > MaxCells/h {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	return nil
}

// NewByteGrid allocates a zeroed grid with the given dimensions.
func NewByteGrid(w, h int) (*ByteGrid, error) {
	if err := CheckSize(w, h); err != nil {
		return nil, err
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value at (x, y). ok is false outside the grid.
func (g *ByteGrid) At(x, y int) (v uint8, ok bool) {
	if !g.InBounds(x, y) {
		return 0, false
	}
	return g.data[y*g.W+x], true
}

// Put stores v at (x, y) and reports whether the coordinate was in range.
func (g *ByteGrid) Put(x, y int, v uint8) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.data[y*g.W+x] = v
	return true
}

// Swap exchanges two cells. Nothing changes unless both are in range.
func (g *ByteGrid) Swap(x0, y0, x1, y1 int) bool {
	if !g.InBounds(x0, y0) || !g.InBounds(x1, y1) {
		return false
	}
	a, b := y0*g.W+x0, y1*g.W+x1
	g.data[a], g.data[b] = g.data[b], g.data[a]
	return true
}

// Fill sets every cell to v.
func (g *ByteGrid) Fill(v uint8) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() { g.Fill(0) }
