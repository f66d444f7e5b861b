package sand

import "falling-sand/internal/core"

// Grid is the material store: a fixed W×H array of Material tags with (0,0)
// at the top-left and y growing in the direction of gravity.
type Grid struct {
	cells *core.ByteGrid
}

// NewGrid allocates a grid filled with Empty.
func NewGrid(w, h int) (*Grid, error) {
	bg, err := core.NewByteGrid(w, h)
	if err != nil {
		return nil, err
	}
	return &Grid{cells: bg}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.cells.W }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.cells.H }

// Get returns the material at (x, y), or Empty outside the grid.
func (g *Grid) Get(x, y int) Material {
	v, _ := g.cells.At(x, y)
	return Material(v)
}

// Lookup is Get with an explicit in-bounds flag.
func (g *Grid) Lookup(x, y int) (Material, bool) {
	v, ok := g.cells.At(x, y)
	return Material(v), ok
}

// Set writes m at (x, y). Writes outside the grid are dropped and report false.
func (g *Grid) Set(x, y int, m Material) bool {
	return g.cells.Put(x, y, uint8(m))
}

// Swap exchanges the materials of two in-range cells.
func (g *Grid) Swap(x0, y0, x1, y1 int) bool {
	return g.cells.Swap(x0, y0, x1, y1)
}

// Clear resets every cell to Empty.
func (g *Grid) Clear() { g.cells.Fill(uint8(Empty)) }

// Cells exposes the raw row-major tags for renderers.
func (g *Grid) Cells() []uint8 { return g.cells.Cells() }

// Count returns how many cells hold m.
func (g *Grid) Count(m Material) int {
	n := 0
	for _, c := range g.cells.Cells() {
		if Material(c) == m {
			n++
		}
	}
	return n
}
