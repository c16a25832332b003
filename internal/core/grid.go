package core

// Dims is the shape of a rectangular grid addressed by (x, y) with x the
// column and y the row.
type Dims struct {
	W, H int
}

// InBounds reports whether (x, y) addresses a cell of the grid.
func (d Dims) InBounds(x, y int) bool {
	return x >= 0 && x < d.W && y >= 0 && y < d.H
}

// Index returns the linear index of (x, y). Only valid when InBounds holds.
func (d Dims) Index(x, y int) int { return x + y*d.W }

// Coords converts a linear index back to (x, y).
func (d Dims) Coords(idx int) (int, int) { return idx % d.W, idx / d.W }

// Len returns the number of cells.
func (d Dims) Len() int { return d.W * d.H }

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	Dims
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{Dims: Dims{W: w, H: h}, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Has reports whether any of the bits in mask are set at idx.
func (g *ByteGrid) Has(idx int, mask uint8) bool { return g.data[idx]&mask != 0 }

// Mark sets the bits in mask at idx.
func (g *ByteGrid) Mark(idx int, mask uint8) { g.data[idx] |= mask }

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	clear(g.data)
}
