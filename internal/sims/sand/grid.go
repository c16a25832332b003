package sand

import "sandgarden/internal/core"

// Cell is the state of one grid slot.
type Cell struct {
	Material Material
	Hue      uint16
	Energy   uint8
	// Grown marks a plant cell that has spawned its child. Only tips grow.
	Grown bool
}

type layer struct {
	material []Material
	hue      []uint16
	energy   []uint8
	grown    []bool
}

func newLayer(n int) *layer {
	return &layer{
		material: make([]Material, n),
		hue:      make([]uint16, n),
		energy:   make([]uint8, n),
		grown:    make([]bool, n),
	}
}

func (l *layer) cell(idx int) Cell {
	return Cell{Material: l.material[idx], Hue: l.hue[idx], Energy: l.energy[idx], Grown: l.grown[idx]}
}

func (l *layer) set(idx int, c Cell) {
	l.material[idx] = c.Material
	l.hue[idx] = c.Hue
	l.energy[idx] = c.Energy
	l.grown[idx] = c.Grown
}

func (l *layer) clear() {
	clear(l.material)
	clear(l.hue)
	clear(l.energy)
	clear(l.grown)
}

// Grid is the double-buffered cell store. Reads during a pass come from the
// current layer; writes go to the next layer; Swap exchanges them.
type Grid struct {
	core.Dims
	cur *layer
	nxt *layer
}

// NewGrid allocates an all-empty grid.
func NewGrid(cols, rows int) *Grid {
	g := &Grid{}
	g.Resize(cols, rows)
	return g
}

// Resize reallocates both layers. All cells are reset to Empty.
func (g *Grid) Resize(cols, rows int) {
	if cols <= 0 {
		cols = 1
	}
	if rows <= 0 {
		rows = 1
	}
	g.Dims = core.Dims{W: cols, H: rows}
	g.cur = newLayer(cols * rows)
	g.nxt = newLayer(cols * rows)
}

// Swap promotes the next layer to current.
func (g *Grid) Swap() {
	g.cur, g.nxt = g.nxt, g.cur
}

// Get returns the current cell at (col, row). The coordinates must be in bounds.
func (g *Grid) Get(col, row int) Cell {
	return g.cur.cell(g.Index(col, row))
}

// Set overwrites the current cell at (col, row). The coordinates must be in
// bounds. Energy is clamped to MaxEnergy.
func (g *Grid) Set(col, row int, c Cell) {
	c.Energy = min(c.Energy, MaxEnergy)
	g.cur.set(g.Index(col, row), c)
}

// Clear empties both layers.
func (g *Grid) Clear() {
	g.cur.clear()
	g.nxt.clear()
}
