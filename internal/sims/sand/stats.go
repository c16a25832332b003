package sand

import "sandgarden/internal/core"

// Census counts cells per material.
type Census [materialCount]int

// Of returns the count for m.
func (c Census) Of(m Material) int {
	if m >= materialCount {
		return 0
	}
	return c[m]
}

// Occupied returns the number of non-empty cells.
func (c Census) Occupied() int {
	total := 0
	for m := Sand; m < materialCount; m++ {
		total += c[m]
	}
	return total
}

// Counts tallies the current layer.
func (w *World) Counts() Census {
	var c Census
	for _, m := range w.grid.cur.material {
		if m < materialCount {
			c[m]++
		}
	}
	return c
}

// View is a read-only handle on the current layer. It shares storage with the
// world, so it reflects every step without copying.
type View struct {
	w *World
}

// View returns a read-only handle for presentation.
func (w *World) View() View { return View{w: w} }

// Size reports the grid dimensions.
func (v View) Size() core.Size { return v.w.Size() }

// At returns the cell at (col, row); out-of-bounds coordinates read as Empty.
func (v View) At(col, row int) Cell {
	g := v.w.grid
	if !g.InBounds(col, row) {
		return Cell{}
	}
	return g.cur.cell(g.Index(col, row))
}

// Material returns the material at a linear index.
func (v View) Material(idx int) Material { return v.w.grid.cur.material[idx] }

// Hue returns the colour seed at a linear index.
func (v View) Hue(idx int) uint16 { return v.w.grid.cur.hue[idx] }

// Energy returns the energy at a linear index.
func (v View) Energy(idx int) uint8 { return v.w.grid.cur.energy[idx] }

// Tick returns the number of completed steps.
func (v View) Tick() int { return v.w.tick }

// AppendLayers appends the material, hue and energy layers to the provided
// slices, for encoders that need a stable copy.
func (v View) AppendLayers(mat []uint8, hue []uint16, energy []uint8) ([]uint8, []uint16, []uint8) {
	cur := v.w.grid.cur
	for _, m := range cur.material {
		mat = append(mat, uint8(m))
	}
	hue = append(hue, cur.hue...)
	energy = append(energy, cur.energy...)
	return mat, hue, energy
}

// EnergyMask writes each plant cell's energy, normalised to [0, 1], into dst
// (reallocated when too short). Non-plant cells read 0.
func (w *World) EnergyMask(dst []float32) []float32 {
	cur := w.grid.cur
	dst = sizedMask(dst, len(cur.material))
	for i, m := range cur.material {
		if m == Plant {
			dst[i] = float32(cur.energy[i]) / MaxEnergy
		}
	}
	return dst
}

// WaterMask writes 1 for every water cell into dst and 0 elsewhere.
func (w *World) WaterMask(dst []float32) []float32 {
	cur := w.grid.cur
	dst = sizedMask(dst, len(cur.material))
	for i, m := range cur.material {
		if m == Water {
			dst[i] = 1
		}
	}
	return dst
}

func sizedMask(dst []float32, n int) []float32 {
	if cap(dst) < n {
		return make([]float32, n)
	}
	dst = dst[:n]
	clear(dst)
	return dst
}
