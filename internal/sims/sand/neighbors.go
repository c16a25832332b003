package sand

import "sandgarden/internal/core"

// Per-pass claim bits. A consumed cell reads as Empty for the rest of the
// pass; a resolved cell has already been written to the next layer.
const (
	claimConsumed uint8 = 1 << iota
	claimResolved
)

// material returns the current material at idx as seen by this pass.
func (w *World) material(idx int) Material {
	if w.claims.Has(idx, claimConsumed) {
		return Empty
	}
	return w.grid.cur.material[idx]
}

// free reports whether idx is empty in both layers.
func (w *World) free(idx int) bool {
	return w.material(idx) == Empty && w.grid.nxt.material[idx] == Empty
}

// orthogonal returns the first 4-neighbour of (x, y) holding want, scanning
// left, right, up, down.
func (w *World) orthogonal(x, y int, want Material) (int, bool) {
	for _, o := range core.Orthogonal {
		nx, ny, ok := w.grid.Neighbor(x, y, o)
		if !ok {
			continue
		}
		if idx := w.grid.Index(nx, ny); w.material(idx) == want {
			return idx, true
		}
	}
	return -1, false
}

// touches reports whether any 8-neighbour of (x, y) holds one of kinds.
func (w *World) touches(x, y int, kinds ...Material) bool {
	for _, o := range core.Moore {
		nx, ny, ok := w.grid.Neighbor(x, y, o)
		if !ok {
			continue
		}
		m := w.material(w.grid.Index(nx, ny))
		for _, k := range kinds {
			if m == k {
				return true
			}
		}
	}
	return false
}

// freeNeighbor returns the first 8-neighbour of (x, y) that is empty in both
// layers.
func (w *World) freeNeighbor(x, y int) (int, bool) {
	for _, o := range core.Moore {
		nx, ny, ok := w.grid.Neighbor(x, y, o)
		if !ok {
			continue
		}
		if idx := w.grid.Index(nx, ny); w.free(idx) {
			return idx, true
		}
	}
	return -1, false
}
