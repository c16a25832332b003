package sand

import "sandgarden/internal/core"

// move resolves gravity and flow for the in-flight cell c that started at
// (x, y). Candidates are tried in order: down, down+dir, down-dir and, for
// fluids, dir then -dir.
func (w *World) move(x, y int, c Cell) {
	dir := w.rng.Sign()
	candidates := [5]core.Offset{
		{DX: 0, DY: 1},
		{DX: dir, DY: 1},
		{DX: -dir, DY: 1},
		{DX: dir, DY: 0},
		{DX: -dir, DY: 0},
	}
	n := 3
	if c.Material.flows() {
		n = len(candidates)
	}

	src := w.grid.Index(x, y)
	for _, o := range candidates[:n] {
		nx, ny, ok := w.grid.Neighbor(x, y, o)
		if !ok {
			continue
		}
		dst := w.grid.Index(nx, ny)
		if !w.canEnter(c.Material, dst) {
			continue
		}
		if w.material(dst) == Water && c.Material != Water {
			w.displace(x, y, dst)
		}
		w.put(src, dst, c)
		return
	}
	w.settle(x, y, c)
}

// canEnter reports whether a cell of kind m may move into dst.
func (w *World) canEnter(m Material, dst int) bool {
	if w.grid.nxt.material[dst] != Empty {
		return false
	}
	switch w.material(dst) {
	case Empty:
		return true
	case Water:
		return m.sinks()
	default:
		return false
	}
}

// displace relocates the water at dst, which a solid from (x, y) is about to
// occupy, into the first free 8-neighbour of the mover. Water that has
// already been resolved this pass is elsewhere and needs no relocation. With
// no free neighbour the water is dropped and reads as Empty for the rest of
// the pass.
func (w *World) displace(x, y, dst int) {
	if w.claims.Has(dst, claimResolved) || w.placed[dst] >= 0 {
		return
	}
	w.claims.Mark(dst, claimResolved)
	water := w.grid.cur.cell(dst)
	if idx, ok := w.freeNeighbor(x, y); ok {
		w.put(dst, idx, water)
		return
	}
	w.claims.Mark(dst, claimConsumed)
	w.dropped++
}

// settle keeps c at its origin, or the first free neighbour when the origin
// has already been claimed in the next layer.
func (w *World) settle(x, y int, c Cell) {
	src := w.grid.Index(x, y)
	if w.grid.nxt.material[src] == Empty {
		w.put(src, src, c)
		return
	}
	if idx, ok := w.freeNeighbor(x, y); ok {
		w.put(src, idx, c)
		return
	}
	w.dropped++
}

func (w *World) put(src, dst int, c Cell) {
	w.grid.nxt.set(dst, c)
	w.placed[src] = int32(dst)
}
