package sand

// react applies the pre-movement reactions to the in-flight cell at (x, y).
// Only the returned value changes; the current layer is left untouched.
func (w *World) react(x, y int, c Cell) Cell {
	switch c.Material {
	case Sand:
		if idx, ok := w.orthogonal(x, y, Water); ok {
			w.consume(idx)
			return Cell{Material: Mud, Hue: w.hue(mudHues)}
		}
	case Seed:
		if w.touches(x, y, Mud, Plant) {
			return Cell{Material: Plant, Hue: w.hue(sproutHues), Energy: uint8(w.cfg.Params.SproutEnergy)}
		}
	}
	return c
}

// consume claims the water at idx for the rest of the pass. Water that was
// already resolved this pass is withdrawn from wherever it landed.
func (w *World) consume(idx int) {
	w.claims.Mark(idx, claimConsumed)
	if dst := w.placed[idx]; dst >= 0 {
		w.grid.nxt.set(int(dst), Cell{})
		w.placed[idx] = -1
	}
}
