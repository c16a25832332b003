package sand

import "sandgarden/internal/core"

// Spawn records one parent to child growth edge.
type Spawn struct {
	Parent       int
	Child        int
	ParentEnergy uint8
	ChildEnergy  uint8
}

// grow runs the plant rule for the cell at (x, y) and returns the parent's
// updated state. Only tips grow: a cell spawns at most one child over its
// lifetime, so a plant is a single chain of at most its root energy plus one
// cells.
func (w *World) grow(x, y int, c Cell) Cell {
	p := w.cfg.Params
	if c.Energy > 0 && w.rng.Chance(p.AgingChance) {
		c.Energy--
	}
	if c.Grown || c.Energy == 0 || !w.rng.Chance(p.GrowthChance) {
		return c
	}

	dir := core.Offset{DX: 0, DY: -1}
	if int(c.Energy) < p.CanopyThreshold {
		if w.rng.Chance(p.CanopySkipChance) {
			return c
		}
		dir.DX = w.rng.IntN(3) - 1
		if w.rng.Chance(p.CanopyLevelChance) {
			dir.DY = 0
		}
	} else if w.rng.Chance(p.TrunkJitterChance) {
		dir.DX = w.rng.Sign()
	}
	if dir.DX == 0 && dir.DY == 0 {
		return c
	}

	nx, ny, ok := w.grid.Neighbor(x, y, dir)
	if !ok {
		return c
	}
	target := w.grid.Index(nx, ny)
	if !w.free(target) {
		return c
	}

	child := Cell{Material: Plant, Hue: w.hue(canopyHues), Energy: c.Energy - 1}
	w.grid.nxt.set(target, child)
	if w.onSpawn != nil {
		w.onSpawn(Spawn{
			Parent:       w.grid.Index(x, y),
			Child:        target,
			ParentEnergy: c.Energy,
			ChildEnergy:  child.Energy,
		})
	}
	w.spawns++
	c.Energy--
	c.Grown = true
	return c
}
