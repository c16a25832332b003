package sand

import (
	"errors"

	"sandgarden/internal/core"
)

// ErrInvalidSize is returned by Resize for non-positive dimensions.
var ErrInvalidSize = errors.New("grid dimensions must be positive")

// World is the falling-sand automaton: the grid store plus the per-pass
// bookkeeping the frame driver needs.
type World struct {
	cfg Config

	grid    *Grid
	claims  *core.ByteGrid
	placed  []int32
	display []uint8

	rng     *core.RNG
	onSpawn func(Spawn)

	sandHue int
	tick    int
	dropped int
	spawns  int
}

// New returns a sandbox with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a sandbox configured from the provided options.
func NewWithConfig(cfg Config) *World {
	w := &World{
		cfg:     cfg,
		rng:     core.NewRNG(cfg.Seed),
		sandHue: sandHues.lo,
	}
	w.allocate(cfg.Width, cfg.Height)
	return w
}

func (w *World) allocate(cols, rows int) {
	w.grid = NewGrid(cols, rows)
	w.claims = core.NewByteGrid(w.grid.W, w.grid.H)
	w.placed = make([]int32, w.grid.Len())
	w.display = make([]uint8, w.grid.Len())
	w.cfg.Width = w.grid.W
	w.cfg.Height = w.grid.H
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.W, H: w.grid.H} }

// Cells exposes the material of every cell, indexed col + row*cols.
func (w *World) Cells() []uint8 { return w.display }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Grid exposes the grid store for direct input writes between steps. Writes
// made through it show up in Cells after the next Step.
func (w *World) Grid() *Grid { return w.grid }

// Tick returns the number of completed steps since the last reset.
func (w *World) Tick() int { return w.tick }

// Dropped counts cells lost because displacement or fallback found no free
// neighbour.
func (w *World) Dropped() int { return w.dropped }

// Spawns counts successful plant growth events.
func (w *World) Spawns() int { return w.spawns }

// OnSpawn registers fn to observe every growth edge. Pass nil to stop.
func (w *World) OnSpawn(fn func(Spawn)) { w.onSpawn = fn }

// Reset clears the grid and restarts the random stream. A zero seed falls
// back to the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng.Reseed(effective)
	w.grid.Clear()
	w.claims.Clear()
	clear(w.display)
	w.sandHue = sandHues.lo
	w.tick = 0
	w.dropped = 0
	w.spawns = 0
}

// Resize reallocates the grid, discarding every particle.
func (w *World) Resize(cols, rows int) error {
	if cols <= 0 || rows <= 0 {
		return ErrInvalidSize
	}
	w.allocate(cols, rows)
	return nil
}

// Step advances the automaton by one generation. Cells are visited column by
// column, top to bottom; that order decides contested destinations.
func (w *World) Step() {
	g := w.grid
	g.nxt.clear()
	w.claims.Clear()
	for i := range w.placed {
		w.placed[i] = -1
	}

	for x := 0; x < g.W; x++ {
		for y := 0; y < g.H; y++ {
			idx := g.Index(x, y)
			if w.claims.Has(idx, claimConsumed|claimResolved) {
				continue
			}
			c := g.cur.cell(idx)
			if c.Material == Empty {
				continue
			}
			c = w.react(x, y, c)
			if c.Material == Plant {
				w.settle(x, y, w.grow(x, y, c))
				continue
			}
			w.move(x, y, c)
		}
	}

	g.Swap()
	w.tick++
	w.rebuildDisplay()
}

// Place writes a single cell of kind m into the current layer. It fails when
// (x, y) is out of bounds, m is Empty, or the cell is occupied.
func (w *World) Place(x, y int, m Material) bool {
	if m == Empty || m >= materialCount || !w.grid.InBounds(x, y) {
		return false
	}
	idx := w.grid.Index(x, y)
	if w.grid.cur.material[idx] != Empty {
		return false
	}
	w.grid.cur.set(idx, w.newCell(m))
	w.display[idx] = uint8(m)
	return true
}

// PaintMaterial scatters m over the brush square centred on (x, y) and
// returns how many cells were placed. Seeds use the sparser seed density.
func (w *World) PaintMaterial(x, y int, m Material) int {
	p := w.cfg.Params
	density := p.BrushDensity
	if m == Seed {
		density = p.SeedDensity
	}
	r := p.BrushRadius
	placed := 0
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			if !w.rng.Chance(density) {
				continue
			}
			if w.Place(x+dx, y+dy, m) {
				placed++
			}
		}
	}
	if m == Sand {
		w.sandHue++
		if w.sandHue > sandHues.hi {
			w.sandHue = sandHues.lo
		}
	}
	return placed
}

// Tools lists the brush names accepted by Paint.
func (w *World) Tools() []string {
	kinds := Placeable()
	names := make([]string, len(kinds))
	for i, m := range kinds {
		names[i] = m.String()
	}
	return names
}

// Paint applies a brush stroke of the named material.
func (w *World) Paint(x, y int, tool string) bool {
	m, err := ParseMaterial(tool)
	if err != nil || m == Empty {
		return false
	}
	return w.PaintMaterial(x, y, m) > 0
}

func (w *World) newCell(m Material) Cell {
	switch m {
	case Sand:
		return Cell{Material: Sand, Hue: uint16(w.sandHue)}
	case Water:
		return Cell{Material: Water, Hue: w.hue(waterHues)}
	case Mud:
		return Cell{Material: Mud, Hue: w.hue(mudHues)}
	case Seed:
		return Cell{Material: Seed, Hue: w.hue(seedHues)}
	case Plant:
		return Cell{Material: Plant, Hue: w.hue(sproutHues), Energy: uint8(w.cfg.Params.PlantEnergy)}
	default:
		return Cell{}
	}
}

func (w *World) rebuildDisplay() {
	for i, m := range w.grid.cur.material {
		w.display[i] = uint8(m)
	}
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return NewWithConfig(c)
	})
}
