package sand

import (
	"errors"
	"slices"
	"testing"

	"sandgarden/internal/core"
)

func newTestWorld(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Seed = 7
	world := NewWithConfig(cfg)
	world.Reset(0)
	return world
}

func TestStepEmptyGridStaysEmpty(t *testing.T) {
	world := newTestWorld(16, 12)
	for i := 0; i < 50; i++ {
		world.Step()
	}
	if got := world.Counts().Occupied(); got != 0 {
		t.Fatalf("expected empty grid to stay empty, got %d occupied cells", got)
	}
	for i, v := range world.Cells() {
		if v != uint8(Empty) {
			t.Fatalf("cell %d = %d, want empty", i, v)
		}
	}
}

func TestSandConservedWithoutWater(t *testing.T) {
	world := newTestWorld(24, 18)
	rng := core.NewRNG(99)
	for y := 0; y < 12; y++ {
		for x := 0; x < 24; x++ {
			if rng.Chance(0.45) {
				world.Place(x, y, Sand)
			}
		}
	}
	before := world.Counts().Occupied()
	if before == 0 {
		t.Fatal("expected sand to be placed")
	}
	for step := 0; step < 60; step++ {
		world.Step()
		if got := world.Counts().Of(Sand); got != before {
			t.Fatalf("step %d: sand count %d, want %d", step, got, before)
		}
	}
	if world.Dropped() != 0 {
		t.Fatalf("expected no dropped cells, got %d", world.Dropped())
	}
}

func TestSandSettlesOnFloor(t *testing.T) {
	world := newTestWorld(1, 5)
	world.Place(0, 0, Sand)
	for i := 0; i < 10; i++ {
		world.Step()
	}
	if got := world.Grid().Get(0, 4).Material; got != Sand {
		t.Fatalf("expected sand to rest on the bottom row, got %v", got)
	}
}

func TestSandWaterAnnihilation(t *testing.T) {
	cases := []struct {
		name  string
		w, h  int
		sand  [2]int
		water [2]int
	}{
		{name: "water below", w: 1, h: 2, sand: [2]int{0, 0}, water: [2]int{0, 1}},
		{name: "water above", w: 1, h: 2, sand: [2]int{0, 1}, water: [2]int{0, 0}},
		{name: "water right", w: 2, h: 1, sand: [2]int{0, 0}, water: [2]int{1, 0}},
		{name: "water left", w: 2, h: 1, sand: [2]int{1, 0}, water: [2]int{0, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			world := newTestWorld(tc.w, tc.h)
			world.Place(tc.sand[0], tc.sand[1], Sand)
			world.Place(tc.water[0], tc.water[1], Water)
			world.Step()

			counts := world.Counts()
			if counts.Of(Mud) != 1 || counts.Of(Sand) != 0 || counts.Of(Water) != 0 {
				t.Fatalf("expected exactly one mud cell, got %+v", counts)
			}
		})
	}
}

func TestWaterConsumedOnlyOnce(t *testing.T) {
	world := newTestWorld(3, 1)
	world.Place(0, 0, Sand)
	world.Place(1, 0, Water)
	world.Place(2, 0, Sand)
	world.Step()

	counts := world.Counts()
	if counts.Of(Mud) != 1 || counts.Of(Sand) != 1 || counts.Of(Water) != 0 {
		t.Fatalf("expected one mud and one sand, got %+v", counts)
	}
	if got := world.Grid().Get(0, 0).Material; got != Mud {
		t.Fatalf("expected the first sand in scan order to react, got %v at (0,0)", got)
	}
}

func TestMudHueInBrownRange(t *testing.T) {
	world := newTestWorld(2, 1)
	world.Place(0, 0, Sand)
	world.Place(1, 0, Water)
	world.Step()
	c := world.Grid().Get(0, 0)
	if c.Material != Mud {
		t.Fatalf("expected mud, got %v", c.Material)
	}
	if int(c.Hue) < mudHues.lo || int(c.Hue) > mudHues.hi {
		t.Fatalf("mud hue %d outside [%d, %d]", c.Hue, mudHues.lo, mudHues.hi)
	}
}

func TestMudSinksThroughWater(t *testing.T) {
	world := newTestWorld(3, 2)
	world.Place(1, 0, Mud)
	world.Place(1, 1, Water)
	world.Step()

	if got := world.Grid().Get(1, 1).Material; got != Mud {
		t.Fatalf("expected mud to sink into the water cell, got %v", got)
	}
	if got := world.Grid().Get(0, 0).Material; got != Water {
		t.Fatalf("expected water displaced to the first free neighbour (0,0), got %v", got)
	}
	counts := world.Counts()
	if counts.Of(Water) != 1 || counts.Of(Mud) != 1 {
		t.Fatalf("displacement must not duplicate or lose material, got %+v", counts)
	}
	if world.Dropped() != 0 {
		t.Fatalf("expected no drops, got %d", world.Dropped())
	}
}

func TestDisplacedWaterDroppedWhenBoxedIn(t *testing.T) {
	world := newTestWorld(1, 2)
	world.Place(0, 0, Mud)
	world.Place(0, 1, Water)
	world.Step()

	counts := world.Counts()
	if counts.Of(Mud) != 1 || counts.Of(Water) != 0 {
		t.Fatalf("expected the boxed-in water to be dropped, got %+v", counts)
	}
	if world.Dropped() != 1 {
		t.Fatalf("expected one dropped cell, got %d", world.Dropped())
	}
}

func TestWaterFlowsSideways(t *testing.T) {
	world := newTestWorld(3, 1)
	world.Place(1, 0, Water)
	world.Step()

	if got := world.Grid().Get(1, 0).Material; got != Empty {
		t.Fatalf("expected water to leave the centre cell, got %v", got)
	}
	if world.Counts().Of(Water) != 1 {
		t.Fatalf("expected water to be conserved, got %+v", world.Counts())
	}
}

func TestSandDoesNotFlowSideways(t *testing.T) {
	world := newTestWorld(3, 1)
	world.Place(1, 0, Sand)
	world.Step()
	if got := world.Grid().Get(1, 0).Material; got != Sand {
		t.Fatalf("expected sand to stay put on the floor, got %v", got)
	}
}

func TestContestedDestinationGoesToEarlierColumn(t *testing.T) {
	world := newTestWorld(3, 2)
	g := world.Grid()
	g.Set(0, 1, Cell{Material: Sand, Hue: 30})
	g.Set(2, 1, Cell{Material: Sand, Hue: 30})
	g.Set(0, 0, Cell{Material: Sand, Hue: 31})
	g.Set(2, 0, Cell{Material: Sand, Hue: 39})
	world.Step()

	if c := g.Get(1, 1); c.Material != Sand || c.Hue != 31 {
		t.Fatalf("expected column 0 sand to claim (1,1), got %+v", c)
	}
	if c := g.Get(2, 0); c.Material != Sand || c.Hue != 39 {
		t.Fatalf("expected column 2 sand to stay at (2,0), got %+v", c)
	}
	if c := g.Get(0, 0); c.Material != Empty {
		t.Fatalf("expected (0,0) to be vacated, got %+v", c)
	}
}

func TestSeedWithoutContactNeverGerminates(t *testing.T) {
	world := newTestWorld(5, 5)
	world.Place(2, 0, Seed)
	world.Place(0, 4, Sand)
	for i := 0; i < 200; i++ {
		world.Step()
	}
	counts := world.Counts()
	if counts.Of(Plant) != 0 || counts.Of(Seed) != 1 {
		t.Fatalf("expected the seed to stay dormant, got %+v", counts)
	}
}

func TestSeedGerminatesOnMud(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 5
	cfg.Height = 3
	cfg.Params.AgingChance = 0
	cfg.Params.GrowthChance = 0
	world := NewWithConfig(cfg)
	world.Reset(0)
	world.Place(2, 2, Mud)
	world.Place(2, 1, Seed)
	world.Step()

	c := world.Grid().Get(2, 1)
	if c.Material != Plant {
		t.Fatalf("expected seed to germinate in one step, got %v", c.Material)
	}
	if int(c.Energy) != cfg.Params.SproutEnergy {
		t.Fatalf("expected sprout energy %d, got %d", cfg.Params.SproutEnergy, c.Energy)
	}
	if int(c.Hue) < sproutHues.lo || int(c.Hue) > sproutHues.hi {
		t.Fatalf("sprout hue %d outside green range", c.Hue)
	}
}

func TestPlantsNeverMove(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 3
	cfg.Height = 4
	cfg.Params.GrowthChance = 0
	world := NewWithConfig(cfg)
	world.Reset(0)
	world.Place(1, 0, Plant)
	for i := 0; i < 5; i++ {
		world.Step()
	}
	if got := world.Grid().Get(1, 0).Material; got != Plant {
		t.Fatalf("expected plant to stay in place, got %v", got)
	}
}

func TestGrowthEnergyStrictlyDecreases(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 64
	cfg.Height = 48
	cfg.Params.GrowthChance = 0.6
	world := NewWithConfig(cfg)
	world.Reset(0)
	world.Place(32, 47, Plant)

	edges := 0
	world.OnSpawn(func(s Spawn) {
		edges++
		if s.ChildEnergy >= s.ParentEnergy {
			t.Fatalf("child energy %d not below parent energy %d", s.ChildEnergy, s.ParentEnergy)
		}
	})
	for step := 0; step < 400; step++ {
		world.Step()
		view := world.View()
		for i := 0; i < world.Size().W*world.Size().H; i++ {
			if view.Material(i) == Plant && view.Energy(i) > MaxEnergy {
				t.Fatalf("step %d: plant energy %d exceeds %d", step, view.Energy(i), MaxEnergy)
			}
		}
	}
	if edges == 0 {
		t.Fatal("expected the plant to grow")
	}
	if edges != world.Spawns() {
		t.Fatalf("observer saw %d spawns, world counted %d", edges, world.Spawns())
	}
}

func TestGrowthStaysWithinEnergyBudget(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 128
	cfg.Height = 72
	cfg.Params.GrowthChance = 0.5
	cfg.Params.CanopySkipChance = 0.2
	cfg.Params.TrunkJitterChance = 0.3
	budget := cfg.Params.SproutEnergy

	for _, seed := range []int64{1, 7, 1337} {
		world := NewWithConfig(cfg)
		world.Reset(seed)

		floor := cfg.Height - 1
		for x := 0; x < cfg.Width; x++ {
			world.Place(x, floor, Mud)
		}
		rootX, rootY := cfg.Width/2, floor-1
		world.Place(rootX, rootY, Seed)
		for i := 0; i < 3000; i++ {
			world.Step()
		}

		cells, tips := 0, 0
		view := world.View()
		for y := 0; y < cfg.Height; y++ {
			for x := 0; x < cfg.Width; x++ {
				c := view.At(x, y)
				if c.Material != Plant {
					continue
				}
				cells++
				if !c.Grown {
					tips++
				}
				if y > rootY {
					t.Fatalf("seed %d: plant cell (%d,%d) below the root row %d", seed, x, y, rootY)
				}
				if rootY-y > budget || abs(x-rootX) > budget {
					t.Fatalf("seed %d: plant cell (%d,%d) farther than %d from root (%d,%d)", seed, x, y, budget, rootX, rootY)
				}
			}
		}
		if cells < 2 {
			t.Fatalf("seed %d: expected the seed to grow into a plant, got %d cells", seed, cells)
		}
		if cells > budget+1 {
			t.Fatalf("seed %d: plant has %d cells, budget %d allows at most %d", seed, cells, budget, budget+1)
		}
		if tips != 1 {
			t.Fatalf("seed %d: expected a single growing tip, got %d", seed, tips)
		}
		if world.Spawns() != cells-1 {
			t.Fatalf("seed %d: %d spawns for %d cells", seed, world.Spawns(), cells)
		}
	}
}

func TestSpentPlantCellDoesNotGrowAgain(t *testing.T) {
	world := newTestWorld(3, 3)
	world.cfg.Params.AgingChance = 0
	world.cfg.Params.GrowthChance = 1
	world.cfg.Params.CanopySkipChance = 0
	world.Grid().Set(1, 2, Cell{Material: Plant, Energy: 50, Grown: true})

	for i := 0; i < 20; i++ {
		world.Step()
	}
	if got := world.Counts().Of(Plant); got != 1 {
		t.Fatalf("spent plant spawned, got %d plant cells", got)
	}
	if world.Spawns() != 0 {
		t.Fatalf("expected no spawns, got %d", world.Spawns())
	}
}

func TestSetClampsEnergy(t *testing.T) {
	world := newTestWorld(2, 2)
	world.Grid().Set(0, 0, Cell{Material: Plant, Energy: 255})
	if got := world.Grid().Get(0, 0).Energy; got != MaxEnergy {
		t.Fatalf("energy = %d, want %d", got, MaxEnergy)
	}
}

func TestDroppedWaterCannotMakeMud(t *testing.T) {
	world := newTestWorld(2, 2)
	g := world.Grid()
	g.Set(0, 0, Cell{Material: Mud, Hue: 20})
	g.Set(0, 1, Cell{Material: Water, Hue: 200})
	g.Set(1, 0, Cell{Material: Sand, Hue: 30})
	g.Set(1, 1, Cell{Material: Sand, Hue: 30})

	world.Step()

	counts := world.Counts()
	if world.Dropped() != 1 {
		t.Fatalf("dropped = %d, want 1", world.Dropped())
	}
	if counts.Of(Water) != 0 || counts.Of(Mud) != 1 || counts.Of(Sand) != 2 {
		t.Fatalf("water was dropped and consumed: counts %v", counts)
	}
	if got := g.Get(0, 1).Material; got != Mud {
		t.Fatalf("expected the mud to sink into (0,1), got %v", got)
	}
}

func TestPlaceRejectsOccupiedAndOutOfBounds(t *testing.T) {
	world := newTestWorld(4, 4)
	if !world.Place(1, 1, Sand) {
		t.Fatal("expected placement on empty cell to succeed")
	}
	if world.Place(1, 1, Water) {
		t.Fatal("expected placement on occupied cell to fail")
	}
	if world.Place(-1, 0, Sand) || world.Place(0, 4, Sand) {
		t.Fatal("expected out-of-bounds placement to fail")
	}
	if world.Place(2, 2, Empty) {
		t.Fatal("expected empty placement to be rejected")
	}
	if got := world.Cells()[world.Grid().Index(1, 1)]; got != uint8(Sand) {
		t.Fatalf("expected display to reflect placement, got %d", got)
	}
}

func TestPaintSeedDensity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 10
	cfg.Height = 10
	cfg.Params.BrushRadius = 2
	cfg.Params.SeedDensity = 0
	cfg.Params.BrushDensity = 1
	world := NewWithConfig(cfg)
	world.Reset(0)

	if n := world.PaintMaterial(5, 5, Seed); n != 0 {
		t.Fatalf("expected no seeds with zero density, got %d", n)
	}
	if n := world.PaintMaterial(5, 5, Sand); n != 25 {
		t.Fatalf("expected a full 5x5 brush of sand, got %d", n)
	}
	if n := world.PaintMaterial(0, 0, Water); n != 9 {
		t.Fatalf("expected corner brush to keep only free in-bounds cells, got %d", n)
	}
}

func TestPaintCyclesSandHue(t *testing.T) {
	world := newTestWorld(40, 40)
	world.cfg.Params.BrushDensity = 1
	world.cfg.Params.BrushRadius = 0
	for i := 0; i < 15; i++ {
		world.PaintMaterial(i, 0, Sand)
	}
	for i := 0; i < 15; i++ {
		hue := int(world.Grid().Get(i, 0).Hue)
		if hue < sandHues.lo || hue > sandHues.hi {
			t.Fatalf("sand hue %d outside [%d, %d]", hue, sandHues.lo, sandHues.hi)
		}
	}
	if world.Grid().Get(0, 0).Hue == world.Grid().Get(1, 0).Hue {
		t.Fatal("expected consecutive strokes to use different hues")
	}
}

func TestPaintByToolName(t *testing.T) {
	world := newTestWorld(8, 8)
	world.cfg.Params.BrushDensity = 1
	if !world.Paint(4, 4, "watr") {
		t.Fatal("expected misspelt tool name to resolve to water")
	}
	if world.Counts().Of(Water) == 0 {
		t.Fatal("expected water to be painted")
	}
	if world.Paint(4, 4, "lava") {
		t.Fatal("expected unknown tool to be rejected")
	}
	if !slices.Equal(world.Tools(), []string{"sand", "water", "mud", "seed", "plant"}) {
		t.Fatalf("unexpected tools %v", world.Tools())
	}
}

func TestResizeDiscardsState(t *testing.T) {
	world := newTestWorld(8, 8)
	world.Place(3, 3, Sand)
	if err := world.Resize(12, 6); err != nil {
		t.Fatalf("resize failed: %v", err)
	}
	if s := world.Size(); s.W != 12 || s.H != 6 {
		t.Fatalf("expected 12x6, got %dx%d", s.W, s.H)
	}
	if world.Counts().Occupied() != 0 {
		t.Fatal("expected resize to clear every cell")
	}
	if len(world.Cells()) != 72 {
		t.Fatalf("expected display buffer of 72 cells, got %d", len(world.Cells()))
	}
	world.Place(11, 5, Water)
	world.Step()

	if err := world.Resize(0, 5); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}
	if s := world.Size(); s.W != 12 || s.H != 6 {
		t.Fatal("rejected resize must leave the grid untouched")
	}
}

func TestStepDeterministicForSeed(t *testing.T) {
	run := func() []uint8 {
		world := newTestWorld(32, 24)
		world.cfg.Params.SeedDensity = 0.5
		for i := 0; i < 8; i++ {
			world.PaintMaterial(4+i*3, 2, Sand)
			world.PaintMaterial(6+i*3, 6, Water)
			world.PaintMaterial(5+i*3, 10, Seed)
		}
		for i := 0; i < 80; i++ {
			world.Step()
		}
		return append([]uint8(nil), world.Cells()...)
	}
	if !slices.Equal(run(), run()) {
		t.Fatal("identical seeds must produce identical worlds")
	}
}

func TestResetClearsWorld(t *testing.T) {
	world := newTestWorld(8, 8)
	world.Place(1, 1, Sand)
	world.Step()
	world.Reset(5)
	if world.Counts().Occupied() != 0 || world.Tick() != 0 || world.Dropped() != 0 {
		t.Fatal("expected reset to clear cells and counters")
	}
}

func TestRegisteredInCore(t *testing.T) {
	factory, err := core.Lookup("sand")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	sim := factory(map[string]string{"w": "20", "h": "10"})
	if s := sim.Size(); s.W != 20 || s.H != 10 {
		t.Fatalf("expected 20x10 sim, got %dx%d", s.W, s.H)
	}
	if _, err := core.Lookup("snad"); err == nil {
		t.Fatal("expected unknown sim lookup to fail")
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
