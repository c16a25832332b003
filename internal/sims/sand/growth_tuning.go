package sand

import (
	"fmt"
	"math"
	"sort"
	"sync"
)

// GrowthResult captures telemetry from a deterministic single-plant run.
type GrowthResult struct {
	// Cells is the number of plant cells at the end of the run.
	Cells int
	// Budget is the sprouting energy the root started with.
	Budget int
	// Height and Width describe the bounding box of the plant.
	Height int
	Width  int
	// Spawns counts successful growth events.
	Spawns int
	// LastGrowthStep is the final tick in which the plant spawned a cell.
	LastGrowthStep int
	// StepsSimulated reports how many ticks were executed.
	StepsSimulated int
	// MonotonicViolations counts spawn edges where the child did not have
	// strictly less energy than its parent. It is expected to stay zero.
	MonotonicViolations int
}

// Aspect returns width over height, or 0 for an empty plant.
func (r GrowthResult) Aspect() float64 {
	if r.Height == 0 {
		return 0
	}
	return float64(r.Width) / float64(r.Height)
}

// CellsPerBudget returns plant cells per unit of root energy. Tip growth
// keeps it at or below 1 + 1/Budget.
func (r GrowthResult) CellsPerBudget() float64 {
	if r.Budget <= 0 {
		return 0
	}
	return float64(r.Cells) / float64(r.Budget)
}

// GrowthRecord pairs a parameter set with the telemetry it produced.
type GrowthRecord struct {
	Params Params
	Result GrowthResult
	Score  float64
}

func (r GrowthRecord) String() string {
	return fmt.Sprintf("sprout=%d canopy=%d growth=%.2f skip=%.2f jitter=%.2f cells=%d (%.2f/energy) size=%dx%d aspect=%.2f last=%d",
		r.Params.SproutEnergy, r.Params.CanopyThreshold, r.Params.GrowthChance, r.Params.CanopySkipChance,
		r.Params.TrunkJitterChance, r.Result.Cells, r.Result.CellsPerBudget(), r.Result.Width, r.Result.Height, r.Result.Aspect(), r.Result.LastGrowthStep)
}

// PlantGrowthResult grows a single seed on a mud bed at the bottom centre of
// an otherwise empty world and reports the resulting structure.
func PlantGrowthResult(cfg Config, steps int) GrowthResult {
	if steps <= 0 {
		return GrowthResult{}
	}
	world := NewWithConfig(cfg)
	world.Reset(0)

	size := world.Size()
	floor := size.H - 1
	for x := 0; x < size.W; x++ {
		world.Place(x, floor, Mud)
	}
	cx := size.W / 2
	world.Place(cx, floor-1, Seed)

	res := GrowthResult{Budget: world.Config().Params.SproutEnergy}
	world.OnSpawn(func(s Spawn) {
		if s.ChildEnergy >= s.ParentEnergy {
			res.MonotonicViolations++
		}
		res.LastGrowthStep = world.Tick() + 1
	})
	for step := 0; step < steps; step++ {
		world.Step()
	}
	res.StepsSimulated = steps
	res.Spawns = world.Spawns()

	minX, maxX, minY, maxY := size.W, -1, size.H, -1
	view := world.View()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if view.At(x, y).Material != Plant {
				continue
			}
			res.Cells++
			minX = min(minX, x)
			maxX = max(maxX, x)
			minY = min(minY, y)
			maxY = max(maxY, y)
		}
	}
	if res.Cells > 0 {
		res.Width = maxX - minX + 1
		res.Height = maxY - minY + 1
	}
	return res
}

// GrowthParameterSweep evaluates a grid of plant tunables around base in
// parallel and returns the records ordered best first. A record scores
// higher the closer its aspect ratio is to targetAspect, with a small bonus
// for fuller plants.
func GrowthParameterSweep(base Config, steps, workers int, targetAspect float64) []GrowthRecord {
	if workers <= 0 {
		workers = 1
	}
	var sets []Params
	for _, sprout := range []int{40, 60, 80} {
		for _, canopy := range []int{10, 20, 30} {
			for _, growth := range []float64{0.1, 0.2, 0.35} {
				for _, jitter := range []float64{0.05, 0.1, 0.2} {
					p := base.Params
					p.SproutEnergy = sprout
					p.CanopyThreshold = canopy
					p.GrowthChance = growth
					p.TrunkJitterChance = jitter
					p.normalize()
					sets = append(sets, p)
				}
			}
		}
	}

	jobs := make(chan Params)
	results := make(chan GrowthRecord)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				cfg := base
				cfg.Params = params
				res := PlantGrowthResult(cfg, steps)
				results <- GrowthRecord{Params: params, Result: res, Score: growthScore(res, targetAspect)}
			}
		}()
	}
	go func() {
		for _, p := range sets {
			jobs <- p
		}
		close(jobs)
	}()
	go func() {
		wg.Wait()
		close(results)
	}()

	records := make([]GrowthRecord, 0, len(sets))
	for rec := range results {
		records = append(records, rec)
	}
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Score != records[j].Score {
			return records[i].Score > records[j].Score
		}
		return records[i].Result.Cells > records[j].Result.Cells
	})
	return records
}

func growthScore(res GrowthResult, targetAspect float64) float64 {
	if res.Cells == 0 {
		return math.Inf(-1)
	}
	return -math.Abs(res.Aspect()-targetAspect) + 0.001*float64(res.Cells)
}
