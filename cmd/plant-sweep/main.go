package main

import (
	"flag"
	"fmt"
	"runtime"
	"time"

	"sandgarden/internal/sims/sand"
)

func main() {
	steps := flag.Int("steps", 600, "ticks to simulate per candidate")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("w", 128, "grid columns for each run")
	height := flag.Int("h", 96, "grid rows for each run")
	seed := flag.Int64("seed", 1337, "seed used for deterministic runs")
	aspect := flag.Float64("aspect", 1.0, "target canopy width over height")
	top := flag.Int("top", 5, "number of results to print")
	flag.Parse()

	cfg := sand.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.Seed = *seed

	baseline := sand.PlantGrowthResult(cfg, *steps)
	fmt.Printf("Baseline: cells=%d (%.2f per unit of energy) size=%dx%d aspect=%.2f last=%d violations=%d\n",
		baseline.Cells, baseline.CellsPerBudget(), baseline.Width, baseline.Height, baseline.Aspect(), baseline.LastGrowthStep, baseline.MonotonicViolations)

	start := time.Now()
	records := sand.GrowthParameterSweep(cfg, *steps, *workers, *aspect)
	elapsed := time.Since(start)

	fmt.Printf("\nSwept %d parameter sets (%d workers, %d steps, elapsed %s)\n",
		len(records), *workers, *steps, elapsed.Round(time.Millisecond))
	for i := 0; i < len(records) && i < *top; i++ {
		rec := records[i]
		fmt.Printf("%2d) score=%.3f %s\n", i+1, rec.Score, rec)
		if rec.Result.MonotonicViolations > 0 {
			fmt.Printf("    warning: %d energy violations\n", rec.Result.MonotonicViolations)
		}
	}
}
