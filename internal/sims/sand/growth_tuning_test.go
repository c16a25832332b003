package sand

import "testing"

func TestPlantGrowthResultGrowsTree(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 96
	cfg.Height = 72

	res := PlantGrowthResult(cfg, 600)
	if res.Cells < 2 {
		t.Fatalf("expected the seed to grow, got %d plant cells", res.Cells)
	}
	if res.MonotonicViolations != 0 {
		t.Fatalf("expected energy to decrease along every growth edge, got %d violations", res.MonotonicViolations)
	}
	if res.Height > cfg.Params.SproutEnergy+1 {
		t.Fatalf("plant height %d exceeds energy budget %d", res.Height, cfg.Params.SproutEnergy)
	}
	if res.Budget != cfg.Params.SproutEnergy {
		t.Fatalf("budget = %d, want %d", res.Budget, cfg.Params.SproutEnergy)
	}
	if limit := 1 + 1/float64(res.Budget); res.CellsPerBudget() > limit {
		t.Fatalf("%.3f cells per unit of energy, want at most %.3f", res.CellsPerBudget(), limit)
	}
	if res.Spawns != res.Cells-1 {
		t.Fatalf("expected one spawn per grown cell, got %d spawns for %d cells", res.Spawns, res.Cells)
	}
}

func TestGrowthParameterSweepOrdersByScore(t *testing.T) {
	if testing.Short() {
		t.Skip("sweep runs many scenarios")
	}
	cfg := DefaultConfig()
	cfg.Width = 64
	cfg.Height = 48
	records := GrowthParameterSweep(cfg, 150, 4, 1)
	if len(records) != 81 {
		t.Fatalf("expected 81 parameter sets, got %d", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i].Score > records[i-1].Score {
			t.Fatalf("records not sorted by score at %d", i)
		}
	}
}
