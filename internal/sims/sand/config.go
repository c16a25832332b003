package sand

import "strconv"

// Params holds tunable thresholds and probabilities for the sandbox.
type Params struct {
	BrushRadius  int
	BrushDensity float64
	SeedDensity  float64

	SproutEnergy    int
	PlantEnergy     int
	CanopyThreshold int

	AgingChance       float64
	GrowthChance      float64
	CanopySkipChance  float64
	CanopyLevelChance float64
	TrunkJitterChance float64
}

// Config controls the sandbox dimensions and rules.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  160,
		Height: 120,
		Seed:   1337,
		Params: Params{
			BrushRadius:       2,
			BrushDensity:      0.75,
			SeedDensity:       0.05,
			SproutEnergy:      60,
			PlantEnergy:       MaxEnergy,
			CanopyThreshold:   20,
			AgingChance:       0.01,
			GrowthChance:      0.2,
			CanopySkipChance:  0.7,
			CanopyLevelChance: 0.6,
			TrunkJitterChance: 0.1,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Invalid values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	for key, dst := range c.Params.intFields() {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			*dst = parsed
		}
	}
	for key, dst := range c.Params.floatFields() {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = parsed
		}
	}
	c.Params.normalize()
	return c
}

func (p *Params) intFields() map[string]*int {
	return map[string]*int{
		"brush_radius":     &p.BrushRadius,
		"sprout_energy":    &p.SproutEnergy,
		"plant_energy":     &p.PlantEnergy,
		"canopy_threshold": &p.CanopyThreshold,
	}
}

func (p *Params) floatFields() map[string]*float64 {
	return map[string]*float64{
		"brush_density":       &p.BrushDensity,
		"seed_density":        &p.SeedDensity,
		"aging_chance":        &p.AgingChance,
		"growth_chance":       &p.GrowthChance,
		"canopy_skip_chance":  &p.CanopySkipChance,
		"canopy_level_chance": &p.CanopyLevelChance,
		"trunk_jitter_chance": &p.TrunkJitterChance,
	}
}

// normalize clamps energies to [0, MaxEnergy] and probabilities to [0, 1].
func (p *Params) normalize() {
	if p.BrushRadius < 0 {
		p.BrushRadius = 0
	}
	p.SproutEnergy = clampInt(p.SproutEnergy, 0, MaxEnergy)
	p.PlantEnergy = clampInt(p.PlantEnergy, 0, MaxEnergy)
	p.CanopyThreshold = clampInt(p.CanopyThreshold, 0, MaxEnergy)
	for _, f := range p.floatFields() {
		*f = clamp01(*f)
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
