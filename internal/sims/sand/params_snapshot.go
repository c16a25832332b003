package sand

import (
	"strconv"

	"sandgarden/internal/core"
)

// Parameters reports the world size, counters and every tunable, grouped for
// the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Columns", w.grid.W),
				intParam("h", "Rows", w.grid.H),
				int64Param("seed", "Seed", w.cfg.Seed),
				intParam("tick", "Tick", w.tick),
				intParam("dropped", "Dropped cells", w.dropped),
			},
		},
		{
			Name: "Brush",
			Params: []core.Parameter{
				intParam("brush_radius", "Brush radius", params.BrushRadius),
				floatParam("brush_density", "Brush density", params.BrushDensity),
				floatParam("seed_density", "Seed density", params.SeedDensity),
			},
		},
		{
			Name: "Plants",
			Params: []core.Parameter{
				intParam("sprout_energy", "Sprout energy", params.SproutEnergy),
				intParam("plant_energy", "Placed plant energy", params.PlantEnergy),
				intParam("canopy_threshold", "Canopy threshold", params.CanopyThreshold),
				floatParam("aging_chance", "Aging chance", params.AgingChance),
				floatParam("growth_chance", "Growth chance", params.GrowthChance),
				floatParam("canopy_skip_chance", "Canopy skip chance", params.CanopySkipChance),
				floatParam("canopy_level_chance", "Canopy level chance", params.CanopyLevelChance),
				floatParam("trunk_jitter_chance", "Trunk jitter chance", params.TrunkJitterChance),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the tunables the HUD may adjust.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		intControl("brush_radius", "Brush radius", 1, 0, 8),
		floatControl("brush_density", "Brush density", 0.05),
		floatControl("seed_density", "Seed density", 0.01),
		intControl("sprout_energy", "Sprout energy", 5, 1, MaxEnergy),
		intControl("canopy_threshold", "Canopy threshold", 1, 0, MaxEnergy),
		floatControl("growth_chance", "Growth chance", 0.05),
		floatControl("canopy_skip_chance", "Canopy skip", 0.05),
		floatControl("trunk_jitter_chance", "Trunk jitter", 0.05),
		floatControl("aging_chance", "Aging chance", 0.005),
	}
}

// SetIntParameter updates an integer tunable, clamping to its valid range.
func (w *World) SetIntParameter(key string, value int) bool {
	dst, ok := w.cfg.Params.intFields()[key]
	if !ok {
		return false
	}
	*dst = value
	w.cfg.Params.normalize()
	return true
}

// SetFloatParameter updates a probability tunable, clamping to [0, 1].
func (w *World) SetFloatParameter(key string, value float64) bool {
	dst, ok := w.cfg.Params.floatFields()[key]
	if !ok {
		return false
	}
	*dst = value
	w.cfg.Params.normalize()
	return true
}

func intControl(key, label string, step, min, max float64) core.ParameterControl {
	return core.ParameterControl{
		Key:    key,
		Label:  label,
		Type:   core.ParamTypeInt,
		Step:   step,
		Min:    min,
		Max:    max,
		HasMin: true,
		HasMax: true,
	}
}

func floatControl(key, label string, step float64) core.ParameterControl {
	return core.ParameterControl{
		Key:    key,
		Label:  label,
		Type:   core.ParamTypeFloat,
		Step:   step,
		Min:    0,
		Max:    1,
		HasMin: true,
		HasMax: true,
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
