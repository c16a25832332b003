package sand

import (
	"image/color"
	"math"
)

// tone is the saturation/brightness a material is drawn with; the hue comes
// from the cell.
type tone struct {
	sat, val float64
}

var materialTones = [materialCount]tone{
	Sand:  {sat: 0.75, val: 1.0},
	Water: {sat: 0.8, val: 0.9},
	Mud:   {sat: 0.7, val: 0.45},
	Seed:  {sat: 0.55, val: 0.85},
	Plant: {sat: 0.8, val: 0.55},
}

var sandPalette = buildPalette()

// Palette maps each Cells value to a representative colour.
func (w *World) Palette() []color.RGBA {
	return sandPalette
}

func buildPalette() []color.RGBA {
	palette := make([]color.RGBA, materialCount)
	mids := [materialCount]hueRange{
		Sand:  sandHues,
		Water: waterHues,
		Mud:   mudHues,
		Seed:  seedHues,
		Plant: sproutHues,
	}
	palette[Empty] = cellColor(Cell{})
	for m := Sand; m < materialCount; m++ {
		r := mids[m]
		palette[m] = cellColor(Cell{Material: m, Hue: uint16((r.lo + r.hi) / 2), Energy: MaxEnergy / 2})
	}
	return palette
}

// FillRGBA writes the colour of every current cell into buf (4 bytes per
// cell). Empty cells are opaque black.
func (w *World) FillRGBA(buf []byte) {
	cur := w.grid.cur
	for i := range cur.material {
		base := i * 4
		if base+3 >= len(buf) {
			return
		}
		col := cellColor(cur.cell(i))
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

func cellColor(c Cell) color.RGBA {
	if c.Material == Empty || c.Material >= materialCount {
		return color.RGBA{A: 255}
	}
	t := materialTones[c.Material]
	val := t.val
	if c.Material == Plant {
		// Young tips are drawn lighter than the trunk.
		val += 0.35 * (1 - float64(c.Energy)/MaxEnergy)
	}
	return hsvToRGBA(float64(c.Hue%360), t.sat, math.Min(val, 1))
}

func hsvToRGBA(h, s, v float64) color.RGBA {
	c := v * s
	hp := h / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	m := v - c
	return color.RGBA{
		R: uint8((r+m)*255 + 0.5),
		G: uint8((g+m)*255 + 0.5),
		B: uint8((b+m)*255 + 0.5),
		A: 255,
	}
}
