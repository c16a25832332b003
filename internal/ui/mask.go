package ui

import (
	"image/color"
	"math"
)

const (
	maskMaxAlpha  = 140.0
	maskGlowBase  = 0.35
	maskGlowRange = 0.65
	maskBias      = 0.75
)

// fillMaskRGBA tints buf by the per-cell intensities in mask. Pixels are
// written premultiplied, as ebiten expects.
func fillMaskRGBA(buf []byte, mask []float32, tint color.RGBA) {
	for i, m := range mask {
		base := i * 4
		intensity := clamp01(float64(m))
		if intensity == 0 {
			buf[base+0], buf[base+1], buf[base+2], buf[base+3] = 0, 0, 0, 0
			continue
		}
		alpha := math.Round(maskMaxAlpha * math.Pow(intensity, maskBias))
		glow := (maskGlowBase + maskGlowRange*math.Sqrt(intensity)) * alpha / 255
		buf[base+0] = scaleComponent(tint.R, glow)
		buf[base+1] = scaleComponent(tint.G, glow)
		buf[base+2] = scaleComponent(tint.B, glow)
		buf[base+3] = uint8(alpha)
	}
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

func scaleComponent(value uint8, factor float64) uint8 {
	scaled := math.Round(float64(value) * factor)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
