//go:build ebiten

package ui

import (
	"image/color"

	"sandgarden/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type energyMaskProvider interface {
	EnergyMask(dst []float32) []float32
}

type waterMaskProvider interface {
	WaterMask(dst []float32) []float32
}

var (
	energyTint = color.RGBA{R: 255, G: 120, B: 40}
	waterTint  = color.RGBA{R: 64, G: 164, B: 223}
)

// Overlay draws optional heatmaps on top of the sim view. E toggles plant
// energy and W toggles water.
type Overlay struct {
	sim        core.Sim
	scale      int
	showEnergy bool
	showWater  bool

	maskImg *ebiten.Image
	maskBuf []byte
	mask    []float32
}

// NewOverlay constructs an overlay for sim drawn at the given scale.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{sim: sim, scale: scale}
}

// Update handles the toggle keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		o.showEnergy = !o.showEnergy
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		o.showWater = !o.showWater
	}
}

// Draw renders the enabled heatmaps onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showEnergy {
		if p, ok := o.sim.(energyMaskProvider); ok {
			o.mask = p.EnergyMask(o.mask)
			o.drawMask(screen, energyTint)
		}
	}
	if o.showWater {
		if p, ok := o.sim.(waterMaskProvider); ok {
			o.mask = p.WaterMask(o.mask)
			o.drawMask(screen, waterTint)
		}
	}
}

func (o *Overlay) drawMask(screen *ebiten.Image, tint color.RGBA) {
	size := o.sim.Size()
	total := size.W * size.H
	if total == 0 || len(o.mask) != total {
		return
	}
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
		if o.maskImg != nil {
			o.maskImg.Dispose()
		}
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
	}
	fillMaskRGBA(o.maskBuf, o.mask, tint)
	o.maskImg.WritePixels(o.maskBuf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.maskImg, op)
}
