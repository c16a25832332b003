package sand

import (
	"errors"
	"fmt"

	"sandgarden/internal/core"
)

// Material enumerates what a cell contains.
type Material uint8

const (
	Empty Material = iota
	Sand
	Water
	Mud
	Seed
	Plant

	materialCount
)

// MaxEnergy bounds the energy attribute of every cell.
const MaxEnergy = 100

var materialNames = [materialCount]string{
	Empty: "empty",
	Sand:  "sand",
	Water: "water",
	Mud:   "mud",
	Seed:  "seed",
	Plant: "plant",
}

// ErrUnknownMaterial is returned by ParseMaterial for unrecognised names.
var ErrUnknownMaterial = errors.New("unknown material")

func (m Material) String() string {
	if m < materialCount {
		return materialNames[m]
	}
	return fmt.Sprintf("material(%d)", uint8(m))
}

// Placeable lists the materials accepted by Place and Paint.
func Placeable() []Material {
	return []Material{Sand, Water, Mud, Seed, Plant}
}

// ParseMaterial resolves a material name, tolerating small typos.
func ParseMaterial(name string) (Material, error) {
	names := materialNames[:]
	guess, ok := core.ClosestName(name, names)
	if !ok {
		return Empty, fmt.Errorf("%w %q", ErrUnknownMaterial, name)
	}
	for i, n := range names {
		if n == guess {
			return Material(i), nil
		}
	}
	return Empty, fmt.Errorf("%w %q", ErrUnknownMaterial, name)
}

// sinks reports whether m may move into a cell currently holding water.
func (m Material) sinks() bool {
	return m == Sand || m == Mud || m == Seed
}

// flows reports whether m spreads sideways when it cannot fall.
func (m Material) flows() bool {
	return m == Water
}

type hueRange struct {
	lo, hi int
}

var (
	sandHues   = hueRange{lo: 30, hi: 40}
	waterHues  = hueRange{lo: 195, hi: 215}
	mudHues    = hueRange{lo: 18, hi: 28}
	seedHues   = hueRange{lo: 45, hi: 55}
	sproutHues = hueRange{lo: 100, hi: 120}
	canopyHues = hueRange{lo: 85, hi: 135}
)

func (w *World) hue(r hueRange) uint16 {
	return uint16(w.rng.Between(r.lo, r.hi))
}
