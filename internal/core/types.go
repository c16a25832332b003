package core

import (
	"fmt"
	"sort"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Resizer is implemented by sims whose grid follows the viewport. Resize
// discards all simulation state.
type Resizer interface {
	Resize(w, h int) error
}

// Placer accepts pointer strokes. Tools lists the brush names Paint accepts.
type Placer interface {
	Tools() []string
	Paint(x, y int, tool string) bool
}

// ColorSource is implemented by sims that colour every cell individually
// instead of through a fixed palette.
type ColorSource interface {
	FillRGBA(buf []byte)
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Names lists the registered simulations in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for n := range sims {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the factory registered under name. Unknown names produce an
// error that suggests the closest registered name, if any is near enough.
func Lookup(name string) (Factory, error) {
	if f, ok := sims[name]; ok {
		return f, nil
	}
	if guess, ok := ClosestName(name, Names()); ok {
		return nil, fmt.Errorf("unknown sim %q (did you mean %q?)", name, guess)
	}
	return nil, fmt.Errorf("unknown sim %q", name)
}
