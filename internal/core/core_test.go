package core

import (
	"strings"
	"testing"
	"time"
)

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(12345)
	b := NewRNG(12345)
	for i := 0; i < 50; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("expected deterministic sequence, mismatch at %d: %d != %d", i, x, y)
		}
	}
	a.Reseed(12345)
	c := NewRNG(12345)
	if a.Float64() != c.Float64() {
		t.Fatal("expected reseed to restart the stream")
	}
}

func TestRNGRanges(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 200; i++ {
		if s := r.Sign(); s != -1 && s != 1 {
			t.Fatalf("sign returned %d", s)
		}
		if v := r.Between(30, 40); v < 30 || v > 40 {
			t.Fatalf("between returned %d", v)
		}
	}
	if r.Chance(0) || !r.Chance(1) {
		t.Fatal("chance must honour the 0 and 1 extremes")
	}
	if r.IntN(0) != 0 || r.Between(5, 5) != 5 {
		t.Fatal("degenerate ranges must collapse")
	}
}

func TestDimsBounds(t *testing.T) {
	d := Dims{W: 4, H: 3}
	if !d.InBounds(0, 0) || !d.InBounds(3, 2) {
		t.Fatal("corners must be in bounds")
	}
	if d.InBounds(-1, 0) || d.InBounds(4, 0) || d.InBounds(0, 3) {
		t.Fatal("outside coordinates must be rejected")
	}
	if idx := d.Index(3, 2); idx != 11 {
		t.Fatalf("index = %d, want 11", idx)
	}
	if x, y := d.Coords(6); x != 2 || y != 1 {
		t.Fatalf("coords(6) = (%d,%d), want (2,1)", x, y)
	}
	if _, _, ok := d.Neighbor(0, 0, Orthogonal[0]); ok {
		t.Fatal("left of the origin must be out of bounds")
	}
	if x, y, ok := d.Neighbor(0, 0, Orthogonal[3]); !ok || x != 0 || y != 1 {
		t.Fatalf("down of the origin = (%d,%d,%v)", x, y, ok)
	}
}

func TestMooreOffsetsUnique(t *testing.T) {
	seen := map[Offset]bool{}
	for _, o := range Moore {
		if o.DX == 0 && o.DY == 0 {
			t.Fatal("moore neighbourhood must skip the centre")
		}
		if seen[o] {
			t.Fatalf("duplicate offset %+v", o)
		}
		seen[o] = true
	}
}

func TestByteGridMarks(t *testing.T) {
	g := NewByteGrid(0, 2)
	if g.W != 1 || g.H != 2 {
		t.Fatalf("expected clamped 1x2 grid, got %dx%d", g.W, g.H)
	}
	g.Mark(1, 0x2)
	if !g.Has(1, 0x2) || g.Has(1, 0x1) || g.Has(0, 0x2) {
		t.Fatal("mark must set only the requested bits")
	}
	g.Clear()
	if g.Has(1, 0x2) {
		t.Fatal("clear must reset all marks")
	}
}

func TestClosestName(t *testing.T) {
	names := []string{"sand", "water", "plant"}
	if got, ok := ClosestName("WATER", names); !ok || got != "water" {
		t.Fatalf("exact match failed: %q %v", got, ok)
	}
	if got, ok := ClosestName("plannt", names); !ok || got != "plant" {
		t.Fatalf("typo match failed: %q %v", got, ok)
	}
	if _, ok := ClosestName("volcano", names); ok {
		t.Fatal("distant names must not match")
	}
	if _, ok := ClosestName("", names); ok {
		t.Fatal("empty names must not match")
	}
}

func TestLookupSuggestsName(t *testing.T) {
	Register("lookup-test", func(map[string]string) Sim { return nil })
	if _, err := Lookup("lookup-test"); err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	_, err := Lookup("lookup-tset")
	if err == nil || !strings.Contains(err.Error(), `did you mean "lookup-test"`) {
		t.Fatalf("expected suggestion, got %v", err)
	}
}

func TestNamesSorted(t *testing.T) {
	Register("names-b", func(map[string]string) Sim { return nil })
	Register("names-a", func(map[string]string) Sim { return nil })
	names := Names()
	ia, ib := -1, -1
	for i, n := range names {
		switch n {
		case "names-a":
			ia = i
		case "names-b":
			ib = i
		}
		if i > 0 && names[i-1] > n {
			t.Fatalf("names not sorted: %v", names)
		}
	}
	if ia < 0 || ib < 0 || ia > ib {
		t.Fatalf("expected both registered names in order, got %v", names)
	}
}

func TestFixedStepDue(t *testing.T) {
	now := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return now }

	if n := fs.Due(); n != 1 {
		t.Fatalf("expected the first call to release one tick, got %d", n)
	}
	now = now.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("expected no tick before the step duration elapsed")
	}
	now = now.Add(260 * time.Millisecond)
	if n := fs.Due(); n != 3 {
		t.Fatalf("expected 3 ticks after 310ms at 10 TPS, got %d", n)
	}
	now = now.Add(10 * time.Second)
	if n := fs.Due(); n != fs.maxCatchUp {
		t.Fatalf("expected a stall to be capped at %d ticks, got %d", fs.maxCatchUp, n)
	}
	if fs.TPS() != 10 {
		t.Fatalf("expected TPS 10, got %d", fs.TPS())
	}
}
