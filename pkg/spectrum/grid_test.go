package spectrum

import (
	"math"
	"testing"
)

func TestNewGrid(t *testing.T) {
	g := NewGrid(3000, 0.01, 300)

	if g.Len() != 3000 {
		t.Fatalf("Len() = %d; want 3000", g.Len())
	}
	if first := g.MicronsAt(0); math.Abs(first-0.01) > 1e-12 {
		t.Errorf("first sample = %g µm; want 0.01", first)
	}
	if last := g.MicronsAt(g.Len() - 1); math.Abs(last-300) > 1e-9 {
		t.Errorf("last sample = %g µm; want 300", last)
	}

	for i := 1; i < g.Len(); i++ {
		if g.MicronsAt(i) <= g.MicronsAt(i-1) {
			t.Fatalf("grid not strictly increasing at index %d: %g <= %g", i, g.MicronsAt(i), g.MicronsAt(i-1))
		}
	}

	// Unit arrays index identically.
	for _, i := range []int{0, 1, 1500, 2999} {
		if diff := math.Abs(g.MetersAt(i) - g.MicronsAt(i)*1e-6); diff > 1e-18 {
			t.Errorf("meters/microns mismatch at %d: %g vs %g", i, g.MetersAt(i), g.MicronsAt(i))
		}
	}
}

func TestNewGridLogSpacing(t *testing.T) {
	// log10 spacing is uniform: the ratio of consecutive samples is
	// constant.
	g := NewGrid(100, 0.1, 10)
	wantRatio := g.MicronsAt(1) / g.MicronsAt(0)
	for i := 2; i < g.Len(); i++ {
		ratio := g.MicronsAt(i) / g.MicronsAt(i-1)
		if math.Abs(ratio-wantRatio) > 1e-9 {
			t.Fatalf("non-uniform log spacing at %d: ratio %g, want %g", i, ratio, wantRatio)
		}
	}
}
