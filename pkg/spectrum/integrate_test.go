package spectrum

import (
	"math"
	"testing"
)

func TestIntegrateEnergyConstantFunction(t *testing.T) {
	// The trapezoidal rule is exact for a constant, so the total is
	// the grid width and the visible part is close to the band width.
	g := NewGrid(2000, 0.1, 10)
	radiance := make([]float64, g.Len())
	for i := range radiance {
		radiance[i] = 1
	}

	e := integrateEnergy(g, radiance, 0.4, 0.75)

	wantTotal := g.MetersAt(g.Len()-1) - g.MetersAt(0)
	if diff := math.Abs(e.Total-wantTotal) / wantTotal; diff > 1e-9 {
		t.Errorf("Total = %g; want %g", e.Total, wantTotal)
	}

	wantVisible := (0.75 - 0.4) * 1e-6
	if diff := math.Abs(e.Visible-wantVisible) / wantVisible; diff > 0.01 {
		t.Errorf("Visible = %g; want within 1%% of %g", e.Visible, wantVisible)
	}

	if e.Fraction <= 0 || e.Fraction >= 1 {
		t.Errorf("Fraction = %g; want in (0,1)", e.Fraction)
	}
}

func TestIntegrateEnergyZeroTotal(t *testing.T) {
	g := NewGrid(100, 0.1, 10)
	radiance := make([]float64, g.Len())

	e := integrateEnergy(g, radiance, 0.4, 0.75)
	if e.Total != 0 || e.Visible != 0 || e.Fraction != 0 {
		t.Errorf("zero spectrum gave %+v; want all zeros", e)
	}
}

func TestIntegrateEnergyBandOutsideGrid(t *testing.T) {
	// A band entirely outside the grid contributes nothing.
	g := NewGrid(100, 1, 10)
	radiance := make([]float64, g.Len())
	for i := range radiance {
		radiance[i] = 1
	}

	e := integrateEnergy(g, radiance, 0.4, 0.75)
	if e.Visible != 0 {
		t.Errorf("Visible = %g; want 0 for out-of-grid band", e.Visible)
	}
	if e.Fraction != 0 {
		t.Errorf("Fraction = %g; want 0", e.Fraction)
	}
}
