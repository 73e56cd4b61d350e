package spectrum

import (
	"gonum.org/v1/gonum/integrate"
)

// Energy holds the trapezoidal energy integrals for one spectrum sample.
type Energy struct {
	// Total is the radiance integrated over the whole grid, W·sr⁻¹·m⁻².
	Total float64 `json:"total"`
	// Visible is the radiance integrated over grid intervals whose
	// midpoint falls inside the visible band.
	Visible float64 `json:"visible"`
	// Fraction is Visible/Total, or 0 when Total is 0.
	Fraction float64 `json:"fraction"`
}

// integrateEnergy computes total and visible-band energy for radiance
// values sampled on the grid. Band membership of an interval is decided
// by its midpoint wavelength in micrometers.
func integrateEnergy(grid *Grid, radiance []float64, bandMinMicrons, bandMaxMicrons float64) Energy {
	e := Energy{
		Total: integrate.Trapezoidal(grid.meters, radiance),
	}

	for i := 1; i < grid.Len(); i++ {
		mid := 0.5 * (grid.microns[i-1] + grid.microns[i])
		if mid < bandMinMicrons || mid > bandMaxMicrons {
			continue
		}
		e.Visible += 0.5 * (radiance[i-1] + radiance[i]) * (grid.meters[i] - grid.meters[i-1])
	}

	if e.Total > 0 {
		e.Fraction = e.Visible / e.Total
	}
	return e
}
