// Package spectrum assembles renderable blackbody emission datasets: it
// evaluates Planck radiance across a fixed wavelength grid, integrates
// total and visible-band energy, and attaches display colors.
package spectrum

import (
	"gonum.org/v1/gonum/floats"
)

// Grid is an immutable log-spaced wavelength grid, held in both
// micrometers and meters with identical indexing. It is built once at
// startup and may be shared read-only across concurrent computations.
type Grid struct {
	microns []float64
	meters  []float64
}

// NewGrid builds a grid of n wavelengths logarithmically spaced between
// minMicrons and maxMicrons inclusive.
func NewGrid(n int, minMicrons, maxMicrons float64) *Grid {
	microns := floats.LogSpan(make([]float64, n), minMicrons, maxMicrons)
	meters := make([]float64, n)
	for i, um := range microns {
		meters[i] = um * 1e-6
	}
	return &Grid{microns: microns, meters: meters}
}

// Len returns the number of samples in the grid.
func (g *Grid) Len() int { return len(g.microns) }

// MicronsAt returns the wavelength at index i in micrometers.
func (g *Grid) MicronsAt(i int) float64 { return g.microns[i] }

// MetersAt returns the wavelength at index i in meters.
func (g *Grid) MetersAt(i int) float64 { return g.meters[i] }
