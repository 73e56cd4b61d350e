// Package planck evaluates blackbody spectral radiance using Planck's law
// and locates the emission peak using Wien's displacement law.
package planck

import "math"

// Exact SI values per the 2019 redefinition.
const (
	// PlanckConstant is h in J·s.
	PlanckConstant = 6.62607015e-34
	// SpeedOfLight is c in m/s.
	SpeedOfLight = 2.99792458e8
	// BoltzmannConstant is k in J/K.
	BoltzmannConstant = 1.380649e-23
	// WienDisplacement is Wien's displacement constant b in m·K.
	WienDisplacement = 2.897771955e-3
)

// maxExponent bounds hc/(λkT) before exp() overflows a float64. Beyond
// this the radiance is indistinguishable from zero anyway.
const maxExponent = 700.0

// Radiance returns the spectral radiance B(λ,T) of a blackbody in
// W·sr⁻¹·m⁻³ for a wavelength in meters and a temperature in Kelvin:
//
//	B(λ,T) = 2hc² / (λ⁵ · (exp(hc/λkT) − 1))
//
// Degenerate inputs (non-positive or non-finite wavelength or
// temperature, overflow-prone exponents) yield 0 rather than an error;
// the result is always finite and non-negative.
func Radiance(wavelengthM, tempK float64) float64 {
	if !(wavelengthM > 0) || !(tempK > 0) {
		return 0
	}
	if math.IsInf(wavelengthM, 1) || math.IsInf(tempK, 1) {
		return 0
	}

	x := PlanckConstant * SpeedOfLight / (wavelengthM * BoltzmannConstant * tempK)
	if x > maxExponent {
		return 0
	}

	// Expm1 avoids catastrophic cancellation when x is small
	// (long wavelengths or high temperatures).
	denom := math.Pow(wavelengthM, 5) * math.Expm1(x)
	if denom <= 0 {
		return 0
	}

	return 2 * PlanckConstant * SpeedOfLight * SpeedOfLight / denom
}

// PeakWavelengthMicrons returns the wavelength of peak emission in
// micrometers for a blackbody at the given temperature, per Wien's
// displacement law. Returns 0 for non-positive or non-finite
// temperatures.
func PeakWavelengthMicrons(tempK float64) float64 {
	if !(tempK > 0) || math.IsInf(tempK, 1) {
		return 0
	}
	return WienDisplacement / tempK * 1e6
}
