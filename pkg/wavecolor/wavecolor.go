// Package wavecolor maps visible-light wavelengths to perceptual RGB
// colors and decides the display color for a blackbody emission curve.
package wavecolor

import (
	"fmt"
	"math"
)

// DefaultGamma is the gamma-correction exponent applied to each channel
// before scaling to [0,255].
const DefaultGamma = 0.8

// Visible-band edges in nanometers. Outside this range the mapper
// returns pure black.
const (
	VisibleMinNM = 400.0
	VisibleMaxNM = 750.0
)

// RGB is an 8-bit-per-channel color.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGBA is an RGB color with an opacity in [0,1], used for translucent
// highlight bands.
type RGBA struct {
	RGB
	A float64 `json:"a"`
}

var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// Hex returns the color as a #rrggbb string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// WithAlpha returns the color with the given opacity attached.
func (c RGB) WithAlpha(a float64) RGBA {
	return RGBA{RGB: c, A: a}
}

// CSS returns the color as a CSS rgba() expression.
func (c RGBA) CSS() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.2f)", c.R, c.G, c.B, c.A)
}

// WavelengthToRGB maps a wavelength in nanometers to a perceptual color
// using DefaultGamma.
func WavelengthToRGB(nm float64) RGB {
	return WavelengthToRGBGamma(nm, DefaultGamma)
}

// WavelengthToRGBGamma maps a wavelength in nanometers to a perceptual
// color: piecewise-linear channel ramps across named bands of the
// visible spectrum, gamma-corrected per channel. Wavelengths outside
// [400,750] nm map to black.
func WavelengthToRGBGamma(nm, gamma float64) RGB {
	if math.IsNaN(nm) || nm < VisibleMinNM || nm > VisibleMaxNM {
		return Black
	}

	var r, g, b float64
	switch {
	case nm < 450: // violet
		r = (450 - nm) / (450 - 400)
		b = 1
	case nm < 495: // blue
		g = (nm - 450) / (495 - 450)
		b = 1
	case nm < 570: // green
		g = 1
		b = (570 - nm) / (570 - 495)
	case nm < 590: // yellow
		r = (nm - 570) / (590 - 570)
		g = 1
	case nm < 620: // orange
		r = 1
		g = (620 - nm) / (620 - 590)
	case nm <= 700: // red
		r = 1
	default: // fading red, 700-750
		r = (750 - nm) / (750 - 700)
	}

	return RGB{
		R: channelByte(r, gamma),
		G: channelByte(g, gamma),
		B: channelByte(b, gamma),
	}
}

func channelByte(v, gamma float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(math.Round(255 * math.Pow(v, gamma)))
}

// Policy holds the thresholds for the curve color decision.
type Policy struct {
	// WhiteThreshold is the visible-energy fraction above which the
	// curve is rendered white.
	WhiteThreshold float64
	// Gamma is the correction exponent for the wavelength mapping.
	Gamma float64
}

// DefaultPolicy matches the standard display behavior.
var DefaultPolicy = Policy{WhiteThreshold: 0.6, Gamma: DefaultGamma}

// CurveColor decides the color used to draw the emission curve at the
// given visible-energy fraction and peak wavelength (nm). Broadband
// spectra render white; spectra peaking inside the visible band take
// the perceptual color at the peak; everything else renders black.
func (p Policy) CurveColor(visibleFraction, peakNM float64) RGB {
	if visibleFraction > p.WhiteThreshold {
		return White
	}
	if peakNM >= VisibleMinNM && peakNM <= VisibleMaxNM {
		return WavelengthToRGBGamma(peakNM, p.Gamma)
	}
	return Black
}
