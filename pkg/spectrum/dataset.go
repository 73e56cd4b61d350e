package spectrum

import (
	"errors"
	"fmt"
	"math"

	"github.com/spectralviz/blackbody/pkg/planck"
	"github.com/spectralviz/blackbody/pkg/wavecolor"
)

// ErrInvalidTemperature reports a temperature the computer refuses to
// evaluate: NaN, infinite, or not strictly positive.
var ErrInvalidTemperature = errors.New("invalid temperature")

// Config carries the immutable spectral computation parameters. The
// zero value is not usable; start from DefaultConfig.
type Config struct {
	// GridSamples is the number of wavelengths in the grid.
	GridSamples int
	// GridMinMicrons and GridMaxMicrons bound the grid.
	GridMinMicrons float64
	GridMaxMicrons float64
	// VisibleMinMicrons and VisibleMaxMicrons bound the visible band
	// used for energy fractions and highlight segments.
	VisibleMinMicrons float64
	VisibleMaxMicrons float64
	// HighlightSegments is the number of equal-width visible-band
	// highlight segments emitted per dataset.
	HighlightSegments int
	// HighlightAlpha is the opacity of each highlight segment.
	HighlightAlpha float64
	// Policy decides the curve display color.
	Policy wavecolor.Policy
}

// DefaultConfig returns the standard computation parameters: a
// 3000-sample grid spanning 0.01–300 µm and a 0.4–0.75 µm visible band.
func DefaultConfig() Config {
	return Config{
		GridSamples:       3000,
		GridMinMicrons:    0.01,
		GridMaxMicrons:    300,
		VisibleMinMicrons: 0.4,
		VisibleMaxMicrons: 0.75,
		HighlightSegments: 40,
		HighlightAlpha:    0.18,
		Policy:            wavecolor.DefaultPolicy,
	}
}

func (c Config) validate() error {
	if c.GridSamples < 2 {
		return fmt.Errorf("grid samples must be at least 2, got %d", c.GridSamples)
	}
	if !(c.GridMinMicrons > 0) || !(c.GridMaxMicrons > c.GridMinMicrons) {
		return fmt.Errorf("grid bounds must satisfy 0 < min < max, got [%g, %g]", c.GridMinMicrons, c.GridMaxMicrons)
	}
	if !(c.VisibleMinMicrons > 0) || !(c.VisibleMaxMicrons > c.VisibleMinMicrons) {
		return fmt.Errorf("visible band must satisfy 0 < min < max, got [%g, %g]", c.VisibleMinMicrons, c.VisibleMaxMicrons)
	}
	if c.HighlightSegments < 1 {
		return fmt.Errorf("highlight segments must be at least 1, got %d", c.HighlightSegments)
	}
	return nil
}

// Sample is one (wavelength, radiance) point of a computed spectrum.
type Sample struct {
	WavelengthMicrons float64 `json:"wavelength_um"`
	Radiance          float64 `json:"radiance"`
}

// HighlightBand is one translucent visible-band segment for the
// renderer, colored by the perceptual color at its midpoint.
type HighlightBand struct {
	StartMicrons float64        `json:"start_um"`
	EndMicrons   float64        `json:"end_um"`
	Color        wavecolor.RGBA `json:"color"`
}

// Dataset is the complete renderable result for one temperature.
type Dataset struct {
	TemperatureK float64         `json:"temperature_k"`
	Samples      []Sample        `json:"samples"`
	PeakMicrons  float64         `json:"peak_um"`
	CurveColor   wavecolor.RGB   `json:"curve_color"`
	CurveHex     string          `json:"curve_hex"`
	Energy       Energy          `json:"energy"`
	Highlights   []HighlightBand `json:"highlights"`
}

// Computer assembles datasets over a grid built once at construction.
// It holds no mutable state; ComputeDataset may be called concurrently.
type Computer struct {
	cfg  Config
	grid *Grid
}

// NewComputer validates the configuration and builds the wavelength
// grid.
func NewComputer(cfg Config) (*Computer, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("spectrum config: %w", err)
	}
	return &Computer{
		cfg:  cfg,
		grid: NewGrid(cfg.GridSamples, cfg.GridMinMicrons, cfg.GridMaxMicrons),
	}, nil
}

// Grid returns the shared wavelength grid.
func (c *Computer) Grid() *Grid { return c.grid }

// Config returns the computation parameters.
func (c *Computer) Config() Config { return c.cfg }

// ComputeDataset evaluates the full emission spectrum at the given
// temperature and assembles the renderable dataset: radiance samples
// across the grid, Wien peak, energy integrals, curve color, and
// visible-band highlight segments. Every call recomputes from scratch.
func (c *Computer) ComputeDataset(tempK float64) (*Dataset, error) {
	if math.IsNaN(tempK) || math.IsInf(tempK, 0) || tempK <= 0 {
		return nil, fmt.Errorf("%w: %g K", ErrInvalidTemperature, tempK)
	}

	n := c.grid.Len()
	samples := make([]Sample, n)
	radiance := make([]float64, n)
	for i := 0; i < n; i++ {
		b := planck.Radiance(c.grid.meters[i], tempK)
		radiance[i] = b
		samples[i] = Sample{WavelengthMicrons: c.grid.microns[i], Radiance: b}
	}

	energy := integrateEnergy(c.grid, radiance, c.cfg.VisibleMinMicrons, c.cfg.VisibleMaxMicrons)
	peakMicrons := planck.PeakWavelengthMicrons(tempK)
	curve := c.cfg.Policy.CurveColor(energy.Fraction, peakMicrons*1000)

	return &Dataset{
		TemperatureK: tempK,
		Samples:      samples,
		PeakMicrons:  peakMicrons,
		CurveColor:   curve,
		CurveHex:     curve.Hex(),
		Energy:       energy,
		Highlights:   c.highlightBands(),
	}, nil
}

// highlightBands slices the visible band into equal-width segments,
// each carrying the perceptual color at its midpoint.
func (c *Computer) highlightBands() []HighlightBand {
	bands := make([]HighlightBand, c.cfg.HighlightSegments)
	width := (c.cfg.VisibleMaxMicrons - c.cfg.VisibleMinMicrons) / float64(c.cfg.HighlightSegments)
	for i := range bands {
		start := c.cfg.VisibleMinMicrons + float64(i)*width
		mid := start + width/2
		bands[i] = HighlightBand{
			StartMicrons: start,
			EndMicrons:   start + width,
			Color:        wavecolor.WavelengthToRGBGamma(mid*1000, c.cfg.Policy.Gamma).WithAlpha(c.cfg.HighlightAlpha),
		}
	}
	return bands
}
