package spectrum

import (
	"errors"
	"math"
	"testing"

	"github.com/spectralviz/blackbody/pkg/wavecolor"
)

func newTestComputer(t *testing.T) *Computer {
	t.Helper()
	c, err := NewComputer(DefaultConfig())
	if err != nil {
		t.Fatalf("NewComputer: %v", err)
	}
	return c
}

func TestNewComputerRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"too few samples", func(c *Config) { c.GridSamples = 1 }},
		{"zero grid min", func(c *Config) { c.GridMinMicrons = 0 }},
		{"inverted grid bounds", func(c *Config) { c.GridMaxMicrons = c.GridMinMicrons / 2 }},
		{"inverted visible band", func(c *Config) { c.VisibleMinMicrons, c.VisibleMaxMicrons = 0.75, 0.4 }},
		{"no highlight segments", func(c *Config) { c.HighlightSegments = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if _, err := NewComputer(cfg); err == nil {
				t.Error("NewComputer accepted invalid config")
			}
		})
	}
}

func TestComputeDatasetInvalidTemperature(t *testing.T) {
	c := newTestComputer(t)
	for _, temp := range []float64{0, -273.15, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := c.ComputeDataset(temp)
		if !errors.Is(err, ErrInvalidTemperature) {
			t.Errorf("ComputeDataset(%g) error = %v; want ErrInvalidTemperature", temp, err)
		}
	}
}

func TestComputeDatasetSunlike(t *testing.T) {
	c := newTestComputer(t)
	ds, err := c.ComputeDataset(5850)
	if err != nil {
		t.Fatalf("ComputeDataset: %v", err)
	}

	if math.Abs(ds.PeakMicrons-0.4954) > 0.001 {
		t.Errorf("peak = %.4f µm; want ≈0.4954", ds.PeakMicrons)
	}
	if len(ds.Samples) != c.Grid().Len() {
		t.Errorf("got %d samples; want %d", len(ds.Samples), c.Grid().Len())
	}
	if ds.Energy.Fraction < 0.3 || ds.Energy.Fraction > 0.7 {
		t.Errorf("visible fraction = %g; want broadband-visible range", ds.Energy.Fraction)
	}
	// A sun-like spectrum never renders black: either broadband white
	// or the color at its near-cyan peak.
	if ds.CurveColor == wavecolor.Black {
		t.Errorf("curve color = black; want white or peak color")
	}

	// Samples are finite, non-negative, and follow the grid.
	for i, s := range ds.Samples {
		if s.Radiance < 0 || math.IsNaN(s.Radiance) || math.IsInf(s.Radiance, 0) {
			t.Fatalf("sample %d radiance = %g", i, s.Radiance)
		}
		if s.WavelengthMicrons != c.Grid().MicronsAt(i) {
			t.Fatalf("sample %d wavelength mismatch", i)
		}
	}
}

func TestComputeDatasetInfraredLeaning(t *testing.T) {
	c := newTestComputer(t)
	ds, err := c.ComputeDataset(3000)
	if err != nil {
		t.Fatalf("ComputeDataset: %v", err)
	}

	if math.Abs(ds.PeakMicrons-0.9659) > 0.001 {
		t.Errorf("peak = %.4f µm; want ≈0.9659", ds.PeakMicrons)
	}
	if ds.Energy.Fraction > 0.4 {
		t.Errorf("visible fraction = %g; want low for 3000 K", ds.Energy.Fraction)
	}
	// Peak is outside the visible band and the spectrum is not
	// broadband, so the policy renders black.
	if ds.CurveColor != wavecolor.Black {
		t.Errorf("curve color = %+v; want black", ds.CurveColor)
	}
}

func TestComputeDatasetColdBody(t *testing.T) {
	c := newTestComputer(t)
	ds, err := c.ComputeDataset(200)
	if err != nil {
		t.Fatalf("ComputeDataset: %v", err)
	}

	if ds.Energy.Fraction > 1e-12 {
		t.Errorf("visible fraction = %g; want effectively 0 at 200 K", ds.Energy.Fraction)
	}
	for _, s := range ds.Samples {
		if s.WavelengthMicrons >= 0.4 && s.WavelengthMicrons <= 0.75 && s.Radiance > 1e-12 {
			t.Errorf("visible radiance at %g µm = %g; want near-zero", s.WavelengthMicrons, s.Radiance)
		}
	}
	if ds.CurveColor != wavecolor.Black {
		t.Errorf("curve color = %+v; want black", ds.CurveColor)
	}
}

func TestComputeDatasetVisibleFractionBounds(t *testing.T) {
	c := newTestComputer(t)
	for _, temp := range []float64{200, 1000, 3000, 5850, 8000, 12000} {
		ds, err := c.ComputeDataset(temp)
		if err != nil {
			t.Fatalf("ComputeDataset(%g): %v", temp, err)
		}
		if ds.Energy.Fraction < 0 || ds.Energy.Fraction > 1 {
			t.Errorf("visible fraction at %g K = %g; want [0,1]", temp, ds.Energy.Fraction)
		}
	}
}

func TestHighlightBands(t *testing.T) {
	c := newTestComputer(t)
	ds, err := c.ComputeDataset(5000)
	if err != nil {
		t.Fatalf("ComputeDataset: %v", err)
	}

	cfg := c.Config()
	if len(ds.Highlights) != cfg.HighlightSegments {
		t.Fatalf("got %d highlight bands; want %d", len(ds.Highlights), cfg.HighlightSegments)
	}

	width := (cfg.VisibleMaxMicrons - cfg.VisibleMinMicrons) / float64(cfg.HighlightSegments)
	prevEnd := cfg.VisibleMinMicrons
	for i, band := range ds.Highlights {
		if math.Abs(band.StartMicrons-prevEnd) > 1e-12 {
			t.Fatalf("band %d start = %g; want contiguous with previous end %g", i, band.StartMicrons, prevEnd)
		}
		if math.Abs(band.EndMicrons-band.StartMicrons-width) > 1e-12 {
			t.Fatalf("band %d width = %g; want %g", i, band.EndMicrons-band.StartMicrons, width)
		}
		if band.Color.A != cfg.HighlightAlpha {
			t.Fatalf("band %d alpha = %g; want %g", i, band.Color.A, cfg.HighlightAlpha)
		}
		// Midpoints sit inside the visible band, so the colors are
		// never black.
		if band.Color.RGB == wavecolor.Black {
			t.Fatalf("band %d color is black", i)
		}
		prevEnd = band.EndMicrons
	}
	if math.Abs(prevEnd-cfg.VisibleMaxMicrons) > 1e-12 {
		t.Errorf("last band ends at %g; want %g", prevEnd, cfg.VisibleMaxMicrons)
	}
}
