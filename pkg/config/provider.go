// Package config loads application configuration from YAML files or
// SQLite databases through a common provider interface.
package config

import (
	"github.com/spectralviz/blackbody/pkg/spectrum"
)

// Provider defines the interface for configuration data sources
type Provider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	// Get specific configuration sections
	GetSpectrum() (*SpectrumData, error)
	GetControllers() ([]ControllerData, error)

	IsReadOnly() bool
	Close() error
}

// ConfigData represents the complete configuration structure
type ConfigData struct {
	Spectrum    SpectrumData     `json:"spectrum,omitempty"`
	Sweep       SweepData        `json:"sweep,omitempty"`
	Controllers []ControllerData `json:"controllers,omitempty"`
}

// SpectrumData holds the spectral computation parameters. Zero fields
// fall back to the package defaults in spectrum.DefaultConfig.
type SpectrumData struct {
	GridSamples       int     `json:"grid_samples,omitempty"`
	GridMinMicrons    float64 `json:"grid_min_um,omitempty"`
	GridMaxMicrons    float64 `json:"grid_max_um,omitempty"`
	VisibleMinMicrons float64 `json:"visible_min_um,omitempty"`
	VisibleMaxMicrons float64 `json:"visible_max_um,omitempty"`
	HighlightSegments int     `json:"highlight_segments,omitempty"`
	HighlightAlpha    float64 `json:"highlight_alpha,omitempty"`
	Gamma             float64 `json:"gamma,omitempty"`
	WhiteThreshold    float64 `json:"white_threshold,omitempty"`
}

// SweepData holds the animated temperature sweep parameters used by the
// REST server's sweep socket.
type SweepData struct {
	MinTempK        float64 `json:"min_temp_k,omitempty"`
	MaxTempK        float64 `json:"max_temp_k,omitempty"`
	StepK           float64 `json:"step_k,omitempty"`
	FrameIntervalMS int     `json:"frame_interval_ms,omitempty"`
}

// ControllerData holds the configuration for the controller backends
type ControllerData struct {
	Type       string          `json:"type,omitempty"`
	RESTServer *RESTServerData `json:"rest,omitempty"`
}

// RESTServerData holds the REST server settings
type RESTServerData struct {
	DefaultListenAddr string `json:"default_listen_addr,omitempty"`
	HTTPPort          int    `json:"http_port,omitempty"`
	TLSCertPath       string `json:"tls_cert_path,omitempty"`
	TLSKeyPath        string `json:"tls_key_path,omitempty"`
}

// ToSpectrumConfig converts the configured parameters to a
// spectrum.Config, applying defaults for anything left unset.
func (s SpectrumData) ToSpectrumConfig() spectrum.Config {
	cfg := spectrum.DefaultConfig()
	if s.GridSamples > 0 {
		cfg.GridSamples = s.GridSamples
	}
	if s.GridMinMicrons > 0 {
		cfg.GridMinMicrons = s.GridMinMicrons
	}
	if s.GridMaxMicrons > 0 {
		cfg.GridMaxMicrons = s.GridMaxMicrons
	}
	if s.VisibleMinMicrons > 0 {
		cfg.VisibleMinMicrons = s.VisibleMinMicrons
	}
	if s.VisibleMaxMicrons > 0 {
		cfg.VisibleMaxMicrons = s.VisibleMaxMicrons
	}
	if s.HighlightSegments > 0 {
		cfg.HighlightSegments = s.HighlightSegments
	}
	if s.HighlightAlpha > 0 {
		cfg.HighlightAlpha = s.HighlightAlpha
	}
	if s.Gamma > 0 {
		cfg.Policy.Gamma = s.Gamma
	}
	if s.WhiteThreshold > 0 {
		cfg.Policy.WhiteThreshold = s.WhiteThreshold
	}
	return cfg
}

// Defaults for the sweep driver.
const (
	DefaultSweepMinTempK        = 200.0
	DefaultSweepMaxTempK        = 12000.0
	DefaultSweepStepK           = 50.0
	DefaultSweepFrameIntervalMS = 40
)

// Normalized returns the sweep settings with defaults applied.
func (s SweepData) Normalized() SweepData {
	if s.MinTempK <= 0 {
		s.MinTempK = DefaultSweepMinTempK
	}
	if s.MaxTempK <= s.MinTempK {
		s.MaxTempK = DefaultSweepMaxTempK
	}
	if s.StepK <= 0 {
		s.StepK = DefaultSweepStepK
	}
	if s.FrameIntervalMS <= 0 {
		s.FrameIntervalMS = DefaultSweepFrameIntervalMS
	}
	return s
}
