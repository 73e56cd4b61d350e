package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements Provider for YAML configuration files
type YAMLProvider struct {
	filename string
	config   *ConfigData
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// yamlConfig mirrors ConfigData with YAML tags.
type yamlConfig struct {
	Spectrum    spectrumYAML     `yaml:"spectrum,omitempty"`
	Sweep       sweepYAML        `yaml:"sweep,omitempty"`
	Controllers []controllerYAML `yaml:"controllers,omitempty"`
}

type spectrumYAML struct {
	GridSamples       int     `yaml:"grid_samples,omitempty"`
	GridMinMicrons    float64 `yaml:"grid_min_um,omitempty"`
	GridMaxMicrons    float64 `yaml:"grid_max_um,omitempty"`
	VisibleMinMicrons float64 `yaml:"visible_min_um,omitempty"`
	VisibleMaxMicrons float64 `yaml:"visible_max_um,omitempty"`
	HighlightSegments int     `yaml:"highlight_segments,omitempty"`
	HighlightAlpha    float64 `yaml:"highlight_alpha,omitempty"`
	Gamma             float64 `yaml:"gamma,omitempty"`
	WhiteThreshold    float64 `yaml:"white_threshold,omitempty"`
}

type sweepYAML struct {
	MinTempK        float64 `yaml:"min_temp_k,omitempty"`
	MaxTempK        float64 `yaml:"max_temp_k,omitempty"`
	StepK           float64 `yaml:"step_k,omitempty"`
	FrameIntervalMS int     `yaml:"frame_interval_ms,omitempty"`
}

type controllerYAML struct {
	Type       string          `yaml:"type,omitempty"`
	RESTServer *restServerYAML `yaml:"rest,omitempty"`
}

type restServerYAML struct {
	DefaultListenAddr string `yaml:"default_listen_addr,omitempty"`
	HTTPPort          int    `yaml:"http_port,omitempty"`
	TLSCertPath       string `yaml:"tls_cert_path,omitempty"`
	TLSKeyPath        string `yaml:"tls_key_path,omitempty"`
}

// LoadConfig loads the complete configuration from the YAML file
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	var raw yamlConfig
	if err := yaml.Unmarshal(cfgFile, &raw); err != nil {
		return nil, err
	}

	config := &ConfigData{
		Spectrum: SpectrumData(raw.Spectrum),
		Sweep:    SweepData(raw.Sweep),
	}

	config.Controllers = make([]ControllerData, len(raw.Controllers))
	for i, con := range raw.Controllers {
		config.Controllers[i] = ControllerData{Type: con.Type}
		if con.RESTServer != nil {
			config.Controllers[i].RESTServer = &RESTServerData{
				DefaultListenAddr: con.RESTServer.DefaultListenAddr,
				HTTPPort:          con.RESTServer.HTTPPort,
				TLSCertPath:       con.RESTServer.TLSCertPath,
				TLSKeyPath:        con.RESTServer.TLSKeyPath,
			}
		}
	}

	y.config = config
	return config, nil
}

// GetSpectrum returns the spectral computation section
func (y *YAMLProvider) GetSpectrum() (*SpectrumData, error) {
	if y.config == nil {
		if _, err := y.LoadConfig(); err != nil {
			return nil, err
		}
	}
	return &y.config.Spectrum, nil
}

// GetControllers returns the controller configurations
func (y *YAMLProvider) GetControllers() ([]ControllerData, error) {
	if y.config == nil {
		if _, err := y.LoadConfig(); err != nil {
			return nil, err
		}
	}
	return y.config.Controllers, nil
}

// IsReadOnly returns true; YAML files are not written back
func (y *YAMLProvider) IsReadOnly() bool { return true }

// Close is a no-op for YAML providers
func (y *YAMLProvider) Close() error { return nil }
