package config

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteProvider implements Provider for SQLite database configuration
type SQLiteProvider struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteProvider creates a new SQLite configuration provider
func NewSQLiteProvider(dbPath string) (*SQLiteProvider, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	return &SQLiteProvider{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// LoadConfig loads the complete configuration from the SQLite database
func (s *SQLiteProvider) LoadConfig() (*ConfigData, error) {
	config := &ConfigData{}

	spec, err := s.GetSpectrum()
	if err != nil {
		return nil, fmt.Errorf("failed to load spectrum config: %w", err)
	}
	config.Spectrum = *spec

	sweep, err := s.getSweep()
	if err != nil {
		return nil, fmt.Errorf("failed to load sweep config: %w", err)
	}
	config.Sweep = *sweep

	controllers, err := s.GetControllers()
	if err != nil {
		return nil, fmt.Errorf("failed to load controllers: %w", err)
	}
	config.Controllers = controllers

	return config, nil
}

// GetSpectrum loads the single-row spectrum_config table. A missing
// row yields an all-defaults section.
func (s *SQLiteProvider) GetSpectrum() (*SpectrumData, error) {
	row := s.db.QueryRow(`
		SELECT grid_samples, grid_min_um, grid_max_um,
		       visible_min_um, visible_max_um,
		       highlight_segments, highlight_alpha,
		       gamma, white_threshold
		FROM spectrum_config LIMIT 1`)

	var spec SpectrumData
	err := row.Scan(&spec.GridSamples, &spec.GridMinMicrons, &spec.GridMaxMicrons,
		&spec.VisibleMinMicrons, &spec.VisibleMaxMicrons,
		&spec.HighlightSegments, &spec.HighlightAlpha,
		&spec.Gamma, &spec.WhiteThreshold)
	if err == sql.ErrNoRows {
		return &SpectrumData{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query spectrum_config: %w", err)
	}
	return &spec, nil
}

func (s *SQLiteProvider) getSweep() (*SweepData, error) {
	row := s.db.QueryRow(`
		SELECT min_temp_k, max_temp_k, step_k, frame_interval_ms
		FROM sweep_config LIMIT 1`)

	var sweep SweepData
	err := row.Scan(&sweep.MinTempK, &sweep.MaxTempK, &sweep.StepK, &sweep.FrameIntervalMS)
	if err == sql.ErrNoRows {
		return &SweepData{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query sweep_config: %w", err)
	}
	return &sweep, nil
}

// GetControllers loads the controller configurations
func (s *SQLiteProvider) GetControllers() ([]ControllerData, error) {
	rows, err := s.db.Query(`
		SELECT type, default_listen_addr, http_port, tls_cert_path, tls_key_path
		FROM controllers`)
	if err != nil {
		return nil, fmt.Errorf("failed to query controllers: %w", err)
	}
	defer rows.Close()

	var controllers []ControllerData
	for rows.Next() {
		var (
			con        ControllerData
			listenAddr sql.NullString
			httpPort   sql.NullInt64
			certPath   sql.NullString
			keyPath    sql.NullString
		)
		if err := rows.Scan(&con.Type, &listenAddr, &httpPort, &certPath, &keyPath); err != nil {
			return nil, fmt.Errorf("failed to scan controller row: %w", err)
		}
		if con.Type == "rest" || con.Type == "restserver" {
			con.RESTServer = &RESTServerData{
				DefaultListenAddr: listenAddr.String,
				HTTPPort:          int(httpPort.Int64),
				TLSCertPath:       certPath.String,
				TLSKeyPath:        keyPath.String,
			}
		}
		controllers = append(controllers, con)
	}
	return controllers, rows.Err()
}

// IsReadOnly returns false; SQLite configuration can be managed in place
func (s *SQLiteProvider) IsReadOnly() bool { return false }

// Close closes the database handle
func (s *SQLiteProvider) Close() error {
	return s.db.Close()
}
