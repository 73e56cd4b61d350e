// Command blackbody runs the blackbody spectrum service: it computes
// Planck emission datasets on demand and serves them to rendering
// clients over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spectralviz/blackbody/internal/app"
	"github.com/spectralviz/blackbody/internal/constants"
	"github.com/spectralviz/blackbody/internal/log"
	"github.com/spectralviz/blackbody/pkg/config"
)

func main() {
	cfgFile := flag.String("config", "config.yaml", "Path to configuration source:\n\t\t\t  YAML: config.yaml\n\t\t\t  SQLite: config.db")
	cfgBackend := flag.String("config-backend", "yaml", "Configuration backend type: 'yaml' for YAML files, 'sqlite' for SQLite databases")
	logFile := flag.String("log-file", "", "Write logs to this file (rotated) in addition to stderr")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("blackbody %s\n", constants.Version)
		os.Exit(0)
	}

	// Set up logging
	if err := log.Init(*debug, *logFile); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	provider, err := newProvider(*cfgFile, *cfgBackend)
	if err != nil {
		log.Errorf("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	defer provider.Close()

	// Create and run the application
	application := app.New(provider, log.GetSugaredLogger())
	if err := application.Run(context.Background()); err != nil {
		log.Errorf("Application error: %v", err)
		os.Exit(1)
	}
}

func newProvider(cfgFile, cfgBackend string) (config.Provider, error) {
	filename, _ := filepath.Abs(cfgFile)

	var provider config.Provider
	var err error

	switch cfgBackend {
	case "yaml":
		provider = config.NewYAMLProvider(filename)
	case "sqlite":
		provider, err = config.NewSQLiteProvider(filename)
		if err != nil {
			return nil, fmt.Errorf("error creating SQLite provider: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported configuration backend: %s. Use 'yaml' or 'sqlite'", cfgBackend)
	}

	if _, err := provider.LoadConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file. Did you pass the -config flag? Run with -h for help: %w", err)
	}

	return provider, nil
}
