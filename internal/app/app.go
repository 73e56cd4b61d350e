// Package app ties configuration, logging, and controllers into the
// running service.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spectralviz/blackbody/internal/log"
	"github.com/spectralviz/blackbody/internal/managers"
	"github.com/spectralviz/blackbody/pkg/config"
	"go.uber.org/zap"
)

// App represents the main application
type App struct {
	configProvider config.Provider
	logger         *zap.SugaredLogger
}

// New creates a new application instance
func New(configProvider config.Provider, logger *zap.SugaredLogger) *App {
	return &App{
		configProvider: configProvider,
		logger:         logger,
	}
}

// Run starts the application and blocks until shutdown
func (a *App) Run(ctx context.Context) error {
	var wg sync.WaitGroup

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cm, err := managers.NewControllerManager(ctx, &wg, a.configProvider, a.logger)
	if err != nil {
		return err
	}
	if err := cm.StartControllers(); err != nil {
		return fmt.Errorf("error starting controllers: %w", err)
	}

	log.Info("Application started successfully")

	// Set up signal handling
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	// Wait for shutdown signal
	select {
	case <-sigs:
		log.Info("shutdown signal received, initiating graceful shutdown...")
	case <-ctx.Done():
		log.Info("context cancelled, shutting down...")
	}

	// Cancel context to signal all goroutines to stop
	cancel()

	// Wait for all workers to terminate
	log.Info("waiting for all workers to terminate...")
	wg.Wait()
	log.Info("shutdown complete")

	return nil
}
