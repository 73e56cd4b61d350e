// Package restserver serves computed blackbody emission datasets over
// HTTP for browser-based renderers: one-shot dataset queries, an
// animated temperature sweep over WebSocket, and an embedded viewer
// page.
package restserver

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/spectralviz/blackbody/internal/log"
	"github.com/spectralviz/blackbody/pkg/config"
	"github.com/spectralviz/blackbody/pkg/spectrum"
	"go.uber.org/zap"
)

var (
	//go:embed all:assets
	content embed.FS
)

// Temperature bounds enforced on client-supplied values. The computer
// itself tolerates any positive temperature; clamping is a display
// policy.
const (
	MinTempK = 200.0
	MaxTempK = 12000.0
)

// Controller represents the REST server controller
type Controller struct {
	ctx            context.Context
	wg             *sync.WaitGroup
	configProvider config.Provider
	restConfig     config.RESTServerData
	Server         http.Server
	FS             *fs.FS
	computer       *spectrum.Computer
	sweep          config.SweepData
	logger         *zap.SugaredLogger
	handlers       *Handlers
}

// NewController creates a new REST server controller
func NewController(ctx context.Context, wg *sync.WaitGroup, configProvider config.Provider, rc config.RESTServerData, logger *zap.SugaredLogger) (*Controller, error) {
	ctrl := &Controller{
		ctx:            ctx,
		wg:             wg,
		configProvider: configProvider,
		restConfig:     rc,
		logger:         logger,
	}

	cfgData, err := configProvider.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading configuration: %v", err)
	}

	computer, err := spectrum.NewComputer(cfgData.Spectrum.ToSpectrumConfig())
	if err != nil {
		return nil, fmt.Errorf("error building spectrum computer: %v", err)
	}
	ctrl.computer = computer
	ctrl.sweep = cfgData.Sweep.Normalized()

	// If a DefaultListenAddr was not provided, listen on all interfaces
	if rc.DefaultListenAddr == "" {
		logger.Info("rest.default_listen_addr not provided; defaulting to 0.0.0.0 (all interfaces)")
		rc.DefaultListenAddr = "0.0.0.0"
	}

	// Set default HTTP port if not specified
	if rc.HTTPPort == 0 {
		logger.Info("rest.http_port not provided; defaulting to 8080")
		rc.HTTPPort = 8080
	}
	ctrl.restConfig = rc

	ctrl.handlers = NewHandlers(ctrl)

	// Set up embedded filesystem for the viewer assets
	assetsFS, _ := fs.Sub(fs.FS(content), "assets")
	ctrl.FS = &assetsFS

	router := ctrl.setupRouter()
	ctrl.Server.Addr = fmt.Sprintf("%v:%v", rc.DefaultListenAddr, rc.HTTPPort)
	ctrl.Server.Handler = router

	return ctrl, nil
}

// StartController starts the REST server
func (c *Controller) StartController() error {
	log.Info("Starting REST server controller...")
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		if c.restConfig.TLSCertPath != "" && c.restConfig.TLSKeyPath != "" {
			if err := c.Server.ListenAndServeTLS(c.restConfig.TLSCertPath, c.restConfig.TLSKeyPath); err != http.ErrServerClosed {
				log.Errorf("REST server error: %v", err)
			}
		} else {
			if err := c.Server.ListenAndServe(); err != http.ErrServerClosed {
				log.Errorf("REST server error: %v", err)
			}
		}
	}()

	go func() {
		<-c.ctx.Done()
		log.Info("Shutting down the REST server...")
		c.Server.Shutdown(context.Background())
	}()

	return nil
}

// setupRouter configures the HTTP router with all endpoints
func (c *Controller) setupRouter() *mux.Router {
	router := mux.NewRouter()

	router.Use(c.requestIDMiddleware)

	// Dataset endpoints
	router.HandleFunc("/spectrum", c.handlers.GetSpectrum)
	router.HandleFunc("/spectrum/peak", c.handlers.GetPeak)
	router.HandleFunc("/spectrum/sweep", c.handlers.SweepSocket)
	router.HandleFunc("/health", c.handlers.GetHealth)

	// Embedded viewer page and static assets
	router.PathPrefix("/").Handler(http.FileServer(http.FS(*c.FS)))

	return router
}

// requestIDMiddleware tags every request with an ID for log correlation
func (c *Controller) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		c.logger.Debugw("request", "id", id, "method", req.Method, "path", req.URL.Path)
		next.ServeHTTP(w, req)
	})
}
