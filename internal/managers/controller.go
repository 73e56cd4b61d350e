// Package managers wires configured controllers to their
// implementations and manages their lifecycle.
package managers

import (
	"context"
	"fmt"
	"sync"

	"github.com/spectralviz/blackbody/internal/controllers/restserver"
	"github.com/spectralviz/blackbody/pkg/config"
	"go.uber.org/zap"
)

// ControllerManager interface for the controller manager
type ControllerManager interface {
	StartControllers() error
}

// Controller is an interface that provides standard methods for various controller backends
type Controller interface {
	StartController() error
}

// NewControllerManager creates a new controller manager
func NewControllerManager(ctx context.Context, wg *sync.WaitGroup, provider config.Provider, logger *zap.SugaredLogger) (ControllerManager, error) {
	cm := &controllerManager{
		ctx:         ctx,
		wg:          wg,
		provider:    provider,
		logger:      logger,
		controllers: make([]Controller, 0),
	}

	controllers, err := provider.GetControllers()
	if err != nil {
		return nil, fmt.Errorf("error loading controller configuration: %v", err)
	}

	for _, con := range controllers {
		controller, err := cm.createController(con)
		if err != nil {
			return nil, fmt.Errorf("error creating controller: %v", err)
		}
		cm.controllers = append(cm.controllers, controller)
	}

	return cm, nil
}

type controllerManager struct {
	ctx         context.Context
	wg          *sync.WaitGroup
	provider    config.Provider
	logger      *zap.SugaredLogger
	controllers []Controller
}

func (c *controllerManager) StartControllers() error {
	c.logger.Info("Starting controller manager...")

	for _, controller := range c.controllers {
		err := controller.StartController()
		if err != nil {
			return fmt.Errorf("error starting controller: %v", err)
		}
	}

	c.logger.Infof("Started %d controllers successfully", len(c.controllers))
	return nil
}

// createController creates a controller based on the controller configuration
func (cm *controllerManager) createController(cc config.ControllerData) (Controller, error) {
	switch cc.Type {
	case "restserver", "rest":
		if cc.RESTServer == nil {
			return nil, fmt.Errorf("rest controller requires a rest configuration block")
		}
		return restserver.NewController(cm.ctx, cm.wg, cm.provider, *cc.RESTServer, cm.logger)
	default:
		return nil, fmt.Errorf("unknown controller type: %s", cc.Type)
	}
}
