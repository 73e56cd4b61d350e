package restserver

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Datasets are public and read-only; any origin may subscribe.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// SweepSocket streams an animated temperature sweep to the client: one
// complete dataset per frame, ping-ponging between the configured
// bounds. Frame timing lives here in the driver; the computation core
// knows nothing about animation.
func (h *Handlers) SweepSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		h.controller.logger.Errorf("sweep socket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	sweep := h.controller.sweep
	interval := time.Duration(sweep.FrameIntervalMS) * time.Millisecond
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Drop the connection when the client goes away.
	clientGone := make(chan struct{})
	go func() {
		defer close(clientGone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	temp := sweep.MinTempK
	step := sweep.StepK
	for {
		select {
		case <-h.controller.ctx.Done():
			conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
			return
		case <-clientGone:
			return
		case <-ticker.C:
		}

		ds, err := h.controller.computer.ComputeDataset(temp)
		if err != nil {
			h.controller.logger.Errorf("sweep computation failed at %g K: %v", temp, err)
			return
		}
		if err := conn.WriteJSON(ds); err != nil {
			h.controller.logger.Debugf("sweep client write failed: %v", err)
			return
		}

		// Reverse direction at the bounds.
		temp += step
		if temp >= sweep.MaxTempK {
			temp = sweep.MaxTempK
			step = -step
		} else if temp <= sweep.MinTempK {
			temp = sweep.MinTempK
			step = -step
		}
	}
}
