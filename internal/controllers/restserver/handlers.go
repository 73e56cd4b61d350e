package restserver

import (
	"net/http"
	"strconv"

	"github.com/spectralviz/blackbody/internal/constants"
	"github.com/spectralviz/blackbody/pkg/responseformat"
)

// Handlers contains all HTTP handlers for the REST server
type Handlers struct {
	controller *Controller
	formatter  *responseformat.Formatter
}

// NewHandlers creates a new handlers instance
func NewHandlers(ctrl *Controller) *Handlers {
	return &Handlers{
		controller: ctrl,
		formatter:  responseformat.NewFormatter(),
	}
}

// parseTemp extracts and clamps the temp query parameter. Validation of
// client input belongs here, not in the computation core.
func (h *Handlers) parseTemp(w http.ResponseWriter, req *http.Request) (float64, bool) {
	raw := req.URL.Query().Get("temp")
	if raw == "" {
		h.formatter.WriteError(w, http.StatusBadRequest, "missing temp query parameter")
		return 0, false
	}

	temp, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		h.formatter.WriteError(w, http.StatusBadRequest, "temp must be a number in Kelvin")
		return 0, false
	}

	if temp < MinTempK {
		temp = MinTempK
	}
	if temp > MaxTempK {
		temp = MaxTempK
	}
	return temp, true
}

// GetSpectrum computes and returns the full renderable dataset for the
// requested temperature
func (h *Handlers) GetSpectrum(w http.ResponseWriter, req *http.Request) {
	temp, ok := h.parseTemp(w, req)
	if !ok {
		return
	}

	ds, err := h.controller.computer.ComputeDataset(temp)
	if err != nil {
		// Clamping above makes this unreachable for well-formed input.
		h.formatter.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := h.formatter.WriteResponse(w, req, ds, nil); err != nil {
		h.controller.logger.Errorf("error writing spectrum response: %v", err)
	}
}

// peakResponse is the trimmed payload for peak-only queries
type peakResponse struct {
	TemperatureK    float64 `json:"temperature_k"`
	PeakMicrons     float64 `json:"peak_um"`
	CurveHex        string  `json:"curve_hex"`
	VisibleFraction float64 `json:"visible_fraction"`
}

// GetPeak returns only the Wien peak and curve color for the requested
// temperature, for clients that don't need the full curve
func (h *Handlers) GetPeak(w http.ResponseWriter, req *http.Request) {
	temp, ok := h.parseTemp(w, req)
	if !ok {
		return
	}

	ds, err := h.controller.computer.ComputeDataset(temp)
	if err != nil {
		h.formatter.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	resp := peakResponse{
		TemperatureK:    ds.TemperatureK,
		PeakMicrons:     ds.PeakMicrons,
		CurveHex:        ds.CurveHex,
		VisibleFraction: ds.Energy.Fraction,
	}
	if err := h.formatter.WriteResponse(w, req, resp, nil); err != nil {
		h.controller.logger.Errorf("error writing peak response: %v", err)
	}
}

// healthResponse reports service and grid metadata
type healthResponse struct {
	Status      string  `json:"status"`
	Version     string  `json:"version"`
	GridSamples int     `json:"grid_samples"`
	GridMinUM   float64 `json:"grid_min_um"`
	GridMaxUM   float64 `json:"grid_max_um"`
}

// GetHealth returns service status and grid metadata
func (h *Handlers) GetHealth(w http.ResponseWriter, req *http.Request) {
	grid := h.controller.computer.Grid()
	resp := healthResponse{
		Status:      "ok",
		Version:     constants.Version,
		GridSamples: grid.Len(),
		GridMinUM:   grid.MicronsAt(0),
		GridMaxUM:   grid.MicronsAt(grid.Len() - 1),
	}
	if err := h.formatter.WriteResponse(w, req, resp, nil); err != nil {
		h.controller.logger.Errorf("error writing health response: %v", err)
	}
}
