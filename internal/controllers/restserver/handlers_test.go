package restserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spectralviz/blackbody/pkg/config"
	"github.com/spectralviz/blackbody/pkg/spectrum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestHandlers(t *testing.T) *Handlers {
	t.Helper()
	computer, err := spectrum.NewComputer(spectrum.DefaultConfig())
	require.NoError(t, err)

	ctrl := &Controller{
		computer: computer,
		sweep:    config.SweepData{}.Normalized(),
		logger:   zap.NewNop().Sugar(),
	}
	return NewHandlers(ctrl)
}

func TestGetSpectrum(t *testing.T) {
	h := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/spectrum?temp=5850", nil)
	rec := httptest.NewRecorder()
	h.GetSpectrum(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	var ds spectrum.Dataset
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ds))
	assert.Equal(t, 5850.0, ds.TemperatureK)
	assert.Len(t, ds.Samples, 3000)
	assert.Len(t, ds.Highlights, 40)
	assert.InDelta(t, 0.4954, ds.PeakMicrons, 0.001)
}

func TestGetSpectrumMissingTemp(t *testing.T) {
	h := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/spectrum", nil)
	rec := httptest.NewRecorder()
	h.GetSpectrum(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing temp")
}

func TestGetSpectrumUnparseableTemp(t *testing.T) {
	h := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/spectrum?temp=warm", nil)
	rec := httptest.NewRecorder()
	h.GetSpectrum(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSpectrumClampsTemperature(t *testing.T) {
	h := newTestHandlers(t)

	tests := []struct {
		query    string
		wantTemp float64
	}{
		{"temp=50", MinTempK},
		{"temp=-3000", MinTempK},
		{"temp=99999", MaxTempK},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/spectrum?"+tt.query, nil)
		rec := httptest.NewRecorder()
		h.GetSpectrum(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, tt.query)
		var ds spectrum.Dataset
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ds))
		assert.Equal(t, tt.wantTemp, ds.TemperatureK, tt.query)
	}
}

func TestGetSpectrumMsgPack(t *testing.T) {
	h := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/spectrum?temp=3000&format=msgpack", nil)
	rec := httptest.NewRecorder()
	h.GetSpectrum(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/x-msgpack", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestGetPeak(t *testing.T) {
	h := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/spectrum/peak?temp=3000", nil)
	rec := httptest.NewRecorder()
	h.GetPeak(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp peakResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.InDelta(t, 0.9659, resp.PeakMicrons, 0.001)
	assert.Equal(t, "#000000", resp.CurveHex)
	assert.Less(t, resp.VisibleFraction, 0.4)
}

func TestGetHealth(t *testing.T) {
	h := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.GetHealth(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 3000, resp.GridSamples)
	assert.InDelta(t, 0.01, resp.GridMinUM, 1e-9)
	assert.InDelta(t, 300, resp.GridMaxUM, 1e-6)
}
