package discord

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LuckyGen_Go/internal/handler"
)

func TestRecordCommand(t *testing.T) {
	before := commandCounter.Load()

	RecordCommand()
	RecordCommand()
	RecordCommand()

	assert.Equal(t, before+3, commandCounter.Load())
	assert.False(t, lastCommandTime().IsZero())
}

func TestHandleHealth_DegradedWhenDisconnected(t *testing.T) {
	tc := SetupTestContext(t)
	tc.Mux.HandleFunc("GET "+PathHealthz, func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, handler.HealthResponse{Status: handler.HealthStatusOK})
	})

	bot := &Bot{Session: tc.Session, Client: tc.APIClient}
	srv := NewHTTPServer("0", bot)

	rec := httptest.NewRecorder()
	srv.HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var status HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, HealthStatusDegraded, status.Status)
	assert.True(t, status.APIReachable)
	assert.False(t, status.Connected)
}

func TestHandleHealth_Healthy(t *testing.T) {
	tc := SetupTestContext(t)
	tc.Mux.HandleFunc("GET "+PathHealthz, func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, handler.HealthResponse{Status: handler.HealthStatusOK})
	})
	tc.Session.DataReady = true

	srv := NewHTTPServer("0", &Bot{Session: tc.Session, Client: tc.APIClient})

	rec := httptest.NewRecorder()
	srv.HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var status HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, HealthStatusHealthy, status.Status)
}
