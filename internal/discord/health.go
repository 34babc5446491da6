package discord

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"
)

// Health status values
const (
	HealthStatusHealthy  = "healthy"
	HealthStatusDegraded = "degraded"
	healthCheckTimeout   = 2 * time.Second
	healthServerTimeout  = 5 * time.Second
)

// HealthStatus represents the bot's health status
type HealthStatus struct {
	Status           string    `json:"status"`
	Uptime           string    `json:"uptime"`
	Connected        bool      `json:"connected"`
	CommandsReceived int64     `json:"commands_received"`
	LastCommandTime  time.Time `json:"last_command_time,omitempty"`
	APIReachable     bool      `json:"api_reachable"`
}

var (
	startTime       = time.Now()
	commandCounter  atomic.Int64
	lastCommandUnix atomic.Int64
)

// RecordCommand increments the command counter
func RecordCommand() {
	commandCounter.Add(1)
	lastCommandUnix.Store(time.Now().UnixNano())
}

func lastCommandTime() time.Time {
	if n := lastCommandUnix.Load(); n != 0 {
		return time.Unix(0, n)
	}
	return time.Time{}
}

// HTTPServer exposes the bot's health endpoint
type HTTPServer struct {
	server *http.Server
	bot    *Bot
}

// NewHTTPServer creates a new HTTP server
func NewHTTPServer(port string, bot *Bot) *HTTPServer {
	mux := http.NewServeMux()

	srv := &HTTPServer{
		server: &http.Server{
			Addr:              ":" + port,
			Handler:           mux,
			ReadHeaderTimeout: healthServerTimeout,
		},
		bot: bot,
	}

	mux.HandleFunc("GET /health", srv.HandleHealth)
	return srv
}

// Start starts the HTTP server in the background
func (s *HTTPServer) Start() {
	go func() {
		slog.Info(LogMsgHealthServerStart, "addr", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error(LogMsgHealthServerFailed, "error", err)
		}
	}()
}

// Stop stops the HTTP server
func (s *HTTPServer) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), healthServerTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		slog.Error(LogMsgHealthServerStop, "error", err)
	}
}

// HandleHealth returns the bot's health status
func (s *HTTPServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	connected := s.bot.Session != nil && s.bot.Session.DataReady

	apiReachable := false
	if s.bot.Client != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		apiReachable = s.bot.Client.Healthy(ctx)
		cancel()
	}

	health := HealthStatus{
		Status:           HealthStatusHealthy,
		Uptime:           time.Since(startTime).Round(time.Second).String(),
		Connected:        connected,
		CommandsReceived: commandCounter.Load(),
		LastCommandTime:  lastCommandTime(),
		APIReachable:     apiReachable,
	}

	w.Header().Set("Content-Type", "application/json")
	if !connected || !apiReachable {
		health.Status = HealthStatusDegraded
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	if err := json.NewEncoder(w).Encode(health); err != nil {
		slog.Warn("Failed to encode health response", "error", err)
	}
}
