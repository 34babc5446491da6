// @title LuckyGen API
// @version 1.0
// @description Lottery number generator and play tracker.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	_ "github.com/osse101/LuckyGen_Go/docs"
	"github.com/osse101/LuckyGen_Go/internal/bootstrap"
	"github.com/osse101/LuckyGen_Go/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	_ = godotenv.Load()

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Environment validation failed: %v\n", err)
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	logFile := initLogger(cfg)
	for _, w := range warnings {
		slog.Warn(w)
	}

	services, err := bootstrap.InitializeServices(cfg)
	if err != nil {
		slog.Error("Failed to initialize services", "error", err)
		return 1
	}

	srv := bootstrap.NewServer(cfg, services)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	exitCode := 0
	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
			exitCode = 1
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	var closer io.Closer
	if logFile != nil {
		closer = logFile
	}
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:  srv,
		LogFile: closer,
	})

	return exitCode
}
