package main

import (
	"log/slog"
	"os"

	"github.com/osse101/LuckyGen_Go/internal/bootstrap"
	"github.com/osse101/LuckyGen_Go/internal/config"
	"github.com/osse101/LuckyGen_Go/internal/logger"
)

// initLogger sets up file + stdout logging, falling back to stdout only
// when the log directory is unusable. The returned file may be nil.
func initLogger(cfg *config.Config) *os.File {
	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		logger.InitLogger(cfg.LoggerConfig())
		slog.Warn("File logging disabled, using stdout only", "log_dir", cfg.LogDir, "error", err)
		return nil
	}
	return logFile
}
