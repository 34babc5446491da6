package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/osse101/LuckyGen_Go/internal/config"
	"github.com/osse101/LuckyGen_Go/internal/logger"
)

// SetupLogger initializes the application logger with file and stdout output.
// It creates the log directory, prunes old session logs and installs the
// configured slog handler as the default logger.
// Returns the log file handle (caller must close).
func SetupLogger(cfg *config.Config) (*os.File, error) {
	return setupLoggerAt(cfg, os.Stdout, time.Now())
}

func setupLoggerAt(cfg *config.Config, console io.Writer, now time.Time) (*os.File, error) {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf(ErrMsgFailedCreateLogsDir, err)
	}

	cleanupLogs(cfg.LogDir, LogFileRetentionCount)

	logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, now.Format(LogFileTimestampFormat)))
	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFailedOpenLogFile, err)
	}

	loggerConfig := cfg.LoggerConfig()
	logger.InitLoggerWithWriter(loggerConfig, io.MultiWriter(console, logFile))

	slog.Info(LogMsgLoggingInitialized, "level", loggerConfig.LogLevel(), "file", logFileName)
	slog.Info(LogMsgStartingLuckyGen,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"rng", cfg.RNGMode,
		"seed_encounters", cfg.SeedEncounters,
		"trusted_proxies", len(cfg.TrustedProxies))

	return logFile, nil
}

// cleanupLogs removes the oldest session logs so at most keep remain.
// Session file names embed a sortable timestamp, and ReadDir returns them sorted.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []os.DirEntry
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry)
		}
	}

	for i := 0; i < len(logFiles)-keep; i++ {
		if err := os.Remove(filepath.Join(logDir, logFiles[i].Name())); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", logFiles[i].Name(), "error", err)
		}
	}
}
