package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/LuckyGen_Go/internal/config"
	"github.com/osse101/LuckyGen_Go/internal/database/memory"
	"github.com/osse101/LuckyGen_Go/internal/encounter"
	"github.com/osse101/LuckyGen_Go/internal/lottery"
	"github.com/osse101/LuckyGen_Go/internal/server"
	"github.com/osse101/LuckyGen_Go/internal/stats"
)

// Services holds every application service built from configuration
type Services struct {
	Repository *memory.EncounterRepository
	Lottery    lottery.Service
	Encounters encounter.Service
	Stats      stats.Service
}

// InitializeServices builds the encounter store and the services on top of it
func InitializeServices(cfg *config.Config) (*Services, error) {
	src, err := lottery.NewSourceForMode(cfg.RNGMode)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgRandomSource, err)
	}

	var repo *memory.EncounterRepository
	if cfg.SeedEncounters {
		repo = memory.NewSeededEncounterRepository()
	} else {
		repo = memory.NewEncounterRepository()
	}

	slog.Info(LogMsgServicesInitialized, "rng", cfg.RNGMode, "seeded", cfg.SeedEncounters)

	return &Services{
		Repository: repo,
		Lottery:    lottery.NewService(src),
		Encounters: encounter.NewService(repo),
		Stats:      stats.NewService(repo),
	}, nil
}

// NewServer wires the HTTP server from configuration and services
func NewServer(cfg *config.Config, svcs *Services) *server.Server {
	return server.NewServer(server.Options{
		Addr:           cfg.Addr(),
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		MaxBodyBytes:   int64(cfg.MaxBodyBytes),
		ServiceName:    cfg.ServiceName,
		Version:        cfg.Version,
	}, server.Services{
		Lottery:    svcs.Lottery,
		Encounters: svcs.Encounters,
		Stats:      svcs.Stats,
		Store:      svcs.Repository,
	})
}
