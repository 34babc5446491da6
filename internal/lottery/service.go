package lottery

import (
	"context"

	"github.com/osse101/LuckyGen_Go/internal/domain"
	"github.com/osse101/LuckyGen_Go/internal/logger"
	"github.com/osse101/LuckyGen_Go/internal/metrics"
)

// Service defines the interface for number generation operations
type Service interface {
	GetGames(ctx context.Context) []domain.GameConfig
	GenerateNumbers(ctx context.Context, gameType domain.GameType) (*domain.DrawResult, error)
}

type service struct {
	generator *Generator
}

// NewService creates a new lottery service drawing from src
func NewService(src RandomSource) Service {
	return &service{
		generator: NewGenerator(src),
	}
}

// GetGames returns the supported games in display order
func (s *service) GetGames(ctx context.Context) []domain.GameConfig {
	return Games()
}

// GenerateNumbers draws a fresh set of numbers for the given game
func (s *service) GenerateNumbers(ctx context.Context, gameType domain.GameType) (*domain.DrawResult, error) {
	log := logger.FromContext(ctx)

	result, err := s.generator.Generate(gameType)
	if err != nil {
		log.Warn(LogMsgInvalidGameRequested, logger.AttrKeyGameType, gameType)
		return nil, err
	}

	metrics.DrawsGenerated.WithLabelValues(string(gameType)).Inc()
	log.Debug(LogMsgNumbersGenerated, logger.AttrKeyGameType, gameType, "numbers", domain.FormatNumbers(result))

	return &result, nil
}
