package stats

import (
	"context"
	"fmt"

	"github.com/osse101/LuckyGen_Go/internal/domain"
	"github.com/osse101/LuckyGen_Go/internal/logger"
	"github.com/osse101/LuckyGen_Go/internal/metrics"
	"github.com/osse101/LuckyGen_Go/internal/repository"
)

// Service defines the interface for pattern analysis
type Service interface {
	GetSummary(ctx context.Context) (*domain.PatternSummary, error)
}

// service implements the Service interface
type service struct {
	repo repository.Encounter
}

// NewService creates a new stats service
func NewService(repo repository.Encounter) Service {
	return &service{
		repo: repo,
	}
}

// GetSummary recomputes the summary from the current encounter log
func (s *service) GetSummary(ctx context.Context) (*domain.PatternSummary, error) {
	log := logger.FromContext(ctx)

	encounters, err := s.repo.ListEncounters(ctx)
	if err != nil {
		log.Error(LogMsgFailedToListEncounters, "error", err)
		return nil, fmt.Errorf(ErrMsgListEncountersFailed, err)
	}

	summary := Summarize(encounters)
	metrics.SummariesComputed.Inc()
	log.Debug(LogMsgSummaryComputed, "encounters", summary.TotalEncounters, "net_result", summary.NetResult)

	return &summary, nil
}
