package encounter

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/LuckyGen_Go/internal/domain"
	"github.com/osse101/LuckyGen_Go/internal/logger"
	"github.com/osse101/LuckyGen_Go/internal/lottery"
	"github.com/osse101/LuckyGen_Go/internal/metrics"
	"github.com/osse101/LuckyGen_Go/internal/repository"
)

// Service defines the interface for the encounter log
type Service interface {
	ListEncounters(ctx context.Context) ([]domain.Encounter, error)
	GetEncounter(ctx context.Context, id string) (*domain.Encounter, error)
	RecordEncounter(ctx context.Context, req domain.NewEncounter) (*domain.Encounter, error)
}

type service struct {
	repo repository.Encounter
	now  func() time.Time
}

// NewService creates a new encounter service
func NewService(repo repository.Encounter) Service {
	return &service{
		repo: repo,
		now:  time.Now,
	}
}

// ListEncounters returns every encounter in the order it was recorded
func (s *service) ListEncounters(ctx context.Context) ([]domain.Encounter, error) {
	encounters, err := s.repo.ListEncounters(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListFailed, err)
	}
	return encounters, nil
}

// GetEncounter returns one encounter or domain.ErrEncounterNotFound
func (s *service) GetEncounter(ctx context.Context, id string) (*domain.Encounter, error) {
	encounter, err := s.repo.GetEncounter(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrEncounterNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgGetFailed, err)
	}
	return encounter, nil
}

// RecordEncounter appends a play to the log.
// Missing date and cost default to now and the game's ticket price.
// Numbers are stored as supplied and amount signs are not checked.
func (s *service) RecordEncounter(ctx context.Context, req domain.NewEncounter) (*domain.Encounter, error) {
	log := logger.FromContext(ctx)

	game, err := lottery.LookupGame(req.GameType)
	if err != nil {
		log.Warn(LogMsgInvalidEncounterGame, logger.AttrKeyGameType, req.GameType)
		return nil, err
	}

	encounter := &domain.Encounter{
		ID:        uuid.NewString(),
		Date:      req.Date,
		GameType:  game.ID,
		Numbers:   req.Numbers,
		Cost:      game.Cost,
		Result:    req.Result,
		WinAmount: req.WinAmount,
		Notes:     req.Notes,
	}
	encounter.Numbers.MainNumbers = slices.Clone(req.Numbers.MainNumbers)
	if encounter.Date.IsZero() {
		encounter.Date = s.now().UTC()
	}
	if req.Cost != nil {
		encounter.Cost = *req.Cost
	}
	if encounter.Numbers.SpecialNumber != nil && encounter.Numbers.SpecialLabel == "" {
		encounter.Numbers.SpecialLabel = game.SpecialName
	}

	if err := s.repo.AddEncounter(ctx, encounter); err != nil {
		log.Error(LogMsgFailedToRecord, "error", err, logger.AttrKeyGameType, game.ID)
		return nil, fmt.Errorf(ErrMsgRecordFailed, err)
	}

	metrics.EncountersRecorded.WithLabelValues(string(game.ID)).Inc()
	metrics.AmountSpent.Add(encounter.Cost)
	metrics.AmountWon.Add(encounter.Winnings())
	log.Info(LogMsgEncounterRecorded, logger.AttrKeyEncounterID, encounter.ID, logger.AttrKeyGameType, game.ID, "cost", encounter.Cost)

	return encounter, nil
}
