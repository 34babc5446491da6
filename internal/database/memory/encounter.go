package memory

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/osse101/LuckyGen_Go/internal/domain"
	"github.com/osse101/LuckyGen_Go/internal/repository"
)

// EncounterRepository keeps the encounter log in process memory.
// Nothing survives a restart.
type EncounterRepository struct {
	mu         sync.RWMutex
	encounters []domain.Encounter
	byID       map[string]int
}

// NewEncounterRepository creates an empty repository
func NewEncounterRepository() *EncounterRepository {
	return &EncounterRepository{
		byID: make(map[string]int),
	}
}

// NewSeededEncounterRepository creates a repository preloaded with the sample log
func NewSeededEncounterRepository() *EncounterRepository {
	r := NewEncounterRepository()
	for _, e := range SeedEncounters() {
		r.byID[e.ID] = len(r.encounters)
		r.encounters = append(r.encounters, e)
	}
	slog.Default().Info(LogMsgEncountersSeeded, "count", len(r.encounters))
	return r
}

var _ repository.Encounter = (*EncounterRepository)(nil)

// ListEncounters returns a copy of the log in insertion order
func (r *EncounterRepository) ListEncounters(ctx context.Context) ([]domain.Encounter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Encounter, len(r.encounters))
	for i, e := range r.encounters {
		out[i] = cloneEncounter(e)
	}
	return out, nil
}

// GetEncounter returns a copy of one encounter
func (r *EncounterRepository) GetEncounter(ctx context.Context, id string) (*domain.Encounter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrEncounterNotFound, id)
	}
	e := cloneEncounter(r.encounters[idx])
	return &e, nil
}

// AddEncounter appends a copy of the encounter to the log
func (r *EncounterRepository) AddEncounter(ctx context.Context, encounter *domain.Encounter) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if encounter == nil || encounter.ID == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEncounterIDRequired)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[encounter.ID]; exists {
		return fmt.Errorf("%w: %s %s", domain.ErrInvalidInput, ErrMsgDuplicateEncounterID, encounter.ID)
	}

	r.byID[encounter.ID] = len(r.encounters)
	r.encounters = append(r.encounters, cloneEncounter(*encounter))
	return nil
}

// Ping always succeeds while the context is live
func (r *EncounterRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}

// cloneEncounter deep-copies the pointer and slice fields
func cloneEncounter(e domain.Encounter) domain.Encounter {
	e.Numbers.MainNumbers = slices.Clone(e.Numbers.MainNumbers)
	if e.Numbers.SpecialNumber != nil {
		n := *e.Numbers.SpecialNumber
		e.Numbers.SpecialNumber = &n
	}
	if e.Result != nil {
		res := *e.Result
		e.Result = &res
	}
	if e.WinAmount != nil {
		amt := *e.WinAmount
		e.WinAmount = &amt
	}
	return e
}
