package repository

import (
	"context"

	"github.com/osse101/LuckyGen_Go/internal/domain"
)

// Encounter defines the interface for encounter log storage
type Encounter interface {
	ListEncounters(ctx context.Context) ([]domain.Encounter, error)
	GetEncounter(ctx context.Context, id string) (*domain.Encounter, error)
	AddEncounter(ctx context.Context, encounter *domain.Encounter) error
	Ping(ctx context.Context) error
}
