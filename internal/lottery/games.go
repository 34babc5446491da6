package lottery

import (
	"fmt"

	"github.com/osse101/LuckyGen_Go/internal/domain"
)

// gameTable holds the rules of every supported game, in display order.
// It is never written after package initialization; callers only get copies.
var gameTable = [...]domain.GameConfig{
	{
		ID:           domain.GamePowerball,
		Name:         "Powerball",
		MainCount:    5,
		MainRange:    domain.Range{Min: 1, Max: 69},
		SpecialCount: 1,
		SpecialRange: domain.Range{Min: 1, Max: 26},
		SpecialName:  SpecialNamePowerball,
		Cost:         CostPowerball,
	},
	{
		ID:           domain.GameMegaMillions,
		Name:         "Mega Millions",
		MainCount:    5,
		MainRange:    domain.Range{Min: 1, Max: 70},
		SpecialCount: 1,
		SpecialRange: domain.Range{Min: 1, Max: 25},
		SpecialName:  SpecialNameMegaBall,
		Cost:         CostMegaMillions,
	},
	{
		ID:        domain.GamePick6,
		Name:      "Pick 6",
		MainCount: 6,
		MainRange: domain.Range{Min: 1, Max: 49},
		Cost:      CostPick6,
	},
	{
		ID:        domain.GamePick3,
		Name:      "Pick 3",
		MainCount: 3,
		MainRange: domain.Range{Min: 0, Max: 9},
		Cost:      CostPick3,
	},
}

func init() {
	for _, g := range gameTable {
		if err := ValidateGame(g); err != nil {
			panic(err)
		}
	}
}

// Games returns the game table in display order
func Games() []domain.GameConfig {
	out := make([]domain.GameConfig, len(gameTable))
	copy(out, gameTable[:])
	return out
}

// GameTypes returns the supported game identifiers in display order
func GameTypes() []domain.GameType {
	out := make([]domain.GameType, len(gameTable))
	for i, g := range gameTable {
		out[i] = g.ID
	}
	return out
}

// LookupGame returns the rules for a game type
func LookupGame(gameType domain.GameType) (domain.GameConfig, error) {
	for _, g := range gameTable {
		if g.ID == gameType {
			return g, nil
		}
	}
	return domain.GameConfig{}, fmt.Errorf("%w: %q", domain.ErrInvalidGameType, gameType)
}

// IsValidGameType reports whether the game type is in the table
func IsValidGameType(gameType domain.GameType) bool {
	_, err := LookupGame(gameType)
	return err == nil
}

// GameName returns the display name, or the raw identifier for unknown games
func GameName(gameType domain.GameType) string {
	g, err := LookupGame(gameType)
	if err != nil {
		return string(gameType)
	}
	return g.Name
}

// GameCost returns the ticket price of a game
func GameCost(gameType domain.GameType) (float64, error) {
	g, err := LookupGame(gameType)
	if err != nil {
		return 0, err
	}
	return g.Cost, nil
}

// ValidateGame checks that a draw for the game can terminate:
// the main range must hold MainCount distinct numbers.
func ValidateGame(g domain.GameConfig) error {
	if g.MainCount <= 0 || g.MainRange.Size() < g.MainCount {
		return fmt.Errorf(ErrMsgGameRangeTooSmall, g.ID, g.MainRange.Min, g.MainRange.Max, g.MainCount)
	}
	if g.HasSpecial() && g.SpecialRange.Size() == 0 {
		return fmt.Errorf(ErrMsgGameSpecialRange, g.ID, g.SpecialRange.Min, g.SpecialRange.Max)
	}
	return nil
}
