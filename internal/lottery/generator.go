package lottery

import (
	"slices"

	"github.com/osse101/LuckyGen_Go/internal/domain"
)

// Generator produces random draws for the games in the table
type Generator struct {
	src RandomSource
}

// NewGenerator creates a generator. A nil source means the standard source.
func NewGenerator(src RandomSource) *Generator {
	if src == nil {
		src = NewStandardSource()
	}
	return &Generator{src: src}
}

// Generate draws numbers for a game type.
// Unknown game types are rejected before any sampling happens.
func (g *Generator) Generate(gameType domain.GameType) (domain.DrawResult, error) {
	game, err := LookupGame(gameType)
	if err != nil {
		return domain.DrawResult{}, err
	}
	return g.Draw(game), nil
}

// Draw produces one draw for an already validated game config.
// The config must satisfy ValidateGame or the draw never finishes.
func (g *Generator) Draw(game domain.GameConfig) domain.DrawResult {
	result := domain.DrawResult{
		MainNumbers: g.uniqueNumbers(game.MainCount, game.MainRange),
	}

	if game.HasSpecial() {
		special := g.intIn(game.SpecialRange)
		result.SpecialNumber = &special
		result.SpecialLabel = game.SpecialName
	}

	return result
}

// uniqueNumbers samples until count distinct values are collected, then sorts them
func (g *Generator) uniqueNumbers(count int, r domain.Range) []int {
	seen := make(map[int]struct{}, count)
	numbers := make([]int, 0, count)

	for len(numbers) < count {
		n := g.intIn(r)
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		numbers = append(numbers, n)
	}

	slices.Sort(numbers)
	return numbers
}

func (g *Generator) intIn(r domain.Range) int {
	return r.Min + g.src.IntN(r.Size())
}
