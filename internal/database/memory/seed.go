package memory

import (
	"time"

	"github.com/osse101/LuckyGen_Go/internal/domain"
)

// SeedEncounters returns the sample play log loaded at startup.
// Each call builds fresh values.
func SeedEncounters() []domain.Encounter {
	return []domain.Encounter{
		seed("1", "2024-03-15", domain.GamePowerball, []int{15, 23, 42, 51, 67}, special(12, "Powerball"), 2, domain.ResultNoMatch, 0),
		seed("2", "2024-03-18", domain.GameMegaMillions, []int{8, 19, 33, 44, 58}, special(7, "Mega Ball"), 2, domain.ResultMatched2, 4),
		seed("3", "2024-03-20", domain.GamePick6, []int{5, 18, 27, 36, 41, 49}, nil, 1, domain.ResultMatched3, 10),
		seed("4", "2024-03-22", domain.GamePowerball, []int{3, 17, 29, 45, 62}, special(18, "Powerball"), 2, domain.ResultNoMatch, 0),
		seed("5", "2024-03-25", domain.GamePick3, []int{4, 7, 9}, nil, 1, domain.ResultNoMatch, 0),
		seed("6", "2024-03-27", domain.GameMegaMillions, []int{12, 24, 35, 47, 59}, special(15, "Mega Ball"), 2, domain.ResultMatched2, 4),
		seed("7", "2024-03-29", domain.GamePowerball, []int{6, 21, 38, 52, 64}, special(9, "Powerball"), 2, domain.ResultNoMatch, 0),
		seed("8", "2024-04-01", domain.GamePick6, []int{11, 22, 33, 39, 44, 48}, nil, 1, domain.ResultMatched2, 5),
	}
}

type specialPick struct {
	number int
	label  string
}

func special(n int, label string) *specialPick {
	return &specialPick{number: n, label: label}
}

func seed(id, date string, game domain.GameType, main []int, sp *specialPick, cost float64, result domain.MatchResult, win float64) domain.Encounter {
	played, err := time.Parse(time.DateOnly, date)
	if err != nil {
		panic(err)
	}

	numbers := domain.DrawResult{MainNumbers: main}
	if sp != nil {
		n := sp.number
		numbers.SpecialNumber = &n
		numbers.SpecialLabel = sp.label
	}

	return domain.Encounter{
		ID:        id,
		Date:      played,
		GameType:  game,
		Numbers:   numbers,
		Cost:      cost,
		Result:    &result,
		WinAmount: &win,
	}
}
