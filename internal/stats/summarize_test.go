package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LuckyGen_Go/internal/database/memory"
	"github.com/osse101/LuckyGen_Go/internal/domain"
)

func day(s string) time.Time {
	d, _ := time.Parse(time.DateOnly, s)
	return d
}

func played(date string, game domain.GameType, cost float64, main ...int) domain.Encounter {
	return domain.Encounter{
		Date:     day(date),
		GameType: game,
		Numbers:  domain.DrawResult{MainNumbers: main},
		Cost:     cost,
	}
}

func withResult(e domain.Encounter, r domain.MatchResult, win float64) domain.Encounter {
	e.Result = &r
	e.WinAmount = &win
	return e
}

func TestSummarize_SampleLog(t *testing.T) {
	summary := Summarize(memory.SeedEncounters())

	assert.Equal(t, 8, summary.TotalEncounters)
	assert.Equal(t, 13.0, summary.TotalSpent)
	assert.Equal(t, 23.0, summary.TotalWinnings)
	assert.Equal(t, 10.0, summary.NetResult)
	assert.Equal(t, 50.0, summary.WinRate)
	assert.Equal(t, domain.GamePowerball, summary.FavoriteGame)
	assert.InDelta(t, 13.0/(17.0/7.0), summary.AverageSpendingPerWeek, 1e-9)

	assert.Equal(t, []domain.NumberFrequency{
		{Number: 15, Frequency: 2},
		{Number: 12, Frequency: 2},
		{Number: 33, Frequency: 2},
		{Number: 44, Frequency: 2},
		{Number: 7, Frequency: 2},
	}, summary.MostFrequentNumbers)
}

func TestSummarize_Empty(t *testing.T) {
	for _, in := range [][]domain.Encounter{nil, {}} {
		summary := Summarize(in)

		assert.Zero(t, summary.TotalEncounters)
		assert.Zero(t, summary.TotalSpent)
		assert.Zero(t, summary.TotalWinnings)
		assert.Zero(t, summary.NetResult)
		assert.Zero(t, summary.WinRate)
		assert.Zero(t, summary.AverageSpendingPerWeek)
		assert.NotNil(t, summary.MostFrequentNumbers)
		assert.Empty(t, summary.MostFrequentNumbers)
		assert.Equal(t, domain.GamePowerball, summary.FavoriteGame)
	}
}

func TestSummarize_SingleEncounterUsesOneWeek(t *testing.T) {
	summary := Summarize([]domain.Encounter{
		played("2024-05-01", domain.GamePick3, 1, 1, 2, 3),
	})

	assert.Equal(t, 1.0, summary.AverageSpendingPerWeek)
	assert.Zero(t, summary.WinRate, "no result-bearing encounters")
	assert.Equal(t, domain.GamePick3, summary.FavoriteGame)
}

func TestSummarize_ShortSpanUsesOneWeek(t *testing.T) {
	summary := Summarize([]domain.Encounter{
		played("2024-05-01", domain.GamePick6, 3, 1),
		played("2024-05-04", domain.GamePick6, 3, 2),
	})

	assert.Equal(t, 6.0, summary.AverageSpendingPerWeek)
}

func TestSummarize_UnorderedDates(t *testing.T) {
	summary := Summarize([]domain.Encounter{
		played("2024-01-15", domain.GamePick3, 7, 1),
		played("2024-01-01", domain.GamePick3, 7, 2),
		played("2024-01-29", domain.GamePick3, 7, 3),
	})

	// 28 days = 4 weeks
	assert.Equal(t, 21.0/4.0, summary.AverageSpendingPerWeek)
}

func TestSummarize_WinRateCountsOnlyResultBearing(t *testing.T) {
	summary := Summarize([]domain.Encounter{
		withResult(played("2024-01-01", domain.GamePick6, 1, 1), domain.ResultMatched3, 10),
		withResult(played("2024-01-02", domain.GamePick6, 1, 2), domain.ResultNoMatch, 0),
		played("2024-01-03", domain.GamePick6, 1, 3),
		played("2024-01-04", domain.GamePick6, 1, 4),
	})

	assert.Equal(t, 50.0, summary.WinRate)
	assert.Equal(t, 10.0, summary.TotalWinnings)
	assert.Equal(t, 6.0, summary.NetResult)
}

func TestSummarize_FrequencyTieBreakKeepsFirstSeen(t *testing.T) {
	summary := Summarize([]domain.Encounter{
		played("2024-01-01", domain.GamePick3, 1, 9, 8, 7),
		played("2024-01-02", domain.GamePick3, 1, 6, 5, 4),
		played("2024-01-03", domain.GamePick3, 1, 4, 3, 2),
	})

	require.Len(t, summary.MostFrequentNumbers, TopNumbersLimit)
	assert.Equal(t, domain.NumberFrequency{Number: 4, Frequency: 2}, summary.MostFrequentNumbers[0])

	var rest []int
	for _, nf := range summary.MostFrequentNumbers[1:] {
		assert.Equal(t, 1, nf.Frequency)
		rest = append(rest, nf.Number)
	}
	assert.Equal(t, []int{9, 8, 7, 6}, rest)
}

func TestSummarize_SpecialNumberCounted(t *testing.T) {
	zero := 0
	e := played("2024-01-01", domain.GamePick3, 1, 0, 1, 2)
	e.Numbers.SpecialNumber = &zero

	summary := Summarize([]domain.Encounter{e})

	assert.Equal(t, domain.NumberFrequency{Number: 0, Frequency: 2}, summary.MostFrequentNumbers[0])
}

func TestSummarize_FavoriteGameTieBreak(t *testing.T) {
	summary := Summarize([]domain.Encounter{
		played("2024-01-01", domain.GamePick6, 1, 1),
		played("2024-01-02", domain.GameMegaMillions, 2, 1),
		played("2024-01-03", domain.GameMegaMillions, 2, 1),
		played("2024-01-04", domain.GamePick6, 1, 1),
	})

	assert.Equal(t, domain.GamePick6, summary.FavoriteGame)
}

func TestSummarize_NegativeAmountsAcceptedAsIs(t *testing.T) {
	summary := Summarize([]domain.Encounter{
		withResult(played("2024-01-01", domain.GamePick3, -2, 1), domain.ResultNoMatch, -3),
	})

	assert.Equal(t, -2.0, summary.TotalSpent)
	assert.Equal(t, -3.0, summary.TotalWinnings)
	assert.Equal(t, -1.0, summary.NetResult)
	assert.Zero(t, summary.WinRate)
}

func TestReturnPercent(t *testing.T) {
	tests := []struct {
		name     string
		spent    float64
		winnings float64
		want     float64
	}{
		{"no spend", 0, 5, 0},
		{"partial return", 20, 5, 25},
		{"capped", 13, 23, 100},
		{"nothing back", 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReturnPercent(domain.PatternSummary{TotalSpent: tt.spent, TotalWinnings: tt.winnings})
			assert.Equal(t, tt.want, got)
		})
	}
}
