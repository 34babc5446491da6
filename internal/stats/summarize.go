package stats

import (
	"slices"
	"time"

	"github.com/osse101/LuckyGen_Go/internal/domain"
)

// frequencyTable counts occurrences and remembers first-seen order
type frequencyTable[K comparable] struct {
	counts map[K]int
	order  []K
}

func newFrequencyTable[K comparable]() *frequencyTable[K] {
	return &frequencyTable[K]{counts: make(map[K]int)}
}

func (f *frequencyTable[K]) add(k K) {
	if _, seen := f.counts[k]; !seen {
		f.order = append(f.order, k)
	}
	f.counts[k]++
}

// Summarize derives the pattern summary from the full encounter log in one pass.
// An empty log yields zero totals and the default favorite game.
func Summarize(encounters []domain.Encounter) domain.PatternSummary {
	summary := domain.PatternSummary{
		TotalEncounters:     len(encounters),
		MostFrequentNumbers: []domain.NumberFrequency{},
		FavoriteGame:        domain.DefaultGameType,
	}
	if len(encounters) == 0 {
		return summary
	}

	numbers := newFrequencyTable[int]()
	games := newFrequencyTable[domain.GameType]()

	var withResult, wins int
	minDate, maxDate := encounters[0].Date, encounters[0].Date

	for _, e := range encounters {
		summary.TotalSpent += e.Cost
		summary.TotalWinnings += e.Winnings()

		if e.HasResult() {
			withResult++
			if e.Winnings() > 0 {
				wins++
			}
		}

		for _, n := range e.Numbers.MainNumbers {
			numbers.add(n)
		}
		if e.Numbers.SpecialNumber != nil {
			numbers.add(*e.Numbers.SpecialNumber)
		}

		games.add(e.GameType)

		if e.Date.Before(minDate) {
			minDate = e.Date
		}
		if e.Date.After(maxDate) {
			maxDate = e.Date
		}
	}

	summary.NetResult = summary.TotalWinnings - summary.TotalSpent
	if withResult > 0 {
		summary.WinRate = float64(wins) / float64(withResult) * 100
	}
	summary.MostFrequentNumbers = topNumbers(numbers, TopNumbersLimit)
	summary.FavoriteGame = favorite(games)
	summary.AverageSpendingPerWeek = summary.TotalSpent / weeksBetween(minDate, maxDate)

	return summary
}

// topNumbers orders by descending frequency; equal counts keep first-seen order
func topNumbers(f *frequencyTable[int], limit int) []domain.NumberFrequency {
	out := make([]domain.NumberFrequency, 0, len(f.order))
	for _, n := range f.order {
		out = append(out, domain.NumberFrequency{Number: n, Frequency: f.counts[n]})
	}

	slices.SortStableFunc(out, func(a, b domain.NumberFrequency) int {
		return b.Frequency - a.Frequency
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// favorite picks the most played game; the first one seen wins ties
func favorite(f *frequencyTable[domain.GameType]) domain.GameType {
	best := domain.DefaultGameType
	bestCount := 0
	for _, g := range f.order {
		if f.counts[g] > bestCount {
			best, bestCount = g, f.counts[g]
		}
	}
	return best
}

func weeksBetween(first, last time.Time) float64 {
	return max(MinWeeks, float64(last.Sub(first))/float64(Week))
}

// ReturnPercent is winnings as a share of spend, capped at 100.
// Zero spend yields zero.
func ReturnPercent(summary domain.PatternSummary) float64 {
	if summary.TotalSpent == 0 {
		return 0
	}
	return min(MaxReturnPercent, summary.TotalWinnings/summary.TotalSpent*100)
}
