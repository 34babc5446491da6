package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"whole amount", 13, "$13.00"},
		{"zero", 0, "$0.00"},
		{"fraction rounds to cents", 5.352941, "$5.35"},
		{"grouped thousands", 1234.5, "$1,234.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(tt.amount))
		})
	}
}

func TestFormatDate(t *testing.T) {
	date := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "March 15, 2024", FormatDate(date))
}

func TestFormatNumbers(t *testing.T) {
	special := 12

	t.Run("with special number", func(t *testing.T) {
		draw := DrawResult{
			MainNumbers:   []int{15, 23, 42, 51, 67},
			SpecialNumber: &special,
			SpecialLabel:  "Powerball",
		}
		assert.Equal(t, "15 - 23 - 42 - 51 - 67 | Powerball: 12", FormatNumbers(draw))
	})

	t.Run("main numbers only", func(t *testing.T) {
		draw := DrawResult{MainNumbers: []int{4, 7, 9}}
		assert.Equal(t, "4 - 7 - 9", FormatNumbers(draw))
	})

	t.Run("special number without label is omitted", func(t *testing.T) {
		draw := DrawResult{MainNumbers: []int{1, 2}, SpecialNumber: &special}
		assert.Equal(t, "1 - 2", FormatNumbers(draw))
	})
}

func TestMatchResultLabel(t *testing.T) {
	assert.Equal(t, "No Match", ResultNoMatch.Label())
	assert.Equal(t, "Jackpot!", ResultJackpot.Label())
	assert.Equal(t, "matched-9", MatchResult("matched-9").Label())
	assert.True(t, ResultMatched4.IsValid())
	assert.False(t, MatchResult("bogus").IsValid())
}

func TestRange(t *testing.T) {
	r := Range{Min: 0, Max: 9}
	assert.Equal(t, 10, r.Size())
	assert.True(t, r.Contains(0))
	assert.True(t, r.Contains(9))
	assert.False(t, r.Contains(10))
	assert.Equal(t, 0, Range{Min: 5, Max: 1}.Size())
}
