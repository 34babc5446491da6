package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncounter_WinningsAndResult(t *testing.T) {
	pending := Encounter{ID: "p", Cost: 2}
	assert.Zero(t, pending.Winnings())
	assert.False(t, pending.HasResult())

	win := 4.0
	result := ResultMatched2
	played := Encounter{ID: "w", Cost: 2, Result: &result, WinAmount: &win}
	assert.Equal(t, 4.0, played.Winnings())
	assert.True(t, played.HasResult())
}

func TestDrawResult_HasSpecial(t *testing.T) {
	assert.False(t, DrawResult{MainNumbers: []int{1, 2, 3}}.HasSpecial())

	n := 12
	assert.True(t, DrawResult{MainNumbers: []int{1}, SpecialNumber: &n}.HasSpecial())
}

func TestPatternSummary_JSONShape(t *testing.T) {
	summary := PatternSummary{
		TotalEncounters:     2,
		MostFrequentNumbers: []NumberFrequency{{Number: 7, Frequency: 2}},
		FavoriteGame:        GamePick3,
	}

	raw, err := json.Marshal(summary)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	for _, key := range []string{
		"total_encounters", "total_spent", "total_winnings", "net_result",
		"win_rate", "most_frequent_numbers", "favorite_game", "average_spending_per_week",
	} {
		assert.Contains(t, fields, key)
	}
	assert.Equal(t, "pick-3", fields["favorite_game"])
}
