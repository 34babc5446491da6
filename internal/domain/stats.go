package domain

// NumberFrequency is how often a single number was played
type NumberFrequency struct {
	Number    int `json:"number"`
	Frequency int `json:"frequency"`
}

// PatternSummary is derived from a full scan of the encounter log.
// It is never cached or stored.
type PatternSummary struct {
	TotalEncounters        int               `json:"total_encounters"`
	TotalSpent             float64           `json:"total_spent"`
	TotalWinnings          float64           `json:"total_winnings"`
	NetResult              float64           `json:"net_result"`
	WinRate                float64           `json:"win_rate"` // Percentage
	MostFrequentNumbers    []NumberFrequency `json:"most_frequent_numbers"`
	FavoriteGame           GameType          `json:"favorite_game"`
	AverageSpendingPerWeek float64           `json:"average_spending_per_week"`
}
