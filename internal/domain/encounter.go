package domain

import "time"

// MatchResult is the outcome of a played ticket once the draw is known
type MatchResult string

const (
	ResultNoMatch  MatchResult = "no-match"
	ResultMatched2 MatchResult = "matched-2"
	ResultMatched3 MatchResult = "matched-3"
	ResultMatched4 MatchResult = "matched-4"
	ResultMatched5 MatchResult = "matched-5"
	ResultJackpot  MatchResult = "jackpot"
)

var matchResultLabels = map[MatchResult]string{
	ResultNoMatch:  "No Match",
	ResultMatched2: "Matched 2",
	ResultMatched3: "Matched 3",
	ResultMatched4: "Matched 4",
	ResultMatched5: "Matched 5",
	ResultJackpot:  "Jackpot!",
}

// Label returns the display text for the result
func (r MatchResult) Label() string {
	if label, ok := matchResultLabels[r]; ok {
		return label
	}
	return string(r)
}

// IsValid reports whether r is one of the known results
func (r MatchResult) IsValid() bool {
	_, ok := matchResultLabels[r]
	return ok
}

// Encounter is one logged lottery play.
// Result and WinAmount stay nil until the outcome is known.
type Encounter struct {
	ID        string       `json:"id"`
	Date      time.Time    `json:"date"`
	GameType  GameType     `json:"game_type"`
	Numbers   DrawResult   `json:"numbers"`
	Cost      float64      `json:"cost"`
	Result    *MatchResult `json:"result,omitempty"`
	WinAmount *float64     `json:"win_amount,omitempty"`
	Notes     string       `json:"notes,omitempty"`
}

// Winnings returns the win amount, treating an unknown amount as zero
func (e Encounter) Winnings() float64 {
	if e.WinAmount == nil {
		return 0
	}
	return *e.WinAmount
}

// HasResult reports whether the outcome of the play has been recorded
func (e Encounter) HasResult() bool {
	return e.Result != nil
}

// NewEncounter carries the caller-supplied fields for recording a play.
// Zero Date and nil Cost are filled in by the encounter service.
type NewEncounter struct {
	Date      time.Time
	GameType  GameType
	Numbers   DrawResult
	Cost      *float64
	Result    *MatchResult
	WinAmount *float64
	Notes     string
}
