package stats

import "time"

// TopNumbersLimit caps the most-frequent-numbers list
const TopNumbersLimit = 5

// Week is the span used for the weekly spending average
const Week = 7 * 24 * time.Hour

// MinWeeks is the smallest divisor for the weekly average.
// Logs spanning less than a week are averaged over one week.
const MinWeeks = 1.0

// MaxReturnPercent caps the winnings-versus-spend ratio
const MaxReturnPercent = 100.0

// Error Messages
const (
	ErrMsgListEncountersFailed = "failed to list encounters: %w"
)

// Log Messages
const (
	LogMsgSummaryComputed        = "Pattern summary computed"
	LogMsgFailedToListEncounters = "Failed to list encounters for summary"
)
