package encounter

// Error Messages
const (
	ErrMsgListFailed   = "failed to list encounters: %w"
	ErrMsgGetFailed    = "failed to get encounter: %w"
	ErrMsgRecordFailed = "failed to record encounter: %w"
)

// Log Messages
const (
	LogMsgEncounterRecorded    = "Encounter recorded"
	LogMsgFailedToRecord       = "Failed to record encounter"
	LogMsgInvalidEncounterGame = "Encounter rejected: unknown game type"
)
