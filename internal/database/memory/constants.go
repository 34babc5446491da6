package memory

// Error Messages
const (
	ErrMsgDuplicateEncounterID = "duplicate encounter id"
	ErrMsgEncounterIDRequired  = "encounter id is required"
)

// Log Messages
const (
	LogMsgEncountersSeeded = "Seeded in-memory encounter log"
)
