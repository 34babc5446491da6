package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Lottery error messages
	ErrMsgGenerateFailed = "Failed to generate numbers"

	// Encounter error messages
	ErrMsgListEncountersFailed  = "Failed to list encounters"
	ErrMsgGetEncounterFailed    = "Failed to get encounter"
	ErrMsgRecordEncounterFailed = "Failed to record encounter"
	ErrMsgMissingEncounterID    = "Missing encounter id"
	ErrMsgInvalidDate           = "Invalid date. Use YYYY-MM-DD or RFC 3339."

	// Stats error messages
	ErrMsgGetSummaryFailed = "Failed to compute summary"

	// Decoder messages
	ErrMsgTrailingData = "unexpected data after JSON body"

	// Health messages
	ErrMsgStorageUnavailable = "encounter storage unavailable"
)

// Log messages
const (
	LogMsgDecodeFailed      = "Failed to decode %s request"
	LogMsgRequestDecoded    = "%s request decoded"
	LogMsgRequestDetails    = "Request details"
	LogMsgOddLogArgs        = "LogRequestFields called with odd number of arguments"
	LogMsgServiceError      = "%s failed"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteBufferFailed = "Failed to write response buffer"
	LogMsgNumbersGenerated  = "Numbers generated"
	LogMsgEncounterRecorded = "Encounter recorded"
	LogMsgSummaryServed     = "Summary served"
)

// Health status values
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)
