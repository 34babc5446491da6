package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Game errors
	ErrMsgInvalidGameType = "invalid game type"

	// Encounter errors
	ErrMsgEncounterNotFound = "encounter not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidGameType   = errors.New(ErrMsgInvalidGameType)
	ErrEncounterNotFound = errors.New(ErrMsgEncounterNotFound)
	ErrInvalidInput      = errors.New(ErrMsgInvalidInput)
)
