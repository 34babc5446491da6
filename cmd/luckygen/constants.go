package main

// Flag names and defaults
const (
	flagGame  = "game"
	flagCount = "count"
	flagSeed  = "seed"

	defaultGame  = "powerball"
	defaultCount = 1
	maxCount     = 100
)

// Error messages
const (
	ErrMsgUnknownCommand = "unknown command %q"
	ErrMsgInvalidCount   = "count must be between 1 and %d, got %d"
	ErrMsgUnexpectedArgs = "unexpected arguments: %v"
)

// Table headers and labels
const (
	headerHistory = "DATE\tGAME\tNUMBERS\tCOST\tRESULT\tWON"
	headerGames   = "ID\tNAME\tMAIN\tSPECIAL\tCOST"
	resultPending = "Pending"
	noSpecial     = "-"
	noEncounters  = "No encounters recorded."
)
