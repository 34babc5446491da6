package lottery

// Random source modes, selected with LOTTERY_RNG
const (
	RNGModeStandard = "standard"
	RNGModeSecure   = "secure"
)

// Ticket prices (dollars) used as the default encounter cost
const (
	CostPowerball    = 2.0
	CostMegaMillions = 2.0
	CostPick6        = 1.0
	CostPick3        = 1.0
)

// Special number labels
const (
	SpecialNamePowerball = "Powerball"
	SpecialNameMegaBall  = "Mega Ball"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgUnknownRNGMode     = "unknown random source mode %q"
	ErrMsgGameRangeTooSmall  = "game %s: main range %d-%d cannot hold %d unique numbers"
	ErrMsgGameSpecialRange   = "game %s: special range %d-%d is empty"
	ErrMsgSecureSourceFailed = "secure random source read failed: %w"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgNumbersGenerated       = "Lottery numbers generated"
	LogMsgInvalidGameRequested   = "Invalid game type requested"
	LogMsgRandomSourceConfigured = "Random source configured"
)
