package discord

import "time"

// API client settings
const (
	DefaultClientTimeout = 10 * time.Second
	DefaultMaxRetries    = 3
	DefaultRetryDelay    = 500 * time.Millisecond
	HeaderAPIKey         = "X-API-Key"
	apiErrorPrefix       = "API error: "

	DefaultRequestsPerSecond = 5
	DefaultRequestBurst      = 10
	DefaultBreakerFailures   = 3
	DefaultBreakerCooldown   = 30 * time.Second
	breakerName              = "luckygen-api"
)

// API paths
const (
	PathHealthz    = "/healthz"
	PathGames      = "/api/v1/games"
	PathGenerate   = "/api/v1/lottery/generate"
	PathEncounters = "/api/v1/encounters"
	PathSummary    = "/api/v1/stats/summary"
)

// Command names and options
const (
	CommandPing     = "ping"
	CommandGenerate = "generate"
	CommandGames    = "games"
	CommandHistory  = "history"
	CommandAnalysis = "analysis"

	OptionGame  = "game"
	OptionLimit = "limit"

	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 25
)

// Embed colors
const (
	ColorDraw     = 0x2ecc71
	ColorGames    = 0x3498db
	ColorHistory  = 0x9b59b6
	ColorAnalysis = 0xf1c40f
	ColorLoss     = 0xe74c3c
	ColorOffline  = 0xe67e22
)

// Footer constants for standardized embed footers
const (
	FooterLuckyGen    = "LuckyGen"
	FooterResponsible = "LuckyGen · Play responsibly"
)

// Log messages
const (
	LogMsgBotRunning         = "Discord bot is now running. Press CTRL-C to exit."
	LogMsgBotReady           = "Bot is ready"
	LogMsgBotStopped         = "Discord session closed"
	LogMsgRetryingRequest    = "Retrying API request"
	LogMsgRequestFailed      = "API request failed"
	LogMsgServerErrorRetry   = "Server error, will retry"
	LogMsgBreakerStateChange = "API circuit breaker state changed"
	LogMsgActionFailed       = "Action failed"
	LogMsgDeferFailed        = "Failed to send deferred response"
	LogMsgEditFailed         = "Failed to edit interaction response"
	LogMsgCheckingCommands   = "Checking Discord commands..."
	LogMsgCommandsForced     = "Force update enabled - replacing all commands"
	LogMsgCommandsUnchanged  = "Commands unchanged, skipping registration"
	LogMsgCommandsChanged    = "Commands changed, updating..."
	LogMsgCommandsUpdated    = "Commands updated successfully"
	LogMsgHealthServerStart  = "Starting Discord health server"
	LogMsgHealthServerFailed = "Discord health server failed"
	LogMsgHealthServerStop   = "Discord health server shutdown failed"
)

// Error message formats
const (
	ErrMsgCreateSession     = "error creating Discord session: %w"
	ErrMsgOpenConnection    = "error opening connection: %w"
	ErrMsgCloseSession      = "error closing Discord session: %w"
	ErrMsgMarshalBody       = "failed to marshal body: %w"
	ErrMsgCreateRequest     = "failed to create request: %w"
	ErrMsgMaxRetries        = "max retries exceeded: %w"
	ErrMsgServerStatus      = "server error: %d"
	ErrMsgUnexpectedStatus  = "API returned status: %d"
	ErrMsgDecodeResponse    = "failed to decode response: %w"
	ErrMsgFetchCommands     = "failed to fetch existing commands: %w"
	ErrMsgOverwriteCommands = "failed to update commands: %w"
)
