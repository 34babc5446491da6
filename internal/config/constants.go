package config

import "time"

// Environment variable names
const (
	EnvPort            = "PORT"
	EnvAPIKey          = "API_KEY"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
	EnvLogDir          = "LOG_DIR"
	EnvEnvironment     = "ENVIRONMENT"
	EnvServiceName     = "SERVICE_NAME"
	EnvVersion         = "VERSION"
	EnvLotteryRNG      = "LOTTERY_RNG"
	EnvSeedEncounters  = "SEED_ENCOUNTERS"
	EnvTrustedProxies  = "TRUSTED_PROXIES"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
	EnvMaxBodyBytes    = "MAX_BODY_BYTES"
	EnvSchemaVersion   = "ENV_SCHEMA_VERSION"

	EnvDiscordToken   = "DISCORD_TOKEN"
	EnvDiscordAppID   = "DISCORD_APP_ID"
	EnvDiscordGuildID = "DISCORD_GUILD_ID"
	EnvAPIURL         = "API_URL"
	EnvForceCommands  = "DISCORD_FORCE_COMMAND_UPDATE"
	EnvHealthPort     = "DISCORD_HEALTH_PORT"
)

// Defaults
const (
	DefaultPort            = "8080"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultLogDir          = "logs"
	DefaultEnvironment     = "dev"
	DefaultServiceName     = "luckygen"
	DefaultVersion         = "dev"
	DefaultSeedEncounters  = true
	DefaultShutdownTimeout = 10 * time.Second
	DefaultMaxBodyBytes    = 1 << 20
	DefaultAPIURL          = "http://localhost:8080"
	DefaultHealthPort      = "8082"
)
