package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/LuckyGen_Go/internal/logger"
	"github.com/osse101/LuckyGen_Go/internal/lottery"
)

// Config holds the application configuration
type Config struct {
	Port            int
	APIKey          string // API key for authentication
	LogLevel        string
	LogFormat       string
	LogDir          string
	Environment     string
	ServiceName     string
	Version         string
	RNGMode         string // "standard" or "secure"
	SeedEncounters  bool   // Preload the sample encounter log
	TrustedProxies  []string
	ShutdownTimeout time.Duration
	MaxBodyBytes    int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:          getEnv(EnvAPIKey, ""),
		LogLevel:        strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:       strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		LogDir:          getEnv(EnvLogDir, DefaultLogDir),
		Environment:     getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:     getEnv(EnvServiceName, DefaultServiceName),
		Version:         getEnv(EnvVersion, DefaultVersion),
		RNGMode:         strings.ToLower(getEnv(EnvLotteryRNG, lottery.RNGModeStandard)),
		TrustedProxies:  getEnvAsSlice(EnvTrustedProxies),
		ShutdownTimeout: getEnvAsDuration(EnvShutdownTimeout, DefaultShutdownTimeout),
		MaxBodyBytes:    getEnvAsInt(EnvMaxBodyBytes, DefaultMaxBodyBytes),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	seed, err := getEnvAsBool(EnvSeedEncounters, DefaultSeedEncounters)
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_ENCOUNTERS value: %w", err)
	}
	cfg.SeedEncounters = seed

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.LogFormat != logger.LogFormatJSON && c.LogFormat != logger.LogFormatText {
		return fmt.Errorf("invalid LOG_FORMAT %q: must be %q or %q", c.LogFormat, logger.LogFormatJSON, logger.LogFormatText)
	}
	if !slices.Contains([]string{lottery.RNGModeStandard, lottery.RNGModeSecure}, c.RNGMode) {
		return fmt.Errorf("invalid LOTTERY_RNG %q: must be %q or %q", c.RNGMode, lottery.RNGModeStandard, lottery.RNGModeSecure)
	}
	return nil
}

// LoggerConfig converts the application settings into logger settings
func (c *Config) LoggerConfig() logger.Config {
	return logger.NewConfig(c.LogLevel, c.LogFormat, c.ServiceName, c.Version, c.Environment, c.Environment == logger.EnvironmentDev)
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// DiscordConfig holds the bot settings
type DiscordConfig struct {
	Token        string
	AppID        string
	GuildID      string // Empty registers commands globally
	APIURL       string
	APIKey       string
	HealthPort   string
	ForceCommand bool
}

// LoadDiscord loads the bot configuration from environment variables
func LoadDiscord() (*DiscordConfig, error) {
	_ = godotenv.Load()

	cfg := &DiscordConfig{
		Token:      getEnv(EnvDiscordToken, ""),
		AppID:      getEnv(EnvDiscordAppID, ""),
		GuildID:    getEnv(EnvDiscordGuildID, ""),
		APIURL:     strings.TrimRight(getEnv(EnvAPIURL, DefaultAPIURL), "/"),
		APIKey:     getEnv(EnvAPIKey, ""),
		HealthPort: getEnv(EnvHealthPort, DefaultHealthPort),
	}

	if cfg.Token == "" {
		return nil, fmt.Errorf("%s is required", EnvDiscordToken)
	}
	if cfg.AppID == "" {
		return nil, fmt.Errorf("%s is required", EnvDiscordAppID)
	}

	force, err := getEnvAsBool(EnvForceCommands, false)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvForceCommands, err)
	}
	cfg.ForceCommand = force

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer variable, falling back to the default when unset or malformed
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration retrieves a duration variable, falling back to the default when unset or malformed
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool retrieves a boolean variable; unlike the other helpers a malformed value is an error
func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	return strconv.ParseBool(raw)
}

// getEnvAsSlice splits a comma separated variable, dropping blanks
func getEnvAsSlice(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
