package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/osse101/LuckyGen_Go/internal/lottery"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists the variables the API server cannot start without
var RequiredEnvVars = []string{
	EnvSchemaVersion,
	EnvAPIKey,
}

// RequiredDiscordEnvVars lists the variables the Discord bot cannot start without
var RequiredDiscordEnvVars = []string{
	EnvSchemaVersion,
	EnvAPIKey,
	EnvDiscordToken,
	EnvDiscordAppID,
}

// ValidateEnv checks that all required environment variables are set
// and that the schema version matches expectations
func ValidateEnv() error {
	return validateRequired(RequiredEnvVars)
}

// ValidateDiscordEnv is ValidateEnv for the bot process
func ValidateDiscordEnv() error {
	return validateRequired(RequiredDiscordEnvVars)
}

func validateRequired(required []string) error {
	// Check schema version first
	schemaVersion := os.Getenv(EnvSchemaVersion)
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range required {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv(EnvAPIKey) == "generate_with_openssl_rand_hex_32" {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if rng := os.Getenv(EnvLotteryRNG); rng == "" || strings.EqualFold(rng, lottery.RNGModeStandard) {
		warnings = append(warnings, "LOTTERY_RNG is standard - draws are uniform but not cryptographically secure; set LOTTERY_RNG=secure to change")
	}

	return warnings, nil
}
