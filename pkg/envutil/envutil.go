// Package envutil reads and validates environment variable overrides.
package envutil

import (
	"fmt"
	"os"
	"strconv"

	"github.com/crilang/cri/pkg/console"
	"github.com/crilang/cri/pkg/logger"
)

// GetIntFromEnv reads an integer from an environment variable, validates it
// against inclusive min/max bounds, and falls back to defaultValue when the
// variable is unset, unparsable or out of bounds. Invalid values trigger a
// warning on stderr; valid overrides are debug-logged through log when it is
// non-nil.
func GetIntFromEnv(envVar string, defaultValue, minValue, maxValue int, log *logger.Logger) int {
	envValue := os.Getenv(envVar)
	if envValue == "" {
		return defaultValue
	}

	val, err := strconv.Atoi(envValue)
	if err != nil {
		fmt.Fprint(os.Stderr, console.FormatWarningMessage(
			fmt.Sprintf("Invalid %s value '%s' (must be a number), using default %d", envVar, envValue, defaultValue),
		))
		return defaultValue
	}

	if val < minValue || val > maxValue {
		fmt.Fprint(os.Stderr, console.FormatWarningMessage(
			fmt.Sprintf("%s value %d is out of bounds (must be %d-%d), using default %d", envVar, val, minValue, maxValue, defaultValue),
		))
		return defaultValue
	}

	if log != nil {
		log.Printf("Using %s=%d", envVar, val)
	}
	return val
}
