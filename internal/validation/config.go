package validation

import (
	"fmt"
	"strings"

	"github.com/hance08/txengine/internal/constants"
)

var logLevels = []string{"trace", "debug", "info", "warn", "error"}

// ValidateFormat checks the output format name
func ValidateFormat(format string) error {
	switch format {
	case constants.FormatCSV, constants.FormatTable:
		return nil
	default:
		return fmt.Errorf("invalid output format '%s' (must be %s or %s)", format, constants.FormatCSV, constants.FormatTable)
	}
}

// ValidateBatchSize rejects batch sizes that would never make progress
func ValidateBatchSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("batch size must be positive, got %d", size)
	}
	return nil
}

// ValidateLogLevel checks the level against the names the logger knows
func ValidateLogLevel(level string) error {
	for _, l := range logLevels {
		if strings.EqualFold(level, l) {
			return nil
		}
	}
	return fmt.Errorf("invalid log level '%s' (must be one of %s)", level, strings.Join(logLevels, ", "))
}
