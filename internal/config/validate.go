package config

import (
	"errors"

	"github.com/hance08/txengine/internal/validation"
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	return errors.Join(
		validation.ValidateBatchSize(c.Engine.BatchSize),
		validation.ValidateFormat(c.Output.Format),
		validation.ValidateLogLevel(c.Log.Level),
	)
}
