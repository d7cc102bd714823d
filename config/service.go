package config

import (
	"fmt"
	"slices"

	"github.com/kbukum/flare/errors"
	"github.com/kbukum/flare/logger"
)

var validEnvironments = []string{"development", "staging", "production"}

// ServiceConfig contains the fields every flare process needs.
// Larger configs embed it with `mapstructure:",squash"`.
type ServiceConfig struct {
	Name        string        `yaml:"name" mapstructure:"name"`
	Environment string        `yaml:"environment" mapstructure:"environment"`
	Version     string        `yaml:"version" mapstructure:"version"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults applies default values to the base configuration.
func (c *ServiceConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "flare"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	if c.Logging.ServiceName == "" {
		c.Logging.ServiceName = c.Name
	}
	c.Logging.ApplyDefaults()
}

// Validate validates the base configuration fields.
func (c *ServiceConfig) Validate() error {
	if c.Name == "" {
		return errors.InvalidConfig("config.name is required")
	}
	if !slices.Contains(validEnvironments, c.Environment) {
		return errors.InvalidConfig(fmt.Sprintf(
			"config.environment must be one of %v (got: %s)", validEnvironments, c.Environment))
	}
	if err := c.Logging.Validate(); err != nil {
		return errors.InvalidConfig("config.logging").WithCause(err)
	}
	return nil
}
