package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateResolver(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateResolver() error {
	if c.Resolver.FuzzyThreshold <= 0 || c.Resolver.FuzzyThreshold > 1 {
		return errors.New("resolver.fuzzy_threshold must be between 0 and 1")
	}
	if c.Resolver.ReviewThreshold < 0 || c.Resolver.ReviewThreshold > 100 {
		return errors.New("resolver.review_threshold must be between 0 and 100")
	}
	if c.Resolver.Workers < 1 {
		return errors.New("resolver.workers must be at least 1")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
}
