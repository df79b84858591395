package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeRegistry(); err != nil {
		return err
	}
	c.normalizeResolver()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = ExpandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = ExpandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeRegistry() error {
	var err error
	c.Registry.CoachFile = strings.TrimSpace(c.Registry.CoachFile)
	if c.Registry.CoachFile != "" {
		if c.Registry.CoachFile, err = ExpandPath(c.Registry.CoachFile); err != nil {
			return fmt.Errorf("registry.coach_file: %w", err)
		}
	}
	c.Registry.StudentFile = strings.TrimSpace(c.Registry.StudentFile)
	if c.Registry.StudentFile != "" {
		if c.Registry.StudentFile, err = ExpandPath(c.Registry.StudentFile); err != nil {
			return fmt.Errorf("registry.student_file: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeResolver() {
	if c.Resolver.FuzzyThreshold <= 0 {
		c.Resolver.FuzzyThreshold = defaultFuzzyThreshold
	}
	if c.Resolver.ReviewThreshold <= 0 {
		c.Resolver.ReviewThreshold = defaultReviewThreshold
	}
	if c.Resolver.Workers <= 0 {
		c.Resolver.Workers = defaultWorkers
	}
	trimmed := make([]string, 0, len(c.Resolver.CoachEmailDomains))
	for _, domain := range c.Resolver.CoachEmailDomains {
		if domain = strings.ToLower(strings.TrimSpace(domain)); domain != "" {
			trimmed = append(trimmed, domain)
		}
	}
	c.Resolver.CoachEmailDomains = trimmed
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
