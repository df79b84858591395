package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"stencil/internal/catalog"
	"stencil/internal/config"
	"stencil/internal/logging"
	"stencil/internal/registry"
	"stencil/internal/resolve"
	"stencil/internal/textutil"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// newLogger builds a stdout logger honoring the configured level and format.
func (c *commandContext) newLogger(cfg *config.Config) (*slog.Logger, error) {
	logger, err := logging.New(logging.Options{
		Level:            cfg.Logging.Level,
		Format:           cfg.Logging.Format,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	})
	if err != nil {
		return nil, fmt.Errorf("setup logging: %w", err)
	}
	return logger, nil
}

// loadRegistries resolves the configured coach and student tables, falling
// back to the built-in defaults when files are missing.
func (c *commandContext) loadRegistries(cfg *config.Config, logger *slog.Logger) (coaches, students *registry.Registry) {
	coaches = registry.LoadOrBuiltin(cfg.Registry.CoachFile, registry.BuiltinCoaches(), logger, "coach")
	students = registry.LoadOrBuiltin(cfg.Registry.StudentFile, registry.BuiltinStudents(), logger, "student")
	return coaches, students
}

// loadRegistryHandles wraps the loaded registries in swappable handles for
// consumers that may outlive a single resolution pass.
func (c *commandContext) loadRegistryHandles(cfg *config.Config, logger *slog.Logger) (coaches, students *registry.Handle) {
	coachReg, studentReg := c.loadRegistries(cfg, logger)
	return registry.NewHandle(coachReg), registry.NewHandle(studentReg)
}

func (c *commandContext) buildResolver(cfg *config.Config, logger *slog.Logger) *resolve.Resolver {
	coaches, students := c.loadRegistries(cfg, logger)
	return resolve.New(coaches, students, resolve.Options{
		FuzzyThreshold:    cfg.Resolver.FuzzyThreshold,
		CoachEmailDomains: cfg.Resolver.CoachEmailDomains,
		CoachKeywords:     cfg.Resolver.CoachKeywords,
	}, logger)
}

// withCatalog opens the catalog store, runs fn, and closes the store.
func (c *commandContext) withCatalog(fn func(*catalog.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := catalog.Open(cfg)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer store.Close()
	return fn(store)
}

func yesNo(value bool) string {
	return textutil.Ternary(value, "yes", "no")
}
