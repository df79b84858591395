package testsupport

import (
	"path/filepath"
	"testing"

	"stencil/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithRegistryFiles points the config at explicit coach and student registry files.
func WithRegistryFiles(coachFile, studentFile string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Registry.CoachFile = coachFile
		b.cfg.Registry.StudentFile = studentFile
	}
}

// WithReviewThreshold overrides the confidence floor below which records are
// flagged for review.
func WithReviewThreshold(threshold int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Resolver.ReviewThreshold = threshold
	}
}

// WithWorkers overrides the batch worker count on the test config.
func WithWorkers(workers int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Resolver.Workers = workers
	}
}
