package config

const (
	defaultDataDir         = "~/.local/share/stencil"
	defaultLogDir          = "~/.local/share/stencil/logs"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	defaultFuzzyThreshold  = 0.8
	defaultReviewThreshold = 40
	defaultWorkers         = 4
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Resolver: Resolver{
			FuzzyThreshold:  defaultFuzzyThreshold,
			ReviewThreshold: defaultReviewThreshold,
			Workers:         defaultWorkers,
		},
		Catalog: Catalog{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
