package config

import "log/slog"

// Config holds runtime configuration for the server, assembled once at
// startup and passed explicitly to the components that need it.
type Config struct {
	Port       string
	Provider   string
	Timezone   string
	SlotLimit  int
	ExcludeOut bool
	Log        LogConfig
	Cache      CacheConfig
	Retry      RetryConfig
	ESPN       ESPNConfig
	Metrics    MetricsConfig
	Leagues    []LeagueConfig
}

// LogConfig controls logger construction.
type LogConfig struct {
	Level  string
	Format string
}

// CacheConfig carries the TTL per dataset.
type CacheConfig struct {
	Weekly Duration
	Daily  Duration
	SOS    Duration
	League Duration
}

// RetryConfig is the retry policy applied at the provider boundary.
type RetryConfig struct {
	MaxAttempts    int
	InitialBackoff Duration
	MaxBackoff     Duration
}

// Load reads configuration from environment variables with sensible defaults.
// League entries come from numbered LEAGUE_n_* variables, falling back to the
// legacy YAML file only when the environment defines none.
func Load(logger *slog.Logger) Config {
	return Config{
		Port:       envOrDefault(envPort, defaultPort),
		Provider:   envOrDefault(envDataProvider, defaultDataProvider),
		Timezone:   envOrDefault(envTimezone, defaultTimezone),
		SlotLimit:  intEnvOrDefault(envSlotLimit, defaultSlotLimit),
		ExcludeOut: boolEnvOrDefault(envExcludeOut, true),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, "info"),
			Format: envOrDefault(envLogFormat, "text"),
		},
		Cache: CacheConfig{
			Weekly: durationEnvOrDefault(envCacheWeekly, defaultCacheWeekly),
			Daily:  durationEnvOrDefault(envCacheDaily, defaultCacheDaily),
			SOS:    durationEnvOrDefault(envCacheSOS, defaultCacheSOS),
			League: durationEnvOrDefault(envCacheLeague, defaultCacheLeague),
		},
		Retry: RetryConfig{
			MaxAttempts:    intEnvOrDefault(envRetryAttempts, defaultRetryAttempts),
			InitialBackoff: durationEnvOrDefault(envRetryBackoff, defaultRetryBackoff),
			MaxBackoff:     durationEnvOrDefault(envRetryMax, defaultRetryMax),
		},
		ESPN:    loadESPN(),
		Metrics: loadMetrics(),
		Leagues: loadLeagues(logger),
	}
}
