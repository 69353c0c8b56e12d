package config

import "time"

const (
	envPort           = "PORT"
	envDataProvider   = "DATA_PROVIDER"
	envTimezone       = "TIMEZONE"
	envSlotLimit      = "STARTING_SLOT_LIMIT"
	envExcludeOut     = "EXCLUDE_OUT_PLAYERS"
	envLegacyLeagues  = "LEGACY_LEAGUES_FILE"
	envLogLevel       = "LOG_LEVEL"
	envLogFormat      = "LOG_FORMAT"
	envCacheWeekly    = "CACHE_TTL_WEEKLY"
	envCacheDaily     = "CACHE_TTL_DAILY"
	envCacheSOS       = "CACHE_TTL_SOS"
	envCacheLeague    = "CACHE_TTL_LEAGUE"
	envRetryAttempts  = "RETRY_MAX_ATTEMPTS"
	envRetryBackoff   = "RETRY_INITIAL_BACKOFF"
	envRetryMax       = "RETRY_MAX_BACKOFF"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"
	envScoreboardBase = "ESPN_SCOREBOARD_BASE_URL"
	envFantasyBase    = "ESPN_FANTASY_BASE_URL"
	envUpstreamWait   = "ESPN_FANTASY_MIN_INTERVAL"
	envHTTPTimeout    = "UPSTREAM_HTTP_TIMEOUT"

	defaultPort         = "4000"
	defaultDataProvider = "espn"
	defaultTimezone     = "America/New_York" // ESPN schedules run on Eastern time
	defaultSlotLimit    = 10
	defaultMetricsPort  = "9090"

	// Cache TTLs mirror how fast each dataset actually moves: the weekly grid
	// shifts rarely, today's slate more often, standings barely at all.
	defaultCacheWeekly = 30 * Duration(time.Minute)
	defaultCacheDaily  = 15 * Duration(time.Minute)
	defaultCacheSOS    = 6 * Duration(time.Hour)
	defaultCacheLeague = 15 * Duration(time.Minute)

	defaultRetryAttempts = 3
	defaultRetryBackoff  = 2 * Duration(time.Second)
	defaultRetryMax      = 10 * Duration(time.Second)

	// Spacing between fantasy API calls to stay friendly with the quota.
	defaultUpstreamWait = 2 * Duration(time.Second)
	defaultHTTPTimeout  = 10 * Duration(time.Second)

	defaultScoreboardBase = "https://site.api.espn.com/apis/site/v2/sports/basketball/nba"
	defaultFantasyBase    = "https://lm-api-reads.fantasy.espn.com/apis/v3/games/fba"
)
