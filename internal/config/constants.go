package config

import "time"

const (
	envPort         = "PORT"
	envProvider     = "PROVIDER"
	envWebOrigin    = "WEB_ORIGIN"
	envAdminToken   = "ADMIN_TOKEN"
	envMCPEnabled   = "MCP_ENABLED"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	envSleeperBaseURL         = "SLEEPER_BASE_URL"
	envSleeperTimeout         = "SLEEPER_TIMEOUT"
	envSleeperRatePerMinute   = "SLEEPER_RATE_PER_MINUTE"
	envSleeperRetryAttempts   = "SLEEPER_RETRY_ATTEMPTS"
	envSleeperBreakerFailures = "SLEEPER_BREAKER_FAILURES"
	envSleeperBreakerCooldown = "SLEEPER_BREAKER_COOLDOWN"

	envPlayerCacheDir        = "PLAYER_CACHE_DIR"
	envPlayerCacheTTL        = "PLAYER_CACHE_TTL"
	envPlayerRefreshInterval = "PLAYER_REFRESH_INTERVAL"
	envPlayerRefreshSports   = "PLAYER_REFRESH_SPORTS"

	defaultPort        = "3001"
	defaultProvider    = "sleeper"
	defaultWebOrigin   = "http://localhost:5173"
	defaultMetricsPort = "9090"
	defaultServiceName = "sleeper-league-service"

	defaultSleeperBaseURL = "https://api.sleeper.app/v1"
	defaultSleeperTimeout = 10 * time.Second
	// Sleeper asks clients to stay under 1000 calls per minute.
	defaultSleeperRatePerMinute   = 900
	defaultSleeperRetryAttempts   = 3
	defaultSleeperBreakerFailures = 5
	defaultSleeperBreakerCooldown = 30 * time.Second

	defaultPlayerCacheDir        = ".cache"
	defaultPlayerCacheTTL        = 24 * time.Hour
	defaultPlayerRefreshInterval = 6 * time.Hour
	defaultPlayerRefreshSports   = "nfl"
)
