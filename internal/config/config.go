package config

// Config holds runtime configuration for the server.
type Config struct {
	// Version is stamped by the binary, not read from the environment.
	Version    string
	Port       string
	Provider   string
	WebOrigin  string
	AdminToken string
	MCPEnabled bool
	Sleeper    SleeperConfig
	Players    PlayersConfig
	Metrics    MetricsConfig
	Logging    LoggingConfig
}

// LoggingConfig selects the slog level and handler format.
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:       envOrDefault(envPort, defaultPort),
		Provider:   envOrDefault(envProvider, defaultProvider),
		WebOrigin:  envOrDefault(envWebOrigin, defaultWebOrigin),
		AdminToken: envOrDefault(envAdminToken, ""),
		MCPEnabled: boolEnvOrDefault(envMCPEnabled, true),
		Sleeper:    loadSleeper(),
		Players:    loadPlayers(),
		Metrics:    loadMetrics(),
		Logging: LoggingConfig{
			Level:  envOrDefault(envLogLevel, "info"),
			Format: envOrDefault(envLogFormat, "text"),
		},
	}
}
