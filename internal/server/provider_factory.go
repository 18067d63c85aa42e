package server

import (
	"log/slog"

	"github.com/preston-bernstein/sleeper-league-service/internal/config"
	"github.com/preston-bernstein/sleeper-league-service/internal/metrics"
	"github.com/preston-bernstein/sleeper-league-service/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (retry, breaker, rate limit).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	return f.wrap(cfg, selectProvider(cfg, f.logger))
}

// wrap layers retry over breaker over limiter, so a retry never bypasses the limiter
// and an open breaker stops retries immediately.
func (f providerFactory) wrap(cfg config.Config, base providers.DataProvider) providers.DataProvider {
	name := normalizeProviderName(cfg.Provider, base)
	limited := providers.NewRateLimitedProvider(base, cfg.Sleeper.RatePerMinute, f.logger, name)
	guarded := providers.NewBreakerProvider(limited, f.logger, f.metrics, name, providers.BreakerConfig{
		ConsecutiveFailures: uint32(cfg.Sleeper.BreakerFailures),
		Cooldown:            cfg.Sleeper.BreakerCooldown,
	})
	return providers.NewRetryingProvider(guarded, f.logger, f.metrics, name, providers.RetryConfig{
		MaxAttempts: cfg.Sleeper.RetryAttempts,
	})
}
