package providers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"github.com/preston-bernstein/sleeper-league-service/internal/metrics"
)

const (
	defaultBreakerFailures = 5
	defaultBreakerCooldown = 30 * time.Second
)

// BreakerConfig controls when the circuit opens and how long it stays open.
type BreakerConfig struct {
	ConsecutiveFailures uint32
	Cooldown            time.Duration
}

// breakerProvider short-circuits upstream calls after repeated failures.
// Client errors such as 404s do not count against upstream health.
type breakerProvider struct {
	*guardedProvider
	cb *gobreaker.CircuitBreaker
}

// NewBreakerProvider wraps next with a circuit breaker. While open, calls fail fast with ErrProviderUnavailable.
func NewBreakerProvider(next DataProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string, cfg BreakerConfig) DataProvider {
	if cfg.ConsecutiveFailures == 0 {
		cfg.ConsecutiveFailures = defaultBreakerFailures
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = defaultBreakerCooldown
	}
	settings := gobreaker.Settings{
		Name:        providerName,
		MaxRequests: 1,
		Timeout:     cfg.Cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.ConsecutiveFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || IsClientError(err) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			recorder.RecordBreakerState(name, to.String())
			logWithProvider(context.Background(), logger, slog.LevelWarn, name, "provider circuit state changed",
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	}
	p := &breakerProvider{cb: gobreaker.NewCircuitBreaker(settings)}
	p.guardedProvider = newGuardedProvider(next, p.do)
	return p
}

func (p *breakerProvider) do(ctx context.Context, op string, call func(context.Context) error) error {
	_, err := p.cb.Execute(func() (interface{}, error) {
		return nil, call(ctx)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%s %s: %w: %v", p.cb.Name(), op, ErrProviderUnavailable, err)
	}
	return err
}
