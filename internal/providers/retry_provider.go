package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/preston-bernstein/sleeper-league-service/internal/logging"
	"github.com/preston-bernstein/sleeper-league-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
	defaultMaxBackoff    = 5 * time.Second
	maxRetryAfter        = 30 * time.Second
)

// RetryConfig controls retry behavior. Zero values fall back to defaults.
type RetryConfig struct {
	MaxAttempts     int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// retryingProvider wraps a DataProvider with exponential backoff retries and records
// per-attempt metrics.
type retryingProvider struct {
	*guardedProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	maxAttempts  int
	newBackOff   func() backoff.BackOff
}

// NewRetryingProvider wraps the given provider with retries.
func NewRetryingProvider(next DataProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string, cfg RetryConfig) DataProvider {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultRetryAttempts
	}
	if cfg.InitialInterval <= 0 {
		cfg.InitialInterval = defaultBackoff
	}
	if cfg.MaxInterval <= 0 {
		cfg.MaxInterval = defaultMaxBackoff
	}
	rp := &retryingProvider{
		logger:       logger,
		metrics:      recorder,
		providerName: providerName,
		maxAttempts:  cfg.MaxAttempts,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = cfg.InitialInterval
			b.MaxInterval = cfg.MaxInterval
			b.MaxElapsedTime = 0
			return b
		},
	}
	rp.guardedProvider = newGuardedProvider(next, rp.do)
	return rp
}

func (r *retryingProvider) do(ctx context.Context, op string, call func(context.Context) error) error {
	hinted := &retryAfterBackOff{BackOff: r.newBackOff()}
	policy := backoff.WithContext(backoff.WithMaxRetries(hinted, uint64(r.maxAttempts-1)), ctx)

	attempt := 0
	operation := func() error {
		attempt++
		start := time.Now()
		err := call(ctx)
		r.metrics.RecordProviderAttempt(r.providerName, time.Since(start), err)
		if err == nil {
			return nil
		}
		if rl, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(r.providerName, rl.RetryAfter)
			hinted.hint = min(rl.RetryAfter, maxRetryAfter)
		}
		if !IsRetryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, delay time.Duration) {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider fetch retry",
			slog.String(logging.FieldOperation, op),
			slog.Int(logging.FieldAttempt, attempt),
			slog.Int("max_attempts", r.maxAttempts),
			slog.Int64("delay_ms", delay.Milliseconds()),
			slog.Any("error", err),
		)
	}

	err := backoff.RetryNotify(operation, policy, notify)
	if err != nil && IsRetryable(err) {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider fetch failed",
			slog.String(logging.FieldOperation, op),
			slog.Int("attempts", attempt),
			slog.Any("error", err),
		)
	}
	return err
}

// retryAfterBackOff stretches the next delay to honor an upstream Retry-After hint.
type retryAfterBackOff struct {
	backoff.BackOff
	hint time.Duration
}

func (b *retryAfterBackOff) NextBackOff() time.Duration {
	next := b.BackOff.NextBackOff()
	if next == backoff.Stop {
		return next
	}
	if b.hint > next {
		next = b.hint
	}
	b.hint = 0
	return next
}
