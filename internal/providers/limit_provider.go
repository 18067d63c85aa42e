package providers

import (
	"context"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/sleeper-league-service/internal/logging"
)

const defaultRatePerMinute = 900

// rateLimitedProvider wraps a DataProvider with a token bucket shared by every operation.
type rateLimitedProvider struct {
	*guardedProvider
	limiter      *rate.Limiter
	logger       *slog.Logger
	providerName string
}

// NewRateLimitedProvider returns a DataProvider that allows at most perMinute upstream calls per minute.
// Calls block until a token is available or ctx is done.
func NewRateLimitedProvider(next DataProvider, perMinute int, logger *slog.Logger, providerName string) DataProvider {
	if perMinute <= 0 {
		perMinute = defaultRatePerMinute
	}
	burst := perMinute / 60
	if burst < 1 {
		burst = 1
	}
	p := &rateLimitedProvider{
		limiter:      rate.NewLimiter(rate.Limit(float64(perMinute)/60), burst),
		logger:       logger,
		providerName: providerName,
	}
	p.guardedProvider = newGuardedProvider(next, p.do)
	return p
}

func (p *rateLimitedProvider) do(ctx context.Context, op string, call func(context.Context) error) error {
	if err := p.limiter.Wait(ctx); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.providerName, "rate-limited fetch canceled",
			slog.String(logging.FieldOperation, op),
			slog.Any("error", err),
		)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	return call(ctx)
}
