package handlers

import (
	"context"
	"errors"
	"log/slog"
	nethttp "net/http"
	"strconv"

	"github.com/preston-bernstein/sleeper-league-service/internal/app/leagues"
	"github.com/preston-bernstein/sleeper-league-service/internal/domain/league"
	"github.com/preston-bernstein/sleeper-league-service/internal/logging"
	"github.com/preston-bernstein/sleeper-league-service/internal/providers"
)

// statusFor maps service and upstream errors to an HTTP status and client-facing message.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, leagues.ErrInvalidArgument),
		errors.Is(err, leagues.ErrInvalidWeek),
		errors.Is(err, league.ErrUnsupportedSport):
		return nethttp.StatusBadRequest, err.Error()
	case errors.Is(err, leagues.ErrRosterNotFound):
		return nethttp.StatusNotFound, err.Error()
	case errors.Is(err, providers.ErrNotFound):
		return nethttp.StatusNotFound, "not found"
	}
	if _, ok := providers.AsRateLimitError(err); ok {
		return nethttp.StatusTooManyRequests, "upstream rate limited"
	}
	switch {
	case errors.Is(err, providers.ErrProviderUnavailable):
		return nethttp.StatusServiceUnavailable, "upstream unavailable"
	case errors.Is(err, context.DeadlineExceeded):
		return nethttp.StatusGatewayTimeout, "upstream timeout"
	default:
		return nethttp.StatusBadGateway, "upstream request failed"
	}
}

func (h *Handler) writeServiceError(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	status, msg := statusFor(err)
	logger := loggerFromContext(r, h.logger)
	if status >= nethttp.StatusInternalServerError || status == nethttp.StatusTooManyRequests {
		logging.Warn(logger, "request failed upstream",
			slog.Int(logging.FieldStatusCode, status),
			slog.Any("err", err),
		)
	}
	if rl, ok := providers.AsRateLimitError(err); ok && rl.RetryAfter > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(int(rl.RetryAfter.Seconds())))
	}
	writeError(w, r, status, msg, logger)
}
