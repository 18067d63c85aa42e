package handlers

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"github.com/preston-bernstein/sleeper-league-service/internal/domain/league"
	"github.com/preston-bernstein/sleeper-league-service/internal/http/requestutil"
	"github.com/preston-bernstein/sleeper-league-service/internal/logging"
)

// DictionaryRefresher forces a player dictionary refetch for a sport.
type DictionaryRefresher interface {
	Refresh(ctx context.Context, sport string) (int, error)
}

// AdminHandler exposes admin-only endpoints.
type AdminHandler struct {
	refresher DictionaryRefresher
	token     string
	logger    *slog.Logger
}

// NewAdminHandler constructs an AdminHandler. An empty token rejects every request.
func NewAdminHandler(refresher DictionaryRefresher, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		refresher: refresher,
		token:     token,
		logger:    logger,
	}
}

// RefreshPlayers refetches the player dictionary for ?sport (default nfl).
// Requires "Authorization: Bearer <ADMIN_TOKEN>".
func (h *AdminHandler) RefreshPlayers(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.refresher == nil {
		writeError(w, r, http.StatusServiceUnavailable, "player cache not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	raw := strings.TrimSpace(r.URL.Query().Get("sport"))
	if raw == "" {
		raw = string(league.SportNFL)
	}
	sport, err := league.ParseSport(raw)
	if err != nil {
		logging.Warn(logger, "admin refresh invalid sport", slog.String(logging.FieldSport, raw))
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
		return
	}

	count, err := h.refresher.Refresh(r.Context(), string(sport))
	if err != nil {
		logging.Warn(logger, "admin refresh failed",
			slog.String(logging.FieldSport, string(sport)),
			slog.Any("err", err),
		)
		writeError(w, r, http.StatusBadGateway, "failed to refresh players", logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"sport":   sport,
		"players": count,
		"status":  "ok",
	}, logger)
	logging.Info(logger, "admin players refreshed",
		slog.String(logging.FieldSport, string(sport)),
		slog.Int(logging.FieldCount, count),
	)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	got := requestutil.BearerToken(r)
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.token)) == 1
}
