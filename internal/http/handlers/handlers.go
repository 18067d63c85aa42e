package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/sleeper-league-service/internal/app/leagues"
	"github.com/preston-bernstein/sleeper-league-service/internal/domain/league"
	"github.com/preston-bernstein/sleeper-league-service/internal/domain/lineups"
	"github.com/preston-bernstein/sleeper-league-service/internal/http/requestutil"
	"github.com/preston-bernstein/sleeper-league-service/internal/logging"
	"github.com/preston-bernstein/sleeper-league-service/internal/poller"
)

// LeagueService is the league read surface the API exposes.
type LeagueService interface {
	User(ctx context.Context, username string) (json.RawMessage, error)
	UserLeagues(ctx context.Context, userID, sport, season string) (json.RawMessage, error)
	LeagueBundle(ctx context.Context, leagueID string, week *int) (leagues.Bundle, error)
	NormalizedLeague(ctx context.Context, leagueID string) (league.League, error)
	StartSit(ctx context.Context, leagueID string, rosterID, week int) (lineups.StartSitResponse, error)
}

// Handler wires HTTP routes to the league service.
type Handler struct {
	svc      LeagueService
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler. statusFn may be nil when no dictionary warmer runs.
func NewHandler(svc LeagueService, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic; it fails while the dictionary warmer has no recent success.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// User returns the upstream account for a username.
func (h *Handler) User(w nethttp.ResponseWriter, r *nethttp.Request) {
	raw, err := h.svc.User(r.Context(), r.PathValue("username"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeRaw(w, raw)
}

// UserLeagues lists a user's leagues for a sport and season.
func (h *Handler) UserLeagues(w nethttp.ResponseWriter, r *nethttp.Request) {
	raw, err := h.svc.UserLeagues(r.Context(), r.PathValue("userId"), r.PathValue("sport"), r.PathValue("season"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeRaw(w, raw)
}

// League returns the raw league bundle, with matchups when ?week is given.
func (h *Handler) League(w nethttp.ResponseWriter, r *nethttp.Request) {
	week, ok, err := requestutil.IntQuery(r, "week")
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	var weekPtr *int
	if ok {
		weekPtr = &week
	}
	bundle, err := h.svc.LeagueBundle(r.Context(), r.PathValue("leagueId"), weekPtr)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, bundle, h.logger)
}

// NormalizedLeague returns the platform-agnostic league view.
func (h *Handler) NormalizedLeague(w nethttp.ResponseWriter, r *nethttp.Request) {
	lg, err := h.svc.NormalizedLeague(r.Context(), r.PathValue("leagueId"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, lg, h.logger)
}

// StartSit returns lineup suggestions for ?rosterId, optionally for ?week (default: current week).
func (h *Handler) StartSit(w nethttp.ResponseWriter, r *nethttp.Request) {
	rosterID, ok, err := requestutil.IntQuery(r, "rosterId")
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "rosterId is required", h.logger)
		return
	}
	week, _, err := requestutil.IntQuery(r, "week")
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}

	resp, err := h.svc.StartSit(r.Context(), r.PathValue("leagueId"), rosterID, week)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "served start/sit",
		slog.String(logging.FieldLeagueID, resp.LeagueID),
		slog.Int(logging.FieldRosterID, resp.RosterID),
		slog.Int(logging.FieldWeek, resp.Week),
		slog.Int(logging.FieldCount, len(resp.Picks)),
	)
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// NotFound answers unmatched routes with the JSON error shape.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, fmt.Sprintf("no route for %s %s", r.Method, r.URL.Path), h.logger)
}
