package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/sleeper-league-service/internal/http/handlers"
)

// Routes groups the handlers mounted by NewRouter. Admin and MCP are optional.
type Routes struct {
	API   *handlers.Handler
	Admin *handlers.AdminHandler
	MCP   nethttp.Handler
}

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(routes Routes) nethttp.Handler {
	h := routes.API
	mux := nethttp.NewServeMux()
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /ready", h.Ready)
	mux.HandleFunc("GET /api/sleeper/user/{username}", h.User)
	mux.HandleFunc("GET /api/sleeper/leagues/{userId}/{sport}/{season}", h.UserLeagues)
	mux.HandleFunc("GET /api/sleeper/league/{leagueId}", h.League)
	mux.HandleFunc("GET /api/sleeper/league/{leagueId}/normalized", h.NormalizedLeague)
	mux.HandleFunc("GET /api/sleeper/league/{leagueId}/startsit", h.StartSit)
	if routes.Admin != nil {
		mux.HandleFunc("POST /admin/players/refresh", routes.Admin.RefreshPlayers)
	}
	if routes.MCP != nil {
		mux.Handle("/mcp", routes.MCP)
	}
	mux.HandleFunc("/", h.NotFound)
	return mux
}
