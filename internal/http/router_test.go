package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/preston-bernstein/sleeper-league-service/internal/http/handlers"
	"github.com/preston-bernstein/sleeper-league-service/internal/providers/fixture"
	"github.com/preston-bernstein/sleeper-league-service/internal/teststubs"
	"github.com/preston-bernstein/sleeper-league-service/internal/testutil"
)

func newTestRouter(t *testing.T, withOptional bool) http.Handler {
	t.Helper()
	routes := Routes{API: handlers.NewHandler(testutil.NewFixtureService(t), nil, nil)}
	if withOptional {
		routes.Admin = handlers.NewAdminHandler(&teststubs.StubRefresher{Count: 3}, "secret", nil)
		routes.MCP = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		})
	}
	return NewRouter(routes)
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter(t, false)

	leaguePath := "/api/sleeper/league/" + fixture.LeagueID
	cases := []struct {
		path string
		want int
	}{
		{"/health", http.StatusOK},
		{"/ready", http.StatusOK},
		{"/api/sleeper/user/" + fixture.Username, http.StatusOK},
		{"/api/sleeper/leagues/fixture-user-1/nfl/2024", http.StatusOK},
		{leaguePath, http.StatusOK},
		{leaguePath + "/normalized", http.StatusOK},
		{leaguePath + "/startsit?rosterId=2", http.StatusOK},
		{"/api/sleeper/league/missing", http.StatusNotFound},
	}

	for _, tc := range cases {
		rr := testutil.Serve(router, http.MethodGet, tc.path, nil)
		if rr.Code != tc.want {
			t.Fatalf("route %s expected status %d, got %d", tc.path, tc.want, rr.Code)
		}
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	router := newTestRouter(t, false)

	rr := testutil.Serve(router, http.MethodGet, "/does-not-exist", nil)
	if msg := testutil.AssertErrorBody(t, rr, http.StatusNotFound); !strings.Contains(msg, "/does-not-exist") {
		t.Fatalf("expected path in error message, got %q", msg)
	}
}

func TestRouterWrongMethodFallsThroughToNotFound(t *testing.T) {
	router := newTestRouter(t, false)
	rr := testutil.Serve(router, http.MethodPost, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestRouterOptionalRoutes(t *testing.T) {
	router := newTestRouter(t, false)
	rr := testutil.Serve(router, http.MethodPost, "/admin/players/refresh", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
	rr = testutil.Serve(router, http.MethodPost, "/mcp", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	router = newTestRouter(t, true)
	req := httptest.NewRequest(http.MethodPost, "/admin/players/refresh", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rr = testutil.ServeRequest(router, req)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(router, http.MethodPost, "/mcp", nil)
	testutil.AssertStatus(t, rr, http.StatusAccepted)
}
