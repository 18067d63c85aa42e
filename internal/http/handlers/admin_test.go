package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preston-bernstein/sleeper-league-service/internal/teststubs"
	"github.com/preston-bernstein/sleeper-league-service/internal/testutil"
)

func adminRequest(path, token string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAdminRefreshRequiresAuth(t *testing.T) {
	refresher := &teststubs.StubRefresher{Count: 10}
	h := NewAdminHandler(refresher, "secret", nil)

	for _, token := range []string{"", "wrong"} {
		rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshPlayers), adminRequest("/admin/players/refresh", token))
		testutil.AssertStatus(t, rr, http.StatusUnauthorized)
	}
	if refresher.Calls.Load() != 0 {
		t.Fatalf("expected no refresh without auth")
	}
}

func TestAdminRefreshEmptyTokenRejects(t *testing.T) {
	h := NewAdminHandler(&teststubs.StubRefresher{}, "", nil)
	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshPlayers), adminRequest("/admin/players/refresh", ""))
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
}

func TestAdminRefreshRefreshesSport(t *testing.T) {
	refresher := &teststubs.StubRefresher{Count: 42}
	h := NewAdminHandler(refresher, "secret", nil)

	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshPlayers), adminRequest("/admin/players/refresh?sport=NBA", "secret"))
	testutil.AssertStatus(t, rr, http.StatusOK)

	var body map[string]any
	testutil.DecodeJSON(t, rr, &body)
	if body["sport"] != "nba" || body["players"] != float64(42) {
		t.Fatalf("unexpected body %+v", body)
	}
	if refresher.Calls.Load() != 1 {
		t.Fatalf("expected one refresh, got %d", refresher.Calls.Load())
	}
}

func TestAdminRefreshRejectsUnknownSport(t *testing.T) {
	h := NewAdminHandler(&teststubs.StubRefresher{}, "secret", nil)
	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshPlayers), adminRequest("/admin/players/refresh?sport=cricket", "secret"))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestAdminRefreshUpstreamFailure(t *testing.T) {
	h := NewAdminHandler(&teststubs.StubRefresher{Err: errors.New("boom")}, "secret", nil)
	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshPlayers), adminRequest("/admin/players/refresh", "secret"))
	testutil.AssertStatus(t, rr, http.StatusBadGateway)
}

func TestAdminRefreshWithoutRefresher(t *testing.T) {
	h := NewAdminHandler(nil, "secret", nil)
	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshPlayers), adminRequest("/admin/players/refresh", "secret"))
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}
