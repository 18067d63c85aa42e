package testutil

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/sleeper-league-service/internal/providers"
	"github.com/preston-bernstein/sleeper-league-service/internal/providers/fixture"
)

func TestFixturesHelper(t *testing.T) {
	dict := SampleDictionary()
	rec, ok := dict["wr1"]
	if !ok || rec.Name() != "Wade Rhodes" || len(rec.FantasyPositions) != 1 {
		t.Fatalf("unexpected dictionary record %+v", rec)
	}
	if len(dict) != 6 {
		t.Fatalf("expected 6 sample records, got %d", len(dict))
	}
}

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	rr := Serve(handler, http.MethodPost, "/test", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)
	var body map[string]bool
	DecodeJSON(t, rr, &body)
	if !body["ok"] {
		t.Fatalf("expected ok=true")
	}

	req := httptest.NewRequest(http.MethodGet, "/req", nil)
	rr2 := ServeRequest(handler, req)
	AssertStatus(t, rr2, http.StatusCreated)
}

func TestFixtureServiceHelpers(t *testing.T) {
	svc := NewFixtureService(t)
	lg, err := svc.NormalizedLeague(context.Background(), fixture.LeagueID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lg.Teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(lg.Teams))
	}

	svc = NewServiceWithProvider(t, UnavailableProvider())
	if _, err := svc.NormalizedLeague(context.Background(), fixture.LeagueID); !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected unavailable error, got %v", err)
	}
}

func TestTempCacheReadsThrough(t *testing.T) {
	fetcher := &StaticPlayers{Payload: json.RawMessage(`{"1":{"player_id":"1","full_name":"One"}}`)}
	cache := NewTempCache(t, fetcher)

	for i := 0; i < 2; i++ {
		dict, err := cache.Get(context.Background(), "nfl")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dict["1"].Name() != "One" {
			t.Fatalf("unexpected dictionary %+v", dict)
		}
	}
	if fetcher.Calls != 1 {
		t.Fatalf("expected a single upstream fetch, got %d", fetcher.Calls)
	}
}

func TestServerStubs(t *testing.T) {
	p := &StubPoller{Err: errors.New("stop")}
	p.Start(context.Background())
	if err := p.Stop(context.Background()); !errors.Is(err, p.Err) {
		t.Fatalf("expected stop error")
	}
	if p.StartCalls != 1 || p.StopCalls != 1 {
		t.Fatalf("unexpected call counts %+v", p)
	}
	if p.Status() != p.StatusVal {
		t.Fatalf("expected status passthrough")
	}

	sh := &StubHTTPServer{ListenErr: http.ErrServerClosed, ShutdownErr: errors.New("down")}
	if err := sh.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		t.Fatalf("expected configured listen error, got %v", err)
	}
	if err := sh.Shutdown(context.Background()); err == nil {
		t.Fatalf("expected configured shutdown error")
	}
	if sh.Addr() != ":0" || sh.Handler() == nil {
		t.Fatalf("expected defaults for addr and handler")
	}
	if sh.ListenCalls() != 1 || sh.ShutdownCalls() != 1 {
		t.Fatalf("expected listen/shutdown calls, got %d/%d", sh.ListenCalls(), sh.ShutdownCalls())
	}

	b := &BlockingHTTPServer{Unblock: make(chan struct{})}
	if err := b.ListenAndServe(); err != nil {
		t.Fatalf("expected nil listen error for blocking server")
	}
	done := make(chan error, 1)
	go func() { done <- b.Shutdown(context.Background()) }()
	close(b.Unblock)
	if err := <-done; err != nil {
		t.Fatalf("expected nil shutdown err, got %v", err)
	}
	if b.ShutdownCalls() != 1 {
		t.Fatalf("expected shutdown called once")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()
	blocked := &BlockingHTTPServer{Unblock: make(chan struct{})}
	if err := blocked.Shutdown(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
}

func TestLoggerAndMetricsHelpers(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello", "k", "v")
	if buf.Len() == 0 {
		t.Fatalf("expected buffered log output")
	}
	rec, shutdown := NewRecorderWithShutdown()
	if rec == nil || shutdown == nil {
		t.Fatalf("expected recorder and shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected nil shutdown error, got %v", err)
	}
}

func TestProviderHelpers(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	p := ErrProvider{Err: boom}

	calls := []func() (json.RawMessage, error){
		func() (json.RawMessage, error) { return p.FetchUser(ctx, "u") },
		func() (json.RawMessage, error) { return p.FetchUserLeagues(ctx, "u", "nfl", "2024") },
		func() (json.RawMessage, error) { return p.FetchLeague(ctx, "l") },
		func() (json.RawMessage, error) { return p.FetchRosters(ctx, "l") },
		func() (json.RawMessage, error) { return p.FetchUsers(ctx, "l") },
		func() (json.RawMessage, error) { return p.FetchMatchups(ctx, "l", 1) },
		func() (json.RawMessage, error) { return p.FetchState(ctx, "nfl") },
		func() (json.RawMessage, error) { return p.FetchPlayers(ctx, "nfl") },
	}
	for i, call := range calls {
		if _, err := call(); !errors.Is(err, boom) {
			t.Fatalf("call %d: expected error passthrough, got %v", i, err)
		}
	}

	if _, err := UnavailableProvider().FetchLeague(ctx, "l"); !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected provider unavailable")
	}

	static := &StaticPlayers{Err: boom}
	if _, err := static.FetchPlayers(ctx, "nfl"); !errors.Is(err, boom) || static.Calls != 1 {
		t.Fatalf("expected static error and one call, got %v (%d)", err, static.Calls)
	}
}
