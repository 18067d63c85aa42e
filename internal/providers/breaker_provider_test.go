package providers

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/preston-bernstein/sleeper-league-service/internal/metrics"
)

func TestBreakerProviderOpensAfterConsecutiveFailures(t *testing.T) {
	boom := errors.New("boom")
	sp := newScriptedProvider(`{}`, boom, boom, boom, boom)
	p := NewBreakerProvider(sp, nil, metrics.NewRecorder(), "sleeper", BreakerConfig{ConsecutiveFailures: 2, Cooldown: time.Hour})

	for i := 0; i < 2; i++ {
		if _, err := p.FetchLeague(context.Background(), "1"); !errors.Is(err, boom) {
			t.Fatalf("attempt %d: expected upstream error, got %v", i, err)
		}
	}

	_, err := p.FetchLeague(context.Background(), "1")
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected open circuit to report ErrProviderUnavailable, got %v", err)
	}
	if sp.total() != 2 {
		t.Fatalf("expected open circuit to skip upstream, got %d calls", sp.total())
	}
}

func TestBreakerProviderIgnoresClientErrors(t *testing.T) {
	notFound := &StatusError{StatusCode: http.StatusNotFound}
	sp := newScriptedProvider(`{"ok":1}`, notFound, notFound, notFound)
	p := NewBreakerProvider(sp, nil, nil, "sleeper", BreakerConfig{ConsecutiveFailures: 2, Cooldown: time.Hour})

	for i := 0; i < 3; i++ {
		if _, err := p.FetchUser(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("attempt %d: expected not found, got %v", i, err)
		}
	}
	raw, err := p.FetchUser(context.Background(), "real")
	if err != nil || string(raw) != `{"ok":1}` {
		t.Fatalf("expected circuit to stay closed, got %s %v", raw, err)
	}
}
