package server

import (
	"context"
	"testing"

	"github.com/preston-bernstein/sleeper-league-service/internal/config"
	"github.com/preston-bernstein/sleeper-league-service/internal/metrics"
	"github.com/preston-bernstein/sleeper-league-service/internal/providers/fixture"
)

func TestProviderFactoryBuildsWithDefaults(t *testing.T) {
	factory := newProviderFactory(nil, nil)
	prov := factory.build(config.Config{Provider: "fixture"})
	if prov == nil {
		t.Fatalf("expected provider")
	}
	if _, err := prov.FetchLeague(context.Background(), fixture.LeagueID); err != nil {
		t.Fatalf("expected wrapped fixture to serve league, got %v", err)
	}
}

func TestProviderFactoryWrapRecordsAttempts(t *testing.T) {
	rec := metrics.NewRecorder()
	factory := newProviderFactory(nil, rec)
	prov := factory.wrap(config.Config{Provider: "fixture"}, fixture.New())

	if _, err := prov.FetchRosters(context.Background(), fixture.LeagueID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rec.ProviderCalls("fixture"); got != 1 {
		t.Fatalf("expected one recorded attempt, got %d", got)
	}
}
