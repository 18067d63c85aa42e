package testutil

import (
	"testing"

	"github.com/preston-bernstein/sleeper-league-service/internal/app/leagues"
	"github.com/preston-bernstein/sleeper-league-service/internal/metrics"
	"github.com/preston-bernstein/sleeper-league-service/internal/playercache"
	"github.com/preston-bernstein/sleeper-league-service/internal/providers"
	"github.com/preston-bernstein/sleeper-league-service/internal/providers/fixture"
)

// NewTempCache returns a player cache rooted in a temp dir with expiry disabled.
func NewTempCache(t *testing.T, fetcher providers.PlayerProvider) *playercache.Cache {
	t.Helper()
	return playercache.New(fetcher, playercache.NewFSStore(t.TempDir()), playercache.Config{}, nil, metrics.NewRecorder())
}

// NewFixtureService builds a league service over the fixture provider and a temp-dir player cache.
func NewFixtureService(t *testing.T) *leagues.Service {
	t.Helper()
	return NewServiceWithProvider(t, fixture.New())
}

// NewServiceWithProvider builds a league service over provider, sourcing dictionaries from the fixture.
func NewServiceWithProvider(t *testing.T, provider providers.DataProvider) *leagues.Service {
	t.Helper()
	return leagues.NewService(provider, NewTempCache(t, fixture.New()), nil, metrics.NewRecorder())
}
