package server

import (
	"log/slog"

	"github.com/preston-bernstein/sleeper-league-service/internal/config"
	"github.com/preston-bernstein/sleeper-league-service/internal/metrics"
	"github.com/preston-bernstein/sleeper-league-service/internal/playercache"
	"github.com/preston-bernstein/sleeper-league-service/internal/poller"
	"github.com/preston-bernstein/sleeper-league-service/internal/providers"
)

type playerComponents struct {
	cache  *playercache.Cache
	poller Poller
}

// buildPlayers wires the dictionary cache and, when sports are configured, its background warmer.
func buildPlayers(cfg config.Config, provider providers.PlayerProvider, logger *slog.Logger, recorder *metrics.Recorder) playerComponents {
	cache := playercache.New(provider, playercache.NewFSStore(cfg.Players.CacheDir), playercache.Config{
		TTL: cfg.Players.CacheTTL,
	}, logger, recorder)

	components := playerComponents{cache: cache}
	if len(cfg.Players.RefreshSports) > 0 {
		components.poller = poller.New(cache, cfg.Players.RefreshSports, logger, recorder, cfg.Players.RefreshInterval)
	}
	return components
}
