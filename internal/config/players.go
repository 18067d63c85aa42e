package config

import (
	"time"

	"github.com/preston-bernstein/sleeper-league-service/internal/domain/league"
)

// PlayersConfig controls the player dictionary cache and its background warmer.
type PlayersConfig struct {
	CacheDir string
	// CacheTTL of zero disables expiry.
	CacheTTL        time.Duration
	RefreshInterval time.Duration
	// RefreshSports lists the supported sports warmed in the background; empty disables the warmer.
	RefreshSports []string
}

func loadPlayers() PlayersConfig {
	return PlayersConfig{
		CacheDir:        envOrDefault(envPlayerCacheDir, defaultPlayerCacheDir),
		CacheTTL:        nonNegativeDurationEnvOrDefault(envPlayerCacheTTL, defaultPlayerCacheTTL),
		RefreshInterval: durationEnvOrDefault(envPlayerRefreshInterval, defaultPlayerRefreshInterval),
		RefreshSports:   supportedSports(listEnvOrDefault(envPlayerRefreshSports, defaultPlayerRefreshSports)),
	}
}

// supportedSports drops unknown and repeated sport codes.
func supportedSports(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[league.Sport]bool, len(raw))
	for _, code := range raw {
		sport, err := league.ParseSport(code)
		if err != nil || seen[sport] {
			continue
		}
		seen[sport] = true
		out = append(out, string(sport))
	}
	return out
}
