package config

import (
	"reflect"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if !cfg.MCPEnabled {
		t.Fatalf("expected MCP enabled by default")
	}
	if cfg.WebOrigin != defaultWebOrigin {
		t.Fatalf("expected default web origin, got %s", cfg.WebOrigin)
	}
	if cfg.Sleeper.BaseURL != defaultSleeperBaseURL || cfg.Sleeper.Timeout != defaultSleeperTimeout {
		t.Fatalf("unexpected sleeper defaults %+v", cfg.Sleeper)
	}
	if cfg.Sleeper.RatePerMinute != defaultSleeperRatePerMinute || cfg.Sleeper.RetryAttempts != defaultSleeperRetryAttempts {
		t.Fatalf("unexpected sleeper limits %+v", cfg.Sleeper)
	}
	if cfg.Players.CacheDir != defaultPlayerCacheDir || cfg.Players.CacheTTL != defaultPlayerCacheTTL {
		t.Fatalf("unexpected player cache defaults %+v", cfg.Players)
	}
	if !reflect.DeepEqual(cfg.Players.RefreshSports, []string{"nfl"}) {
		t.Fatalf("expected nfl warmed by default, got %v", cfg.Players.RefreshSports)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Fatalf("unexpected logging defaults %+v", cfg.Logging)
	}
	if cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("expected service name %s, got %s", defaultServiceName, cfg.Metrics.ServiceName)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envProvider, "fixture")
	t.Setenv(envAdminToken, "secret")
	t.Setenv(envMCPEnabled, "false")
	t.Setenv(envSleeperBaseURL, "http://example.com/v1")
	t.Setenv(envSleeperTimeout, "3s")
	t.Setenv(envSleeperRatePerMinute, "60")
	t.Setenv(envSleeperBreakerCooldown, "1m")
	t.Setenv(envPlayerCacheDir, "/tmp/players")
	t.Setenv(envPlayerCacheTTL, "0")
	t.Setenv(envPlayerRefreshInterval, "30m")
	t.Setenv(envPlayerRefreshSports, " NFL, nba ,,")
	t.Setenv(envLogFormat, "json")

	cfg := Load()

	if cfg.Port != "5000" || cfg.Provider != "fixture" || cfg.AdminToken != "secret" || cfg.MCPEnabled {
		t.Fatalf("unexpected top-level overrides %+v", cfg)
	}
	if cfg.Sleeper.BaseURL != "http://example.com/v1" || cfg.Sleeper.Timeout != 3*time.Second {
		t.Fatalf("unexpected sleeper overrides %+v", cfg.Sleeper)
	}
	if cfg.Sleeper.RatePerMinute != 60 || cfg.Sleeper.BreakerCooldown != time.Minute {
		t.Fatalf("unexpected sleeper limit overrides %+v", cfg.Sleeper)
	}
	if cfg.Players.CacheDir != "/tmp/players" || cfg.Players.CacheTTL != 0 || cfg.Players.RefreshInterval != 30*time.Minute {
		t.Fatalf("unexpected player overrides %+v", cfg.Players)
	}
	if !reflect.DeepEqual(cfg.Players.RefreshSports, []string{"nfl", "nba"}) {
		t.Fatalf("unexpected refresh sports %v", cfg.Players.RefreshSports)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected json log format, got %s", cfg.Logging.Format)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envSleeperTimeout, "not-a-duration")
	t.Setenv(envPlayerCacheTTL, "-1h")

	cfg := Load()

	if cfg.Sleeper.Timeout != defaultSleeperTimeout {
		t.Fatalf("expected default timeout on invalid value, got %s", cfg.Sleeper.Timeout)
	}
	if cfg.Players.CacheTTL != defaultPlayerCacheTTL {
		t.Fatalf("expected default TTL on negative value, got %s", cfg.Players.CacheTTL)
	}
}

func TestLoadNonPositiveDurationFallsBack(t *testing.T) {
	t.Setenv(envPlayerRefreshInterval, "0s")

	cfg := Load()

	if cfg.Players.RefreshInterval != defaultPlayerRefreshInterval {
		t.Fatalf("expected default refresh interval on non-positive value, got %s", cfg.Players.RefreshInterval)
	}
}

func TestEmptyRefreshSportsDisablesWarmer(t *testing.T) {
	t.Setenv(envPlayerRefreshSports, "")

	cfg := Load()

	if len(cfg.Players.RefreshSports) != 0 {
		t.Fatalf("expected no refresh sports, got %v", cfg.Players.RefreshSports)
	}
}

func TestRefreshSportsDropsUnknownAndRepeatedCodes(t *testing.T) {
	t.Setenv(envPlayerRefreshSports, "nfl,nlf,NBA,nfl,../etc")

	cfg := Load()

	if !reflect.DeepEqual(cfg.Players.RefreshSports, []string{"nfl", "nba"}) {
		t.Fatalf("expected only supported sports, got %v", cfg.Players.RefreshSports)
	}
}
