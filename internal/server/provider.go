package server

import (
	"log/slog"

	"github.com/preston-bernstein/sleeper-league-service/internal/config"
	"github.com/preston-bernstein/sleeper-league-service/internal/providers"
	"github.com/preston-bernstein/sleeper-league-service/internal/providers/fixture"
	"github.com/preston-bernstein/sleeper-league-service/internal/providers/sleeper"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch cfg.Provider {
	case "sleeper", "":
		return sleeper.NewClient(sleeper.Config{
			BaseURL: cfg.Sleeper.BaseURL,
			Timeout: cfg.Sleeper.Timeout,
		})
	case "fixture":
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
