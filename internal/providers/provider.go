package providers

import (
	"context"
	"encoding/json"
)

// Operation names used for logging, metrics, and wrapper bookkeeping.
const (
	OpUser        = "user"
	OpUserLeagues = "user_leagues"
	OpLeague      = "league"
	OpRosters     = "rosters"
	OpUsers       = "users"
	OpMatchups    = "matchups"
	OpState       = "state"
	OpPlayers     = "players"
)

// UserProvider looks up accounts and the leagues they belong to.
type UserProvider interface {
	FetchUser(ctx context.Context, username string) (json.RawMessage, error)
	FetchUserLeagues(ctx context.Context, userID, sport, season string) (json.RawMessage, error)
}

// LeagueProvider fetches league-scoped records. Payloads are returned undecoded so they can be
// passed through verbatim or decoded by the caller.
type LeagueProvider interface {
	FetchLeague(ctx context.Context, leagueID string) (json.RawMessage, error)
	FetchRosters(ctx context.Context, leagueID string) (json.RawMessage, error)
	FetchUsers(ctx context.Context, leagueID string) (json.RawMessage, error)
	FetchMatchups(ctx context.Context, leagueID string, week int) (json.RawMessage, error)
}

// StateProvider reports the upstream's notion of the current season and week.
type StateProvider interface {
	FetchState(ctx context.Context, sport string) (json.RawMessage, error)
}

// PlayerProvider fetches the full player dictionary for a sport.
type PlayerProvider interface {
	FetchPlayers(ctx context.Context, sport string) (json.RawMessage, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	UserProvider
	LeagueProvider
	StateProvider
	PlayerProvider
}
