package providers

import (
	"context"
	"encoding/json"
)

// guardFunc runs one upstream call under a wrapper's policy.
type guardFunc func(ctx context.Context, op string, call func(context.Context) error) error

// guardedProvider applies a guardFunc uniformly to every DataProvider method.
type guardedProvider struct {
	next  DataProvider
	guard guardFunc
}

func newGuardedProvider(next DataProvider, guard guardFunc) *guardedProvider {
	return &guardedProvider{next: next, guard: guard}
}

func (g *guardedProvider) run(ctx context.Context, op string, fetch func(context.Context) (json.RawMessage, error)) (json.RawMessage, error) {
	if g == nil || g.next == nil {
		return nil, ErrProviderUnavailable
	}
	var out json.RawMessage
	err := g.guard(ctx, op, func(ctx context.Context) error {
		raw, err := fetch(ctx)
		if err != nil {
			return err
		}
		out = raw
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (g *guardedProvider) FetchUser(ctx context.Context, username string) (json.RawMessage, error) {
	return g.run(ctx, OpUser, func(ctx context.Context) (json.RawMessage, error) {
		return g.next.FetchUser(ctx, username)
	})
}

func (g *guardedProvider) FetchUserLeagues(ctx context.Context, userID, sport, season string) (json.RawMessage, error) {
	return g.run(ctx, OpUserLeagues, func(ctx context.Context) (json.RawMessage, error) {
		return g.next.FetchUserLeagues(ctx, userID, sport, season)
	})
}

func (g *guardedProvider) FetchLeague(ctx context.Context, leagueID string) (json.RawMessage, error) {
	return g.run(ctx, OpLeague, func(ctx context.Context) (json.RawMessage, error) {
		return g.next.FetchLeague(ctx, leagueID)
	})
}

func (g *guardedProvider) FetchRosters(ctx context.Context, leagueID string) (json.RawMessage, error) {
	return g.run(ctx, OpRosters, func(ctx context.Context) (json.RawMessage, error) {
		return g.next.FetchRosters(ctx, leagueID)
	})
}

func (g *guardedProvider) FetchUsers(ctx context.Context, leagueID string) (json.RawMessage, error) {
	return g.run(ctx, OpUsers, func(ctx context.Context) (json.RawMessage, error) {
		return g.next.FetchUsers(ctx, leagueID)
	})
}

func (g *guardedProvider) FetchMatchups(ctx context.Context, leagueID string, week int) (json.RawMessage, error) {
	return g.run(ctx, OpMatchups, func(ctx context.Context) (json.RawMessage, error) {
		return g.next.FetchMatchups(ctx, leagueID, week)
	})
}

func (g *guardedProvider) FetchState(ctx context.Context, sport string) (json.RawMessage, error) {
	return g.run(ctx, OpState, func(ctx context.Context) (json.RawMessage, error) {
		return g.next.FetchState(ctx, sport)
	})
}

func (g *guardedProvider) FetchPlayers(ctx context.Context, sport string) (json.RawMessage, error) {
	return g.run(ctx, OpPlayers, func(ctx context.Context) (json.RawMessage, error) {
		return g.next.FetchPlayers(ctx, sport)
	})
}
