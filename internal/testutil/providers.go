package testutil

import (
	"context"
	"encoding/json"

	"github.com/preston-bernstein/sleeper-league-service/internal/providers"
)

// ErrProvider fails every call with Err.
type ErrProvider struct {
	Err error
}

var _ providers.DataProvider = ErrProvider{}

func (p ErrProvider) FetchUser(ctx context.Context, username string) (json.RawMessage, error) {
	return nil, p.Err
}

func (p ErrProvider) FetchUserLeagues(ctx context.Context, userID, sport, season string) (json.RawMessage, error) {
	return nil, p.Err
}

func (p ErrProvider) FetchLeague(ctx context.Context, leagueID string) (json.RawMessage, error) {
	return nil, p.Err
}

func (p ErrProvider) FetchRosters(ctx context.Context, leagueID string) (json.RawMessage, error) {
	return nil, p.Err
}

func (p ErrProvider) FetchUsers(ctx context.Context, leagueID string) (json.RawMessage, error) {
	return nil, p.Err
}

func (p ErrProvider) FetchMatchups(ctx context.Context, leagueID string, week int) (json.RawMessage, error) {
	return nil, p.Err
}

func (p ErrProvider) FetchState(ctx context.Context, sport string) (json.RawMessage, error) {
	return nil, p.Err
}

func (p ErrProvider) FetchPlayers(ctx context.Context, sport string) (json.RawMessage, error) {
	return nil, p.Err
}

// UnavailableProvider fails every call with ErrProviderUnavailable.
func UnavailableProvider() ErrProvider {
	return ErrProvider{Err: providers.ErrProviderUnavailable}
}

// StaticPlayers serves a fixed dictionary payload and counts fetches.
type StaticPlayers struct {
	Payload json.RawMessage
	Err     error
	Calls   int
}

func (p *StaticPlayers) FetchPlayers(ctx context.Context, sport string) (json.RawMessage, error) {
	p.Calls++
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Payload, nil
}
