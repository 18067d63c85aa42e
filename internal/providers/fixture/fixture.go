package fixture

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/preston-bernstein/sleeper-league-service/internal/providers"
)

// LeagueID identifies the single league the fixture provider serves.
const LeagueID = "fixture-league"

// Username resolves to the fixture league's first owner.
const Username = "fixture_user"

//go:embed data/*.json
var data embed.FS

// Provider serves a deterministic NFL league for local runs and tests without network access.
type Provider struct {
	files embed.FS
}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{files: data}
}

var _ providers.DataProvider = (*Provider)(nil)

func (p *Provider) FetchUser(ctx context.Context, username string) (json.RawMessage, error) {
	if username != Username && username != "fixture-user-1" {
		return nil, notFound(providers.OpUser)
	}
	return p.read("user.json")
}

func (p *Provider) FetchUserLeagues(ctx context.Context, userID, sport, season string) (json.RawMessage, error) {
	if userID != "fixture-user-1" || !strings.EqualFold(sport, "nfl") || season != "2024" {
		return json.RawMessage("[]"), nil
	}
	league, err := p.read("league.json")
	if err != nil {
		return nil, err
	}
	return json.RawMessage("[" + string(league) + "]"), nil
}

func (p *Provider) FetchLeague(ctx context.Context, leagueID string) (json.RawMessage, error) {
	if leagueID != LeagueID {
		return nil, notFound(providers.OpLeague)
	}
	return p.read("league.json")
}

func (p *Provider) FetchRosters(ctx context.Context, leagueID string) (json.RawMessage, error) {
	if leagueID != LeagueID {
		return json.RawMessage("[]"), nil
	}
	return p.read("rosters.json")
}

func (p *Provider) FetchUsers(ctx context.Context, leagueID string) (json.RawMessage, error) {
	if leagueID != LeagueID {
		return json.RawMessage("[]"), nil
	}
	return p.read("users.json")
}

func (p *Provider) FetchMatchups(ctx context.Context, leagueID string, week int) (json.RawMessage, error) {
	if leagueID != LeagueID || week != 1 {
		return json.RawMessage("[]"), nil
	}
	return p.read("matchups_week1.json")
}

func (p *Provider) FetchState(ctx context.Context, sport string) (json.RawMessage, error) {
	return p.read("state.json")
}

func (p *Provider) FetchPlayers(ctx context.Context, sport string) (json.RawMessage, error) {
	if !strings.EqualFold(sport, "nfl") {
		return json.RawMessage("{}"), nil
	}
	return p.read("players_nfl.json")
}

func (p *Provider) read(name string) (json.RawMessage, error) {
	raw, err := p.files.ReadFile("data/" + name)
	if err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}
	return json.RawMessage(raw), nil
}

func notFound(op string) error {
	return fmt.Errorf("fixture %s: %w", op, providers.ErrNotFound)
}
