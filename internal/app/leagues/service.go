package leagues

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/sleeper-league-service/internal/domain/league"
	"github.com/preston-bernstein/sleeper-league-service/internal/domain/lineups"
	"github.com/preston-bernstein/sleeper-league-service/internal/domain/players"
	"github.com/preston-bernstein/sleeper-league-service/internal/lineup"
	"github.com/preston-bernstein/sleeper-league-service/internal/logging"
	"github.com/preston-bernstein/sleeper-league-service/internal/metrics"
	"github.com/preston-bernstein/sleeper-league-service/internal/providers"
	"github.com/preston-bernstein/sleeper-league-service/internal/providers/sleeper"
)

// Dictionaries supplies the player dictionary for a sport.
type Dictionaries interface {
	Get(ctx context.Context, sport string) (players.Dictionary, error)
}

// Bundle is the raw league payload set. Matchups is null when no week was requested.
type Bundle struct {
	League   json.RawMessage `json:"league"`
	Rosters  json.RawMessage `json:"rosters"`
	Users    json.RawMessage `json:"users"`
	Matchups json.RawMessage `json:"matchups"`
}

// Service fetches upstream league data and runs the normalizer and lineup engine over it.
type Service struct {
	provider providers.DataProvider
	dicts    Dictionaries
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time
}

// NewService constructs a Service.
func NewService(provider providers.DataProvider, dicts Dictionaries, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		provider: provider,
		dicts:    dicts,
		logger:   logger,
		metrics:  recorder,
		now:      time.Now,
	}
}

// User looks up an upstream account by username or id.
func (s *Service) User(ctx context.Context, username string) (json.RawMessage, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("%w: username required", ErrInvalidArgument)
	}
	return s.provider.FetchUser(ctx, username)
}

// UserLeagues lists a user's leagues for a supported sport and season.
func (s *Service) UserLeagues(ctx context.Context, userID, sport, season string) (json.RawMessage, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id required", ErrInvalidArgument)
	}
	parsed, err := league.ParseSport(sport)
	if err != nil {
		return nil, err
	}
	if !isSeason(season) {
		return nil, fmt.Errorf("%w: season must be a year, got %q", ErrInvalidArgument, season)
	}
	return s.provider.FetchUserLeagues(ctx, userID, string(parsed), season)
}

// LeagueBundle fetches league, rosters, and users in parallel, plus matchups when week is set.
func (s *Service) LeagueBundle(ctx context.Context, leagueID string, week *int) (Bundle, error) {
	if err := requireLeagueID(leagueID); err != nil {
		return Bundle{}, err
	}
	if week != nil && *week < 0 {
		return Bundle{}, fmt.Errorf("%w: %d", ErrInvalidWeek, *week)
	}

	var b Bundle
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		b.League, err = s.provider.FetchLeague(gctx, leagueID)
		return err
	})
	g.Go(func() (err error) {
		b.Rosters, err = s.provider.FetchRosters(gctx, leagueID)
		return err
	})
	g.Go(func() (err error) {
		b.Users, err = s.provider.FetchUsers(gctx, leagueID)
		return err
	})
	if week != nil {
		g.Go(func() (err error) {
			b.Matchups, err = s.provider.FetchMatchups(gctx, leagueID, *week)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return Bundle{}, err
	}
	return b, nil
}

// NormalizedLeague returns the platform-agnostic view of a league.
func (s *Service) NormalizedLeague(ctx context.Context, leagueID string) (league.League, error) {
	if err := requireLeagueID(leagueID); err != nil {
		return league.League{}, err
	}

	var (
		lg      sleeper.League
		rosters []sleeper.Roster
		users   []sleeper.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		lg, err = s.fetchLeague(gctx, leagueID)
		return err
	})
	g.Go(func() error {
		var err error
		rosters, err = s.fetchRosters(gctx, leagueID)
		return err
	})
	g.Go(func() error {
		raw, err := s.provider.FetchUsers(gctx, leagueID)
		if err != nil {
			return err
		}
		users, err = sleeper.DecodeUsers(raw)
		return err
	})
	if err := g.Wait(); err != nil {
		return league.League{}, err
	}

	sport, err := league.ParseSport(lg.Sport.String())
	if err != nil {
		return league.League{}, err
	}
	dict, err := s.dicts.Get(ctx, string(sport))
	if err != nil {
		return league.League{}, err
	}
	return sleeper.NormalizeLeague(lg, rosters, users, dict), nil
}

// StartSit suggests a starting lineup for one roster.
// Week 0 means the upstream's current week. Baseline points come from the previous week's
// matchups; week 1 and missing scoring data both yield an all-zero baseline.
func (s *Service) StartSit(ctx context.Context, leagueID string, rosterID, week int) (lineups.StartSitResponse, error) {
	if err := requireLeagueID(leagueID); err != nil {
		return lineups.StartSitResponse{}, err
	}
	if week < 0 {
		return lineups.StartSitResponse{}, fmt.Errorf("%w: %d", ErrInvalidWeek, week)
	}
	start := s.now()

	var (
		lg      sleeper.League
		rosters []sleeper.Roster
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		lg, err = s.fetchLeague(gctx, leagueID)
		return err
	})
	g.Go(func() error {
		var err error
		rosters, err = s.fetchRosters(gctx, leagueID)
		return err
	})
	if err := g.Wait(); err != nil {
		return lineups.StartSitResponse{}, err
	}

	sport, err := league.ParseSport(lg.Sport.String())
	if err != nil {
		return lineups.StartSitResponse{}, err
	}
	roster, ok := findRoster(rosters, rosterID)
	if !ok {
		return lineups.StartSitResponse{}, fmt.Errorf("%w: roster %d in league %s", ErrRosterNotFound, rosterID, leagueID)
	}
	if week == 0 {
		if week, err = s.currentWeek(ctx, sport); err != nil {
			return lineups.StartSitResponse{}, err
		}
	}

	var (
		dict     players.Dictionary
		baseline baselineResult
	)
	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		dict, err = s.dicts.Get(gctx, string(sport))
		return err
	})
	g.Go(func() error {
		baseline = s.baseline(gctx, leagueID, rosterID, week)
		return nil
	})
	if err := g.Wait(); err != nil {
		return lineups.StartSitResponse{}, err
	}

	ids := make([]string, 0, len(roster.Players)+len(roster.Starters))
	ids = append(ids, roster.Players...)
	ids = append(ids, roster.Starters...)
	result := lineup.BuildStartSit(lg.RosterPositions, ids, dict, baseline.scores)

	resp := lineups.StartSitResponse{
		LeagueID:       leagueID,
		RosterID:       rosterID,
		Week:           week,
		BaselineWeek:   baseline.week,
		BaselineSource: baseline.source,
		BaselineDetail: baseline.detail,
		Picks:          result.Picks,
		Bench:          result.Bench,
	}

	elapsed := s.now().Sub(start)
	s.metrics.RecordStartSit(string(resp.BaselineSource), result.EmptyPicks(), elapsed)
	logging.Info(logging.FromContext(ctx, s.logger), "start/sit computed",
		slog.String(logging.FieldLeagueID, leagueID),
		slog.Int(logging.FieldRosterID, rosterID),
		slog.Int(logging.FieldWeek, week),
		slog.String(logging.FieldSource, string(resp.BaselineSource)),
		slog.Int("empty_picks", result.EmptyPicks()),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return resp, nil
}

type baselineResult struct {
	scores map[string]float64
	week   int
	source lineups.BaselineSource
	detail lineups.BaselineDetail
}

// baseline derives scores from week-1 matchups. Upstream failures degrade to no baseline.
func (s *Service) baseline(ctx context.Context, leagueID string, rosterID, week int) baselineResult {
	none := baselineResult{source: lineups.SourceNone}
	if week <= 1 {
		return none
	}
	prev := week - 1
	none.week = prev

	raw, err := s.provider.FetchMatchups(ctx, leagueID, prev)
	if err == nil {
		var matchups []sleeper.Matchup
		if matchups, err = sleeper.DecodeMatchups(raw); err == nil {
			scores, detail, ok := sleeper.BaselineScores(matchups, rosterID)
			if !ok {
				return none
			}
			return baselineResult{scores: scores, week: prev, source: lineups.SourcePreviousWeek, detail: detail}
		}
	}
	logging.Warn(logging.FromContext(ctx, s.logger), "baseline matchups unavailable",
		slog.String(logging.FieldLeagueID, leagueID),
		slog.Int(logging.FieldWeek, prev),
		slog.Any("error", err),
	)
	return none
}

func (s *Service) currentWeek(ctx context.Context, sport league.Sport) (int, error) {
	raw, err := s.provider.FetchState(ctx, string(sport))
	if err != nil {
		return 0, err
	}
	state, err := sleeper.DecodeState(raw)
	if err != nil {
		return 0, err
	}
	if w := state.Week.Int(); w > 0 {
		return w, nil
	}
	return 1, nil
}

func (s *Service) fetchLeague(ctx context.Context, leagueID string) (sleeper.League, error) {
	raw, err := s.provider.FetchLeague(ctx, leagueID)
	if err != nil {
		return sleeper.League{}, err
	}
	return sleeper.DecodeLeague(raw)
}

func (s *Service) fetchRosters(ctx context.Context, leagueID string) ([]sleeper.Roster, error) {
	raw, err := s.provider.FetchRosters(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	return sleeper.DecodeRosters(raw)
}

func findRoster(rosters []sleeper.Roster, rosterID int) (sleeper.Roster, bool) {
	for _, r := range rosters {
		if r.RosterID.Set() && r.RosterID.Int() == rosterID {
			return r, true
		}
	}
	return sleeper.Roster{}, false
}

func requireLeagueID(leagueID string) error {
	if strings.TrimSpace(leagueID) == "" {
		return fmt.Errorf("%w: league id required", ErrInvalidArgument)
	}
	return nil
}

func isSeason(season string) bool {
	if len(season) != 4 {
		return false
	}
	for _, r := range season {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
