package sleeper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/sleeper-league-service/internal/providers"
)

// Config controls how the Sleeper client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches raw league data from the Sleeper API.
type Client struct {
	baseURL    string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a Sleeper client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
	}
}

var _ providers.DataProvider = (*Client)(nil)

// FetchUser looks up an account by username or user id.
func (c *Client) FetchUser(ctx context.Context, username string) (json.RawMessage, error) {
	return c.getObject(ctx, providers.OpUser, "user", username)
}

// FetchUserLeagues lists a user's leagues for a sport and season.
func (c *Client) FetchUserLeagues(ctx context.Context, userID, sport, season string) (json.RawMessage, error) {
	return c.getList(ctx, providers.OpUserLeagues, "user", userID, "leagues", sport, season)
}

// FetchLeague fetches league settings, including the roster slot template.
func (c *Client) FetchLeague(ctx context.Context, leagueID string) (json.RawMessage, error) {
	return c.getObject(ctx, providers.OpLeague, "league", leagueID)
}

// FetchRosters fetches every roster in the league.
func (c *Client) FetchRosters(ctx context.Context, leagueID string) (json.RawMessage, error) {
	return c.getList(ctx, providers.OpRosters, "league", leagueID, "rosters")
}

// FetchUsers fetches the league's members.
func (c *Client) FetchUsers(ctx context.Context, leagueID string) (json.RawMessage, error) {
	return c.getList(ctx, providers.OpUsers, "league", leagueID, "users")
}

// FetchMatchups fetches per-roster scoring for one week.
func (c *Client) FetchMatchups(ctx context.Context, leagueID string, week int) (json.RawMessage, error) {
	return c.getList(ctx, providers.OpMatchups, "league", leagueID, "matchups", strconv.Itoa(week))
}

// FetchState fetches the current season and week for a sport.
func (c *Client) FetchState(ctx context.Context, sport string) (json.RawMessage, error) {
	return c.getObject(ctx, providers.OpState, "state", sport)
}

// FetchPlayers fetches the full player dictionary for a sport. The payload is large; callers should cache it.
func (c *Client) FetchPlayers(ctx context.Context, sport string) (json.RawMessage, error) {
	return c.getObject(ctx, providers.OpPlayers, "players", sport)
}

// getObject fetches a single resource. Sleeper answers unknown ids with 200 and a null body,
// which is reported as ErrNotFound.
func (c *Client) getObject(ctx context.Context, op string, segments ...string) (json.RawMessage, error) {
	raw, err := c.get(ctx, op, segments...)
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, fmt.Errorf("%s %s: %w", providerName, op, providers.ErrNotFound)
	}
	return raw, nil
}

// getList fetches a collection. A null body is normalized to an empty array.
func (c *Client) getList(ctx context.Context, op string, segments ...string) (json.RawMessage, error) {
	raw, err := c.get(ctx, op, segments...)
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return json.RawMessage("[]"), nil
	}
	return raw, nil
}

func (c *Client) get(ctx context.Context, op string, segments ...string) (json.RawMessage, error) {
	req, err := c.buildRequest(ctx, segments...)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", providerName, op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
			Message:    providerName + " " + op + ": rate limited",
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &providers.StatusError{
			Provider:   providerName,
			Operation:  op,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read body: %w", providerName, op, err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%s %s: invalid json payload", providerName, op)
	}
	return json.RawMessage(body), nil
}

func (c *Client) buildRequest(ctx context.Context, segments ...string) (*http.Request, error) {
	escaped := make([]string, len(segments))
	for i, seg := range segments {
		escaped[i] = url.PathEscape(seg)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+strings.Join(escaped, "/"), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func isNull(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
