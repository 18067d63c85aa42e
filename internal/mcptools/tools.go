package mcptools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/preston-bernstein/sleeper-league-service/internal/domain/league"
	"github.com/preston-bernstein/sleeper-league-service/internal/domain/lineups"
	"github.com/preston-bernstein/sleeper-league-service/internal/logging"
)

const (
	serverName = "sleeper-league-service"

	ToolNormalizedLeague = "normalized_league"
	ToolStartSit         = "start_sit"
)

// LeagueService is the subset of the league service exposed as tools.
type LeagueService interface {
	NormalizedLeague(ctx context.Context, leagueID string) (league.League, error)
	StartSit(ctx context.Context, leagueID string, rosterID, week int) (lineups.StartSitResponse, error)
}

// NormalizedLeagueArgs is the input schema for normalized_league.
type NormalizedLeagueArgs struct {
	LeagueID string `json:"league_id" jsonschema:"Sleeper league id"`
}

// StartSitArgs is the input schema for start_sit.
type StartSitArgs struct {
	LeagueID string `json:"league_id" jsonschema:"Sleeper league id"`
	RosterID int    `json:"roster_id" jsonschema:"Roster id within the league"`
	Week     int    `json:"week,omitempty" jsonschema:"Week to plan for; 0 or omitted means the current week"`
}

// NewServer builds an MCP server exposing the league tools.
func NewServer(svc LeagueService, version string, logger *slog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolNormalizedLeague,
		Description: "Platform-agnostic view of a Sleeper league: teams, records, starters and bench with player names",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args NormalizedLeagueArgs) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(args.LeagueID) == "" {
			return toolError(errors.New("league_id is required")), nil, nil
		}
		lg, err := svc.NormalizedLeague(ctx, args.LeagueID)
		if err != nil {
			logToolFailure(ctx, logger, ToolNormalizedLeague, err)
			return toolError(err), nil, nil
		}
		return toolJSON(lg)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolStartSit,
		Description: "Suggested starting lineup for one roster, ranked by the previous week's points",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args StartSitArgs) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(args.LeagueID) == "" {
			return toolError(errors.New("league_id is required")), nil, nil
		}
		if args.RosterID <= 0 {
			return toolError(errors.New("roster_id must be positive")), nil, nil
		}
		resp, err := svc.StartSit(ctx, args.LeagueID, args.RosterID, args.Week)
		if err != nil {
			logToolFailure(ctx, logger, ToolStartSit, err)
			return toolError(err), nil, nil
		}
		return toolJSON(resp)
	})

	return server
}

// NewHandler serves server over the streamable HTTP transport.
func NewHandler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
}

func toolJSON(v any) (*mcp.CallToolResult, any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return toolError(err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(b)}},
	}, nil, nil
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)}},
	}
}

func logToolFailure(ctx context.Context, logger *slog.Logger, tool string, err error) {
	logging.Warn(logging.FromContext(ctx, logger), "mcp tool failed",
		slog.String("tool", tool),
		slog.Any("err", err),
	)
}
