package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/ylchen07/jira-loader/internal/issue"
	"github.com/ylchen07/jira-loader/internal/state"
)

// Dependencies bundles the services required for MCP server construction.
type Dependencies struct {
	Creator *issue.Creator
	Cache   *state.Cache
	SiteURL string
	Logger  *slog.Logger
}

// NewServer builds an MCP server with the loader tools registered.
func NewServer(deps Dependencies) *server.MCPServer {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	srv := server.NewMCPServer(
		"Jira Loader",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithInstructions("Tools for creating Jira issues from user stories."),
		server.WithRecovery(),
	)

	if deps.Cache == nil {
		deps.Cache = state.NewCache()
	}

	if deps.Creator != nil {
		NewLoaderTools(srv, deps.Creator, deps.Cache, deps.SiteURL)
	}

	return srv
}
