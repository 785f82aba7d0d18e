package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ylchen07/jira-loader/internal/issue"
	"github.com/ylchen07/jira-loader/internal/jira"
	"github.com/ylchen07/jira-loader/internal/state"
	"github.com/ylchen07/jira-loader/internal/stories"
)

// LoaderTools wires the issue creator into MCP tools.
type LoaderTools struct {
	creator *issue.Creator
	cache   *state.Cache
	siteURL string
}

// NewLoaderTools registers loader tools on the server.
func NewLoaderTools(s *server.MCPServer, creator *issue.Creator, cache *state.Cache, siteURL string) *LoaderTools {
	lt := &LoaderTools{
		creator: creator,
		cache:   cache,
		siteURL: strings.TrimRight(siteURL, "/"),
	}

	s.AddTool(
		mcp.NewTool(
			"jira.create_issue",
			mcp.WithDescription("Create a single Jira issue in the configured project"),
			mcp.WithInputSchema[CreateIssueArgs](),
			mcp.WithOutputSchema[IssueResult](),
		),
		mcp.NewTypedToolHandler(lt.handleCreateIssue),
	)

	s.AddTool(
		mcp.NewTool(
			"jira.import_stories",
			mcp.WithDescription("Create Jira issues from a JSON array of user stories"),
			mcp.WithInputSchema[ImportStoriesArgs](),
			mcp.WithOutputSchema[ImportResult](),
		),
		mcp.NewTypedToolHandler(lt.handleImportStories),
	)

	s.AddTool(
		mcp.NewTool(
			"jira.test_connection",
			mcp.WithDescription("Check connectivity to the configured Jira site"),
			mcp.WithInputSchema[NoArgs](),
			mcp.WithOutputSchema[ConnectionResult](),
		),
		mcp.NewTypedToolHandler(lt.handleTestConnection),
	)

	s.AddTool(
		mcp.NewTool(
			"jira.project_info",
			mcp.WithDescription("Fetch descriptive fields of the configured Jira project"),
			mcp.WithInputSchema[NoArgs](),
			mcp.WithOutputSchema[ProjectResult](),
		),
		mcp.NewTypedToolHandler(lt.handleProjectInfo),
	)

	s.AddTool(
		mcp.NewTool(
			"jira.last_import",
			mcp.WithDescription("Return the outcome of the most recent story import in this session"),
			mcp.WithInputSchema[NoArgs](),
			mcp.WithOutputSchema[ImportResult](),
		),
		mcp.NewTypedToolHandler(lt.handleLastImport),
	)

	return lt
}

// NoArgs is the empty input schema for parameterless tools.
type NoArgs struct{}

// CreateIssueArgs define creation parameters.
type CreateIssueArgs struct {
	Summary     string `json:"summary" jsonschema:"required" jsonschema_description:"Issue summary"`
	Description string `json:"description,omitempty" jsonschema_description:"Issue description, may be empty"`
	Type        string `json:"type,omitempty" jsonschema_description:"Issue type name (Story, Bug, Task, Epic); defaults to Story"`
}

// IssueResult describes a created issue.
type IssueResult struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// ImportStoriesArgs carry the raw batch input.
type ImportStoriesArgs struct {
	Stories string `json:"stories" jsonschema:"required" jsonschema_description:"JSON array of user story records ({user_story, deliverables, issue_type})"`
}

// ImportOutcome reports one batch entry.
type ImportOutcome struct {
	Index   int    `json:"index"`
	Summary string `json:"summary"`
	Key     string `json:"key,omitempty"`
	URL     string `json:"url,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ImportResult aggregates a whole batch run.
type ImportResult struct {
	Attempted int             `json:"attempted"`
	Succeeded int             `json:"succeeded"`
	Failed    int             `json:"failed"`
	Outcomes  []ImportOutcome `json:"outcomes"`
}

// ConnectionResult reports probe health.
type ConnectionResult struct {
	Connected bool `json:"connected"`
}

// ProjectResult wraps the optional project lookup.
type ProjectResult struct {
	Found       bool   `json:"found"`
	Key         string `json:"key,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Lead        string `json:"lead,omitempty"`
}

func (l *LoaderTools) browseURL(key string) string {
	if l.siteURL == "" || key == "" {
		return ""
	}
	return fmt.Sprintf("%s/browse/%s", l.siteURL, key)
}

func (l *LoaderTools) handleCreateIssue(ctx context.Context, _ mcp.CallToolRequest, args CreateIssueArgs) (*mcp.CallToolResult, error) {
	issueType := strings.TrimSpace(args.Type)
	if issueType == "" {
		issueType = issue.DefaultIssueType
	}

	key, err := l.creator.CreateIssue(ctx, issue.Request{
		Summary:     args.Summary,
		Description: args.Description,
		Type:        issueType,
	})
	if err != nil {
		return mcp.NewToolResultErrorFromErr("jira create issue failed", err), nil
	}

	result := IssueResult{Key: key, URL: l.browseURL(key)}
	fallback := fmt.Sprintf("Created Jira issue %s", key)
	return mcp.NewToolResultStructured(result, fallback), nil
}

func (l *LoaderTools) handleImportStories(ctx context.Context, _ mcp.CallToolRequest, args ImportStoriesArgs) (*mcp.CallToolResult, error) {
	requests, err := stories.Parse([]byte(args.Stories))
	if err != nil {
		return mcp.NewToolResultErrorFromErr("invalid stories input", err), nil
	}

	batch := l.creator.RunBatch(ctx, requests)
	l.cache.SetLastImport(batch)

	result := l.importResult(batch)
	fallback := fmt.Sprintf("Imported %d/%d stories", result.Succeeded, result.Attempted)
	return mcp.NewToolResultStructured(result, fallback), nil
}

func (l *LoaderTools) handleTestConnection(ctx context.Context, _ mcp.CallToolRequest, _ NoArgs) (*mcp.CallToolResult, error) {
	connected := l.creator.TestConnection(ctx)

	fallback := "Jira connection OK"
	if !connected {
		fallback = "Jira connection failed"
	}
	return mcp.NewToolResultStructured(ConnectionResult{Connected: connected}, fallback), nil
}

func (l *LoaderTools) handleProjectInfo(ctx context.Context, _ mcp.CallToolRequest, _ NoArgs) (*mcp.CallToolResult, error) {
	if info, ok := l.cache.Project(); ok {
		return mcp.NewToolResultStructured(projectResult(info), fmt.Sprintf("Project %s (%s)", info.Name, info.Key)), nil
	}

	info, found, err := l.creator.ProjectInfo(ctx)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("jira project lookup failed", err), nil
	}
	if !found {
		return mcp.NewToolResultStructured(ProjectResult{Found: false}, "Project not found"), nil
	}

	l.cache.SetProject(info)
	return mcp.NewToolResultStructured(projectResult(info), fmt.Sprintf("Project %s (%s)", info.Name, info.Key)), nil
}

func (l *LoaderTools) handleLastImport(_ context.Context, _ mcp.CallToolRequest, _ NoArgs) (*mcp.CallToolResult, error) {
	batch, ok := l.cache.LastImport()
	if !ok {
		return mcp.NewToolResultError("no import has run in this session"), nil
	}

	result := l.importResult(batch)
	fallback := fmt.Sprintf("Last import: %d/%d stories", result.Succeeded, result.Attempted)
	return mcp.NewToolResultStructured(result, fallback), nil
}

func (l *LoaderTools) importResult(batch *issue.BatchResult) ImportResult {
	result := ImportResult{
		Attempted: batch.Attempted,
		Succeeded: batch.Succeeded,
		Failed:    batch.Failed,
		Outcomes:  make([]ImportOutcome, 0, len(batch.Outcomes)),
	}

	for _, outcome := range batch.Outcomes {
		entry := ImportOutcome{
			Index:   outcome.Index,
			Summary: outcome.Summary,
		}
		if outcome.Failed() {
			entry.Error = outcome.Err.Error()
		} else {
			entry.Key = outcome.Key
			entry.URL = l.browseURL(outcome.Key)
		}
		result.Outcomes = append(result.Outcomes, entry)
	}

	return result
}

func projectResult(info *jira.ProjectInfo) ProjectResult {
	return ProjectResult{
		Found:       true,
		Key:         info.Key,
		Name:        info.Name,
		Description: info.Description,
		Lead:        info.Lead,
	}
}
