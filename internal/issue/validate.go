package issue

import (
	"fmt"
	"strings"

	"github.com/ylchen07/jira-loader/internal/config"
)

// Recognised issue type names.
const (
	TypeStory = "Story"
	TypeBug   = "Bug"
	TypeTask  = "Task"
	TypeEpic  = "Epic"
)

// DefaultIssueType is applied when a batch record does not name a type.
const DefaultIssueType = TypeStory

// Jira rejects summaries longer than 255 characters.
const maxSummaryLength = 255

var issueTypes = map[string]struct{}{
	TypeStory: {},
	TypeBug:   {},
	TypeTask:  {},
	TypeEpic:  {},
}

// Request describes a single issue to create. The description may be empty;
// summary and type are checked by Validate before any network call.
type Request struct {
	Summary     string `json:"summary"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type"`
}

// Validate checks the request shape, collecting every problem. A nil return
// means the request is safe to submit.
func (r Request) Validate() error {
	var problems []string

	summary := strings.TrimSpace(r.Summary)
	switch {
	case summary == "":
		problems = append(problems, "summary cannot be empty")
	case len(summary) > maxSummaryLength:
		problems = append(problems, fmt.Sprintf("summary cannot exceed %d characters", maxSummaryLength))
	}

	if _, ok := issueTypes[strings.TrimSpace(r.Type)]; !ok {
		problems = append(problems, fmt.Sprintf("unrecognised issue type %q", r.Type))
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// ValidateConfig checks that every required Jira setting is present, listing
// all missing fields rather than stopping at the first.
func ValidateConfig(cfg config.JiraConfig) error {
	var missing []string

	if strings.TrimSpace(cfg.BaseURL) == "" {
		missing = append(missing, "base URL")
	}
	if strings.TrimSpace(cfg.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(cfg.APIToken) == "" {
		missing = append(missing, "API token")
	}
	if strings.TrimSpace(cfg.ProjectKey) == "" {
		missing = append(missing, "project key")
	}

	if len(missing) > 0 {
		return &ConfigurationError{Missing: missing}
	}
	return nil
}
