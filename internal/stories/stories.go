// Package stories parses batch input: a JSON array of user-story records
// produced by upstream tooling.
package stories

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ylchen07/jira-loader/internal/issue"
)

// Story is one batch input record. Field names follow the upstream document
// pipeline output.
type Story struct {
	UserStory    string `json:"user_story"`
	Deliverables string `json:"deliverables"`
	IssueType    string `json:"issue_type,omitempty"`
}

// Parse decodes a JSON array of user stories into issue requests. The
// top-level value must be an array of records; anything else is a fatal
// input error. Per-record problems (blank summary, unknown type) are left to
// request validation at creation time so one bad record cannot sink the
// batch.
func Parse(data []byte) ([]issue.Request, error) {
	var records []Story
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("stories: input must be a JSON array of user stories: %w", err)
	}

	requests := make([]issue.Request, 0, len(records))
	for _, record := range records {
		issueType := strings.TrimSpace(record.IssueType)
		if issueType == "" {
			issueType = issue.DefaultIssueType
		}
		requests = append(requests, issue.Request{
			Summary:     strings.TrimSpace(record.UserStory),
			Description: strings.TrimSpace(record.Deliverables),
			Type:        issueType,
		})
	}

	return requests, nil
}

// Load reads and parses a stories file from disk.
func Load(path string) ([]issue.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("stories: read %s: %w", path, err)
	}
	return Parse(data)
}
