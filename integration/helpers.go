//go:build integration
// +build integration

package integration

import (
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/ylchen07/jira-loader/internal/config"
	"github.com/ylchen07/jira-loader/internal/issue"
	"github.com/ylchen07/jira-loader/internal/jira"
)

// requireIntegration skips the test if JIRA_LOADER_INTEGRATION is not set.
func requireIntegration(t *testing.T) {
	t.Helper()
	if os.Getenv("JIRA_LOADER_INTEGRATION") == "" {
		t.Skip("JIRA_LOADER_INTEGRATION not set; skipping integration tests")
	}
}

// setupCreator builds a Creator against the Jira site named by JIRA_* env
// variables, skipping the test when any required value is missing.
func setupCreator(t *testing.T) (*issue.Creator, config.JiraConfig) {
	t.Helper()

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}

	if err := issue.ValidateConfig(cfg.Jira); err != nil {
		t.Skipf("incomplete Jira configuration: %v", err)
	}

	client, err := jira.NewClient(cfg.Jira)
	if err != nil {
		t.Fatalf("jira.NewClient: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	creator, err := issue.NewCreator(cfg, client, logger)
	if err != nil {
		t.Fatalf("issue.NewCreator: %v", err)
	}

	return creator, cfg.Jira
}

// allowWrites reports whether the suite may create real issues.
func allowWrites() bool {
	return strings.EqualFold(os.Getenv("JIRA_LOADER_INTEGRATION_WRITE"), "true")
}
