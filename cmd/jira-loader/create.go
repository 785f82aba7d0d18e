package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ylchen07/jira-loader/internal/issue"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a single Jira issue",
	Example: `  # Create a story
  jira-loader create --summary "As a user, I want to log in"

  # Create a bug with a description
  jira-loader create --summary "Login page 500s" --type Bug --description "Repro: ..."`,
	RunE: runCreate,
}

var (
	createSummary     string
	createDescription string
	createType        string
)

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringVarP(&createSummary, "summary", "s", "", "Issue summary")
	createCmd.Flags().StringVarP(&createDescription, "description", "d", "", "Issue description")
	createCmd.Flags().StringVarP(&createType, "type", "t", issue.DefaultIssueType, "Issue type (Story, Bug, Task, Epic)")
}

func runCreate(cmd *cobra.Command, _ []string) error {
	a, err := setup()
	if err != nil {
		return err
	}

	req := issue.Request{
		Summary:     createSummary,
		Description: createDescription,
		Type:        createType,
	}

	key, err := a.creator.CreateIssue(cmd.Context(), req)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", key)
	if base := strings.TrimRight(a.cfg.Jira.BaseURL, "/"); base != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s/browse/%s\n", base, key)
	}
	return nil
}
