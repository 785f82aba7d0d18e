package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ylchen07/jira-loader/internal/stories"
)

var importCmd = &cobra.Command{
	Use:   "import <stories.json>",
	Short: "Create Jira issues in bulk from a JSON file of user stories",
	Long: `Reads a JSON array of user stories and creates one Jira issue per entry.
Entries that fail validation or creation are reported at the end; a
failed entry never stops the rest of the batch.`,
	Example: `  jira-loader import stories.json`,
	Args:    cobra.ExactArgs(1),
	RunE:    runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}

	requests, err := stories.Load(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if !a.creator.TestConnection(ctx) {
		return fmt.Errorf("cannot reach Jira at %s, aborting import", a.cfg.Jira.BaseURL)
	}

	if info, found, err := a.creator.ProjectInfo(ctx); err == nil && found {
		fmt.Fprintf(out, "Importing into %s (%s)\n", info.Name, info.Key)
	} else if err == nil && !found {
		return fmt.Errorf("project %s does not exist or is not visible", a.cfg.Jira.ProjectKey)
	}

	result := a.creator.RunBatch(ctx, requests)

	for _, outcome := range result.Outcomes {
		if outcome.Failed() {
			fmt.Fprintf(out, "FAIL  %q: %v\n", outcome.Summary, outcome.Err)
			continue
		}
		fmt.Fprintf(out, "OK    %s  %q\n", outcome.Key, outcome.Summary)
	}
	fmt.Fprintf(out, "Done: %d/%d created, %d failed\n", result.Succeeded, result.Attempted, result.Failed)

	return nil
}
