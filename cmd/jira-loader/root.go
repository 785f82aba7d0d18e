package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ylchen07/jira-loader/internal/config"
	"github.com/ylchen07/jira-loader/internal/issue"
	"github.com/ylchen07/jira-loader/internal/jira"
	"github.com/ylchen07/jira-loader/pkg/logging"
)

var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "jira-loader",
	Short: "Create Jira issues from user stories",
	Long: `jira-loader creates Jira issues one at a time or in bulk from a JSON
file of user stories. Connection details come from a config file,
environment variables, or ~/.netrc.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var cfgPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to configuration directory or file")
}

func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// app bundles the dependencies shared by every subcommand.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	creator *issue.Creator
}

func setup() (*app, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := logging.New(cfg.LogLevel)

	if err := issue.ValidateConfig(cfg.Jira); err != nil {
		return nil, err
	}

	client, err := jira.NewClient(cfg.Jira)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Jira client: %w", err)
	}

	creator, err := issue.NewCreator(cfg, client, logger)
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, logger: logger, creator: creator}, nil
}
