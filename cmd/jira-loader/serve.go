package main

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpserver "github.com/ylchen07/jira-loader/internal/mcp"
	"github.com/ylchen07/jira-loader/internal/state"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the loader as an MCP server over stdio",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	a, err := setup()
	if err != nil {
		return err
	}

	srv := mcpserver.NewServer(mcpserver.Dependencies{
		Creator: a.creator,
		Cache:   state.NewCache(),
		SiteURL: a.cfg.Jira.BaseURL,
		Logger:  a.logger,
	})

	a.logger.Info("starting MCP server on stdio")
	if err := server.ServeStdio(srv); err != nil {
		a.logger.Error("stdio server terminated", slog.Any("error", err))
		return err
	}
	return nil
}
