package cli

import (
	"context"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/smellview/smellview/internal/adapters/inbound/mcp"
)

func newMCPCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the smellview MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(opts))
	return cmd
}

func newMCPServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start smellview MCP server (stdio)",
		Long:  "Start the smellview MCP server using stdio transport. This lets AI coding assistants list projects, read deduplicated bad smells and request refactorings.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withHistoryApp(cmd, func(_ context.Context, a *app) error {
				mcpadapter.Version = version
				return server.ServeStdio(mcpadapter.NewSmellviewMCPServer(a.services))
			})
		},
	}
}
