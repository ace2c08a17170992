package cli

import (
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

// rootOptions holds the global flags shared by every subcommand.
type rootOptions struct {
	configPath string
	endpoint   string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "smellview",
		Short:         "Browse and fix code smells found by the analysis backend",
		Long:          "smellview lists projects registered with a code-smell analysis backend, shows the deduplicated bad smells of each commit and asks the backend to refactor them.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", ".", "Config file, or directory containing .smellview.yaml")
	cmd.PersistentFlags().StringVar(&opts.endpoint, "endpoint", "", "GraphQL endpoint (overrides config and SMELLVIEW_ENDPOINT)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newProjectsCmd(opts))
	cmd.AddCommand(newCommitsCmd(opts))
	cmd.AddCommand(newSmellsCmd(opts))
	cmd.AddCommand(newRefactoringsCmd(opts))
	cmd.AddCommand(newRefactorCmd(opts))
	cmd.AddCommand(newLoginCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))
	cmd.AddCommand(newHistoryCmd(opts))
	cmd.AddCommand(newSchemaCmd(opts))
	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newMCPCmd(opts))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
