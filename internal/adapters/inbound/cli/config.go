package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smellview/smellview/internal/adapters/outbound/tui"
	"github.com/smellview/smellview/internal/domain"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read and write a project's backend configuration",
	}
	cmd.AddCommand(newConfigGetCmd(opts))
	cmd.AddCommand(newConfigSetCmd(opts))
	return cmd
}

func newConfigGetCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "get <project-url>",
		Short: "Show a project's backend configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a *app) error {
				cfg, err := a.services.Projects.Config(ctx, args[0])
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd.OutOrStdout(), cfg)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderProjectConfig(cfg))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func newConfigSetCmd(opts *rootOptions) *cobra.Command {
	var sourceFolder string

	cmd := &cobra.Command{
		Use:   "set <project-url>",
		Short: "Save a project's backend configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a *app) error {
				saved, err := a.services.Projects.SaveConfig(ctx, domain.ProjectConfig{
					ProjectURL:   args[0],
					SourceFolder: sourceFolder,
				})
				if err != nil {
					return fmt.Errorf("saving project config: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderProjectConfig(saved))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&sourceFolder, "source-folder", domain.DefaultSourceFolder, "Folder the analyzers scan, relative to the repository root")

	return cmd
}
