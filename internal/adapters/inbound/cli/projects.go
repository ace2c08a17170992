package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smellview/smellview/internal/adapters/outbound/tui"
)

func newProjectsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List and register projects",
		Long:  "Commands for the projects registered with the analysis backend. Without a subcommand, lists them.",
	}
	list := newProjectsListCmd(opts)
	cmd.RunE = list.RunE
	cmd.Flags().AddFlagSet(list.Flags())
	cmd.AddCommand(list)
	cmd.AddCommand(newProjectsAddCmd(opts))
	return cmd
}

func newProjectsListCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered projects and their analyzed commits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a *app) error {
				projects, err := a.services.Projects.ListProjects(ctx)
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd.OutOrStdout(), projects)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderProjects(projects))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func newProjectsAddCmd(opts *rootOptions) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add <url>",
		Short: "Register a repository with the analysis backend",
		Long:  "Register a repository URL. The project name defaults to the repository name.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a *app) error {
				p, err := a.services.Projects.AddProject(ctx, name, args[0])
				if err != nil {
					return fmt.Errorf("adding project: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added project %s (%s)\n", p.ProjectName, p.ProjectURL)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name (defaults to the repository name)")

	return cmd
}
