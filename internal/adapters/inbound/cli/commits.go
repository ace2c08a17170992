package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smellview/smellview/internal/adapters/outbound/gitinfo"
	"github.com/smellview/smellview/internal/adapters/outbound/tui"
)

const localCommitLimit = 20

func newCommitsCmd(opts *rootOptions) *cobra.Command {
	var (
		jsonOutput bool
		local      bool
		repoPath   string
	)

	cmd := &cobra.Command{
		Use:   "commits <project>",
		Short: "List a project's commits with analyzer statuses",
		Long:  "List the GitHub commits the backend knows for a project. With --local, also marks which commits of the local checkout were analyzed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a *app) error {
				commits, err := a.services.Projects.Commits(ctx, args[0])
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd.OutOrStdout(), commits)
				}

				out := cmd.OutOrStdout()
				fmt.Fprint(out, tui.RenderCommits(args[0], commits))
				if local {
					hashes, err := gitinfo.New().RecentCommits(repoPath, localCommitLimit)
					if err != nil {
						return fmt.Errorf("reading local commits: %w", err)
					}
					fmt.Fprint(out, tui.RenderLocalCommits(hashes, commits))
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&local, "local", false, "Also list recent commits of the local git checkout")
	cmd.Flags().StringVar(&repoPath, "path", ".", "Local git checkout used with --local")

	return cmd
}
