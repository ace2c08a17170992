package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smellview/smellview/internal/adapters/outbound/tui"
)

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "history <project>",
		Short: "Show recorded smell counts per commit",
		Long:  "Show the snapshots recorded each time smells were fetched for a project, oldest first.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withHistoryApp(cmd, func(_ context.Context, a *app) error {
				snaps, err := a.services.Smells.History(args[0])
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd.OutOrStdout(), snaps)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(args[0], snaps))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
