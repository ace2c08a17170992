package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smellview/smellview/internal/adapters/outbound/tui"
)

func newRefactoringsCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "refactorings",
		Short: "List the rules the backend can refactor automatically",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a *app) error {
				refs, err := a.services.Refactors.AvailableRefactorings(ctx)
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd.OutOrStdout(), refs)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderRefactorings(refs))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func newRefactorCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "refactor <identifier>...",
		Short: "Ask the backend to refactor bad smells",
		Long:  "Send bad smell identifiers to the backend, which refactors them and opens a pull request.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a *app) error {
				status, err := a.services.Refactors.Refactor(ctx, args)
				if err != nil {
					return fmt.Errorf("refactor failed: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), status)
				return nil
			})
		},
	}
}

func newLoginCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in to the analysis backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a *app) error {
				status, err := a.services.Refactors.Login(ctx)
				if err != nil {
					return fmt.Errorf("login failed: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), status)
				return nil
			})
		},
	}
}
