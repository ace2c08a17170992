package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smellview/smellview/internal/adapters/outbound/graphql"
)

func newSchemaCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Inspect the backend GraphQL schema",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Verify the backend exposes every operation smellview sends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a *app) error {
				if err := a.client.ValidateSchema(ctx); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "schema ok: %d operations available\n", len(graphql.Operations()))
				return nil
			})
		},
	})
	return cmd
}
