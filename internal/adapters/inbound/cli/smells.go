package cli

import (
	"context"
	"fmt"
	"path"

	"github.com/spf13/cobra"

	"github.com/smellview/smellview/internal/adapters/outbound/gitinfo"
	"github.com/smellview/smellview/internal/adapters/outbound/tui"
	"github.com/smellview/smellview/internal/domain"
)

func newSmellsCmd(opts *rootOptions) *cobra.Command {
	var (
		rules    string
		glob     string
		project  string
		format   string
		repoPath string
		refresh  bool
	)

	cmd := &cobra.Command{
		Use:   "smells [hash]",
		Short: "Show the bad smells of a commit",
		Long:  "Fetch the bad smells detected for a commit, drop smells whose snippet was already seen and print the rest. The hash defaults to HEAD of the local checkout.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case formatText, formatJSON, formatTOON:
			default:
				return fmt.Errorf("%w: unknown format %q (use text, json or toon)", domain.ErrInvalidInput, format)
			}

			gi := gitinfo.New()
			hash := ""
			if len(args) > 0 {
				hash = args[0]
			} else {
				h, err := gi.CommitHash(repoPath)
				if err != nil {
					return fmt.Errorf("resolving HEAD of %s (pass a hash explicitly): %w", repoPath, err)
				}
				hash = h
			}
			if project == "" {
				if remote, err := gi.RemoteURL(repoPath); err == nil {
					project = path.Base(domain.OwnerRepoName(remote))
				}
			}

			return opts.withHistoryApp(cmd, func(ctx context.Context, a *app) error {
				if refresh {
					if err := a.services.Smells.InvalidateCache(hash); err != nil {
						return fmt.Errorf("invalidating cache: %w", err)
					}
				}

				filter := domain.SmellFilter{RuleIDs: domain.SplitList(rules), PathGlob: glob}
				result, err := a.services.Smells.SmellsForCommit(ctx, project, hash, filter)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				switch format {
				case formatJSON:
					return writeJSON(out, result)
				case formatTOON:
					return writeSmellsTOON(out, result)
				}
				fmt.Fprint(out, tui.RenderBadSmells(result.CommitHash, result.Smells, result.RawCount))
				if result.FromCache {
					fmt.Fprintln(cmd.ErrOrStderr(), "backend unavailable, showing cached smells")
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&rules, "rule", "", "Comma-separated rule ids to keep")
	cmd.Flags().StringVar(&glob, "path", "", "Glob matched against smell file paths (e.g. **/*Test.java)")
	cmd.Flags().StringVar(&project, "project", "", "Project name recorded in history (defaults to the origin repository name)")
	cmd.Flags().StringVar(&format, "format", formatText, "Output format: text, json or toon")
	cmd.Flags().StringVar(&repoPath, "repo", ".", "Local git checkout used to resolve the default hash")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "Drop the cached response before fetching")

	return cmd
}
