package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jekwwer/repolint/internal/scaffold"
)

func newInitCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the canonical scaffold files into a repository",
		Long: `Materializes the canonical .editorconfig and the issue templates under
.github/ISSUE_TEMPLATE/. Existing files are left alone unless --force is set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveRoot(args)
			if err != nil {
				return err
			}

			written, err := scaffold.Materialize(root, force)
			for _, path := range written {
				fmt.Printf("   ✓ %s\n", path)
			}
			if err != nil {
				return err
			}

			a.logger.Info().Int("files", len(written)).Str("root", root).Msg("scaffold initialized")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing scaffold files")
	return cmd
}
