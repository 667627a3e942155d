package cli

import (
	"github.com/spf13/cobra"

	"github.com/jekwwer/repolint/internal/headers"
)

func newHeadersCmd(a *app) *cobra.Command {
	opts := &lintOptions{}

	cmd := &cobra.Command{
		Use:   "headers [path]",
		Short: "Check documentation headers of scaffold sources",
		Long: `Checks that every supported source file (C, Go, Java, Python,
TypeScript) opens with the documentation header its language expects, e.g. a
Doxygen @file block for C sources.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveRoot(args)
			if err != nil {
				return err
			}
			opts.checkNames = []string{headers.CheckName}
			return runLint(a, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "", "output format: pretty, text, json, yaml or table")
	cmd.Flags().BoolVar(&opts.staged, "staged", false, "only check files staged in git")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "treat warnings as failures")

	return cmd
}
