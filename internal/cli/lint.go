package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jekwwer/repolint/internal/checks"
	"github.com/jekwwer/repolint/internal/editorconfig"
	"github.com/jekwwer/repolint/internal/gitdiff"
	"github.com/jekwwer/repolint/internal/headers"
	"github.com/jekwwer/repolint/internal/report"
	"github.com/jekwwer/repolint/internal/template"
	"github.com/jekwwer/repolint/pkg/output"
)

type lintOptions struct {
	format     string
	checkNames []string
	staged     bool
	strict     bool
	reportPath string
}

func newLintCmd(a *app) *cobra.Command {
	opts := &lintOptions{}

	cmd := &cobra.Command{
		Use:   "lint [path]",
		Short: "Run scaffold checks against a repository",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveRoot(args)
			if err != nil {
				return err
			}
			return runLint(a, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "", "output format: pretty, text, json, yaml or table")
	cmd.Flags().StringSliceVar(&opts.checkNames, "checks", nil, "checks to run (default: all)")
	cmd.Flags().BoolVar(&opts.staged, "staged", false, "only lint files staged in git")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "treat warnings as failures")
	cmd.Flags().StringVar(&opts.reportPath, "report", "", "write a Markdown report to this file")

	return cmd
}

func resolveRoot(args []string) (string, error) {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %q: %w", root, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("failed to stat %q: %w", root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%q is not a directory", root)
	}

	return abs, nil
}

// newCheckRegistry registers every scaffold check.
func newCheckRegistry() (*checks.Registry, error) {
	parserRegistry, err := headers.NewParserRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to build header parsers: %w", err)
	}

	registry := checks.NewRegistry()
	registry.Register(&editorconfig.Check{})
	registry.Register(&template.Check{})
	registry.Register(headers.NewCheck(parserRegistry))

	return registry, nil
}

func runLint(a *app, root string, opts *lintOptions) error {
	target := checks.Target{Root: root}

	if opts.staged {
		files, err := gitdiff.StagedFiles(root)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			fmt.Println("no staged changes found - use 'git add' to stage files for linting")
			return nil
		}
		target.Files = files
	}

	registry, err := newCheckRegistry()
	if err != nil {
		return err
	}

	checkNames := opts.checkNames
	if len(checkNames) == 0 {
		checkNames = a.cfg.Lint.Checks
	}
	selected, err := registry.Select(checkNames)
	if err != nil {
		return err
	}

	formatName := opts.format
	if formatName == "" {
		formatName = a.cfg.Lint.Format
	}
	format, err := output.ParseFormatType(formatName)
	if err != nil {
		return err
	}

	runner := checks.NewRunner(selected, a.logger)
	findings := runner.Run(target)
	summary := checks.Summarize(findings)

	if len(findings) > 0 {
		formatted, err := output.FormatOutput(findings, format)
		if err != nil {
			return err
		}
		fmt.Println(formatted)
	}

	if opts.reportPath != "" {
		if err := report.WriteMarkdown(opts.reportPath, findings, summary); err != nil {
			return err
		}
		a.logger.Info().Str("path", opts.reportPath).Msg("report written")
	}

	strict := opts.strict || a.cfg.Lint.Strict
	if summary.Failed(strict) {
		fmt.Printf("\n%d errors, %d warnings, %d notices\n", summary.Errors, summary.Warnings, summary.Notices)
		return ErrFindings
	}

	if len(findings) == 0 {
		fmt.Println("scaffold is clean")
	} else {
		fmt.Printf("\n%d warnings, %d notices (not failing)\n", summary.Warnings, summary.Notices)
	}
	return nil
}
