package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jekwwer/repolint/internal/github"
	"github.com/jekwwer/repolint/pkg/labels"
	"github.com/jekwwer/repolint/pkg/output"
	"github.com/jekwwer/repolint/pkg/spinner"
)

type labelsOptions struct {
	owner  string
	repo   string
	format string
	dryRun bool
}

func newLabelsCmd(a *app) *cobra.Command {
	opts := &labelsOptions{}

	cmd := &cobra.Command{
		Use:   "labels",
		Short: "Manage the repository's issue labels",
	}

	cmd.PersistentFlags().StringVar(&opts.owner, "owner", "", "repository owner (defaults to github.owner in config)")
	cmd.PersistentFlags().StringVar(&opts.repo, "repo", "", "repository name (defaults to github.repo in config)")

	cmd.AddCommand(
		newLabelsListCmd(a, opts),
		newLabelsSyncCmd(a, opts),
		newLabelsClearCmd(a, opts),
	)

	return cmd
}

func (o *labelsOptions) client(a *app) (*github.Client, error) {
	owner := o.owner
	if owner == "" {
		owner = a.cfg.GitHub.Owner
	}
	repo := o.repo
	if repo == "" {
		repo = a.cfg.GitHub.Repo
	}
	if owner == "" || repo == "" {
		return nil, fmt.Errorf("repository owner and name are required (set --owner/--repo or github.owner/github.repo in config)")
	}

	return github.NewClient(a.cfg.GitHub.BaseURL, owner, repo, a.cfg.GitHub.Token), nil
}

func newLabelsListCmd(a *app, opts *labelsOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the labels currently defined on the repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client(a)
			if err != nil {
				return err
			}

			current, err := client.ListLabels()
			if err != nil {
				return err
			}

			format, err := output.ParseFormatType(opts.format)
			if err != nil {
				return err
			}

			formatted, err := output.FormatOutput(current, format)
			if err != nil {
				return err
			}
			fmt.Println(formatted)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "table", "output format: pretty, text, json, yaml or table")
	return cmd
}

func newLabelsSyncCmd(a *app, opts *labelsOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Reconcile the repository's labels with the canonical set",
		Long: `Creates missing canonical labels, updates canonical labels whose color or
description drifted, and deletes labels outside the canonical set. In-sync
labels are left untouched, so syncing twice is a no-op.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client(a)
			if err != nil {
				return err
			}

			if opts.dryRun {
				current, err := client.ListLabels()
				if err != nil {
					return err
				}
				plan := github.BuildPlan(current, labels.Canonical)
				printPlan(plan)
				return nil
			}

			s := spinner.New("Syncing labels...")
			s.Start()
			plan, err := github.NewSyncer(client, a.logger).Sync(labels.Canonical)
			s.Stop()
			if err != nil {
				return err
			}

			fmt.Printf("labels synced: %s\n", plan)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "show the plan without touching the repository")
	return cmd
}

func newLabelsClearCmd(a *app, opts *labelsOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every label from the repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client(a)
			if err != nil {
				return err
			}

			s := spinner.New("Deleting labels...")
			s.Start()
			deleted, err := github.NewSyncer(client, a.logger).Clear()
			s.Stop()
			if err != nil {
				return err
			}

			fmt.Printf("deleted %d labels\n", deleted)
			return nil
		},
	}
}

func printPlan(plan github.Plan) {
	if plan.Empty() {
		fmt.Println("labels already in sync")
		return
	}

	for _, l := range plan.Create {
		fmt.Printf("  + create %s\n", l.Name)
	}
	for _, l := range plan.Update {
		fmt.Printf("  ~ update %s\n", l.Name)
	}
	for _, l := range plan.Delete {
		fmt.Printf("  - delete %s\n", l.Name)
	}
	fmt.Println(plan)
}
