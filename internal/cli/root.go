// Package cli wires the repolint commands together.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jekwwer/repolint/pkg/config"
)

// ErrFindings marks a run that completed but found problems, so Execute can
// exit 1 instead of the usage-error exit 2.
var ErrFindings = errors.New("scaffold checks reported findings")

// app carries the state shared by every subcommand, filled in by the root
// command's PersistentPreRunE.
type app struct {
	cfgFile string
	debug   bool

	cfg    *config.Config
	logger zerolog.Logger
}

func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, ErrFindings) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}

func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "repolint",
		Short:         "Scaffold doctor for project templates",
		Long: `repolint validates and manages project-template scaffolding: the
.editorconfig conventions, the GitHub issue templates, the documentation
headers of scaffold sources, and the repository's issue label set.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.logger = newLogger(a.debug)

			cfg, err := config.LoadConfig(a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./.repolint.yaml or $HOME/.repolint.yaml)")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		newLintCmd(a),
		newHeadersCmd(a),
		newLabelsCmd(a),
		newInitCmd(a),
		newVersionCmd(),
	)

	return cmd
}

func newLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
