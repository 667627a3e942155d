package checks

import (
	"sort"

	"github.com/rs/zerolog"
)

// Runner executes a set of checks against a target and aggregates their
// findings. A check failing outright is reported as an error finding so a
// single broken file never aborts the whole run.
type Runner struct {
	checks []Check
	logger zerolog.Logger
}

func NewRunner(checks []Check, logger zerolog.Logger) *Runner {
	return &Runner{
		checks: checks,
		logger: logger,
	}
}

func (r *Runner) Run(target Target) []Finding {
	var findings []Finding

	for _, check := range r.checks {
		r.logger.Debug().Str("check", check.Name()).Str("root", target.Root).Msg("running check")

		result, err := check.Run(target)
		if err != nil {
			r.logger.Error().Err(err).Str("check", check.Name()).Msg("check failed")
			findings = append(findings, Finding{
				Severity: SeverityError,
				CheckID:  check.Name(),
				File:     target.Root,
				Message:  err.Error(),
			})
			continue
		}
		findings = append(findings, result...)
	}

	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].File != findings[j].File {
			return findings[i].File < findings[j].File
		}
		return findings[i].Line < findings[j].Line
	})

	return findings
}
