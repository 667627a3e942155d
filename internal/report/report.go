package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/jekwwer/repolint/internal/checks"
)

// WriteMarkdown renders the findings grouped by file and writes them to
// path.
func WriteMarkdown(path string, findings []checks.Finding, summary checks.Summary) error {
	var reportBuilder strings.Builder
	reportBuilder.WriteString("# Scaffold Lint Report\n\n")

	if len(findings) == 0 {
		reportBuilder.WriteString("No findings. The scaffold is clean.\n")
	}

	var currentFile string
	for _, finding := range findings {
		if finding.File != currentFile {
			currentFile = finding.File
			reportBuilder.WriteString(fmt.Sprintf("## `%s`\n\n", currentFile))
		}

		icon := severityIcon(finding.Severity)
		if finding.Line > 0 {
			reportBuilder.WriteString(fmt.Sprintf("- %s **%s** (line %d, `%s`): %s\n",
				icon, finding.Severity, finding.Line, finding.CheckID, finding.Message))
		} else {
			reportBuilder.WriteString(fmt.Sprintf("- %s **%s** (`%s`): %s\n",
				icon, finding.Severity, finding.CheckID, finding.Message))
		}
	}

	reportBuilder.WriteString(fmt.Sprintf("\n**Summary:** %d errors, %d warnings, %d notices\n",
		summary.Errors, summary.Warnings, summary.Notices))

	if err := os.WriteFile(path, []byte(reportBuilder.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

func severityIcon(severity checks.Severity) string {
	switch severity {
	case checks.SeverityError:
		return "🔴"
	case checks.SeverityWarning:
		return "🟡"
	case checks.SeverityNotice:
		return "🔵"
	default:
		return "⚪️"
	}
}
