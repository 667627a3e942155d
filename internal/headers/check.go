package headers

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jekwwer/repolint/internal/checks"
)

const CheckName = "headers"

var skippedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"build":        true,
}

// Check walks the scaffold tree and verifies that every supported source
// file opens with the documentation header its language requires.
type Check struct {
	registry *ParserRegistry
}

func NewCheck(registry *ParserRegistry) *Check {
	return &Check{registry: registry}
}

func (c *Check) Name() string {
	return CheckName
}

func (c *Check) Description() string {
	return "Verify source files start with a documentation header"
}

func (c *Check) Run(target checks.Target) ([]checks.Finding, error) {
	var findings []checks.Finding

	err := filepath.WalkDir(target.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skippedDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(target.Root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if !target.InScope(rel) {
			return nil
		}

		parser := c.registry.GetParser(path)
		if parser == nil || parser.ShouldExcludeFile(rel) {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			findings = append(findings, checks.Finding{
				Severity: checks.SeverityError,
				CheckID:  CheckName,
				File:     rel,
				Message:  fmt.Sprintf("failed to read file: %v", err),
			})
			return nil
		}

		verdict, err := parser.Inspect(content)
		if err != nil {
			findings = append(findings, checks.Finding{
				Severity: checks.SeverityError,
				CheckID:  CheckName,
				File:     rel,
				Message:  err.Error(),
			})
			return nil
		}

		if !verdict.OK {
			findings = append(findings, checks.Finding{
				Severity: checks.SeverityWarning,
				CheckID:  CheckName,
				File:     rel,
				Line:     verdict.Line,
				Message:  fmt.Sprintf("%s: %s", strings.ToLower(parser.Language()), verdict.Reason),
			})
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", target.Root, err)
	}

	return findings, nil
}
