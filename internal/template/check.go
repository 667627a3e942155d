package template

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jekwwer/repolint/internal/checks"
	"github.com/jekwwer/repolint/pkg/labels"
)

const (
	CheckName   = "issue-templates"
	TemplateDir = ".github/ISSUE_TEMPLATE"
)

// Check validates the Markdown issue templates under .github/ISSUE_TEMPLATE.
type Check struct{}

func (c *Check) Name() string {
	return CheckName
}

func (c *Check) Description() string {
	return "Validate issue template front matter and checklists"
}

func (c *Check) Run(target checks.Target) ([]checks.Finding, error) {
	dir := filepath.Join(target.Root, TemplateDir)

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return []checks.Finding{{
			Severity: checks.SeverityWarning,
			CheckID:  CheckName,
			File:     TemplateDir,
			Message:  "no issue template directory",
		}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", TemplateDir, err)
	}

	var findings []checks.Finding
	seenNames := make(map[string]string)

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)

	for _, name := range files {
		rel := filepath.ToSlash(filepath.Join(TemplateDir, name))
		if !target.InScope(rel) {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			findings = append(findings, checks.Finding{
				Severity: checks.SeverityError,
				CheckID:  CheckName,
				File:     rel,
				Message:  fmt.Sprintf("failed to read template: %v", err),
			})
			continue
		}

		findings = append(findings, c.checkTemplate(rel, string(data), seenNames)...)
	}

	if len(files) == 0 {
		findings = append(findings, checks.Finding{
			Severity: checks.SeverityWarning,
			CheckID:  CheckName,
			File:     TemplateDir,
			Message:  "issue template directory contains no Markdown templates",
		})
	}

	return findings, nil
}

func (c *Check) checkTemplate(rel, content string, seenNames map[string]string) []checks.Finding {
	var findings []checks.Finding

	tmpl, err := Parse(content)
	if err != nil {
		return []checks.Finding{{
			Severity: checks.SeverityError,
			CheckID:  CheckName,
			File:     rel,
			Line:     1,
			Message:  err.Error(),
		}}
	}

	findings = append(findings, c.checkFrontMatter(rel, tmpl, seenNames)...)
	findings = append(findings, c.checkBody(rel, tmpl)...)

	return findings
}

func (c *Check) checkFrontMatter(rel string, tmpl *Template, seenNames map[string]string) []checks.Finding {
	var findings []checks.Finding
	fm := tmpl.FrontMatter

	required := map[string]string{
		"name":  fm.Name,
		"about": fm.About,
		"title": fm.Title,
	}
	for _, field := range []string{"name", "about", "title"} {
		if strings.TrimSpace(required[field]) == "" {
			findings = append(findings, checks.Finding{
				Severity: checks.SeverityError,
				CheckID:  CheckName,
				File:     rel,
				Line:     1,
				Message:  fmt.Sprintf("front matter field %q is empty", field),
			})
		}
	}

	if fm.Name != "" {
		if other, dup := seenNames[fm.Name]; dup {
			findings = append(findings, checks.Finding{
				Severity: checks.SeverityError,
				CheckID:  CheckName,
				File:     rel,
				Line:     1,
				Message:  fmt.Sprintf("template name %q already used by %s", fm.Name, other),
			})
		} else {
			seenNames[fm.Name] = rel
		}
	}

	for _, key := range tmpl.UnknownKeys {
		findings = append(findings, checks.Finding{
			Severity: checks.SeverityWarning,
			CheckID:  CheckName,
			File:     rel,
			Line:     1,
			Message:  fmt.Sprintf("unknown front matter key %q", key),
		})
	}

	canonical := labels.CanonicalNames()
	for _, label := range fm.Labels {
		if !canonical[label] {
			findings = append(findings, checks.Finding{
				Severity: checks.SeverityNotice,
				CheckID:  CheckName,
				File:     rel,
				Line:     1,
				Message:  fmt.Sprintf("label %q is not in the canonical label set", label),
			})
		}
	}

	return findings
}

func (c *Check) checkBody(rel string, tmpl *Template) []checks.Finding {
	var findings []checks.Finding

	if len(tmpl.SectionHeaders()) == 0 {
		findings = append(findings, checks.Finding{
			Severity: checks.SeverityWarning,
			CheckID:  CheckName,
			File:     rel,
			Line:     tmpl.BodyStart,
			Message:  "template body has no section headers",
		})
	}

	for _, item := range tmpl.ChecklistItems() {
		if item.Malformed {
			findings = append(findings, checks.Finding{
				Severity: checks.SeverityError,
				CheckID:  CheckName,
				File:     rel,
				Line:     item.Line,
				Message:  fmt.Sprintf("malformed checkbox item: %s", item.Reason),
			})
		}
	}

	return findings
}
