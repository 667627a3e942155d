package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jekwwer/repolint/internal/checks"
)

func writeTemplates(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, TemplateDir)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return root
}

func TestCheck_CleanTemplates(t *testing.T) {
	root := writeTemplates(t, map[string]string{
		"bug_report.md": `---
name: Bug Report
about: Report a defect
title: 'bug: '
labels: [bug]
---

## Summary

- [ ] I searched existing issues
`,
	})

	findings, err := (&Check{}).Run(checks.Target{Root: root})
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestCheck_MissingTemplateDir(t *testing.T) {
	findings, err := (&Check{}).Run(checks.Target{Root: t.TempDir()})
	require.NoError(t, err)

	require.Len(t, findings, 1)
	assert.Equal(t, checks.SeverityWarning, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "no issue template directory")
}

func TestCheck_EmptyTemplateDir(t *testing.T) {
	root := writeTemplates(t, nil)

	findings, err := (&Check{}).Run(checks.Target{Root: root})
	require.NoError(t, err)

	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, "no Markdown templates")
}

func TestCheck_EmptyRequiredFields(t *testing.T) {
	root := writeTemplates(t, map[string]string{
		"broken.md": "---\nname: \nabout: Something\ntitle: \n---\n## S\n",
	})

	findings, err := (&Check{}).Run(checks.Target{Root: root})
	require.NoError(t, err)

	require.Len(t, findings, 2)
	for _, f := range findings {
		assert.Equal(t, checks.SeverityError, f.Severity)
		assert.Contains(t, f.Message, "is empty")
	}
}

func TestCheck_DuplicateTemplateNames(t *testing.T) {
	body := "---\nname: Same Name\nabout: A\ntitle: T\n---\n## S\n"
	root := writeTemplates(t, map[string]string{
		"a.md": body,
		"b.md": body,
	})

	findings, err := (&Check{}).Run(checks.Target{Root: root})
	require.NoError(t, err)

	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, "already used by")
	// Directory entries are walked in sorted order, so b.md is the dup.
	assert.Equal(t, ".github/ISSUE_TEMPLATE/b.md", findings[0].File)
}

func TestCheck_NonCanonicalLabel(t *testing.T) {
	root := writeTemplates(t, map[string]string{
		"x.md": "---\nname: X\nabout: A\ntitle: T\nlabels: [made-up-label]\n---\n## S\n",
	})

	findings, err := (&Check{}).Run(checks.Target{Root: root})
	require.NoError(t, err)

	require.Len(t, findings, 1)
	assert.Equal(t, checks.SeverityNotice, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "made-up-label")
}

func TestCheck_MalformedChecklistReported(t *testing.T) {
	root := writeTemplates(t, map[string]string{
		"x.md": "---\nname: X\nabout: A\ntitle: T\n---\n## Checklist\n\n- [] broken box\n",
	})

	findings, err := (&Check{}).Run(checks.Target{Root: root})
	require.NoError(t, err)

	require.Len(t, findings, 1)
	assert.Equal(t, checks.SeverityError, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "malformed checkbox")
	assert.Equal(t, 8, findings[0].Line)
}

func TestCheck_NoSectionHeaders(t *testing.T) {
	root := writeTemplates(t, map[string]string{
		"x.md": "---\nname: X\nabout: A\ntitle: T\n---\njust prose\n",
	})

	findings, err := (&Check{}).Run(checks.Target{Root: root})
	require.NoError(t, err)

	require.Len(t, findings, 1)
	assert.Equal(t, checks.SeverityWarning, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "no section headers")
}

func TestCheck_NonMarkdownFilesIgnored(t *testing.T) {
	root := writeTemplates(t, map[string]string{
		"config.yml": "blank_issues_enabled: false\n",
		"good.md":    "---\nname: X\nabout: A\ntitle: T\n---\n## S\n",
	})

	findings, err := (&Check{}).Run(checks.Target{Root: root})
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestCheck_ScopeFiltering(t *testing.T) {
	root := writeTemplates(t, map[string]string{
		"bad.md": "no front matter here\n",
	})

	findings, err := (&Check{}).Run(checks.Target{
		Root:  root,
		Files: []string{".editorconfig"},
	})
	require.NoError(t, err)
	assert.Empty(t, findings)
}
