package headers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jekwwer/repolint/internal/checks"
)

func newTestCheck(t *testing.T) *Check {
	t.Helper()
	registry, err := NewParserRegistry()
	require.NoError(t, err)
	return NewCheck(registry)
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func TestCheck_ReportsMissingHeaders(t *testing.T) {
	root := writeTree(t, map[string]string{
		"src/main.c":  "/** @file main.c */\nint main(void) { return 0; }\n",
		"src/ring.c":  "#include <stddef.h>\nvoid ring(void) {}\n",
		"README.md":   "# readme\n",
		"src/notes":   "no extension\n",
	})

	findings, err := newTestCheck(t).Run(checks.Target{Root: root})
	require.NoError(t, err)

	require.Len(t, findings, 1)
	assert.Equal(t, checks.SeverityWarning, findings[0].Severity)
	assert.Equal(t, "src/ring.c", findings[0].File)
	assert.Contains(t, findings[0].Message, "c: ")
}

func TestCheck_SkipsExcludedDirsAndFiles(t *testing.T) {
	root := writeTree(t, map[string]string{
		"build/gen.c":        "int gen(void) { return 1; }\n",
		"vendor/v/v.go":      "package v\n",
		"pkg/pkg_test.go":    "package pkg\n",
		"node_modules/a.ts":  "export const a = 1;\n",
	})

	findings, err := newTestCheck(t).Run(checks.Target{Root: root})
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestCheck_ScopeFiltering(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.c": "int a(void) { return 0; }\n",
		"b.c": "int b(void) { return 0; }\n",
	})

	findings, err := newTestCheck(t).Run(checks.Target{Root: root, Files: []string{"b.c"}})
	require.NoError(t, err)

	require.Len(t, findings, 1)
	assert.Equal(t, "b.c", findings[0].File)
}

func TestCheck_MixedLanguages(t *testing.T) {
	root := writeTree(t, map[string]string{
		"tool.py":  "\"\"\"Tooling helpers.\"\"\"\nimport os\n",
		"app.go":   "// Package app runs the app.\npackage app\n",
		"Main.java": "public class Main {}\n",
	})

	findings, err := newTestCheck(t).Run(checks.Target{Root: root})
	require.NoError(t, err)

	require.Len(t, findings, 1)
	assert.Equal(t, "Main.java", findings[0].File)
}
