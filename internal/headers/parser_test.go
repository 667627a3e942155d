package headers

import (
	"testing"
)

func TestParserRegistry_RegisterAndGetParser(t *testing.T) {
	registry, err := NewParserRegistry()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	cParser := registry.GetParser("main.c")
	if cParser == nil {
		t.Fatal("Expected C parser to be registered by default")
	}
	if cParser.Language() != "C" {
		t.Errorf("Expected C parser language to be 'C', got '%s'", cParser.Language())
	}

	hParser := registry.GetParser("util.h")
	if hParser == nil || hParser.Language() != "C" {
		t.Error("Expected .h files to map to the C parser")
	}

	unknownParser := registry.GetParser("notes.txt")
	if unknownParser != nil {
		t.Error("Expected nil parser for unsupported file type")
	}
}

func TestParserRegistry_SupportedLanguages(t *testing.T) {
	registry, err := NewParserRegistry()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	languages := registry.SupportedLanguages()

	expected := map[string]bool{"C": false, "Go": false, "Java": false, "Python": false, "TypeScript": false}
	for _, lang := range languages {
		if _, ok := expected[lang]; ok {
			expected[lang] = true
		}
	}
	for lang, found := range expected {
		if !found {
			t.Errorf("Expected %s to be in supported languages, got %v", lang, languages)
		}
	}
}

func TestCParser_Inspect(t *testing.T) {
	parser, err := NewCParser()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	withHeader := `/**
 * @file main.c
 * @brief Entry point.
 */

#include <stdio.h>

int main(void) {
	return 0;
}
`
	verdict, err := parser.Inspect([]byte(withHeader))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !verdict.OK {
		t.Errorf("Expected @file header to pass, got reason %q", verdict.Reason)
	}
	if verdict.Line != 1 {
		t.Errorf("Expected header on line 1, got %d", verdict.Line)
	}

	noHeader := "#include <stdio.h>\n\nint main(void) { return 0; }\n"
	verdict, err = parser.Inspect([]byte(noHeader))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if verdict.OK {
		t.Error("Expected a file without a Doxygen header to fail")
	}

	commentWithoutTag := "/* just a banner */\nint main(void) { return 0; }\n"
	verdict, err = parser.Inspect([]byte(commentWithoutTag))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if verdict.OK {
		t.Error("Expected a comment without @file to fail")
	}
}

func TestCParser_BackslashFileTag(t *testing.T) {
	parser, err := NewCParser()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	content := "/** \\file util.h */\nvoid helper(void);\n"
	verdict, err := parser.Inspect([]byte(content))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !verdict.OK {
		t.Errorf("Expected \\file tag to pass, got reason %q", verdict.Reason)
	}
}

func TestGoParser_Inspect(t *testing.T) {
	parser, err := NewGoParser()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	documented := `// Package demo does demo things.
package demo
`
	verdict, err := parser.Inspect([]byte(documented))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !verdict.OK {
		t.Errorf("Expected documented package to pass, got reason %q", verdict.Reason)
	}

	undocumented := "package demo\n\nfunc F() {}\n"
	verdict, err = parser.Inspect([]byte(undocumented))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if verdict.OK {
		t.Error("Expected undocumented package to fail")
	}

	detached := `// Copyright banner.

package demo
`
	verdict, err = parser.Inspect([]byte(detached))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if verdict.OK {
		t.Error("Expected detached banner to fail")
	}
}

func TestJavaParser_Inspect(t *testing.T) {
	parser, err := NewJavaParser()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	documented := `/**
 * Application entry point.
 */
public class Main {
}
`
	verdict, err := parser.Inspect([]byte(documented))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !verdict.OK {
		t.Errorf("Expected Javadoc block to pass, got reason %q", verdict.Reason)
	}

	lineCommentOnly := "// not javadoc\npublic class Main {}\n"
	verdict, err = parser.Inspect([]byte(lineCommentOnly))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if verdict.OK {
		t.Error("Expected a plain line comment to fail")
	}
}

func TestPythonParser_Inspect(t *testing.T) {
	parser, err := NewPythonParser()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	docstring := `"""Create GitHub labels."""

import os
`
	verdict, err := parser.Inspect([]byte(docstring))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !verdict.OK {
		t.Errorf("Expected module docstring to pass, got reason %q", verdict.Reason)
	}

	commentHeader := "# utility helpers\nimport os\n"
	verdict, err = parser.Inspect([]byte(commentHeader))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !verdict.OK {
		t.Errorf("Expected comment header to pass, got reason %q", verdict.Reason)
	}

	shebangOnly := "#!/usr/bin/env python3\nimport os\n"
	verdict, err = parser.Inspect([]byte(shebangOnly))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if verdict.OK {
		t.Error("Expected a shebang alone not to count as a header")
	}

	bare := "import os\n"
	verdict, err = parser.Inspect([]byte(bare))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if verdict.OK {
		t.Error("Expected a bare module to fail")
	}
}

func TestTypeScriptParser_Inspect(t *testing.T) {
	parser, err := NewTypeScriptParser()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	documented := "/** Session helpers. */\nexport const x = 1;\n"
	verdict, err := parser.Inspect([]byte(documented))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !verdict.OK {
		t.Errorf("Expected comment header to pass, got reason %q", verdict.Reason)
	}

	bare := "export const x = 1;\n"
	verdict, err = parser.Inspect([]byte(bare))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if verdict.OK {
		t.Error("Expected a bare file to fail")
	}
}

func TestShouldExcludeFile(t *testing.T) {
	registry, err := NewParserRegistry()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	excluded := []string{
		"build/gen.c",
		"vendor/dep/dep.go",
		"pkg/util_test.go",
		"node_modules/lib/index.ts",
		"app/main.test.ts",
		"__pycache__/mod.py",
	}
	for _, path := range excluded {
		parser := registry.GetParser(path)
		if parser == nil {
			t.Fatalf("Expected a parser for %s", path)
		}
		if !parser.ShouldExcludeFile(path) {
			t.Errorf("Expected %s to be excluded", path)
		}
	}

	included := []string{"src/main.c", "internal/app/app.go", "scripts/tool.py"}
	for _, path := range included {
		parser := registry.GetParser(path)
		if parser == nil {
			t.Fatalf("Expected a parser for %s", path)
		}
		if parser.ShouldExcludeFile(path) {
			t.Errorf("Expected %s to be included", path)
		}
	}
}
