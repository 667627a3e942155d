package headers

import (
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// TypeScriptParser checks that a TypeScript file opens with a comment
// header, preferring a JSDoc block.
type TypeScriptParser struct {
	parser   *sitter.Parser
	language *sitter.Language
}

func NewTypeScriptParser() (*TypeScriptParser, error) {
	lang := sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript())
	parser := sitter.NewParser()
	if err := parser.SetLanguage(lang); err != nil {
		return nil, fmt.Errorf("failed to set language for parser: %w", err)
	}
	return &TypeScriptParser{
		parser:   parser,
		language: lang,
	}, nil
}

func (tp *TypeScriptParser) Language() string {
	return "TypeScript"
}

func (tp *TypeScriptParser) SupportedExtensions() []string {
	return []string{".ts", ".tsx"}
}

func (tp *TypeScriptParser) ShouldExcludeFile(filePath string) bool {
	lowerPath := strings.ToLower(filePath)

	if strings.Contains(lowerPath, ".test.") || strings.Contains(lowerPath, ".spec.") {
		return true
	}

	tsExcludePatterns := []string{
		"node_modules/",
		"dist/",
		"build/",
		".d.ts",
	}

	for _, pattern := range tsExcludePatterns {
		if strings.Contains(lowerPath, pattern) {
			return true
		}
	}

	return false
}

func (tp *TypeScriptParser) Inspect(content []byte) (Verdict, error) {
	tree := tp.parser.Parse(content, nil)
	if tree == nil {
		return Verdict{}, fmt.Errorf("failed to parse TypeScript file: tree-sitter returned nil")
	}
	defer tree.Close()

	comments, first := leadingComments(tree.RootNode(), map[string]bool{"comment": true})

	if len(comments) == 0 {
		line := 1
		if first != nil {
			line = nodeLine(first)
		}
		return Verdict{Line: line, Reason: "file does not start with a comment header"}, nil
	}

	return Verdict{OK: true, Line: nodeLine(comments[0])}, nil
}
