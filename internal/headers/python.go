package headers

import (
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"
)

// PythonParser checks that a Python module opens with a docstring or a
// comment header. A shebang line is allowed to precede either.
type PythonParser struct {
	parser   *sitter.Parser
	language *sitter.Language
}

func NewPythonParser() (*PythonParser, error) {
	lang := sitter.NewLanguage(tree_sitter_python.Language())
	parser := sitter.NewParser()
	if err := parser.SetLanguage(lang); err != nil {
		return nil, fmt.Errorf("failed to set language for parser: %w", err)
	}
	return &PythonParser{
		parser:   parser,
		language: lang,
	}, nil
}

func (pp *PythonParser) Language() string {
	return "Python"
}

func (pp *PythonParser) SupportedExtensions() []string {
	return []string{".py"}
}

func (pp *PythonParser) ShouldExcludeFile(filePath string) bool {
	lowerPath := strings.ToLower(filePath)

	pyExcludePatterns := []string{
		"__pycache__/",
		".venv/",
		"venv/",
		"site-packages/",
		".egg-info/",
	}

	for _, pattern := range pyExcludePatterns {
		if strings.Contains(lowerPath, pattern) {
			return true
		}
	}

	return false
}

func (pp *PythonParser) Inspect(content []byte) (Verdict, error) {
	tree := pp.parser.Parse(content, nil)
	if tree == nil {
		return Verdict{}, fmt.Errorf("failed to parse Python file: tree-sitter returned nil")
	}
	defer tree.Close()

	comments, first := leadingComments(tree.RootNode(), map[string]bool{"comment": true})

	// "#!/usr/bin/env python3" and "# -*- coding -*-" count as comments in
	// the grammar, so a comment header is already satisfied here.
	for _, comment := range comments {
		text := comment.Utf8Text(content)
		if strings.HasPrefix(text, "#!") {
			continue
		}
		return Verdict{OK: true, Line: nodeLine(comment)}, nil
	}

	if first != nil && isModuleDocstring(first, content) {
		return Verdict{OK: true, Line: nodeLine(first)}, nil
	}

	line := 1
	if first != nil {
		line = nodeLine(first)
	}
	return Verdict{Line: line, Reason: "module has neither a docstring nor a comment header"}, nil
}

func isModuleDocstring(node *sitter.Node, content []byte) bool {
	if node.Kind() != "expression_statement" {
		return false
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child != nil && child.Kind() == "string" {
			return strings.TrimSpace(child.Utf8Text(content)) != ""
		}
	}
	return false
}
