package headers

import (
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_c "github.com/tree-sitter/tree-sitter-c/bindings/go"
)

// CParser checks that C sources and headers open with a Doxygen file block
// carrying an @file tag, the convention the scaffold's documentation
// pipeline relies on.
type CParser struct {
	parser   *sitter.Parser
	language *sitter.Language
}

func NewCParser() (*CParser, error) {
	lang := sitter.NewLanguage(tree_sitter_c.Language())
	parser := sitter.NewParser()
	if err := parser.SetLanguage(lang); err != nil {
		return nil, fmt.Errorf("failed to set language for parser: %w", err)
	}
	return &CParser{
		parser:   parser,
		language: lang,
	}, nil
}

func (cp *CParser) Language() string {
	return "C"
}

func (cp *CParser) SupportedExtensions() []string {
	return []string{".c", ".h"}
}

func (cp *CParser) ShouldExcludeFile(filePath string) bool {
	lowerPath := strings.ToLower(filePath)

	cExcludePatterns := []string{
		"build/",
		"dist/",
		"obj/",
		"cmakefiles/",
		".cmake/",
		"third_party/",
		"vendor/",
	}

	for _, pattern := range cExcludePatterns {
		if strings.Contains(lowerPath, pattern) {
			return true
		}
	}

	return false
}

func (cp *CParser) Inspect(content []byte) (Verdict, error) {
	tree := cp.parser.Parse(content, nil)
	if tree == nil {
		return Verdict{}, fmt.Errorf("failed to parse C file: tree-sitter returned nil")
	}
	defer tree.Close()

	comments, first := leadingComments(tree.RootNode(), map[string]bool{"comment": true})

	if len(comments) == 0 {
		line := 1
		if first != nil {
			line = nodeLine(first)
		}
		return Verdict{Line: line, Reason: "file does not start with a Doxygen header block"}, nil
	}

	for _, comment := range comments {
		text := comment.Utf8Text(content)
		if strings.Contains(text, "@file") || strings.Contains(text, `\file`) {
			return Verdict{OK: true, Line: nodeLine(comment)}, nil
		}
	}

	return Verdict{
		Line:   nodeLine(comments[0]),
		Reason: "leading comment block has no @file tag",
	}, nil
}
