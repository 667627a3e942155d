package headers

import (
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_go "github.com/tree-sitter/tree-sitter-go/bindings/go"
)

// GoParser checks that a Go file opens with a doc comment ahead of its
// package clause.
type GoParser struct {
	parser   *sitter.Parser
	language *sitter.Language
}

func NewGoParser() (*GoParser, error) {
	lang := sitter.NewLanguage(tree_sitter_go.Language())
	parser := sitter.NewParser()
	if err := parser.SetLanguage(lang); err != nil {
		return nil, fmt.Errorf("failed to set language for parser: %w", err)
	}
	return &GoParser{
		parser:   parser,
		language: lang,
	}, nil
}

func (gp *GoParser) Language() string {
	return "Go"
}

func (gp *GoParser) SupportedExtensions() []string {
	return []string{".go"}
}

func (gp *GoParser) ShouldExcludeFile(filePath string) bool {
	lowerPath := strings.ToLower(filePath)

	if strings.HasSuffix(lowerPath, "_test.go") {
		return true
	}

	goExcludePatterns := []string{
		"vendor/",
		".pb.go",
		"_generated.go",
		"generated_",
	}

	for _, pattern := range goExcludePatterns {
		if strings.Contains(lowerPath, pattern) {
			return true
		}
	}

	return false
}

func (gp *GoParser) Inspect(content []byte) (Verdict, error) {
	tree := gp.parser.Parse(content, nil)
	if tree == nil {
		return Verdict{}, fmt.Errorf("failed to parse Go file: tree-sitter returned nil")
	}
	defer tree.Close()

	comments, first := leadingComments(tree.RootNode(), map[string]bool{"comment": true})

	if first == nil || first.Kind() != "package_clause" {
		line := 1
		if first != nil {
			line = nodeLine(first)
		}
		return Verdict{Line: line, Reason: "expected a package clause at the top of the file"}, nil
	}

	if len(comments) == 0 {
		return Verdict{Line: nodeLine(first), Reason: "package clause has no doc comment"}, nil
	}

	// The doc comment must be adjacent to the package clause, not a
	// detached license banner followed by a blank line.
	last := comments[len(comments)-1]
	if int(first.StartPosition().Row)-int(last.EndPosition().Row) > 1 {
		return Verdict{
			Line:   nodeLine(first),
			Reason: "leading comment is detached from the package clause",
		}, nil
	}

	return Verdict{OK: true, Line: nodeLine(comments[0])}, nil
}
