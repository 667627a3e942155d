package headers

import (
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"
)

// JavaParser checks that a Java file opens with a Javadoc or Doxygen block
// before its package or type declaration.
type JavaParser struct {
	parser   *sitter.Parser
	language *sitter.Language
}

func NewJavaParser() (*JavaParser, error) {
	lang := sitter.NewLanguage(tree_sitter_java.Language())
	parser := sitter.NewParser()
	if err := parser.SetLanguage(lang); err != nil {
		return nil, fmt.Errorf("failed to set language for parser: %w", err)
	}
	return &JavaParser{
		parser:   parser,
		language: lang,
	}, nil
}

func (jp *JavaParser) Language() string {
	return "Java"
}

func (jp *JavaParser) SupportedExtensions() []string {
	return []string{".java"}
}

func (jp *JavaParser) ShouldExcludeFile(filePath string) bool {
	lowerPath := strings.ToLower(filePath)

	javaExcludePatterns := []string{
		"target/",
		"build/",
		".gradle/",
		"generated/",
	}

	for _, pattern := range javaExcludePatterns {
		if strings.Contains(lowerPath, pattern) {
			return true
		}
	}

	return strings.HasSuffix(lowerPath, "test.java")
}

func (jp *JavaParser) Inspect(content []byte) (Verdict, error) {
	tree := jp.parser.Parse(content, nil)
	if tree == nil {
		return Verdict{}, fmt.Errorf("failed to parse Java file: tree-sitter returned nil")
	}
	defer tree.Close()

	commentKinds := map[string]bool{
		"block_comment": true,
		"line_comment":  true,
	}
	comments, first := leadingComments(tree.RootNode(), commentKinds)

	if len(comments) == 0 {
		line := 1
		if first != nil {
			line = nodeLine(first)
		}
		return Verdict{Line: line, Reason: "file does not start with a documentation block"}, nil
	}

	for _, comment := range comments {
		text := comment.Utf8Text(content)
		if strings.HasPrefix(text, "/**") || strings.Contains(text, "@file") {
			return Verdict{OK: true, Line: nodeLine(comment)}, nil
		}
	}

	return Verdict{
		Line:   nodeLine(comments[0]),
		Reason: "leading comment is not a Javadoc block",
	}, nil
}
