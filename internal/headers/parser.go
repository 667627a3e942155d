package headers

import (
	"path/filepath"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Verdict is the result of inspecting one source file's documentation
// header.
type Verdict struct {
	OK     bool
	Line   int
	Reason string
}

// Parser inspects source files of one language for a leading documentation
// header.
type Parser interface {
	// Inspect parses the file and decides whether it carries the header
	// the scaffold requires for this language.
	Inspect(content []byte) (Verdict, error)

	// SupportedExtensions returns the file extensions this parser handles
	SupportedExtensions() []string

	// Language returns the human-readable name of the language
	Language() string

	// ShouldExcludeFile filters out generated, vendored and build output
	// paths that the scaffold does not own.
	ShouldExcludeFile(filePath string) bool
}

type ParserRegistry struct {
	parsers map[string]Parser
}

func NewParserRegistry() (*ParserRegistry, error) {
	registry := &ParserRegistry{
		parsers: make(map[string]Parser),
	}

	cParser, err := NewCParser()
	if err != nil {
		return nil, err
	}
	registry.RegisterParser(cParser)

	goParser, err := NewGoParser()
	if err != nil {
		return nil, err
	}
	registry.RegisterParser(goParser)

	javaParser, err := NewJavaParser()
	if err != nil {
		return nil, err
	}
	registry.RegisterParser(javaParser)

	pythonParser, err := NewPythonParser()
	if err != nil {
		return nil, err
	}
	registry.RegisterParser(pythonParser)

	tsParser, err := NewTypeScriptParser()
	if err != nil {
		return nil, err
	}
	registry.RegisterParser(tsParser)

	return registry, nil
}

func (pr *ParserRegistry) RegisterParser(parser Parser) {
	for _, ext := range parser.SupportedExtensions() {
		pr.parsers[ext] = parser
	}
}

func (pr *ParserRegistry) GetParser(filePath string) Parser {
	ext := strings.ToLower(filepath.Ext(filePath))
	return pr.parsers[ext]
}

func (pr *ParserRegistry) SupportedLanguages() []string {
	seen := make(map[string]bool)
	var result []string

	for _, parser := range pr.parsers {
		if !seen[parser.Language()] {
			seen[parser.Language()] = true
			result = append(result, parser.Language())
		}
	}

	return result
}

// leadingComments collects the comment nodes that open the file, stopping at
// the first node of another kind. The second return is that first
// non-comment node, nil when the file holds nothing else.
func leadingComments(root *sitter.Node, commentKinds map[string]bool) ([]*sitter.Node, *sitter.Node) {
	var comments []*sitter.Node

	for i := uint(0); i < root.ChildCount(); i++ {
		child := root.Child(i)
		if child == nil {
			continue
		}
		if commentKinds[child.Kind()] {
			comments = append(comments, child)
			continue
		}
		return comments, child
	}

	return comments, nil
}

func nodeLine(node *sitter.Node) int {
	return int(node.StartPosition().Row) + 1
}
