package editorconfig

import (
	"bufio"
	"fmt"
	"strings"
)

// Pair is a single key = value line, with the 1-based line it came from.
type Pair struct {
	Key   string
	Value string
	Line  int
}

// Section is a [pattern] header and the pairs declared under it.
type Section struct {
	Pattern string
	Line    int
	Pairs   []Pair
}

// File is a parsed .editorconfig: the preamble pairs that appear before the
// first section header, then the sections in declaration order.
type File struct {
	Preamble []Pair
	Sections []Section
}

// ParseError marks a line the parser could not interpret. Parsing continues
// past it; the caller collects every error via Parse's second return.
type ParseError struct {
	Line    int
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Parse reads EditorConfig text. Keys are lowercased per the EditorConfig
// spec; values keep their case except for surrounding whitespace.
func Parse(content string) (*File, []ParseError) {
	file := &File{}
	var errs []ParseError
	var current *Section

	scanner := bufio.NewScanner(strings.NewReader(content))
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		if strings.HasPrefix(line, "[") {
			if !strings.HasSuffix(line, "]") {
				errs = append(errs, ParseError{Line: lineNo, Message: "unterminated section header"})
				continue
			}
			pattern := line[1 : len(line)-1]
			file.Sections = append(file.Sections, Section{Pattern: pattern, Line: lineNo})
			current = &file.Sections[len(file.Sections)-1]
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			errs = append(errs, ParseError{Line: lineNo, Message: fmt.Sprintf("malformed line: %q is neither a section header nor a key = value pair", line)})
			continue
		}

		pair := Pair{
			Key:   strings.ToLower(strings.TrimSpace(key)),
			Value: strings.TrimSpace(value),
			Line:  lineNo,
		}
		if pair.Key == "" {
			errs = append(errs, ParseError{Line: lineNo, Message: "empty key"})
			continue
		}

		if current != nil {
			current.Pairs = append(current.Pairs, pair)
		} else {
			file.Preamble = append(file.Preamble, pair)
		}
	}

	return file, errs
}

// Root reports whether the preamble declares root = true.
func (f *File) Root() bool {
	for _, pair := range f.Preamble {
		if pair.Key == "root" && strings.EqualFold(pair.Value, "true") {
			return true
		}
	}
	return false
}
