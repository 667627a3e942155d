package template

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FrontMatter is the YAML block a hosting platform reads from the top of an
// issue template.
type FrontMatter struct {
	Name      string   `yaml:"name"`
	About     string   `yaml:"about"`
	Title     string   `yaml:"title"`
	Labels    []string `yaml:"labels"`
	Assignees []string `yaml:"assignees"`
}

// Template is a parsed issue template: the front matter plus the Markdown
// body, with line offsets preserved for reporting.
type Template struct {
	FrontMatter FrontMatter
	// UnknownKeys lists front-matter keys outside the platform schema.
	UnknownKeys []string
	// Body holds the Markdown after the closing front-matter delimiter.
	Body string
	// BodyStart is the 1-based line number of the first body line.
	BodyStart int
	FilePath  string
}

var knownFrontMatterKeys = map[string]bool{
	"name":      true,
	"about":     true,
	"title":     true,
	"labels":    true,
	"assignees": true,
}

// Parse splits an issue template into front matter and body. The front
// matter must open with "---" on the first line and close with a matching
// "---" line.
func Parse(content string) (*Template, error) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return nil, fmt.Errorf("missing front matter: first line must be \"---\"")
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			closing = i
			break
		}
	}
	if closing == -1 {
		return nil, fmt.Errorf("unterminated front matter: no closing \"---\" found")
	}

	raw := strings.Join(lines[1:closing], "\n")

	var fm FrontMatter
	if err := yaml.Unmarshal([]byte(raw), &fm); err != nil {
		return nil, fmt.Errorf("invalid front matter YAML: %w", err)
	}

	var generic map[string]any
	if err := yaml.Unmarshal([]byte(raw), &generic); err != nil {
		return nil, fmt.Errorf("invalid front matter YAML: %w", err)
	}

	var unknown []string
	for key := range generic {
		if !knownFrontMatterKeys[key] {
			unknown = append(unknown, key)
		}
	}

	return &Template{
		FrontMatter: fm,
		UnknownKeys: unknown,
		Body:        strings.Join(lines[closing+1:], "\n"),
		BodyStart:   closing + 2,
	}, nil
}

// SectionHeaders returns the Markdown headers found in the body with their
// 1-based line numbers relative to the whole file.
func (t *Template) SectionHeaders() map[int]string {
	headers := make(map[int]string)
	for i, line := range strings.Split(t.Body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			headers[t.BodyStart+i] = strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
		}
	}
	return headers
}

// ChecklistItem is one checkbox entry in the template's checklist section.
type ChecklistItem struct {
	Line    int
	Checked bool
	Text    string
	// Malformed is set when the item looks like a checkbox but does not
	// follow the "- [ ] text" / "- [x] text" shape.
	Malformed bool
	Reason    string
}

// ChecklistItems scans the body for checkbox list entries. A dash list item
// whose payload opens with "[" is treated as an intended checkbox so typos
// like "- []" surface as malformed instead of being skipped.
func (t *Template) ChecklistItems() []ChecklistItem {
	var items []ChecklistItem

	for i, line := range strings.Split(t.Body, "\n") {
		trimmed := strings.TrimSpace(line)
		lineNo := t.BodyStart + i

		var payload string
		switch {
		case strings.HasPrefix(trimmed, "- "):
			payload = trimmed[2:]
		case strings.HasPrefix(trimmed, "-["):
			items = append(items, ChecklistItem{
				Line:      lineNo,
				Malformed: true,
				Reason:    "missing space after dash",
			})
			continue
		default:
			continue
		}

		if !strings.HasPrefix(payload, "[") {
			continue
		}

		item, ok := parseCheckbox(payload)
		item.Line = lineNo
		if !ok {
			item.Malformed = true
		}
		items = append(items, item)
	}

	return items
}

func parseCheckbox(payload string) (ChecklistItem, bool) {
	if len(payload) < 3 || payload[2] != ']' {
		return ChecklistItem{Reason: "checkbox must be exactly \"[ ]\" or \"[x]\""}, false
	}

	var checked bool
	switch payload[1] {
	case ' ':
		checked = false
	case 'x', 'X':
		checked = true
	default:
		return ChecklistItem{Reason: fmt.Sprintf("invalid checkbox filler %q", string(payload[1]))}, false
	}

	rest := payload[3:]
	if strings.TrimSpace(rest) == "" {
		return ChecklistItem{Checked: checked, Reason: "checkbox has no text"}, false
	}
	if !strings.HasPrefix(rest, " ") {
		return ChecklistItem{Checked: checked, Reason: "missing space after checkbox"}, false
	}

	return ChecklistItem{Checked: checked, Text: strings.TrimSpace(rest)}, true
}
