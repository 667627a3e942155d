package editorconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jekwwer/repolint/internal/checks"
)

const (
	CheckName = "editorconfig"
	FileName  = ".editorconfig"
)

// valueValidator returns an empty string when the value is acceptable for
// its key, otherwise a human-readable reason.
type valueValidator func(value string) string

func enumOf(allowed ...string) valueValidator {
	return func(value string) string {
		lower := strings.ToLower(value)
		for _, a := range allowed {
			if lower == a {
				return ""
			}
		}
		return fmt.Sprintf("must be one of %s", strings.Join(allowed, ", "))
	}
}

func positiveIntOr(extras ...string) valueValidator {
	return func(value string) string {
		lower := strings.ToLower(value)
		for _, e := range extras {
			if lower == e {
				return ""
			}
		}
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			if len(extras) > 0 {
				return fmt.Sprintf("must be a positive integer or one of %s", strings.Join(extras, ", "))
			}
			return "must be a positive integer"
		}
		return ""
	}
}

// recognizedKeys covers the EditorConfig core keys the scaffold uses.
// "unset" is universally accepted, so every validator allows it.
var recognizedKeys = map[string]valueValidator{
	"root":                     enumOf("true", "false"),
	"indent_style":             enumOf("tab", "space", "unset"),
	"indent_size":              positiveIntOr("tab", "unset"),
	"tab_width":                positiveIntOr("unset"),
	"end_of_line":              enumOf("lf", "cr", "crlf", "unset"),
	"charset":                  enumOf("latin1", "utf-8", "utf-8-bom", "utf-16be", "utf-16le", "unset"),
	"trim_trailing_whitespace": enumOf("true", "false", "unset"),
	"insert_final_newline":     enumOf("true", "false", "unset"),
	"max_line_length":          positiveIntOr("off", "unset"),
}

// Check validates the scaffold's .editorconfig file.
type Check struct{}

func (c *Check) Name() string {
	return CheckName
}

func (c *Check) Description() string {
	return "Validate .editorconfig structure, keys and values"
}

func (c *Check) Run(target checks.Target) ([]checks.Finding, error) {
	if !target.InScope(FileName) {
		return nil, nil
	}

	path := filepath.Join(target.Root, FileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return []checks.Finding{{
			Severity: checks.SeverityError,
			CheckID:  CheckName,
			File:     FileName,
			Message:  "missing .editorconfig at repository root",
		}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	file, parseErrs := Parse(string(data))

	var findings []checks.Finding
	for _, pe := range parseErrs {
		findings = append(findings, checks.Finding{
			Severity: checks.SeverityError,
			CheckID:  CheckName,
			File:     FileName,
			Line:     pe.Line,
			Message:  pe.Message,
		})
	}

	findings = append(findings, c.checkPreamble(file)...)
	for i := range file.Sections {
		findings = append(findings, c.checkSection(&file.Sections[i])...)
	}

	return findings, nil
}

func (c *Check) checkPreamble(file *File) []checks.Finding {
	var findings []checks.Finding

	if !file.Root() {
		line := 1
		if len(file.Sections) > 0 {
			line = file.Sections[0].Line
		}
		findings = append(findings, checks.Finding{
			Severity: checks.SeverityError,
			CheckID:  CheckName,
			File:     FileName,
			Line:     line,
			Message:  "root = true must appear before the first section",
		})
	}

	for _, pair := range file.Preamble {
		if pair.Key != "root" {
			findings = append(findings, checks.Finding{
				Severity: checks.SeverityWarning,
				CheckID:  CheckName,
				File:     FileName,
				Line:     pair.Line,
				Message:  fmt.Sprintf("key %q outside any section has no effect", pair.Key),
			})
		}
	}

	return findings
}

func (c *Check) checkSection(section *Section) []checks.Finding {
	var findings []checks.Finding

	if strings.TrimSpace(section.Pattern) == "" {
		findings = append(findings, checks.Finding{
			Severity: checks.SeverityError,
			CheckID:  CheckName,
			File:     FileName,
			Line:     section.Line,
			Message:  "empty section pattern",
		})
	}

	seen := make(map[string]int)
	for _, pair := range section.Pairs {
		if prev, dup := seen[pair.Key]; dup {
			findings = append(findings, checks.Finding{
				Severity: checks.SeverityWarning,
				CheckID:  CheckName,
				File:     FileName,
				Line:     pair.Line,
				Message:  fmt.Sprintf("duplicate key %q in section [%s] (first set on line %d)", pair.Key, section.Pattern, prev),
			})
		}
		seen[pair.Key] = pair.Line

		if pair.Key == "root" {
			findings = append(findings, checks.Finding{
				Severity: checks.SeverityError,
				CheckID:  CheckName,
				File:     FileName,
				Line:     pair.Line,
				Message:  "root is only valid in the preamble",
			})
			continue
		}

		validate, known := recognizedKeys[pair.Key]
		if !known {
			findings = append(findings, checks.Finding{
				Severity: checks.SeverityWarning,
				CheckID:  CheckName,
				File:     FileName,
				Line:     pair.Line,
				Message:  fmt.Sprintf("unrecognized key %q", pair.Key),
			})
			continue
		}
		if reason := validate(pair.Value); reason != "" {
			findings = append(findings, checks.Finding{
				Severity: checks.SeverityError,
				CheckID:  CheckName,
				File:     FileName,
				Line:     pair.Line,
				Message:  fmt.Sprintf("invalid value %q for %s: %s", pair.Value, pair.Key, reason),
			})
		}
	}

	return findings
}
