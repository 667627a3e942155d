package checks

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
)

type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
)

// Finding is a single problem reported by a check against a scaffold file.
type Finding struct {
	Severity Severity `json:"severity" yaml:"severity"`
	CheckID  string   `json:"check" yaml:"check"`
	File     string   `json:"file" yaml:"file"`
	Line     int      `json:"line,omitempty" yaml:"line,omitempty"`
	Message  string   `json:"message" yaml:"message"`
}

func (f Finding) String() string {
	if f.Line > 0 {
		return fmt.Sprintf("%s:%d: %s: %s [%s]", f.File, f.Line, f.Severity, f.Message, f.CheckID)
	}
	return fmt.Sprintf("%s: %s: %s [%s]", f.File, f.Severity, f.Message, f.CheckID)
}

func (f Finding) Pretty() string {
	var c *color.Color
	switch f.Severity {
	case SeverityError:
		c = color.New(color.FgRed, color.Bold)
	case SeverityWarning:
		c = color.New(color.FgYellow)
	default:
		c = color.New(color.FgCyan)
	}

	location := f.File
	if f.Line > 0 {
		location = fmt.Sprintf("%s:%d", f.File, f.Line)
	}
	return fmt.Sprintf("%s %s %s (%s)", c.Sprint(f.Severity), location, f.Message, f.CheckID)
}

func (f Finding) TableHeaders() []string {
	return []string{"Severity", "Check", "File", "Line", "Message"}
}

func (f Finding) TableRow() []string {
	line := ""
	if f.Line > 0 {
		line = strconv.Itoa(f.Line)
	}
	return []string{string(f.Severity), f.CheckID, f.File, line, f.Message}
}

// Summary counts findings by severity.
type Summary struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Notices  int `json:"notices"`
}

func Summarize(findings []Finding) Summary {
	var s Summary
	for _, f := range findings {
		switch f.Severity {
		case SeverityError:
			s.Errors++
		case SeverityWarning:
			s.Warnings++
		case SeverityNotice:
			s.Notices++
		}
	}
	return s
}

// Failed reports whether the run should exit non-zero. Warnings only count
// when strict mode is on.
func (s Summary) Failed(strict bool) bool {
	if s.Errors > 0 {
		return true
	}
	return strict && s.Warnings > 0
}
