// Package labels defines the canonical issue-label set a scaffolded
// repository is expected to carry, and helpers to validate label records.
package labels

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Label is a repository issue label. Color is a 6-digit hex code without
// the leading "#", matching the GitHub REST representation.
type Label struct {
	Name        string `json:"name" yaml:"name" validate:"required"`
	Color       string `json:"color" yaml:"color" validate:"required,len=6,hexadecimal"`
	Description string `json:"description" yaml:"description" validate:"max=100"`
}

func (l Label) String() string {
	return fmt.Sprintf("%s (#%s): %s", l.Name, l.Color, l.Description)
}

func (l Label) Pretty() string {
	return l.String()
}

func (l Label) TableHeaders() []string {
	return []string{"Name", "Color", "Description"}
}

func (l Label) TableRow() []string {
	return []string{l.Name, "#" + l.Color, l.Description}
}

// SameColor compares colors case-insensitively, tolerating a leading "#".
func (l Label) SameColor(color string) bool {
	return strings.EqualFold(l.Color, strings.TrimPrefix(color, "#"))
}

var validate = validator.New()

// Validate checks a label against the GitHub constraints encoded in the
// struct tags.
func Validate(l Label) error {
	if err := validate.Struct(l); err != nil {
		return fmt.Errorf("invalid label %q: %w", l.Name, err)
	}
	return nil
}

// Canonical is the label set the scaffold provisions on new repositories.
var Canonical = []Label{
	{Name: "bug", Color: "d73a4a", Description: "Indicates a problem that impairs or prevents the functions of the product"},
	{Name: "dependencies", Color: "0366d6", Description: "Concerns outdated, broken, or problematic dependencies"},
	{Name: "documentation", Color: "0075ca", Description: "Relates to improvements or additions to documentation"},
	{Name: "duplicate", Color: "cfd3d7", Description: "Signals an issue that has already been reported, often with a reference to the original"},
	{Name: "enhancement", Color: "a2eeef", Description: "Suggests a new feature or improvement to existing functionality"},
	{Name: "environment", Color: "f9d0c4", Description: "Involves issues related to the project's development, testing, or production environment"},
	{Name: "good first issue", Color: "7057ff", Description: "Suitable for first-time contributors, these issues are a great way to get involved"},
	{Name: "help wanted", Color: "008672", Description: "Requests assistance from the community or team members for an issue or initiative"},
	{Name: "invalid", Color: "e4e669", Description: "Marks an issue that is no longer relevant or that has been filed incorrectly"},
	{Name: "performance", Color: "fbca04", Description: "Highlights areas of the codebase that could be optimized for speed and efficiency"},
	{Name: "question", Color: "d876e3", Description: "Seeks further information or clarification on a topic or issue"},
	{Name: "refactor", Color: "1d76db", Description: "Suggests improvements for code organization or architecture without altering behavior"},
	{Name: "security", Color: "b60205", Description: "Concerns or reports related to security vulnerabilities"},
	{Name: "test-case", Color: "5319e7", Description: "Indicates missing tests or proposes new ones for better coverage"},
	{Name: "user-story", Color: "c2e0c6", Description: "Describes a software feature from an end-user perspective, focusing on their needs and experiences"},
	{Name: "violation", Color: "e11d21", Description: "Pertains to vulnerabilities that could impact the security of the project"},
	{Name: "wontfix", Color: "000000", Description: "Acknowledges an issue that the project has decided not to address at the present time"},
}

// CanonicalNames returns the canonical label names as a lookup set.
func CanonicalNames() map[string]bool {
	names := make(map[string]bool, len(Canonical))
	for _, l := range Canonical {
		names[l.Name] = true
	}
	return names
}

// Find returns the canonical label with the given name, if any.
func Find(name string) (Label, bool) {
	for _, l := range Canonical {
		if l.Name == name {
			return l, true
		}
	}
	return Label{}, false
}
