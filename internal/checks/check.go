package checks

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Target describes the repository slice a check runs against. Files is nil
// for a full-tree run; otherwise only the listed paths (relative to Root)
// are in scope.
type Target struct {
	Root  string
	Files []string
}

// InScope reports whether a path relative to Root should be checked.
func (t Target) InScope(rel string) bool {
	if t.Files == nil {
		return true
	}
	rel = filepath.ToSlash(rel)
	for _, f := range t.Files {
		if filepath.ToSlash(f) == rel {
			return true
		}
	}
	return false
}

// Check inspects scaffold files under a target and reports findings.
type Check interface {
	Name() string
	Description() string
	Run(target Target) ([]Finding, error)
}

type Registry struct {
	checks map[string]Check
}

func NewRegistry() *Registry {
	return &Registry{
		checks: make(map[string]Check),
	}
}

func (r *Registry) Register(check Check) {
	r.checks[check.Name()] = check
}

func (r *Registry) Get(name string) Check {
	check, exists := r.checks[name]
	if !exists {
		panic(fmt.Sprintf("BUG: Requested check '%s' not found in Registry", name))
	}
	return check
}

func (r *Registry) Has(name string) bool {
	_, exists := r.checks[name]
	return exists
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.checks))
	for name := range r.checks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select resolves a comma-free list of check names against the registry,
// defaulting to every registered check when names is empty.
func (r *Registry) Select(names []string) ([]Check, error) {
	if len(names) == 0 {
		names = r.Names()
	}

	selected := make([]Check, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if !r.Has(name) {
			return nil, fmt.Errorf("unknown check %q (available: %s)", name, strings.Join(r.Names(), ", "))
		}
		selected = append(selected, r.Get(name))
	}
	return selected, nil
}
