// Package gitdiff resolves which scaffold files are staged in git, so lint
// runs can be scoped to the change being committed.
package gitdiff

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/sourcegraph/go-diff/diff"
)

// StagedFiles returns the paths touched by staged changes in the repository
// at root, parsed out of the unified diff git produces.
func StagedFiles(root string) ([]string, error) {
	cmd := exec.Command("git", "diff", "--staged")
	cmd.Dir = root
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to get staged diff: %w", err)
	}

	return ParseChangedFiles(output)
}

// ParseChangedFiles extracts the post-change file names from a unified
// multi-file diff. Deleted files are skipped: there is nothing left to lint.
func ParseChangedFiles(unified []byte) ([]string, error) {
	if len(strings.TrimSpace(string(unified))) == 0 {
		return nil, nil
	}

	fileDiffs, err := diff.ParseMultiFileDiff(unified)
	if err != nil {
		return nil, fmt.Errorf("failed to parse diff: %w", err)
	}

	var files []string
	for _, fd := range fileDiffs {
		name := strings.TrimPrefix(fd.NewName, "b/")
		if name == "" || name == "/dev/null" {
			continue
		}
		files = append(files, name)
	}

	return files, nil
}

// ChangedLines maps each changed file to the line ranges its hunks cover on
// the post-change side.
type LineRange struct {
	Start int
	Count int
}

func ChangedLines(unified []byte) (map[string][]LineRange, error) {
	if len(strings.TrimSpace(string(unified))) == 0 {
		return map[string][]LineRange{}, nil
	}

	fileDiffs, err := diff.ParseMultiFileDiff(unified)
	if err != nil {
		return nil, fmt.Errorf("failed to parse diff: %w", err)
	}

	ranges := make(map[string][]LineRange)
	for _, fd := range fileDiffs {
		name := strings.TrimPrefix(fd.NewName, "b/")
		if name == "" || name == "/dev/null" {
			continue
		}
		for _, hunk := range fd.Hunks {
			ranges[name] = append(ranges[name], LineRange{
				Start: int(hunk.NewStartLine),
				Count: int(hunk.NewLines),
			})
		}
	}

	return ranges, nil
}
