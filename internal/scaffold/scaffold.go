// Package scaffold owns the canonical scaffold assets and writes them into
// repositories.
package scaffold

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

//go:embed assets
var assetsFS embed.FS

// Asset maps an embedded canonical file to its place in a repository.
type Asset struct {
	// Source is the path inside the embedded assets tree.
	Source string
	// Target is the path relative to the repository root.
	Target string
}

// Assets lists everything `repolint init` materializes.
var Assets = []Asset{
	{Source: "assets/editorconfig", Target: ".editorconfig"},
	{Source: "assets/ISSUE_TEMPLATE/performance_report.md", Target: ".github/ISSUE_TEMPLATE/performance_report.md"},
	{Source: "assets/ISSUE_TEMPLATE/security_report.md", Target: ".github/ISSUE_TEMPLATE/security_report.md"},
	{Source: "assets/ISSUE_TEMPLATE/environment_report.md", Target: ".github/ISSUE_TEMPLATE/environment_report.md"},
}

// Content returns the canonical bytes for an asset.
func Content(asset Asset) ([]byte, error) {
	data, err := assetsFS.ReadFile(asset.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded asset %s: %w", asset.Source, err)
	}
	return data, nil
}

// ErrExists reports a target that is already present without force.
type ErrExists struct {
	Path string
}

func (e ErrExists) Error() string {
	return fmt.Sprintf("%s already exists (use --force to overwrite)", e.Path)
}

// Materialize writes the canonical assets under root. Existing files are
// left alone unless force is set. Writes are atomic so an interrupted init
// never leaves a half-written scaffold file behind.
func Materialize(root string, force bool) ([]string, error) {
	var written []string

	for _, asset := range Assets {
		target := filepath.Join(root, filepath.FromSlash(asset.Target))

		if !force {
			if _, err := os.Stat(target); err == nil {
				return written, ErrExists{Path: asset.Target}
			} else if !os.IsNotExist(err) {
				return written, fmt.Errorf("failed to stat %s: %w", asset.Target, err)
			}
		}

		data, err := Content(asset)
		if err != nil {
			return written, err
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return written, fmt.Errorf("failed to create directory for %s: %w", asset.Target, err)
		}

		if err := renameio.WriteFile(target, data, 0o644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", asset.Target, err)
		}
		written = append(written, asset.Target)
	}

	return written, nil
}
