package core

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/opensdd/osdd-api/clients/go/osdd"

	"github.com/opensdd/osdd-issues/core/publisher"
)

// MappingResult wraps the rendered mapping into a single-file MaterializedResult
// at path (relative to the persistence root).
func MappingResult(path string, mapping *publisher.Mapping) *osdd.MaterializedResult {
	return osdd.MaterializedResult_builder{
		Entries: []*osdd.MaterializedResult_Entry{
			osdd.MaterializedResult_Entry_builder{
				File: osdd.FullFileContent_builder{Path: path, Content: mapping.Render()}.Build(),
			}.Build(),
		},
	}.Build()
}

// PersistMapping writes the mapping file under root, overwriting any previous
// file. An empty mapping produces an empty file.
func PersistMapping(ctx context.Context, root, path string, mapping *publisher.Mapping) error {
	if mapping == nil {
		return fmt.Errorf("mapping cannot be nil")
	}
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("mapping file path cannot be empty")
	}
	return PersistMaterializedResult(ctx, root, MappingResult(path, mapping))
}

// PersistMaterializedResult writes all file entries of result under root.
// Parent directories are created with 0755, files are overwritten with 0644,
// and paths that escape root are rejected. Entries without a file are skipped.
func PersistMaterializedResult(_ context.Context, root string, result *osdd.MaterializedResult) error {
	log := slog.With("op", "PersistMaterializedResult")
	if strings.TrimSpace(root) == "" {
		return fmt.Errorf("root path cannot be empty")
	}
	if result == nil {
		return fmt.Errorf("materialized result cannot be nil")
	}

	root = filepath.Clean(root)

	for i, e := range result.GetEntries() {
		if e == nil || !e.HasFile() {
			continue
		}
		f := e.GetFile()
		p := strings.TrimSpace(f.GetPath())
		if p == "" {
			return fmt.Errorf("entry %d: file path cannot be empty", i)
		}

		full, err := resolveUnderRoot(root, p)
		if err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}

		dir := filepath.Dir(full)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("entry %d: failed to create directories for %s: %w", i, full, err)
		}

		log.Debug("Writing file", "path", p, "full", full)
		if err := os.WriteFile(full, []byte(f.GetContent()), 0o644); err != nil {
			return fmt.Errorf("entry %d: failed to write file %s: %w", i, full, err)
		}
	}
	return nil
}

// resolveUnderRoot joins p onto root, treating absolute paths as relative.
func resolveUnderRoot(root, p string) (string, error) {
	rel := filepath.Clean(p)
	if filepath.IsAbs(rel) {
		rel = strings.TrimPrefix(rel, string(os.PathSeparator))
	}
	full := filepath.Clean(filepath.Join(root, rel))
	if !isPathWithinRoot(root, full) {
		return "", fmt.Errorf("path escapes root: %s", p)
	}
	return full, nil
}

// isPathWithinRoot checks whether target is inside root directory.
func isPathWithinRoot(root, target string) bool {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(target))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(os.PathSeparator)))
}
