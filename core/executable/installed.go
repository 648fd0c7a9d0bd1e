package executable

import (
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
)

// Resolve returns the executable to invoke for tool. An override that contains
// a path separator is used as-is; otherwise it is looked up on PATH. When the
// lookup fails the bare name is returned so the caller's availability probe
// reports the problem.
func Resolve(tool Tool, override string) string {
	name := override
	if name == "" {
		name = string(tool)
	}
	if filepath.Base(name) != name {
		return name
	}
	p, err := LookupTool(name)
	if err != nil {
		slog.Debug("Tool not found on PATH", "tool", name, "error", err)
		return name
	}
	return p
}

// LookupTool finds the named executable on PATH.
func LookupTool(name string) (string, error) {
	p, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%s not found on PATH: %w", name, err)
	}
	return p, nil
}
