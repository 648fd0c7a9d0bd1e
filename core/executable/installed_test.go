package executable

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupTool_Mock(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on windows")
	}
	binDir := t.TempDir()
	ghExe := filepath.Join(binDir, "gh")
	createMockExecutable(t, ghExe)
	t.Setenv("PATH", binDir)

	p, err := LookupTool("gh")
	require.NoError(t, err)
	assert.Equal(t, ghExe, p)

	_, err = LookupTool("git")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git not found on PATH")
}

func TestResolve(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on windows")
	}
	binDir := t.TempDir()
	ghExe := filepath.Join(binDir, "gh")
	createMockExecutable(t, ghExe)
	t.Setenv("PATH", binDir)

	assert.Equal(t, ghExe, Resolve(GitHubCLI, ""))
	assert.Equal(t, "git", Resolve(Git, ""), "missing tools resolve to their bare name")
	assert.Equal(t, "/opt/gh/bin/gh", Resolve(GitHubCLI, "/opt/gh/bin/gh"))
	assert.Equal(t, ghExe, Resolve(Git, "gh"))
}

func TestInstallHint(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Install it from: https://cli.github.com/", InstallHint(GitHubCLI))
	assert.Contains(t, InstallHint(Git), "git-scm.com")
	assert.Empty(t, InstallHint(Tool("other")))
	assert.Equal(t, "GitHub CLI (gh)", DisplayName(GitHubCLI))
}

// Helper function to create a mock executable file
func createMockExecutable(t *testing.T, path string) {
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	require.NoError(t, os.Chmod(path, 0755))
}
