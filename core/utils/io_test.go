package utils

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runnerFunc adapts a function to CommandRunner.
type runnerFunc func(ctx context.Context, name string, args ...string) (CommandResult, error)

func (f runnerFunc) Run(ctx context.Context, name string, args ...string) (CommandResult, error) {
	return f(ctx, name, args...)
}

func exitWith(code int, stderr string) runnerFunc {
	return func(_ context.Context, name string, _ ...string) (CommandResult, error) {
		return CommandResult{Stderr: stderr, ExitCode: code}, fmt.Errorf("command %s exited with status %d", name, code)
	}
}

func TestExecRunner_EmptyCommand(t *testing.T) {
	t.Parallel()
	res, err := ExecRunner{}.Run(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command cannot be empty")
	assert.Equal(t, -1, res.ExitCode)
}

func TestExecRunner_MissingBinary(t *testing.T) {
	t.Parallel()
	res, err := ExecRunner{}.Run(context.Background(), "osdd-issues-no-such-binary-99999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command execution failed")
	assert.Equal(t, -1, res.ExitCode)
}

func TestRunnerFunc_RecordsArgs(t *testing.T) {
	t.Parallel()
	var got []string
	r := runnerFunc(func(_ context.Context, name string, args ...string) (CommandResult, error) {
		got = append([]string{name}, args...)
		return CommandResult{Stdout: "ok"}, nil
	})
	res, err := r.Run(context.Background(), "echo", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Stdout)
	assert.Equal(t, "echo a b", strings.Join(got, " "))
}
