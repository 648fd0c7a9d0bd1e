package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIssueNumber(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    int
		wantErr string
	}{
		{name: "issue url", output: "https://github.com/owner/repo/issues/42\n", want: 42},
		{name: "surrounding whitespace", output: "  https://github.com/o/r/issues/7  \n", want: 7},
		{name: "bare number", output: "13", want: 13},
		{name: "empty", output: "  \n", wantErr: "empty output"},
		{name: "trailing slash", output: "https://github.com/o/r/issues/", wantErr: "malformed issue url"},
		{name: "not a number", output: "https://github.com/o/r/pull/abc", wantErr: "malformed issue url"},
		{name: "zero", output: "https://github.com/o/r/issues/0", wantErr: "must be positive"},
		{name: "negative", output: "https://github.com/o/r/issues/-5", wantErr: "must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseIssueNumber(tt.output)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckGhInstalled(t *testing.T) {
	t.Run("installed", func(t *testing.T) {
		t.Parallel()
		var gotArgs []string
		r := runnerFunc(func(_ context.Context, name string, args ...string) (CommandResult, error) {
			gotArgs = append([]string{name}, args...)
			return CommandResult{Stdout: "gh version 2.60.0 (2024-10-01)\nhttps://github.com/cli/cli/releases\n"}, nil
		})
		require.NoError(t, CheckGhInstalled(context.Background(), r, ""))
		assert.Equal(t, []string{"gh", "--version"}, gotArgs)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		r := runnerFunc(func(context.Context, string, ...string) (CommandResult, error) {
			return CommandResult{ExitCode: -1}, errors.New("exec: \"gh\": executable file not found in $PATH")
		})
		err := CheckGhInstalled(context.Background(), r, "gh")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrGhNotInstalled))
		assert.Contains(t, err.Error(), "executable file not found")
	})
}

func TestCreateGithubIssue(t *testing.T) {
	req := IssueRequest{Title: "[TASK-001] Init", Body: "Do X.", Labels: "a,b"}

	t.Run("created", func(t *testing.T) {
		t.Parallel()
		var gotArgs []string
		r := runnerFunc(func(_ context.Context, name string, args ...string) (CommandResult, error) {
			gotArgs = append([]string{name}, args...)
			return CommandResult{Stdout: "https://github.com/owner/repo/issues/42\n"}, nil
		})
		res := CreateGithubIssue(context.Background(), r, "", req)
		require.True(t, res.Created())
		assert.Equal(t, 42, res.Number)
		assert.Equal(t, []string{
			"gh", "issue", "create",
			"--title", "[TASK-001] Init",
			"--body", "Do X.",
			"--label", "a,b",
		}, gotArgs)
	})

	t.Run("non-zero exit reports stderr", func(t *testing.T) {
		t.Parallel()
		res := CreateGithubIssue(context.Background(), exitWith(1, "could not add label: 'ready' not found\n"), "gh", req)
		assert.False(t, res.Created())
		assert.Equal(t, FailureExit, res.Kind)
		assert.Equal(t, "could not add label: 'ready' not found\n", res.Reason)
	})

	t.Run("could not run", func(t *testing.T) {
		t.Parallel()
		r := runnerFunc(func(context.Context, string, ...string) (CommandResult, error) {
			return CommandResult{ExitCode: -1}, errors.New("command execution failed: boom")
		})
		res := CreateGithubIssue(context.Background(), r, "gh", req)
		assert.False(t, res.Created())
		assert.Equal(t, FailureError, res.Kind)
		assert.Contains(t, res.Reason, "boom")
	})

	t.Run("malformed output", func(t *testing.T) {
		t.Parallel()
		r := runnerFunc(func(context.Context, string, ...string) (CommandResult, error) {
			return CommandResult{Stdout: "Creating issue in owner/repo\n"}, nil
		})
		res := CreateGithubIssue(context.Background(), r, "gh", req)
		assert.False(t, res.Created())
		assert.Equal(t, FailureError, res.Kind)
		assert.Contains(t, res.Reason, "malformed issue url")
	})
}
