package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckGitRepo(t *testing.T) {
	t.Run("inside repository", func(t *testing.T) {
		t.Parallel()
		var gotName string
		var gotArgs []string
		r := runnerFunc(func(_ context.Context, name string, args ...string) (CommandResult, error) {
			gotName, gotArgs = name, args
			return CommandResult{Stdout: ".git\n"}, nil
		})
		require.NoError(t, CheckGitRepo(context.Background(), r, ""))
		assert.Equal(t, "git", gotName)
		assert.Equal(t, []string{"rev-parse", "--git-dir"}, gotArgs)
	})

	t.Run("custom binary", func(t *testing.T) {
		t.Parallel()
		var gotName string
		r := runnerFunc(func(_ context.Context, name string, _ ...string) (CommandResult, error) {
			gotName = name
			return CommandResult{}, nil
		})
		require.NoError(t, CheckGitRepo(context.Background(), r, "/usr/local/bin/git"))
		assert.Equal(t, "/usr/local/bin/git", gotName)
	})

	t.Run("outside repository", func(t *testing.T) {
		t.Parallel()
		err := CheckGitRepo(context.Background(), exitWith(128, "fatal: not a git repository"), "git")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNotGitRepo))
	})
}
