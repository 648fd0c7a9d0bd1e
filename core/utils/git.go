package utils

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// ErrNotGitRepo is returned when the working directory is not inside a git repository.
var ErrNotGitRepo = errors.New("not in a git repository")

// CheckGitRepo verifies that the working directory is inside a git repository
// using `git rev-parse --git-dir`. Only the exit status is considered.
func CheckGitRepo(ctx context.Context, runner CommandRunner, git string) error {
	if git == "" {
		git = "git"
	}
	if _, err := runner.Run(ctx, git, "rev-parse", "--git-dir"); err != nil {
		slog.Debug("Git repository probe failed", "error", err)
		return fmt.Errorf("%w: %w", ErrNotGitRepo, err)
	}
	return nil
}
