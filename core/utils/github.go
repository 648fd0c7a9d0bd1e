package utils

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// ErrGhNotInstalled is returned when the GitHub CLI cannot be invoked.
var ErrGhNotInstalled = errors.New("github cli (gh) is not installed")

// CheckGhInstalled probes the GitHub CLI with `gh --version`. Any zero exit
// status counts as installed.
func CheckGhInstalled(ctx context.Context, runner CommandRunner, gh string) error {
	if gh == "" {
		gh = "gh"
	}
	res, err := runner.Run(ctx, gh, "--version")
	if err != nil {
		slog.Debug("GitHub CLI probe failed", "error", err)
		return fmt.Errorf("%w: %w", ErrGhNotInstalled, err)
	}
	slog.Debug("GitHub CLI found", "version", firstLine(res.Stdout))
	return nil
}

// CreateGithubIssue creates an issue with `gh issue create` and returns the new
// issue number. Failures are reported in the result, never as a panic or error.
func CreateGithubIssue(ctx context.Context, runner CommandRunner, gh string, req IssueRequest) IssueResult {
	if gh == "" {
		gh = "gh"
	}
	res, err := runner.Run(ctx, gh,
		"issue", "create",
		"--title", req.Title,
		"--body", req.Body,
		"--label", req.Labels,
	)
	if err != nil {
		if res.ExitCode > 0 {
			return failed(FailureExit, res.Stderr)
		}
		return failed(FailureError, err.Error())
	}

	num, err := ParseIssueNumber(res.Stdout)
	if err != nil {
		return failed(FailureError, err.Error())
	}
	slog.Debug("GitHub issue created", "title", req.Title, "number", num)
	return created(num)
}

// ParseIssueNumber extracts the issue number from the URL printed by
// `gh issue create`, e.g. https://github.com/owner/repo/issues/42 -> 42.
// Only the last path segment of the trimmed output is considered.
func ParseIssueNumber(output string) (int, error) {
	out := strings.TrimSpace(output)
	if out == "" {
		return 0, fmt.Errorf("malformed issue url: empty output")
	}
	segment := out[strings.LastIndex(out, "/")+1:]
	num, err := strconv.Atoi(segment)
	if err != nil {
		return 0, fmt.Errorf("malformed issue url %q: %w", out, err)
	}
	if num <= 0 {
		return 0, fmt.Errorf("malformed issue url %q: issue number must be positive", out)
	}
	return num, nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return line
}
