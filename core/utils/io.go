package utils

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
)

// CommandResult is the captured outcome of an external command.
type CommandResult struct {
	Stdout string
	Stderr string
	// ExitCode is -1 when the process could not be started or was killed.
	ExitCode int
}

// CommandRunner runs an external command to completion.
// Run returns a non-nil error when the command could not be run or exited with
// a non-zero status; the result is populated in both cases as far as possible.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (CommandResult, error)
}

// ExecRunner runs commands with os/exec in the current working directory.
type ExecRunner struct {
	// Dir overrides the working directory when set.
	Dir string
}

// Run executes name with args, waiting for it to exit. Stdout and stderr are
// captured separately.
func (r ExecRunner) Run(ctx context.Context, name string, args ...string) (CommandResult, error) {
	if name == "" {
		return CommandResult{ExitCode: -1}, fmt.Errorf("command cannot be empty")
	}

	slog.Debug("Running command", "name", name, "args", args, "dir", r.Dir)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := CommandResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: -1,
	}
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return res, fmt.Errorf("command %s exited with status %d: %w", name, res.ExitCode, err)
		}
		return res, fmt.Errorf("command execution failed: %w", err)
	}
	return res, nil
}
