// osdd-issues opens one GitHub issue per task of the built-in development plan
// using the gh CLI, and records the created issue numbers in a mapping file.
//
// It must run inside a git repository whose GitHub remote gh can resolve.
// Issues are created sequentially with a fixed pause in between; a failed
// issue is reported and skipped. Re-running creates a second set of issues.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/opensdd/osdd-issues/core"
	"github.com/opensdd/osdd-issues/core/executable"
	"github.com/opensdd/osdd-issues/core/utils"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg := core.DefaultConfig()
	cfg.Stdout = stdout
	var verbose bool

	flagSet := pflag.NewFlagSet("osdd-issues", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&cfg.Output, "output", "o", cfg.Output, "file to record created issue numbers in")
	flagSet.DurationVar(&cfg.Delay, "delay", cfg.Delay, "pause after each issue creation attempt")
	flagSet.StringVar(&cfg.GH, "gh", cfg.GH, "GitHub CLI executable")
	flagSet.StringVar(&cfg.Git, "git", cfg.Git, "git executable")
	flagSet.BoolVar(&cfg.DryRun, "dry-run", false, "list the issues that would be created without creating them")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flagSet.Usage = func() { printHelp(stderr, flagSet) }

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		_, _ = fmt.Fprintf(stderr, "error: unexpected argument: %s\n", rest[0])
		return 1
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	cfg.GH = executable.Resolve(executable.GitHubCLI, cfg.GH)
	cfg.Git = executable.Resolve(executable.Git, cfg.Git)

	if err := core.Execute(context.Background(), cfg); err != nil {
		if !errors.Is(err, utils.ErrGhNotInstalled) && !errors.Is(err, utils.ErrNotGitRepo) {
			_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		}
		slog.Debug("Run aborted", "error", err)
		return 1
	}
	return 0
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	_, _ = fmt.Fprintf(w, `osdd-issues creates one GitHub issue per development plan task.

Each issue is titled "[<task id>] <title>", carries the task labels and, when
the task has dependencies, a "Dependencies" section naming them. Created issue
numbers are written to the output file as "<task id>: #<number>" lines.

Usage:
  osdd-issues [flags]

Flags:
%s`, flagSet.FlagUsages())
}
