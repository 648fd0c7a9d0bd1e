package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/opensdd/osdd-issues/core/publisher"
	"github.com/opensdd/osdd-issues/core/tasks"
	"github.com/opensdd/osdd-issues/core/utils"
)

// DefaultMappingFile is where created issue numbers are recorded.
const DefaultMappingFile = "issue-mapping.txt"

type Config struct {
	// Project is shown in the console header.
	Project string
	// Output is the mapping file path, relative to the working directory unless absolute.
	Output string
	Delay  time.Duration
	GH     string
	Git    string
	// DryRun lists the planned issues after preflight without creating any.
	DryRun bool

	Tasks  []tasks.Task
	Runner utils.CommandRunner
	Stdout io.Writer
	// Sleep replaces the pause between tasks; used by tests.
	Sleep func(ctx context.Context, d time.Duration)
}

// DefaultConfig publishes the built-in plan with the real gh and git CLIs.
func DefaultConfig() Config {
	return Config{
		Project: "Resonance",
		Output:  DefaultMappingFile,
		Delay:   publisher.DefaultDelay,
		GH:      "gh",
		Git:     "git",
		Tasks:   tasks.Plan,
		Runner:  utils.ExecRunner{},
		Stdout:  os.Stdout,
	}
}

// Execute runs preflight checks, publishes every task and writes the mapping
// file. Only preflight failures and a failure to write the mapping file are
// returned; individual issue failures are reported on the console.
func Execute(ctx context.Context, cfg Config) error {
	if cfg.Runner == nil {
		return fmt.Errorf("command runner cannot be nil")
	}
	if cfg.Stdout == nil {
		cfg.Stdout = io.Discard
	}
	if cfg.Output == "" {
		cfg.Output = DefaultMappingFile
	}

	console := publisher.NewConsole(cfg.Stdout)
	pub := &publisher.Publisher{
		Runner:  cfg.Runner,
		Console: console,
		GH:      cfg.GH,
		Git:     cfg.Git,
		Delay:   cfg.Delay,
		Sleep:   cfg.Sleep,
	}

	console.Header(cfg.Project)
	if err := pub.Preflight(ctx); err != nil {
		return err
	}

	if cfg.DryRun {
		pub.DryRun(cfg.Tasks)
		console.DryRunSummary(len(cfg.Tasks))
		return nil
	}

	mapping := pub.Run(ctx, cfg.Tasks)

	out, err := filepath.Abs(cfg.Output)
	if err != nil {
		return fmt.Errorf("failed to resolve mapping file path %s: %w", cfg.Output, err)
	}
	slog.Debug("Saving issue mapping", "file", out, "entries", mapping.Len())
	if err := PersistMapping(ctx, filepath.Dir(out), filepath.Base(out), mapping); err != nil {
		return fmt.Errorf("failed to save issue mapping: %w", err)
	}

	first := ""
	if len(cfg.Tasks) > 0 {
		first = cfg.Tasks[0].ID
	}
	console.Summary(mapping.Len(), cfg.Output, first)
	return nil
}
