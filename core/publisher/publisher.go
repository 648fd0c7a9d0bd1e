// Package publisher creates one GitHub issue per plan task, sequentially, and
// collects the created issue numbers.
package publisher

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/opensdd/osdd-issues/core/executable"
	"github.com/opensdd/osdd-issues/core/tasks"
	"github.com/opensdd/osdd-issues/core/utils"
)

// DefaultDelay is the pause after every creation attempt.
const DefaultDelay = time.Second

type Publisher struct {
	Runner  utils.CommandRunner
	Console *Console
	// GH and Git are the executables to invoke; empty means "gh" and "git".
	GH  string
	Git string
	// Delay is the pause after each attempt, successful or not.
	Delay time.Duration
	// Sleep pauses for d; nil uses a timer that also returns when ctx is done.
	Sleep func(ctx context.Context, d time.Duration)
}

// Preflight checks that the GitHub CLI can be invoked and that the working
// directory is inside a git repository. It reports the failure on the console
// and returns an error wrapping utils.ErrGhNotInstalled or utils.ErrNotGitRepo.
func (p *Publisher) Preflight(ctx context.Context) error {
	if err := utils.CheckGhInstalled(ctx, p.Runner, p.GH); err != nil {
		p.Console.MissingTool(executable.DisplayName(executable.GitHubCLI), executable.InstallHint(executable.GitHubCLI))
		return fmt.Errorf("preflight failed: %w", err)
	}
	if err := utils.CheckGitRepo(ctx, p.Runner, p.Git); err != nil {
		p.Console.NotInRepo()
		return fmt.Errorf("preflight failed: %w", err)
	}
	return nil
}

// Publish creates the issue for a single task and reports the outcome on the
// console. It never fails the run.
func (p *Publisher) Publish(ctx context.Context, task tasks.Task) utils.IssueResult {
	req := utils.IssueRequest{
		Title:  task.IssueTitle(),
		Body:   task.IssueBody(),
		Labels: task.LabelString(),
	}
	res := utils.CreateGithubIssue(ctx, p.Runner, p.GH, req)
	if res.Created() {
		p.Console.Created(task.ID)
	} else {
		slog.Debug("Issue creation failed", "task", task.ID, "kind", res.Kind, "reason", res.Reason)
		p.Console.Failed(task.ID, res)
	}
	return res
}

// Run publishes tasks in order, pausing after every attempt, and returns the
// created issues. Failed tasks are absent from the result.
func (p *Publisher) Run(ctx context.Context, plan []tasks.Task) *Mapping {
	log := slog.With("op", "Run")
	mapping := NewMapping()
	for _, task := range plan {
		res := p.Publish(ctx, task)
		if res.Created() {
			mapping.Set(task.ID, res.Number)
		}
		log.Debug("Pausing before next task", "task", task.ID, "delay", p.Delay)
		p.sleep(ctx)
	}
	log.Debug("All tasks attempted", "tasks", len(plan), "created", mapping.Len())
	return mapping
}

// DryRun lists what Run would create without invoking the tracker.
func (p *Publisher) DryRun(plan []tasks.Task) {
	for _, task := range plan {
		p.Console.Planned(task)
	}
}

func (p *Publisher) sleep(ctx context.Context) {
	if p.Sleep != nil {
		p.Sleep(ctx, p.Delay)
		return
	}
	sleepContext(ctx, p.Delay)
}

func sleepContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
