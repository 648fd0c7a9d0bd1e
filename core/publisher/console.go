package publisher

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/opensdd/osdd-issues/core/tasks"
	"github.com/opensdd/osdd-issues/core/utils"
)

const separatorWidth = 50

// Console prints human-facing progress notices. It is not a log and its
// output is not meant to be parsed.
type Console struct {
	w       io.Writer
	success *color.Color
	failure *color.Color
	heading *color.Color
}

// NewConsole returns a Console writing to w. Colors are only used when w is a
// terminal.
func NewConsole(w io.Writer) *Console {
	c := &Console{
		w:       w,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
		heading: color.New(color.Bold),
	}
	if color.NoColor || !isTerminal(w) {
		c.success.DisableColor()
		c.failure.DisableColor()
		c.heading.DisableColor()
	}
	return c
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (c *Console) Header(project string) {
	_, _ = c.heading.Fprintf(c.w, "Creating GitHub issues for %s...\n", project)
	c.Separator()
}

func (c *Console) Separator() {
	_, _ = fmt.Fprintln(c.w, strings.Repeat("=", separatorWidth))
}

func (c *Console) Created(taskID string) {
	_, _ = c.success.Fprintf(c.w, "✅ Created issue for %s\n", taskID)
}

// Failed reports a failed creation attempt with the raw error text.
func (c *Console) Failed(taskID string, res utils.IssueResult) {
	reason := strings.TrimRight(res.Reason, "\r\n")
	if res.Kind == utils.FailureExit {
		_, _ = c.failure.Fprintf(c.w, "❌ Failed to create issue for %s: %s\n", taskID, reason)
		return
	}
	_, _ = c.failure.Fprintf(c.w, "❌ Error creating issue for %s: %s\n", taskID, reason)
}

// MissingTool reports a failed availability probe.
func (c *Console) MissingTool(name, hint string) {
	_, _ = c.failure.Fprintf(c.w, "❌ %s is not installed!\n", name)
	if hint != "" {
		_, _ = fmt.Fprintln(c.w, hint)
	}
}

func (c *Console) NotInRepo() {
	_, _ = c.failure.Fprintln(c.w, "❌ Not in a git repository!")
}

// Planned describes a task that would be published in dry-run mode.
func (c *Console) Planned(task tasks.Task) {
	_, _ = fmt.Fprintf(c.w, "• %s (labels: %s)\n", task.IssueTitle(), task.LabelString())
	if len(task.Dependencies) > 0 {
		_, _ = fmt.Fprintf(c.w, "  depends on: %s\n", strings.Join(task.Dependencies, ", "))
	}
}

// Summary prints the closing block of a run.
func (c *Console) Summary(created int, mappingFile, firstTaskID string) {
	_, _ = fmt.Fprintln(c.w)
	c.Separator()
	_, _ = c.heading.Fprintf(c.w, "Created %d issues successfully!\n", created)
	_, _ = fmt.Fprintf(c.w, "\nIssue mapping saved to %s\n", mappingFile)
	c.NextSteps(firstTaskID)
}

// DryRunSummary prints the closing block of a dry run.
func (c *Console) DryRunSummary(planned int) {
	_, _ = fmt.Fprintln(c.w)
	c.Separator()
	_, _ = c.heading.Fprintf(c.w, "Dry run: %d issues would be created.\n", planned)
}

func (c *Console) NextSteps(firstTaskID string) {
	_, _ = fmt.Fprintln(c.w, "\nNext steps:")
	_, _ = fmt.Fprintln(c.w, "1. Review created issues on GitHub")
	_, _ = fmt.Fprintln(c.w, "2. Set up project board")
	if firstTaskID != "" {
		_, _ = fmt.Fprintf(c.w, "3. Start with %s!\n", firstTaskID)
	}
}
