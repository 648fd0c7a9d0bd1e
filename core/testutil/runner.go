package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/opensdd/osdd-issues/core/utils"
)

// Call is one recorded invocation of FakeRunner.
type Call struct {
	Name string
	Args []string
}

// Subcommand returns the first two args joined by a space, e.g. "issue create".
func (c Call) Subcommand() string {
	n := min(2, len(c.Args))
	return strings.Join(c.Args[:n], " ")
}

// Flag returns the value following flag in Args, or "" when absent.
func (c Call) Flag(flag string) string {
	for i := 0; i+1 < len(c.Args); i++ {
		if c.Args[i] == flag {
			return c.Args[i+1]
		}
	}
	return ""
}

// Response is a scripted reply.
type Response struct {
	Stdout   string
	Stderr   string
	ExitCode int
	// Err is returned as-is when set, simulating a command that could not run.
	Err error
}

// FakeRunner is a utils.CommandRunner that records calls and replays scripted
// responses. Handle decides the response per call; when it is nil every call
// succeeds with empty output.
type FakeRunner struct {
	Handle func(call Call) Response

	mu    sync.Mutex
	calls []Call
}

func (f *FakeRunner) Run(_ context.Context, name string, args ...string) (utils.CommandResult, error) {
	call := Call{Name: name, Args: append([]string(nil), args...)}
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()

	var resp Response
	if f.Handle != nil {
		resp = f.Handle(call)
	}
	res := utils.CommandResult{Stdout: resp.Stdout, Stderr: resp.Stderr, ExitCode: resp.ExitCode}
	if resp.Err != nil {
		res.ExitCode = -1
		return res, resp.Err
	}
	if resp.ExitCode != 0 {
		return res, fmt.Errorf("command %s exited with status %d", name, resp.ExitCode)
	}
	return res, nil
}

// Calls returns the recorded calls in order.
func (f *FakeRunner) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// CallsTo returns the recorded calls whose subcommand matches, e.g. "issue create".
func (f *FakeRunner) CallsTo(subcommand string) []Call {
	var out []Call
	for _, c := range f.Calls() {
		if c.Subcommand() == subcommand {
			out = append(out, c)
		}
	}
	return out
}

// GitHubResponder returns a Handle that answers the preflight probes and
// numbers created issues sequentially from next, failing for titles listed in
// fail.
func GitHubResponder(next int, fail map[string]string) func(Call) Response {
	var mu sync.Mutex
	return func(c Call) Response {
		switch {
		case len(c.Args) == 1 && c.Args[0] == "--version":
			return Response{Stdout: "gh version 2.60.0\n"}
		case c.Subcommand() == "rev-parse --git-dir":
			return Response{Stdout: ".git\n"}
		case c.Subcommand() == "issue create":
			if stderr, ok := fail[c.Flag("--title")]; ok {
				return Response{Stderr: stderr, ExitCode: 1}
			}
			mu.Lock()
			defer mu.Unlock()
			n := next
			next++
			return Response{Stdout: fmt.Sprintf("https://github.com/owner/repo/issues/%d\n", n)}
		}
		return Response{}
	}
}
