package utils

// IssueRequest holds the arguments passed to `gh issue create`.
type IssueRequest struct {
	Title string
	Body  string
	// Labels is the comma-separated label list, passed as a single --label value.
	Labels string
}

// FailureKind tells why an issue could not be created.
type FailureKind int

const (
	// FailureNone marks a created issue.
	FailureNone FailureKind = iota
	// FailureExit means the CLI ran and exited non-zero; the reason is its stderr.
	FailureExit
	// FailureError means the CLI could not be run or its output could not be parsed.
	FailureError
)

// IssueResult is the outcome of a single issue creation attempt: either a
// created issue number or a failure with the raw error text.
type IssueResult struct {
	Number int
	Kind   FailureKind
	Reason string
}

// Created reports whether the issue was created.
func (r IssueResult) Created() bool {
	return r.Kind == FailureNone
}

func created(number int) IssueResult {
	return IssueResult{Number: number}
}

func failed(kind FailureKind, reason string) IssueResult {
	return IssueResult{Kind: kind, Reason: reason}
}
