// Package tasks holds the static development plan and the formatting rules
// that turn a plan entry into an issue title, body and label list.
package tasks

import (
	"fmt"
	"strings"
)

// dependenciesHeading precedes the dependency list appended to an issue body.
const dependenciesHeading = "\n\n## Dependencies\n- Depends on: "

// Task is a single unit of planned work. Tasks are defined at compile time and
// never mutated; dependency ids are not validated against the plan.
type Task struct {
	ID           string
	Title        string
	Description  string
	Labels       []string
	Dependencies []string
}

// IssueTitle returns the issue title in the form "[<id>] <title>".
func (t Task) IssueTitle() string {
	return fmt.Sprintf("[%s] %s", t.ID, t.Title)
}

// IssueBody returns the description verbatim, followed by a dependency section
// only when the task has dependencies.
func (t Task) IssueBody() string {
	if len(t.Dependencies) == 0 {
		return t.Description
	}
	return t.Description + dependenciesHeading + strings.Join(t.Dependencies, ", ")
}

// LabelString joins labels with commas. Labels are not escaped, so a label
// that itself contains a comma is split by the tracker.
func (t Task) LabelString() string {
	return strings.Join(t.Labels, ",")
}
