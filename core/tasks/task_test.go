package tasks

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTask_IssueTitle(t *testing.T) {
	t.Parallel()
	task := Task{ID: "TASK-001", Title: "Init"}
	assert.Equal(t, "[TASK-001] Init", task.IssueTitle())
}

func TestTask_IssueBody(t *testing.T) {
	tests := []struct {
		name string
		task Task
		want string
	}{
		{
			name: "no dependencies",
			task: Task{ID: "TASK-001", Description: "Do X."},
			want: "Do X.",
		},
		{
			name: "empty dependency slice",
			task: Task{ID: "TASK-001", Description: "Do X.", Dependencies: []string{}},
			want: "Do X.",
		},
		{
			name: "single dependency",
			task: Task{ID: "TASK-001", Description: "Do X.", Dependencies: []string{"TASK-000"}},
			want: "Do X.\n\n## Dependencies\n- Depends on: TASK-000",
		},
		{
			name: "dependencies keep their order",
			task: Task{ID: "TASK-012", Description: "Dash.", Dependencies: []string{"TASK-011", "TASK-002"}},
			want: "Dash.\n\n## Dependencies\n- Depends on: TASK-011, TASK-002",
		},
		{
			name: "unknown dependency is accepted",
			task: Task{ID: "TASK-100", Description: "Z.", Dependencies: []string{"NOPE-1"}},
			want: "Z.\n\n## Dependencies\n- Depends on: NOPE-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.task.IssueBody())
		})
	}
}

func TestTask_IssueBody_ListsEachDependencyOnce(t *testing.T) {
	t.Parallel()
	task := Task{Description: "D", Dependencies: []string{"TASK-013", "TASK-015"}}
	body := task.IssueBody()
	assert.Equal(t, 1, strings.Count(body, "TASK-013"))
	assert.Equal(t, 1, strings.Count(body, "TASK-015"))
	assert.True(t, strings.HasSuffix(body, "Depends on: TASK-013, TASK-015"))
}

func TestTask_LabelString(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		want   string
	}{
		{name: "none", labels: nil, want: ""},
		{name: "single", labels: []string{"a"}, want: "a"},
		{name: "several", labels: []string{"a", "b"}, want: "a,b"},
		{name: "embedded comma is not escaped", labels: []string{"a,b", "c"}, want: "a,b,c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Task{Labels: tt.labels}.LabelString())
		})
	}
}

func TestPlan(t *testing.T) {
	t.Parallel()
	require.Len(t, Plan, 27)
	assert.Equal(t, "TASK-001", Plan[0].ID)
	assert.Equal(t, "TASK-027", Plan[len(Plan)-1].ID)

	seen := make(map[string]bool, len(Plan))
	for _, task := range Plan {
		assert.False(t, seen[task.ID], "duplicate task id %s", task.ID)
		seen[task.ID] = true
		assert.NotEmpty(t, task.Title, task.ID)
		assert.NotEmpty(t, task.Description, task.ID)
		assert.NotEmpty(t, task.Labels, task.ID)
	}
	for _, task := range Plan {
		for _, dep := range task.Dependencies {
			assert.True(t, seen[dep], "%s depends on unknown %s", task.ID, dep)
		}
	}
}
