package publisher

import (
	"fmt"
	"strings"
)

// Entry is a created issue keyed by the task that produced it.
type Entry struct {
	TaskID string
	Number int
}

// Mapping associates task ids with created issue numbers in creation order.
// Setting an id that is already present replaces its number but keeps its
// original position. The zero value is not usable; call NewMapping.
type Mapping struct {
	entries []Entry
	index   map[string]int
}

func NewMapping() *Mapping {
	return &Mapping{index: map[string]int{}}
}

// Set records number for taskID.
func (m *Mapping) Set(taskID string, number int) {
	if i, ok := m.index[taskID]; ok {
		m.entries[i].Number = number
		return
	}
	m.index[taskID] = len(m.entries)
	m.entries = append(m.entries, Entry{TaskID: taskID, Number: number})
}

// Get returns the issue number recorded for taskID.
func (m *Mapping) Get(taskID string) (int, bool) {
	i, ok := m.index[taskID]
	if !ok {
		return 0, false
	}
	return m.entries[i].Number, true
}

func (m *Mapping) Len() int {
	return len(m.entries)
}

// Entries returns a copy of the entries in creation order.
func (m *Mapping) Entries() []Entry {
	return append([]Entry(nil), m.entries...)
}

// Render formats the mapping as "<task_id>: #<number>" lines.
func (m *Mapping) Render() string {
	var sb strings.Builder
	for _, e := range m.entries {
		_, _ = fmt.Fprintf(&sb, "%s: #%d\n", e.TaskID, e.Number)
	}
	return sb.String()
}
