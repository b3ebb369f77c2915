package models

import (
	"strings"
	"time"
)

// Task represents a single to-do item, optionally filed under a project
type Task struct {
	ID          int        `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Completed   bool       `json:"completed" yaml:"completed"`
	Priority    Priority   `json:"priority" yaml:"priority"`
	DueDate     *Date      `json:"dueDate,omitempty" yaml:"due_date,omitempty"`
	ProjectID   *int       `json:"projectId,omitempty" yaml:"project_id,omitempty"`
	CreatedAt   time.Time  `json:"createdAt" yaml:"created_at"`
	CompletedAt *time.Time `json:"completedAt,omitempty" yaml:"completed_at,omitempty"`
}

// GetID returns the task id (used by quiet CLI output)
func (t *Task) GetID() int {
	return t.ID
}

// Clone returns a deep copy of t; the copy shares no pointers with t
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	if t.DueDate != nil {
		d := *t.DueDate
		c.DueDate = &d
	}
	if t.ProjectID != nil {
		id := *t.ProjectID
		c.ProjectID = &id
	}
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		c.CompletedAt = &at
	}
	return &c
}

// InProject reports whether the task is filed under projectID
func (t *Task) InProject(projectID int) bool {
	return t.ProjectID != nil && *t.ProjectID == projectID
}

// HasDueDate reports whether a due date is set
func (t *Task) HasDueDate() bool {
	return t.DueDate != nil && !t.DueDate.IsZero()
}

// DueOnOrBefore reports whether the task is due on today or earlier
func (t *Task) DueOnOrBefore(today Date) bool {
	return t.HasDueDate() && !t.DueDate.After(today)
}

// IsOverdue reports whether the task is incomplete and due before today
func (t *Task) IsOverdue(today Date) bool {
	return !t.Completed && t.HasDueDate() && t.DueDate.Before(today)
}

// Matches reports whether query appears, case-insensitively, in the title or
// priority. An empty query matches everything.
func (t *Task) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(string(t.Priority)), q)
}

// CloneTasks deep-copies a slice of tasks
func CloneTasks(tasks []*Task) []*Task {
	out := make([]*Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Clone())
	}
	return out
}

// IntPtr returns a pointer to v
func IntPtr(v int) *int {
	return &v
}

// DatePtr returns a pointer to d
func DatePtr(d Date) *Date {
	return &d
}
