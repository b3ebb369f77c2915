package task

import (
	"time"

	"github.com/thenoetrevino/taskflow/internal/models"
)

// TaskPatch is a partial update. Nil pointer fields are left untouched.
// There is no id field: a task's id never changes.
type TaskPatch struct {
	Title     *string
	Completed *bool
	Priority  *models.Priority
	DueDate   *models.Date
	ProjectID *int

	// Clear flags set a nullable field back to absent
	ClearDueDate bool
	ClearProject bool
}

// IsEmpty reports whether the patch changes nothing
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Completed == nil && p.Priority == nil &&
		p.DueDate == nil && p.ProjectID == nil && !p.ClearDueDate && !p.ClearProject
}

// MovesProject reports whether the patch changes which project a task is in
func (p TaskPatch) MovesProject() bool {
	return p.ProjectID != nil || p.ClearProject
}

func (p TaskPatch) validate() error {
	if p.Priority != nil && !p.Priority.Valid() {
		return ErrInvalidPriority
	}
	if p.ProjectID != nil && *p.ProjectID <= 0 {
		return ErrInvalidProjectID
	}
	if (p.DueDate != nil && p.ClearDueDate) || (p.ProjectID != nil && p.ClearProject) {
		return ErrConflictingPatch
	}
	return nil
}

// apply merges p into t. completedAt is recomputed only when the patch
// mentions completed: stamped with now when true, cleared when false.
func (p TaskPatch) apply(t *models.Task, now time.Time) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	switch {
	case p.DueDate != nil:
		t.DueDate = models.DatePtr(*p.DueDate)
	case p.ClearDueDate:
		t.DueDate = nil
	}
	switch {
	case p.ProjectID != nil:
		t.ProjectID = models.IntPtr(*p.ProjectID)
	case p.ClearProject:
		t.ProjectID = nil
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
		if t.Completed {
			at := now
			t.CompletedAt = &at
		} else {
			t.CompletedAt = nil
		}
	}
}

// Convenience constructors for common patches

// Complete returns a patch marking tasks completed or reopened
func Complete(done bool) TaskPatch {
	return TaskPatch{Completed: &done}
}

// SetPriority returns a patch changing only the priority
func SetPriority(p models.Priority) TaskPatch {
	return TaskPatch{Priority: &p}
}

// SetTitle returns a patch changing only the title
func SetTitle(title string) TaskPatch {
	return TaskPatch{Title: &title}
}
