package views

import "github.com/thenoetrevino/taskflow/internal/models"

// Item is a task joined with the project it is filed under.
// Project is nil when the task has no project or the project is gone.
type Item struct {
	Task    *models.Task    `json:"task"`
	Project *models.Project `json:"project,omitempty"`
}

// ProjectName returns the joined project's name or ""
func (i Item) ProjectName() string {
	if i.Project == nil {
		return ""
	}
	return i.Project.Name
}

// TodayView holds incomplete tasks due today or earlier
type TodayView struct {
	Date     models.Date `json:"date"`
	Overdue  []Item      `json:"overdue"`
	DueToday []Item      `json:"dueToday"`
}

// Total returns the number of tasks in both sections
func (v *TodayView) Total() int {
	return len(v.Overdue) + len(v.DueToday)
}

// DayColumn is one day of the upcoming week calendar
type DayColumn struct {
	Date    models.Date `json:"date"`
	IsToday bool        `json:"isToday"`
	Tasks   []Item      `json:"tasks"`
}

// UpcomingView holds incomplete tasks due after today
type UpcomingView struct {
	Today     models.Date `json:"today"`
	WeekStart models.Date `json:"weekStart"`
	Week      []DayColumn `json:"week"`
	Tasks     []Item      `json:"tasks"`
}

// ArchiveGroup collects the tasks completed on one day
type ArchiveGroup struct {
	Key   string `json:"key"`   // 2006-01-02
	Label string `json:"label"` // January 2, 2006
	Tasks []Item `json:"tasks"`
}

// ArchiveStats summarises the archive
type ArchiveStats struct {
	Total        int `json:"total"`
	HighPriority int `json:"highPriority"`
	Days         int `json:"days"`
}

// ArchiveView holds completed tasks grouped by completion day, newest first
type ArchiveView struct {
	Groups []ArchiveGroup `json:"groups"`
	Stats  ArchiveStats   `json:"stats"`
}

// ProjectSummary is a project with counts computed from its tasks
type ProjectSummary struct {
	Project     *models.Project `json:"project"`
	TaskCount   int             `json:"taskCount"`
	ActiveTasks int             `json:"activeTasks"`
}

// Stale reports whether the stored denormalized count disagrees with the live one
func (s ProjectSummary) Stale() bool {
	return s.Project.TaskCount != s.TaskCount
}

// ProjectsView lists projects in display order
type ProjectsView struct {
	Projects []ProjectSummary `json:"projects"`
}
