package views

import (
	"strings"

	"github.com/thenoetrevino/taskflow/internal/models"
)

// join attaches each task's project, looked up in byID
func join(tasks []*models.Task, byID map[int]*models.Project) []Item {
	items := make([]Item, 0, len(tasks))
	for _, t := range tasks {
		item := Item{Task: t}
		if t.ProjectID != nil {
			item.Project = byID[*t.ProjectID]
		}
		items = append(items, item)
	}
	return items
}

// indexProjects maps projects by id
func indexProjects(projects []*models.Project) map[int]*models.Project {
	byID := make(map[int]*models.Project, len(projects))
	for _, p := range projects {
		byID[p.ID] = p
	}
	return byID
}

// MatchItem reports whether query matches the task title, its priority or
// its project's name. Matching is case-insensitive; an empty query matches.
func MatchItem(item Item, query string) bool {
	if strings.TrimSpace(query) == "" {
		return true
	}
	if item.Task.Matches(query) {
		return true
	}
	return item.Project != nil && item.Project.Matches(query)
}

// FilterItems keeps the items matching query, preserving order
func FilterItems(items []Item, query string) []Item {
	if strings.TrimSpace(query) == "" {
		return items
	}
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if MatchItem(item, query) {
			out = append(out, item)
		}
	}
	return out
}
