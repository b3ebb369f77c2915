package models

import "strings"

// Project groups tasks under a name, color and icon.
// TaskCount is denormalized: callers keep it in sync, the store never does.
type Project struct {
	ID        int    `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Color     string `json:"color" yaml:"color"`
	Icon      string `json:"icon" yaml:"icon"`
	TaskCount int    `json:"taskCount" yaml:"task_count"`
	Order     int    `json:"order" yaml:"order"`
}

// GetID returns the project id (used by quiet CLI output)
func (p *Project) GetID() int {
	return p.ID
}

// Clone returns a copy of p
func (p *Project) Clone() *Project {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// Matches reports whether query appears case-insensitively in the name
func (p *Project) Matches(query string) bool {
	return query == "" || strings.Contains(strings.ToLower(p.Name), strings.ToLower(query))
}

// CloneProjects deep-copies a slice of projects
func CloneProjects(projects []*Project) []*Project {
	out := make([]*Project, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.Clone())
	}
	return out
}
