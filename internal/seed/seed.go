// Package seed loads the static fixtures the stores start from.
// Fixtures are read once; the stores deep-copy them and never re-read.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/taskflow/internal/models"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// Data is the initial content of both stores
type Data struct {
	Projects []*models.Project
	Tasks    []*models.Task
}

// fixtureFile mirrors the YAML layout
type fixtureFile struct {
	Projects []*models.Project `yaml:"projects"`
	Tasks    []taskFixture     `yaml:"tasks"`
}

// taskFixture accepts relative dates ("today+2") as well as absolute ones
type taskFixture struct {
	ID          int             `yaml:"id"`
	Title       string          `yaml:"title"`
	Completed   bool            `yaml:"completed,omitempty"`
	Priority    models.Priority `yaml:"priority,omitempty"`
	DueDate     string          `yaml:"due_date,omitempty"`
	ProjectID   *int            `yaml:"project_id,omitempty"`
	CreatedAt   string          `yaml:"created_at,omitempty"`
	CompletedAt string          `yaml:"completed_at,omitempty"`
}

// Default returns the embedded fixtures resolved against now
func Default(now time.Time) (*Data, error) {
	return Parse(defaultFixtures, now)
}

// LoadFile reads a YAML fixture file resolved against now
func LoadFile(path string, now time.Time) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(raw, now)
}

// Parse decodes YAML fixtures, resolving relative dates against now
func Parse(raw []byte, now time.Time) (*Data, error) {
	var file fixtureFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}

	data := &Data{Projects: file.Projects}
	if data.Projects == nil {
		data.Projects = []*models.Project{}
	}
	data.Tasks = make([]*models.Task, 0, len(file.Tasks))

	for _, f := range file.Tasks {
		task, err := f.resolve(now)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", f.ID, err)
		}
		data.Tasks = append(data.Tasks, task)
	}

	if err := data.Validate(); err != nil {
		return nil, err
	}
	return data, nil
}

// Validate checks ids are positive and unique and priorities are known
func (d *Data) Validate() error {
	projectIDs := make(map[int]bool, len(d.Projects))
	for _, p := range d.Projects {
		if p.ID <= 0 {
			return fmt.Errorf("%w: project id %d must be positive", models.ErrInvalidInput, p.ID)
		}
		if projectIDs[p.ID] {
			return fmt.Errorf("%w: duplicate project id %d", models.ErrInvalidInput, p.ID)
		}
		projectIDs[p.ID] = true
	}

	taskIDs := make(map[int]bool, len(d.Tasks))
	for _, t := range d.Tasks {
		if t.ID <= 0 {
			return fmt.Errorf("%w: task id %d must be positive", models.ErrInvalidInput, t.ID)
		}
		if taskIDs[t.ID] {
			return fmt.Errorf("%w: duplicate task id %d", models.ErrInvalidInput, t.ID)
		}
		taskIDs[t.ID] = true
		if !t.Priority.Valid() {
			return fmt.Errorf("%w: task %d has priority %q", models.ErrInvalidInput, t.ID, t.Priority)
		}
	}
	return nil
}

func (f taskFixture) resolve(now time.Time) (*models.Task, error) {
	task := &models.Task{
		ID:        f.ID,
		Title:     f.Title,
		Completed: f.Completed,
		Priority:  f.Priority,
		ProjectID: f.ProjectID,
		CreatedAt: now,
	}
	if task.Priority == "" {
		task.Priority = models.DefaultPriority
	}

	if f.DueDate != "" {
		d, err := ResolveDate(f.DueDate, now)
		if err != nil {
			return nil, err
		}
		task.DueDate = &d
	}
	if f.CreatedAt != "" {
		at, err := resolveTime(f.CreatedAt, now)
		if err != nil {
			return nil, err
		}
		task.CreatedAt = at
	}
	if f.CompletedAt != "" {
		at, err := resolveTime(f.CompletedAt, now)
		if err != nil {
			return nil, err
		}
		task.CompletedAt = &at
	}
	return task, nil
}

// ResolveDate understands YYYY-MM-DD, "today", "tomorrow", "yesterday" and
// "today+N" / "today-N", relative to now's calendar day
func ResolveDate(expr string, now time.Time) (models.Date, error) {
	expr = strings.ToLower(strings.TrimSpace(expr))
	switch expr {
	case "tomorrow":
		return models.DateOf(now).AddDays(1), nil
	case "yesterday":
		return models.DateOf(now).AddDays(-1), nil
	}
	if !strings.HasPrefix(expr, "today") {
		return models.ParseDate(expr)
	}

	offset := strings.TrimPrefix(expr, "today")
	days := 0
	if offset != "" {
		n, err := strconv.Atoi(offset)
		if err != nil {
			return models.Date{}, fmt.Errorf("%w: relative date %q", models.ErrInvalidInput, expr)
		}
		days = n
	}
	return models.DateOf(now).AddDays(days), nil
}

// resolveTime accepts RFC 3339 timestamps or any date expression, which
// resolves to noon on that day in now's location
func resolveTime(expr string, now time.Time) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, strings.TrimSpace(expr)); err == nil {
		return t, nil
	}
	d, err := ResolveDate(expr, now)
	if err != nil {
		return time.Time{}, err
	}
	return d.In(now.Location()).Add(12 * time.Hour), nil
}

// Encode writes data as a YAML fixture file with absolute dates, so the
// result loads back unchanged on any day
func Encode(data *Data) ([]byte, error) {
	file := fixtureFile{
		Projects: data.Projects,
		Tasks:    make([]taskFixture, 0, len(data.Tasks)),
	}
	for _, t := range data.Tasks {
		f := taskFixture{
			ID:        t.ID,
			Title:     t.Title,
			Completed: t.Completed,
			Priority:  t.Priority,
			ProjectID: t.ProjectID,
			CreatedAt: t.CreatedAt.Format(time.RFC3339),
		}
		if t.DueDate != nil {
			f.DueDate = t.DueDate.String()
		}
		if t.CompletedAt != nil {
			f.CompletedAt = t.CompletedAt.Format(time.RFC3339)
		}
		file.Tasks = append(file.Tasks, f)
	}

	out, err := yaml.Marshal(&file)
	if err != nil {
		return nil, fmt.Errorf("failed to encode seed data: %w", err)
	}
	return out, nil
}
