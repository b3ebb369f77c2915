// Package views builds the read models behind each screen by joining task
// queries with project lookups, then filtering and grouping client side.
package views

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/services"
	"github.com/thenoetrevino/taskflow/internal/services/project"
	"github.com/thenoetrevino/taskflow/internal/services/task"
)

// ArchiveKeyLayout and ArchiveLabelLayout format completion-day groups
const (
	ArchiveKeyLayout   = models.DateLayout
	ArchiveLabelLayout = "January 2, 2006"
)

// maxProjectLoads bounds the concurrent per-project task queries
const maxProjectLoads = 4

// Service builds screen read models
type Service interface {
	Today(ctx context.Context, query string) (*TodayView, error)
	Upcoming(ctx context.Context, query string) (*UpcomingView, error)
	Archive(ctx context.Context, query string) (*ArchiveView, error)
	Projects(ctx context.Context, query string) (*ProjectsView, error)
	Search(ctx context.Context, query string) ([]Item, error)

	// SyncProjectCounts writes live task counts back into every project
	// whose stored count drifted, returning the projects it changed
	SyncProjectCounts(ctx context.Context) ([]*models.Project, error)
	// AdjustProjectCounts moves stored counts by the change in project
	// membership from before to after, e.g. nil before for created tasks
	AdjustProjectCounts(ctx context.Context, before, after []*models.Task) ([]*models.Project, error)

	// RestoreArchive reopens every completed task
	RestoreArchive(ctx context.Context) (*task.BulkUpdateResult, error)
	// ClearArchive deletes every completed task
	ClearArchive(ctx context.Context) (*task.BulkDeleteResult, error)
}

type service struct {
	tasks    task.Service
	projects project.Service
	opts     services.Options
}

// NewService creates a view builder over the two stores
func NewService(tasks task.Service, projects project.Service, opts ...services.Option) Service {
	return &service{
		tasks:    tasks,
		projects: projects,
		opts:     services.Apply(opts...),
	}
}

// Today splits the today bucket into overdue and due-today sections
func (s *service) Today(ctx context.Context, query string) (*TodayView, error) {
	items, err := s.load(ctx, s.tasks.GetTodayTasks)
	if err != nil {
		return nil, fmt.Errorf("failed to load today tasks: %w", err)
	}

	today := s.opts.Today()
	view := &TodayView{Date: today, Overdue: []Item{}, DueToday: []Item{}}
	for _, item := range FilterItems(items, query) {
		if item.Task.IsOverdue(today) {
			view.Overdue = append(view.Overdue, item)
		} else {
			view.DueToday = append(view.DueToday, item)
		}
	}
	return view, nil
}

// Upcoming lays the upcoming bucket out on a Monday-start calendar of the
// current week alongside the full list
func (s *service) Upcoming(ctx context.Context, query string) (*UpcomingView, error) {
	items, err := s.load(ctx, s.tasks.GetUpcomingTasks)
	if err != nil {
		return nil, fmt.Errorf("failed to load upcoming tasks: %w", err)
	}
	items = FilterItems(items, query)

	today := s.opts.Today()
	start := WeekStart(today)
	view := &UpcomingView{
		Today:     today,
		WeekStart: start,
		Week:      make([]DayColumn, 7),
		Tasks:     items,
	}
	for i := range view.Week {
		day := start.AddDays(i)
		col := DayColumn{Date: day, IsToday: day == today, Tasks: []Item{}}
		for _, item := range items {
			if item.Task.HasDueDate() && *item.Task.DueDate == day {
				col.Tasks = append(col.Tasks, item)
			}
		}
		view.Week[i] = col
	}
	return view, nil
}

// Archive groups completed tasks by the local day they were completed.
// Tasks without a completion time are left out of the groups. Total and
// HighPriority count the whole archive; Days counts the groups shown.
func (s *service) Archive(ctx context.Context, query string) (*ArchiveView, error) {
	items, err := s.load(ctx, s.tasks.GetCompletedTasks)
	if err != nil {
		return nil, fmt.Errorf("failed to load completed tasks: %w", err)
	}

	view := &ArchiveView{Groups: []ArchiveGroup{}}
	for _, item := range items {
		view.Stats.Total++
		if item.Task.Priority == models.PriorityHigh {
			view.Stats.HighPriority++
		}
	}

	loc := s.opts.Now().Location()
	index := map[string]int{}
	for _, item := range FilterItems(items, query) {
		if item.Task.CompletedAt == nil {
			continue
		}
		at := item.Task.CompletedAt.In(loc)
		key := at.Format(ArchiveKeyLayout)
		i, ok := index[key]
		if !ok {
			i = len(view.Groups)
			index[key] = i
			view.Groups = append(view.Groups, ArchiveGroup{Key: key, Label: at.Format(ArchiveLabelLayout)})
		}
		view.Groups[i].Tasks = append(view.Groups[i].Tasks, item)
	}

	sort.SliceStable(view.Groups, func(i, j int) bool {
		return view.Groups[i].Key > view.Groups[j].Key
	})
	view.Stats.Days = len(view.Groups)
	return view, nil
}

// Projects lists projects matching query by name, each with counts computed
// from the task table
func (s *service) Projects(ctx context.Context, query string) (*ProjectsView, error) {
	summaries, err := s.summaries(ctx)
	if err != nil {
		return nil, err
	}

	view := &ProjectsView{Projects: []ProjectSummary{}}
	for _, summary := range summaries {
		if summary.Project.Matches(query) {
			view.Projects = append(view.Projects, summary)
		}
	}
	return view, nil
}

// Search returns every task matching query, joined with its project
func (s *service) Search(ctx context.Context, query string) ([]Item, error) {
	items, err := s.load(ctx, s.tasks.GetAllTasks)
	if err != nil {
		return nil, fmt.Errorf("failed to search tasks: %w", err)
	}
	return FilterItems(items, query), nil
}

func (s *service) SyncProjectCounts(ctx context.Context) ([]*models.Project, error) {
	summaries, err := s.summaries(ctx)
	if err != nil {
		return nil, err
	}

	changed := []*models.Project{}
	for _, summary := range summaries {
		if !summary.Stale() {
			continue
		}
		updated, err := s.projects.UpdateTaskCount(ctx, summary.Project.ID, summary.TaskCount)
		if err != nil {
			return changed, fmt.Errorf("failed to update task count for project %d: %w", summary.Project.ID, err)
		}
		changed = append(changed, updated)
	}
	return changed, nil
}

func (s *service) RestoreArchive(ctx context.Context) (*task.BulkUpdateResult, error) {
	ids, err := s.completedIDs(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return &task.BulkUpdateResult{Updated: []*models.Task{}, Errors: []string{}}, nil
	}
	return s.tasks.BulkUpdateTasks(ctx, task.FormatIDs(ids...), task.Complete(false))
}

func (s *service) ClearArchive(ctx context.Context) (*task.BulkDeleteResult, error) {
	ids, err := s.completedIDs(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return &task.BulkDeleteResult{Deleted: []*models.Task{}, Errors: []string{}}, nil
	}
	result, err := s.tasks.BulkDeleteTasks(ctx, task.FormatIDs(ids...))
	if err != nil {
		return nil, err
	}
	if _, err := s.AdjustProjectCounts(ctx, result.Deleted, nil); err != nil {
		return result, err
	}
	return result, nil
}

// AdjustProjectCounts never takes a count below zero and skips projects that
// no longer exist.
func (s *service) AdjustProjectCounts(ctx context.Context, before, after []*models.Task) ([]*models.Project, error) {
	deltas := map[int]int{}
	for _, t := range before {
		if t != nil && t.ProjectID != nil {
			deltas[*t.ProjectID]--
		}
	}
	for _, t := range after {
		if t != nil && t.ProjectID != nil {
			deltas[*t.ProjectID]++
		}
	}

	ids := make([]int, 0, len(deltas))
	for id, delta := range deltas {
		if delta != 0 {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	changed := []*models.Project{}
	for _, id := range ids {
		p, err := s.projects.GetProjectByID(ctx, id)
		if errors.Is(err, models.ErrNotFound) {
			continue
		}
		if err != nil {
			return changed, fmt.Errorf("failed to load project %d: %w", id, err)
		}
		updated, err := s.projects.UpdateTaskCount(ctx, id, max(0, p.TaskCount+deltas[id]))
		if err != nil {
			return changed, fmt.Errorf("failed to update task count for project %d: %w", id, err)
		}
		changed = append(changed, updated)
	}
	return changed, nil
}

// WeekStart returns the Monday on or before d
func WeekStart(d models.Date) models.Date {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDays(-offset)
}

// load runs a task query and the project listing concurrently and joins them
func (s *service) load(ctx context.Context, query func(context.Context) ([]*models.Task, error)) ([]Item, error) {
	var (
		tasks    []*models.Task
		projects []*models.Project
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tasks, err = query(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		projects, err = s.projects.GetAllProjects(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return join(tasks, indexProjects(projects)), nil
}

// summaries loads every project and counts its tasks, querying projects
// concurrently
func (s *service) summaries(ctx context.Context) ([]ProjectSummary, error) {
	projects, err := s.projects.GetAllProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}

	out := make([]ProjectSummary, len(projects))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxProjectLoads)
	for i, p := range projects {
		g.Go(func() error {
			tasks, err := s.tasks.GetTasksByProject(gctx, p.ID)
			if err != nil {
				return fmt.Errorf("failed to load tasks for project %d: %w", p.ID, err)
			}
			summary := ProjectSummary{Project: p, TaskCount: len(tasks)}
			for _, t := range tasks {
				if !t.Completed {
					summary.ActiveTasks++
				}
			}
			out[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *service) completedIDs(ctx context.Context) ([]int, error) {
	completed, err := s.tasks.GetCompletedTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load completed tasks: %w", err)
	}
	ids := make([]int, 0, len(completed))
	for _, t := range completed {
		ids = append(ids, t.ID)
	}
	return ids, nil
}
