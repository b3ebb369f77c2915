package task

import (
	"context"
	"sync"
	"time"

	"github.com/thenoetrevino/taskflow/internal/events"
	"github.com/thenoetrevino/taskflow/internal/latency"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/services"
)

// Service defines all task-related business operations.
// Every returned task is a copy; mutating it does not affect the store.
type Service interface {
	// Read operations
	GetAllTasks(ctx context.Context) ([]*models.Task, error)
	GetTaskByID(ctx context.Context, id int) (*models.Task, error)
	GetTasksByProject(ctx context.Context, projectID int) ([]*models.Task, error)

	// Bucket queries
	GetTodayTasks(ctx context.Context) ([]*models.Task, error)
	GetUpcomingTasks(ctx context.Context) ([]*models.Task, error)
	GetCompletedTasks(ctx context.Context) ([]*models.Task, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, id int, patch TaskPatch) (*models.Task, error)
	DeleteTask(ctx context.Context, id int) (*models.Task, error)

	// Batch operations
	BulkUpdateTasks(ctx context.Context, ids []string, patch TaskPatch) (*BulkUpdateResult, error)
	BulkDeleteTasks(ctx context.Context, ids []string) (*BulkDeleteResult, error)
}

// CreateTaskRequest encapsulates all data needed to create a task.
// Zero values mean "use the default".
type CreateTaskRequest struct {
	Title     string
	Priority  models.Priority // Optional: "" means medium
	DueDate   *models.Date
	ProjectID *int
	Completed bool
}

// service implements Service over an ordered in-memory table.
// All mutations happen under mu after the simulated latency has elapsed.
type service struct {
	mu     sync.RWMutex
	tasks  []*models.Task
	lastID int // high-water mark; ids are never reissued
	opts   services.Options
}

// NewService creates a task store seeded with a deep copy of seed
func NewService(seed []*models.Task, opts ...services.Option) Service {
	s := &service{
		tasks: models.CloneTasks(seed),
		opts:  services.Apply(opts...),
	}
	for _, t := range s.tasks {
		if t.ID > s.lastID {
			s.lastID = t.ID
		}
	}
	return s
}

// GetAllTasks returns every task in stored order
func (s *service) GetAllTasks(ctx context.Context) ([]*models.Task, error) {
	if err := s.opts.Latency.Wait(ctx, latency.Scan); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneTasks(s.tasks), nil
}

// GetTaskByID retrieves a specific task
func (s *service) GetTaskByID(ctx context.Context, id int) (*models.Task, error) {
	if err := s.opts.Latency.Wait(ctx, latency.Lookup); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return nil, ErrTaskNotFound
	}
	return s.tasks[idx].Clone(), nil
}

// GetTasksByProject returns the tasks filed under projectID
func (s *service) GetTasksByProject(ctx context.Context, projectID int) ([]*models.Task, error) {
	if err := s.opts.Latency.Wait(ctx, latency.Scan); err != nil {
		return nil, err
	}

	return s.filter(func(t *models.Task) bool {
		return t.InProject(projectID)
	}), nil
}

// CreateTask allocates an id, applies defaults and stores the task
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	if err := validateCreateTask(req); err != nil {
		return nil, err
	}

	if err := s.opts.Latency.Wait(ctx, latency.Create); err != nil {
		return nil, err
	}

	now := s.opts.Now()
	task := &models.Task{
		Title:     req.Title,
		Completed: req.Completed,
		Priority:  req.Priority,
		CreatedAt: now,
	}
	if task.Priority == "" {
		task.Priority = models.DefaultPriority
	}
	if req.DueDate != nil {
		task.DueDate = models.DatePtr(*req.DueDate)
	}
	if req.ProjectID != nil {
		task.ProjectID = models.IntPtr(*req.ProjectID)
	}
	if req.Completed {
		task.CompletedAt = &now
	}

	s.mu.Lock()
	s.lastID++
	task.ID = s.lastID
	s.tasks = append(s.tasks, task)
	created := task.Clone()
	s.mu.Unlock()

	s.publish(events.EventTaskCreated, created)
	return created, nil
}

// UpdateTask merges patch onto the stored task, keeping its id
func (s *service) UpdateTask(ctx context.Context, id int, patch TaskPatch) (*models.Task, error) {
	if err := patch.validate(); err != nil {
		return nil, err
	}

	if err := s.opts.Latency.Wait(ctx, latency.Write); err != nil {
		return nil, err
	}

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx == -1 {
		s.mu.Unlock()
		return nil, ErrTaskNotFound
	}
	updated := s.applyAt(idx, patch, s.opts.Now())
	s.mu.Unlock()

	s.publish(events.EventTaskUpdated, updated)
	return updated, nil
}

// DeleteTask removes a task and returns the removed record
func (s *service) DeleteTask(ctx context.Context, id int) (*models.Task, error) {
	if err := s.opts.Latency.Wait(ctx, latency.Remove); err != nil {
		return nil, err
	}

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx == -1 {
		s.mu.Unlock()
		return nil, ErrTaskNotFound
	}
	deleted := s.removeAt(idx)
	s.mu.Unlock()

	s.publish(events.EventTaskDeleted, deleted)
	return deleted, nil
}

// indexOf returns the stored position of id, or -1. Callers hold mu.
func (s *service) indexOf(id int) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// applyAt merges patch into the task at idx and returns a copy. Callers hold mu.
func (s *service) applyAt(idx int, patch TaskPatch, now time.Time) *models.Task {
	updated := s.tasks[idx].Clone()
	patch.apply(updated, now)
	s.tasks[idx] = updated
	return updated.Clone()
}

// removeAt deletes the task at idx and returns it. Callers hold mu.
func (s *service) removeAt(idx int) *models.Task {
	removed := s.tasks[idx]
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	return removed
}

// filter returns copies of the tasks matching keep, in stored order
func (s *service) filter(keep func(*models.Task) bool) []*models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Task, 0)
	for _, t := range s.tasks {
		if keep(t) {
			out = append(out, t.Clone())
		}
	}
	return out
}

// publish sends a change event for t if an event client is configured
func (s *service) publish(eventType events.EventType, t *models.Task) {
	e := events.Event{Type: eventType, EntityID: t.ID}
	if t.ProjectID != nil {
		e.ProjectID = *t.ProjectID
	}
	events.Publish(s.opts.EventClient, e)
}

// validateCreateTask validates a CreateTaskRequest
func validateCreateTask(req CreateTaskRequest) error {
	if req.Priority != "" && !req.Priority.Valid() {
		return ErrInvalidPriority
	}
	if req.ProjectID != nil && *req.ProjectID <= 0 {
		return ErrInvalidProjectID
	}
	return nil
}
