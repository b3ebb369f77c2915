package project

import (
	"context"
	"sort"
	"sync"

	"github.com/thenoetrevino/taskflow/internal/events"
	"github.com/thenoetrevino/taskflow/internal/latency"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/services"
)

// Service defines all project-related business operations
type Service interface {
	// Read operations
	GetAllProjects(ctx context.Context) ([]*models.Project, error)
	GetProjectByID(ctx context.Context, id int) (*models.Project, error)

	// Write operations
	CreateProject(ctx context.Context, req CreateProjectRequest) (*models.Project, error)
	UpdateProject(ctx context.Context, id int, req UpdateProjectRequest) (*models.Project, error)
	DeleteProject(ctx context.Context, id int) (*models.Project, error)

	// UpdateTaskCount overwrites the denormalized task count verbatim
	UpdateTaskCount(ctx context.Context, id int, count int) (*models.Project, error)
}

// CreateProjectRequest encapsulates data for creating a project.
// Empty fields take the project defaults.
type CreateProjectRequest struct {
	Name  string
	Color string
	Icon  string
}

// UpdateProjectRequest encapsulates data for updating a project.
// Nil fields are left untouched.
type UpdateProjectRequest struct {
	Name  *string
	Color *string
	Icon  *string
	Order *int
}

// service implements Service over an in-memory table
type service struct {
	mu       sync.RWMutex
	projects []*models.Project
	lastID   int // high-water mark; ids are never reissued
	opts     services.Options
}

// NewService creates a project store seeded with a copy of seed
func NewService(seed []*models.Project, opts ...services.Option) Service {
	s := &service{
		projects: models.CloneProjects(seed),
		opts:     services.Apply(opts...),
	}
	for _, p := range s.projects {
		if p.ID > s.lastID {
			s.lastID = p.ID
		}
	}
	return s
}

// GetAllProjects returns every project sorted by display order. Projects
// sharing an order keep their stored order.
func (s *service) GetAllProjects(ctx context.Context) ([]*models.Project, error) {
	if err := s.opts.Latency.Wait(ctx, latency.Query); err != nil {
		return nil, err
	}

	s.mu.RLock()
	projects := models.CloneProjects(s.projects)
	s.mu.RUnlock()

	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].Order < projects[j].Order
	})
	return projects, nil
}

// GetProjectByID retrieves a specific project
func (s *service) GetProjectByID(ctx context.Context, id int) (*models.Project, error) {
	if err := s.opts.Latency.Wait(ctx, latency.Lookup); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return nil, ErrProjectNotFound
	}
	return s.projects[idx].Clone(), nil
}

// CreateProject allocates an id and order and stores the project
func (s *service) CreateProject(ctx context.Context, req CreateProjectRequest) (*models.Project, error) {
	if err := s.opts.Latency.Wait(ctx, latency.Create); err != nil {
		return nil, err
	}

	project := &models.Project{
		Name:  withDefault(req.Name, models.DefaultProjectName),
		Color: withDefault(req.Color, models.DefaultProjectColor),
		Icon:  withDefault(req.Icon, models.DefaultProjectIcon),
	}

	s.mu.Lock()
	s.lastID++
	project.ID = s.lastID
	project.Order = s.nextOrder()
	s.projects = append(s.projects, project)
	created := project.Clone()
	s.mu.Unlock()

	s.publish(events.EventProjectCreated, created.ID)
	return created, nil
}

// UpdateProject merges req onto the stored project, keeping its id
func (s *service) UpdateProject(ctx context.Context, id int, req UpdateProjectRequest) (*models.Project, error) {
	if err := s.opts.Latency.Wait(ctx, latency.Write); err != nil {
		return nil, err
	}

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx == -1 {
		s.mu.Unlock()
		return nil, ErrProjectNotFound
	}

	updated := s.projects[idx].Clone()
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.Color != nil {
		updated.Color = *req.Color
	}
	if req.Icon != nil {
		updated.Icon = *req.Icon
	}
	if req.Order != nil {
		updated.Order = *req.Order
	}
	s.projects[idx] = updated
	result := updated.Clone()
	s.mu.Unlock()

	s.publish(events.EventProjectUpdated, id)
	return result, nil
}

// DeleteProject removes a project. Tasks referencing it are left as they are.
func (s *service) DeleteProject(ctx context.Context, id int) (*models.Project, error) {
	if err := s.opts.Latency.Wait(ctx, latency.Remove); err != nil {
		return nil, err
	}

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx == -1 {
		s.mu.Unlock()
		return nil, ErrProjectNotFound
	}
	deleted := s.projects[idx]
	s.projects = append(s.projects[:idx], s.projects[idx+1:]...)
	s.mu.Unlock()

	s.publish(events.EventProjectDeleted, id)
	return deleted, nil
}

// UpdateTaskCount sets the denormalized task count. No check is made that
// count matches the tasks actually filed under the project.
func (s *service) UpdateTaskCount(ctx context.Context, id int, count int) (*models.Project, error) {
	if err := s.opts.Latency.Wait(ctx, latency.Lookup); err != nil {
		return nil, err
	}

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx == -1 {
		s.mu.Unlock()
		return nil, ErrProjectNotFound
	}
	s.projects[idx].TaskCount = count
	result := s.projects[idx].Clone()
	s.mu.Unlock()

	s.publish(events.EventProjectUpdated, id)
	return result, nil
}

// nextOrder returns one past the highest order currently stored.
// Callers hold mu.
func (s *service) nextOrder() int {
	highest := 0
	for _, p := range s.projects {
		highest = max(highest, p.Order)
	}
	return highest + 1
}

// indexOf returns the stored position of id, or -1. Callers hold mu.
func (s *service) indexOf(id int) int {
	for i, p := range s.projects {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// publish sends a project event if an event client is configured
func (s *service) publish(eventType events.EventType, projectID int) {
	events.Publish(s.opts.EventClient, events.Event{
		Type:      eventType,
		EntityID:  projectID,
		ProjectID: projectID,
	})
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
