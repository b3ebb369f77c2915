package task

import (
	"context"

	"github.com/thenoetrevino/taskflow/internal/latency"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// GetTodayTasks returns incomplete tasks due today or overdue.
// Tasks without a due date are excluded.
func (s *service) GetTodayTasks(ctx context.Context) ([]*models.Task, error) {
	if err := s.opts.Latency.Wait(ctx, latency.Query); err != nil {
		return nil, err
	}

	today := s.opts.Today()
	return s.filter(func(t *models.Task) bool {
		return !t.Completed && t.DueOnOrBefore(today)
	}), nil
}

// GetUpcomingTasks returns incomplete tasks due strictly after today
func (s *service) GetUpcomingTasks(ctx context.Context) ([]*models.Task, error) {
	if err := s.opts.Latency.Wait(ctx, latency.Query); err != nil {
		return nil, err
	}

	today := s.opts.Today()
	return s.filter(func(t *models.Task) bool {
		return !t.Completed && t.HasDueDate() && t.DueDate.After(today)
	}), nil
}

// GetCompletedTasks returns every completed task
func (s *service) GetCompletedTasks(ctx context.Context) ([]*models.Task, error) {
	if err := s.opts.Latency.Wait(ctx, latency.Scan); err != nil {
		return nil, err
	}

	return s.filter(func(t *models.Task) bool {
		return t.Completed
	}), nil
}
