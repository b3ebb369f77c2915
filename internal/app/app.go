package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/taskflow/internal/config"
	"github.com/thenoetrevino/taskflow/internal/database"
	"github.com/thenoetrevino/taskflow/internal/events"
	"github.com/thenoetrevino/taskflow/internal/latency"
	"github.com/thenoetrevino/taskflow/internal/seed"
	"github.com/thenoetrevino/taskflow/internal/services"
	projectservice "github.com/thenoetrevino/taskflow/internal/services/project"
	taskservice "github.com/thenoetrevino/taskflow/internal/services/task"
	"github.com/thenoetrevino/taskflow/internal/views"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Event system for change notifications
	Events *events.Bus

	// Service layer
	TaskService    taskservice.Service
	ProjectService projectservice.Service
	Views          views.Service

	logger *slog.Logger
	now    func() time.Time

	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
}

// New creates a new App whose stores are seeded with a deep copy of data.
// This is the single entry point for creating the application container.
func New(data *seed.Data, opts ...Option) *App {
	cfg := appConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.bus == nil {
		cfg.bus = events.NewBus()
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.latency == nil {
		cfg.latency = latency.None()
	}
	if cfg.now == nil {
		cfg.now = time.Now
	}
	if data == nil {
		data = &seed.Data{}
	}

	svcOpts := []services.Option{
		services.WithLatency(cfg.latency),
		services.WithClock(cfg.now),
		services.WithEventPublisher(cfg.bus),
	}

	tasks := taskservice.NewService(data.Tasks, svcOpts...)
	projects := projectservice.NewService(data.Projects, svcOpts...)

	a := &App{
		Events:         cfg.bus,
		TaskService:    tasks,
		ProjectService: projects,
		Views:          views.NewService(tasks, projects, services.WithClock(cfg.now)),
		logger:         cfg.logger,
		now:            cfg.now,
	}
	a.startEventLog()

	a.logger.Debug("app initialised",
		"tasks", len(data.Tasks),
		"projects", len(data.Projects),
		"simulated_latency", cfg.latency.Delay(latency.Lookup) > 0)
	return a
}

// Now returns the app clock's current time
func (a *App) Now() time.Time {
	return a.now()
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// startEventLog logs every change event at debug level until Close
func (a *App) startEventLog() {
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel

	ch, err := a.Events.Listen(ctx)
	if err != nil {
		a.logger.Warn("event log disabled", "error", err)
		return
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		for e := range ch {
			a.logger.Debug("change event",
				"id", e.ID,
				"type", e.Type,
				"entity_id", e.EntityID,
				"project_id", e.ProjectID,
				"seq", e.SequenceID)
		}
	}()
}

// Close stops the event log and closes the bus. It is safe to call twice.
func (a *App) Close() error {
	var err error
	a.once.Do(func() {
		a.cancel()
		a.wg.Wait()
		err = a.Events.Close()
		if dropped := a.Events.Dropped(); dropped > 0 {
			a.logger.Warn("events dropped for slow listeners", "count", dropped)
		}
	})
	return err
}

// Snapshot copies the current store contents into seed form, for export
func (a *App) Snapshot(ctx context.Context) (*seed.Data, error) {
	var data seed.Data

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		data.Tasks, err = a.TaskService.GetAllTasks(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		data.Projects, err = a.ProjectService.GetAllProjects(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to snapshot stores: %w", err)
	}
	return &data, nil
}

// LoadSeed reads the seed data selected by cfg: the SQLite fixture database
// if set, else the YAML fixture file, else the embedded fixtures
func LoadSeed(ctx context.Context, cfg *config.Config, now time.Time) (*seed.Data, error) {
	switch {
	case cfg.Seed.SQLite != "":
		data, err := database.LoadFile(ctx, cfg.Seed.SQLite)
		if err != nil {
			return nil, fmt.Errorf("failed to load sqlite fixtures: %w", err)
		}
		return data, nil
	case cfg.Seed.File != "":
		data, err := seed.LoadFile(cfg.Seed.File, now)
		if err != nil {
			return nil, fmt.Errorf("failed to load seed file: %w", err)
		}
		return data, nil
	default:
		return seed.Default(now)
	}
}
