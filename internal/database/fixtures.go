package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/seed"
)

// LoadFile opens the fixture database at path, reads it and closes it
func LoadFile(ctx context.Context, path string) (*seed.Data, error) {
	db, err := Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing db", "error", err)
		}
	}()

	return LoadFixtures(ctx, db)
}

// LoadFixtures reads every project and task from db
func LoadFixtures(ctx context.Context, db *sql.DB) (*seed.Data, error) {
	projects, err := loadProjects(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}

	tasks, err := loadTasks(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	data := &seed.Data{Projects: projects, Tasks: tasks}
	if err := data.Validate(); err != nil {
		return nil, err
	}
	return data, nil
}

// WriteFixtures replaces the content of db with data in one transaction
func WriteFixtures(ctx context.Context, db *sql.DB, data *seed.Data) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM tasks"); err != nil {
		return fmt.Errorf("failed to clear tasks: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM projects"); err != nil {
		return fmt.Errorf("failed to clear projects: %w", err)
	}

	for _, p := range data.Projects {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO projects (id, name, color, icon, task_count, display_order)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			p.ID, p.Name, p.Color, p.Icon, p.TaskCount, p.Order)
		if err != nil {
			return fmt.Errorf("failed to insert project %d: %w", p.ID, err)
		}
	}

	for _, t := range data.Tasks {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO tasks (id, title, completed, priority, due_date, project_id, created_at, completed_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, t.Title, t.Completed, string(t.Priority),
			nullDate(t.DueDate), nullInt(t.ProjectID),
			t.CreatedAt.Format(time.RFC3339Nano), nullTime(t.CompletedAt))
		if err != nil {
			return fmt.Errorf("failed to insert task %d: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func loadProjects(ctx context.Context, db *sql.DB) ([]*models.Project, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, color, icon, task_count, display_order
		 FROM projects ORDER BY display_order, id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	projects := []*models.Project{}
	for rows.Next() {
		p := &models.Project{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Color, &p.Icon, &p.TaskCount, &p.Order); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func loadTasks(ctx context.Context, db *sql.DB) ([]*models.Task, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, title, completed, priority, due_date, project_id, created_at, completed_at
		 FROM tasks ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	tasks := []*models.Task{}
	for rows.Next() {
		var (
			t           models.Task
			priority    string
			dueDate     sql.NullString
			projectID   sql.NullInt64
			createdAt   string
			completedAt sql.NullString
		)
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed, &priority, &dueDate, &projectID, &createdAt, &completedAt); err != nil {
			return nil, err
		}

		t.Priority = models.Priority(priority)
		if dueDate.Valid && dueDate.String != "" {
			d, err := models.ParseDate(dueDate.String)
			if err != nil {
				return nil, fmt.Errorf("task %d: %w", t.ID, err)
			}
			t.DueDate = &d
		}
		if projectID.Valid {
			t.ProjectID = models.IntPtr(int(projectID.Int64))
		}
		if t.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("task %d: bad created_at: %w", t.ID, err)
		}
		if completedAt.Valid && completedAt.String != "" {
			at, err := time.Parse(time.RFC3339Nano, completedAt.String)
			if err != nil {
				return nil, fmt.Errorf("task %d: bad completed_at: %w", t.ID, err)
			}
			t.CompletedAt = &at
		}
		tasks = append(tasks, &t)
	}
	return tasks, rows.Err()
}

func nullDate(d *models.Date) sql.NullString {
	if d == nil || d.IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: d.String(), Valid: true}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(time.RFC3339Nano), Valid: true}
}
