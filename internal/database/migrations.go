package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the fixture schema if it does not exist
func runMigrations(ctx context.Context, db *sql.DB) error {
	// Create projects table
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS projects (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			color TEXT NOT NULL DEFAULT '',
			icon TEXT NOT NULL DEFAULT '',
			task_count INTEGER NOT NULL DEFAULT 0,
			display_order INTEGER NOT NULL DEFAULT 0
		)
	`)
	if err != nil {
		return err
	}

	// Create tasks table. project_id is deliberately not a foreign key:
	// tasks may outlive their project.
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY,
			title TEXT NOT NULL DEFAULT '',
			completed INTEGER NOT NULL DEFAULT 0,
			priority TEXT NOT NULL DEFAULT 'medium',
			due_date TEXT,
			project_id INTEGER,
			created_at TEXT NOT NULL,
			completed_at TEXT
		)
	`)
	if err != nil {
		return err
	}

	// Create index for project lookups
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_tasks_project
		ON tasks(project_id)
	`)
	return err
}
