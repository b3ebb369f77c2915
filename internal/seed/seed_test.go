package seed

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/taskflow/internal/models"
)

var now = time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC)

func TestDefault_Loads(t *testing.T) {
	data, err := Default(now)
	require.NoError(t, err)

	assert.Len(t, data.Projects, 3)
	assert.Len(t, data.Tasks, 10)

	first := data.Tasks[0]
	require.NotNil(t, first.DueDate)
	assert.Equal(t, "2024-01-02", first.DueDate.String(), "today resolves against now")
	assert.Equal(t, models.PriorityHigh, first.Priority)

	overdue := data.Tasks[1]
	assert.Equal(t, "2024-01-01", overdue.DueDate.String())
}

func TestDefault_CompletedTasksCarryCompletedAt(t *testing.T) {
	data, err := Default(now)
	require.NoError(t, err)

	for _, task := range data.Tasks {
		if task.Completed {
			assert.NotNil(t, task.CompletedAt, "task %d", task.ID)
		}
	}
}

func TestParse_RelativeAndAbsoluteDates(t *testing.T) {
	raw := []byte(`
tasks:
  - id: 1
    title: relative
    due_date: today+3
    created_at: today-1
  - id: 2
    title: absolute
    priority: low
    due_date: "2023-12-25"
    created_at: "2023-12-01T10:00:00Z"
    completed: true
    completed_at: "2023-12-24"
`)
	data, err := Parse(raw, now)
	require.NoError(t, err)
	require.Len(t, data.Tasks, 2)

	rel := data.Tasks[0]
	assert.Equal(t, "2024-01-05", rel.DueDate.String())
	assert.Equal(t, models.PriorityMedium, rel.Priority, "priority defaults to medium")
	assert.Equal(t, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), rel.CreatedAt)

	abs := data.Tasks[1]
	assert.Equal(t, "2023-12-25", abs.DueDate.String())
	assert.Equal(t, time.Date(2023, 12, 1, 10, 0, 0, 0, time.UTC), abs.CreatedAt.UTC())
	require.NotNil(t, abs.CompletedAt)
	assert.Equal(t, time.Date(2023, 12, 24, 12, 0, 0, 0, time.UTC), *abs.CompletedAt)
	assert.NotNil(t, data.Projects, "projects default to an empty slice")
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"duplicate task ids", "tasks:\n  - id: 1\n  - id: 1\n"},
		{"zero task id", "tasks:\n  - id: 0\n"},
		{"bad priority", "tasks:\n  - id: 1\n    priority: urgent\n"},
		{"bad relative date", "tasks:\n  - id: 1\n    due_date: today+x\n"},
		{"duplicate project ids", "projects:\n  - id: 2\n  - id: 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw), now)
			require.Error(t, err)
			assert.True(t, errors.Is(err, models.ErrInvalidInput), "got %v", err)
		})
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse([]byte("tasks: [unclosed"), now)
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("projects:\n  - id: 9\n    name: Solo\n    order: 1\n"), 0o644))

	data, err := LoadFile(path, now)
	require.NoError(t, err)
	require.Len(t, data.Projects, 1)
	assert.Equal(t, "Solo", data.Projects[0].Name)
	assert.Empty(t, data.Tasks)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), now)
	assert.Error(t, err)
}

func TestEncode_RoundTripsOnAnotherDay(t *testing.T) {
	data, err := Default(now)
	require.NoError(t, err)

	raw, err := Encode(data)
	require.NoError(t, err)

	// Relative dates were frozen, so a later "now" changes nothing
	later := now.AddDate(0, 0, 30)
	back, err := Parse(raw, later)
	require.NoError(t, err)

	require.Len(t, back.Tasks, len(data.Tasks))
	require.Len(t, back.Projects, len(data.Projects))
	for i, want := range data.Tasks {
		got := back.Tasks[i]
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.DueDate, got.DueDate)
		assert.Equal(t, want.ProjectID, got.ProjectID)
		assert.True(t, want.CreatedAt.Equal(got.CreatedAt), "task %d created_at", want.ID)
		if want.CompletedAt != nil {
			require.NotNil(t, got.CompletedAt)
			assert.True(t, want.CompletedAt.Equal(*got.CompletedAt))
		}
	}
	assert.Equal(t, data.Projects[0].Name, back.Projects[0].Name)
}
