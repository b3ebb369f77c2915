// Package testutil holds helpers shared by tests across packages
package testutil

import (
	"testing"
	"time"

	"github.com/thenoetrevino/taskflow/internal/app"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/seed"
)

// FixedNow is the clock every test app runs on. It is a Tuesday, so the
// upcoming week starts on Monday 2024-01-01.
var FixedNow = time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC)

// Clock returns FixedNow
func Clock() time.Time { return FixedNow }

// Today is the calendar day of FixedNow
func Today() models.Date { return models.DateOf(FixedNow) }

// Due parses a YYYY-MM-DD date into a pointer, for fixture literals
func Due(s string) *models.Date {
	return models.DatePtr(models.MustParseDate(s))
}

// NewTestApp creates an app over data (the embedded fixtures when nil) with
// a fixed clock and no latency. It is closed when the test ends.
func NewTestApp(t *testing.T, data *seed.Data) *app.App {
	t.Helper()

	if data == nil {
		var err error
		data, err = seed.Default(FixedNow)
		if err != nil {
			t.Fatalf("Failed to load default fixtures: %v", err)
		}
	}

	a := app.New(data, app.WithClock(Clock))
	t.Cleanup(func() {
		if err := a.Close(); err != nil {
			t.Logf("Failed to close app: %v", err)
		}
	})
	return a
}

// SmallData is a compact fixture set: two projects and five tasks covering
// overdue, today, upcoming, undated and completed
func SmallData() *seed.Data {
	completedAt := time.Date(2024, 1, 1, 17, 0, 0, 0, time.UTC)
	return &seed.Data{
		Projects: []*models.Project{
			{ID: 1, Name: "Work", Color: "#5B4FDB", Icon: "Briefcase", TaskCount: 3, Order: 1},
			{ID: 2, Name: "Home", Color: "#10B981", Icon: "Home", TaskCount: 1, Order: 2},
		},
		Tasks: []*models.Task{
			{ID: 1, Title: "Write report", Priority: models.PriorityHigh, DueDate: Due("2024-01-02"), ProjectID: models.IntPtr(1), CreatedAt: FixedNow},
			{ID: 2, Title: "Pay rent", Priority: models.PriorityMedium, DueDate: Due("2023-12-31"), ProjectID: models.IntPtr(2), CreatedAt: FixedNow},
			{ID: 3, Title: "Plan sprint", Priority: models.PriorityLow, DueDate: Due("2024-01-04"), ProjectID: models.IntPtr(1), CreatedAt: FixedNow},
			{ID: 4, Title: "Read book", Priority: models.PriorityLow, CreatedAt: FixedNow},
			{ID: 5, Title: "Send invoice", Priority: models.PriorityHigh, Completed: true, ProjectID: models.IntPtr(1), CreatedAt: FixedNow, CompletedAt: &completedAt},
		},
	}
}
