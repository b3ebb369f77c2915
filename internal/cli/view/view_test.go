package view

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/taskflow/internal/cli"
	taskservice "github.com/thenoetrevino/taskflow/internal/services/task"
	"github.com/thenoetrevino/taskflow/internal/testutil"
	clitest "github.com/thenoetrevino/taskflow/internal/testutil/cli"
	"github.com/thenoetrevino/taskflow/internal/views"
)

// ============================================================================
// TODAY
// ============================================================================

func TestToday_Plain(t *testing.T) {
	t.Parallel()

	app := clitest.SetupCLITest(t)
	out, err := clitest.ExecuteCLICommand(t, app, TodayCmd(), []string{"--plain"})
	require.NoError(t, err)

	assert.Contains(t, out, "Tuesday, January 2, 2024 · 2 task(s)")
	assert.Contains(t, out, "## Overdue (1)")
	assert.Contains(t, out, "- [ ] **#2** Pay rent `medium` · due 2023-12-31 · _Home_")
	assert.Contains(t, out, "## Due today (1)")
	assert.Contains(t, out, "**#1** Write report `high`")
	assert.NotContains(t, out, "Plan sprint")
}

func TestToday_JSON(t *testing.T) {
	t.Parallel()

	app := clitest.SetupCLITest(t)
	out, err := clitest.ExecuteCLICommand(t, app, TodayCmd(), []string{"--json"})
	require.NoError(t, err)

	var view views.TodayView
	testutil.DecodeData(t, out, &view)
	assert.Equal(t, testutil.Today(), view.Date)
	require.Len(t, view.Overdue, 1)
	assert.Equal(t, 2, view.Overdue[0].Task.ID)
	require.NotNil(t, view.Overdue[0].Project)
	assert.Equal(t, "Home", view.Overdue[0].Project.Name)
	require.Len(t, view.DueToday, 1)
}

func TestToday_SearchAndQuiet(t *testing.T) {
	t.Parallel()

	app := clitest.SetupCLITest(t)
	out, err := clitest.ExecuteCLICommand(t, app, TodayCmd(), []string{"--search=work", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestToday_Empty(t *testing.T) {
	t.Parallel()

	app := clitest.SetupCLITest(t)
	_, err := app.TaskService.BulkUpdateTasks(context.Background(), []string{"1", "2"}, completeAll())
	require.NoError(t, err)

	out, err := clitest.ExecuteCLICommand(t, app, TodayCmd(), []string{"--plain"})
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing due")
}

// ============================================================================
// UPCOMING
// ============================================================================

func TestUpcoming_Plain(t *testing.T) {
	t.Parallel()

	app := clitest.SetupCLITest(t)
	out, err := clitest.ExecuteCLICommand(t, app, UpcomingCmd(), []string{"--plain"})
	require.NoError(t, err)

	assert.Contains(t, out, "## Week of January 1, 2024")
	assert.Contains(t, out, "### Mon 1")
	assert.Contains(t, out, "### Tue 2 (today)")
	assert.Contains(t, out, "### Sun 7")
	assert.Contains(t, out, "## All upcoming (1)")
	assert.Contains(t, out, "**#3** Plan sprint `low` · due 2024-01-04 · _Work_")
}

func TestUpcoming_JSONWeek(t *testing.T) {
	t.Parallel()

	app := clitest.SetupCLITest(t)
	out, err := clitest.ExecuteCLICommand(t, app, UpcomingCmd(), []string{"--json"})
	require.NoError(t, err)

	var view views.UpcomingView
	testutil.DecodeData(t, out, &view)
	require.Len(t, view.Week, 7)
	assert.Equal(t, "2024-01-01", view.WeekStart.String())
	assert.True(t, view.Week[1].IsToday)
	require.Len(t, view.Week[3].Tasks, 1, "Thursday")
	assert.Equal(t, 3, view.Week[3].Tasks[0].Task.ID)
}

func TestUpcoming_WeekOnly(t *testing.T) {
	t.Parallel()

	app := clitest.SetupCLITest(t)
	out, err := clitest.ExecuteCLICommand(t, app, UpcomingCmd(), []string{"--plain", "--week"})
	require.NoError(t, err)
	assert.NotContains(t, out, "All upcoming")
}

// ============================================================================
// ARCHIVE
// ============================================================================

func TestArchive_Plain(t *testing.T) {
	t.Parallel()

	app := clitest.SetupCLITest(t)
	out, err := clitest.ExecuteCLICommand(t, app, ArchiveCmd(), []string{"--plain"})
	require.NoError(t, err)

	assert.Contains(t, out, "**1** completed · **1** high priority · **1** day(s)")
	assert.Contains(t, out, "## January 1, 2024")
	assert.Contains(t, out, "- [x] **#5** ~~Send invoice~~ `high`")
}

func TestArchive_JSONGroupsNewestFirst(t *testing.T) {
	t.Parallel()

	app := clitest.SetupCLITest(t)
	_, err := app.TaskService.BulkUpdateTasks(context.Background(), []string{"4"}, completeAll())
	require.NoError(t, err)

	out, err := clitest.ExecuteCLICommand(t, app, ArchiveCmd(), []string{"--json"})
	require.NoError(t, err)

	var view views.ArchiveView
	testutil.DecodeData(t, out, &view)
	require.Len(t, view.Groups, 2)
	assert.Equal(t, "2024-01-02", view.Groups[0].Key)
	assert.Equal(t, "January 2, 2024", view.Groups[0].Label)
	assert.Equal(t, "2024-01-01", view.Groups[1].Key)
	assert.Equal(t, views.ArchiveStats{Total: 2, HighPriority: 1, Days: 2}, view.Stats)
}

func TestArchive_RestoreAll(t *testing.T) {
	t.Parallel()

	app := clitest.SetupCLITest(t)
	out, err := clitest.ExecuteCLICommand(t, app, ArchiveCmd(), []string{"--restore-all", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)

	got, err := app.TaskService.GetTaskByID(context.Background(), 5)
	require.NoError(t, err)
	assert.False(t, got.Completed)
	assert.Nil(t, got.CompletedAt)
}

func TestArchive_ClearAllAsks(t *testing.T) {
	t.Parallel()

	app := clitest.SetupCLITest(t)
	out, _, err := clitest.ExecuteCLICommandWithInput(t, app, ArchiveCmd(), []string{"--clear-all"}, "\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled")

	out, err = clitest.ExecuteCLICommand(t, app, ArchiveCmd(), []string{"--clear-all", "--force"})
	require.NoError(t, err)
	assert.Contains(t, out, "1 task(s) deleted")

	completed, err := app.TaskService.GetCompletedTasks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, completed)

	// An empty archive is not an error
	out, err = clitest.ExecuteCLICommand(t, app, ArchiveCmd(), []string{"--clear-all", "-f"})
	require.NoError(t, err)
	assert.Contains(t, out, "0 task(s) deleted")
}

func TestArchive_ExclusiveFlags(t *testing.T) {
	t.Parallel()

	app := clitest.SetupCLITest(t)
	_, err := clitest.ExecuteCLICommand(t, app, ArchiveCmd(), []string{"--clear-all", "--restore-all"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

// ============================================================================
// SEARCH
// ============================================================================

func TestSearch(t *testing.T) {
	t.Parallel()

	app := clitest.SetupCLITest(t)

	out, err := clitest.ExecuteCLICommand(t, app, SearchCmd(), []string{"high", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "1\n5\n", out, "priority matches")

	out, err = clitest.ExecuteCLICommand(t, app, SearchCmd(), []string{"read", "book", "--plain"})
	require.NoError(t, err)
	assert.Contains(t, out, "# Search: read book")
	assert.Contains(t, out, "1 match(es)")

	out, err = clitest.ExecuteCLICommand(t, app, SearchCmd(), []string{"zebra", "--plain"})
	require.NoError(t, err)
	assert.Contains(t, out, "No tasks match")
}

func completeAll() taskservice.TaskPatch {
	return taskservice.Complete(true)
}
