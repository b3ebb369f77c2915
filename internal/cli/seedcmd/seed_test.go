package seedcmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/database"
	"github.com/thenoetrevino/taskflow/internal/seed"
	"github.com/thenoetrevino/taskflow/internal/testutil"
	clitest "github.com/thenoetrevino/taskflow/internal/testutil/cli"
)

func TestExport_YAMLRoundTrip(t *testing.T) {
	t.Parallel()

	app := clitest.SetupCLITest(t)
	path := filepath.Join(t.TempDir(), "tasks.yaml")

	out, err := clitest.ExecuteCLICommand(t, app, ExportCmd(), []string{"--yaml=" + path})
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 2 project(s) and 5 task(s)")

	// Absolute dates survive a reload on another day
	data, err := seed.LoadFile(path, testutil.FixedNow.AddDate(0, 1, 0))
	require.NoError(t, err)
	require.Len(t, data.Tasks, 5)
	assert.Equal(t, "2023-12-31", data.Tasks[1].DueDate.String())
	assert.True(t, data.Tasks[4].Completed)
}

func TestExport_YAMLToStdout(t *testing.T) {
	t.Parallel()

	app := clitest.SetupCLITest(t)
	out, err := clitest.ExecuteCLICommand(t, app, ExportCmd(), []string{"--yaml=-"})
	require.NoError(t, err)
	assert.Contains(t, out, "projects:")
	assert.Contains(t, out, "Write report")
	assert.NotContains(t, out, "Exported")
}

func TestExport_SQLite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	app := clitest.SetupCLITest(t)
	path := filepath.Join(t.TempDir(), "tasks.db")

	_, err := app.TaskService.DeleteTask(ctx, 4)
	require.NoError(t, err)

	out, err := clitest.ExecuteCLICommand(t, app, ExportCmd(), []string{"--sqlite=" + path, "--json"})
	require.NoError(t, err)

	var written []Summary
	testutil.DecodeData(t, out, &written)
	require.Len(t, written, 1)
	assert.Equal(t, Summary{Path: path, Format: "sqlite", Projects: 2, Tasks: 4}, written[0])

	data, err := database.LoadFile(ctx, path)
	require.NoError(t, err)
	assert.Len(t, data.Tasks, 4)
	assert.Len(t, data.Projects, 2)
}

func TestExport_RequiresTarget(t *testing.T) {
	t.Parallel()

	app := clitest.SetupCLITest(t)
	_, err := clitest.ExecuteCLICommand(t, app, ExportCmd(), nil)
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestCheck(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()

	data, err := seed.Default(time.Now())
	require.NoError(t, err)

	yamlPath := filepath.Join(dir, "fixtures.yaml")
	raw, err := seed.Encode(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(yamlPath, raw, 0o644))

	dbPath := filepath.Join(dir, "fixtures.sqlite")
	db, err := database.Open(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, database.WriteFixtures(ctx, db, data))
	require.NoError(t, db.Close())

	for path, format := range map[string]string{yamlPath: "yaml", dbPath: "sqlite"} {
		cmd := CheckCmd()
		out, err := clitest.ExecuteCLICommand(t, clitest.SetupCLITest(t), cmd, []string{path, "--json"})
		require.NoError(t, err)

		var summary Summary
		testutil.DecodeData(t, out, &summary)
		assert.Equal(t, format, summary.Format)
		assert.Equal(t, len(data.Projects), summary.Projects)
		assert.Equal(t, len(data.Tasks), summary.Tasks)
	}
}

func TestCheck_BadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tasks:\n  - id: 1\n    priority: urgent\n"), 0o644))

	out, err := clitest.ExecuteCLICommand(t, clitest.SetupCLITest(t), CheckCmd(), []string{path, "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitDataErr, cli.ExitCode(err))
	assert.Contains(t, out, "INVALID_INPUT")
}
