package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/taskflow/internal/app"
	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/testutil"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// runShellScript feeds script to the shell running against testApp
func runShellScript(t *testing.T, testApp *app.App, script string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetArgs([]string{"shell"})
	root.SetIn(strings.NewReader(script))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.ExecuteContext(cli.WithApp(context.Background(), testApp))
	return stdout.String(), stderr.String(), err
}

// ============================================================================
// SHELL
// ============================================================================

func TestShell_StateSurvivesAcrossCommands(t *testing.T) {
	t.Parallel()

	testApp := testutil.NewTestApp(t, testutil.SmallData())
	out, stderr, err := runShellScript(t, testApp,
		"task create --title=\"Buy oat milk\" --due=today --quiet\n"+
			"view today --search='oat milk' --quiet\n"+
			"stats\n"+
			"exit\n")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	assert.Contains(t, out, "task_created #6")
	assert.Contains(t, out, "events: 1 published, 2 delivered, 0 dropped, 2 listener(s)")
	assert.Equal(t, 2, strings.Count(out, "taskflow> 6\n"), "today view sees the new task")

	got, err := testApp.TaskService.GetTaskByID(context.Background(), 6)
	require.NoError(t, err)
	assert.Equal(t, "Buy oat milk", got.Title)
}

func TestShell_ErrorsDoNotEndSession(t *testing.T) {
	t.Parallel()

	testApp := testutil.NewTestApp(t, testutil.SmallData())
	out, stderr, err := runShellScript(t, testApp,
		"task show 99\n"+
			"task frobnicate\n"+
			"task create --title=\"unterminated\n"+
			"shell\n"+
			"view today --quiet\n"+
			"quit\n")
	require.NoError(t, err)

	assert.Contains(t, stderr, "Error: task not found")
	assert.Contains(t, stderr, "unterminated \" quote")
	assert.Contains(t, stderr, "already in a shell")
	assert.Contains(t, out, "2\n1\n")
}

func TestShell_ConfirmationReadsNextLine(t *testing.T) {
	t.Parallel()

	testApp := testutil.NewTestApp(t, testutil.SmallData())
	out, _, err := runShellScript(t, testApp,
		"task delete 4\n"+
			"y\n"+
			"task list --quiet\n")
	require.NoError(t, err, "EOF ends the shell cleanly")

	assert.Contains(t, out, "Task 4 deleted successfully")
	assert.Contains(t, out, "task_deleted #4")
	assert.Contains(t, out, "1\n2\n3\n5\n")
}

func TestSplitArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want []string
	}{
		{"", nil},
		{"   \n", nil},
		{"task list\n", []string{"task", "list"}},
		{`task create --title="Buy milk"`, []string{"task", "create", "--title=Buy milk"}},
		{`view search 'a "quoted" word'`, []string{"view", "search", `a "quoted" word`}},
		{`task create --title=It\'s`, []string{"task", "create", "--title=It's"}},
		{`a "" b`, []string{"a", "", "b"}},
		{"a\tb", []string{"a", "b"}},
	}

	for _, tt := range tests {
		got, err := splitArgs(tt.line)
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.want, got, tt.line)
	}

	_, err := splitArgs(`say "hi`)
	assert.Error(t, err)
	_, err = splitArgs(`trailing \`)
	assert.Error(t, err)
}

// ============================================================================
// ROOT
// ============================================================================

func TestRoot_OpensSessionFromFlags(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)

	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(
		"latency:\n  scale: 0\nlog:\n  file: "+filepath.Join(dir, "taskflow.log")+"\n"), 0o644))

	seedPath := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(seedPath, []byte(
		"projects:\n  - id: 4\n    name: Garden\n"+
			"tasks:\n  - id: 9\n    title: Water plants\n    due_date: today\n    project_id: 4\n"), 0o644))

	opts := &rootOptions{}
	defer opts.close()

	var stdout bytes.Buffer
	root := newRootCmd(opts)
	root.SetOut(&stdout)
	root.SetArgs([]string{"view", "today", "--quiet", "--config", configPath, "--seed", seedPath})

	require.NoError(t, root.ExecuteContext(context.Background()))
	assert.Equal(t, "9\n", stdout.String())
	require.NotNil(t, opts.session, "root owns the session it opened")
}

func TestRoot_BadSeedIsDataError(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)

	opts := &rootOptions{}
	defer opts.close()

	var stderr bytes.Buffer
	root := newRootCmd(opts)
	root.SetErr(&stderr)
	root.SetArgs([]string{"task", "list", "--no-latency", "--seed", filepath.Join(dir, "missing.yaml")})

	err := root.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Equal(t, cli.ExitDataErr, cli.ExitCode(err))
	assert.Contains(t, stderr.String(), "failed to load seed data")
	assert.Nil(t, opts.session)
}
