// Package cli holds helpers for CLI command tests. It is separate from
// testutil so that the cli package's own tests can import testutil.
package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskflow/internal/app"
	taskcli "github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/testutil"
)

// SetupCLITest returns an app seeded with testutil.SmallData
func SetupCLITest(t *testing.T) *app.App {
	t.Helper()
	return testutil.NewTestApp(t, testutil.SmallData())
}

// ExecuteCLICommand executes a CLI command against testApp and returns what
// it wrote to stdout. The command runs in a borrowed session, so testApp
// stays usable for assertions afterwards.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	stdout, _, err := ExecuteCLICommandWithInput(t, testApp, cmd, args, "")
	return stdout, err
}

// ExecuteCLICommandWithInput is ExecuteCLICommand with stdin content, and
// it also returns what the command wrote to stderr
func ExecuteCLICommandWithInput(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string, stdin string) (string, string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	testutil.SetupCobraCommand(cmd, args)

	ctx := taskcli.WithApp(context.Background(), testApp)
	err := cmd.ExecuteContext(ctx)

	return stdout.String(), stderr.String(), err
}
