package cli

import (
	"bufio"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// AddOutputFlags registers the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// Setup reads the output flags and resolves the session for cmd. Callers
// defer Close on the returned CLI.
func Setup(cmd *cobra.Command) (*CLI, *OutputFormatter, error) {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := FormatterFromFlags(jsonOutput, quietMode)
	formatter.Out = cmd.OutOrStdout()
	formatter.Err = cmd.ErrOrStderr()

	cliInstance, err := GetCLIFromContext(cmd.Context())
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("failed to format error message", "error", fmtErr)
		}
		return nil, nil, &ExitError{Code: ExitFailure, Err: err}
	}
	return cliInstance, formatter, nil
}

// CloseQuietly closes c, logging any error
func CloseQuietly(c *CLI) {
	if err := c.Close(); err != nil {
		slog.Error("failed to close CLI", "error", err)
	}
}

// Confirm asks a yes/no question on cmd's input and reports a yes
func Confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s (y/N): ", prompt)

	// Reuse a buffered input so lines after the answer stay unread
	reader, ok := cmd.InOrStdin().(*bufio.Reader)
	if !ok {
		reader = bufio.NewReader(cmd.InOrStdin())
	}

	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		slog.Debug("no confirmation input", "error", err)
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
