package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/cli/styles"
	"github.com/thenoetrevino/taskflow/internal/events"
)

const shellPrompt = "taskflow> "

func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run commands against one long-lived session",
		Long: `Read commands line by line and run them against a single in-memory
session, so changes made by one command are visible to the next. Change
events are printed after each command.

Type 'help' for the command list, 'stats' for change event counters and
'exit' or 'quit' to leave.

Example session:
  taskflow> task create --title="Buy milk" --due=today
  taskflow> view today
  taskflow> task bulk complete 1 2 3
`,
		Args: cobra.NoArgs,
		RunE: runShell,
	}
}

func runShell(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	session, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return err
	}

	listenCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	changes, err := session.App.Events.Listen(listenCtx)
	if err != nil {
		return fmt.Errorf("failed to listen for changes: %w", err)
	}

	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	for {
		fmt.Fprint(out, shellPrompt)

		line, readErr := in.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("failed to read input: %w", readErr)
		}

		words, err := splitArgs(line)
		switch {
		case err != nil:
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		case len(words) == 0:
		case words[0] == "exit" || words[0] == "quit":
			return nil
		case words[0] == "shell":
			fmt.Fprintln(cmd.ErrOrStderr(), "Error: already in a shell")
		case words[0] == "stats":
			printStats(out, session.App.Events.Stats())
		default:
			runLine(ctx, cmd, in, words)
			printChanges(out, changes)
		}

		if readErr != nil {
			fmt.Fprintln(out)
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// runLine executes one shell line on a fresh command tree sharing the
// session in ctx. Errors are reported, never fatal to the shell.
func runLine(ctx context.Context, parent *cobra.Command, in *bufio.Reader, words []string) {
	root := NewRootCmd()
	root.SetArgs(words)
	root.SetIn(in)
	root.SetOut(parent.OutOrStdout())
	root.SetErr(parent.ErrOrStderr())

	err := root.ExecuteContext(ctx)
	if err != nil && !reported(err) {
		fmt.Fprintf(parent.ErrOrStderr(), "Error: %v\n", err)
	}
}

// printChanges drains the change events published by the last command
func printChanges(w io.Writer, changes <-chan events.Event) {
	for {
		select {
		case e, ok := <-changes:
			if !ok {
				return
			}
			fmt.Fprintln(w, styles.SubtitleStyle.Render(
				fmt.Sprintf("  · %s #%d (seq %d)", e.Type, e.EntityID, e.SequenceID)))
		default:
			return
		}
	}
}

// printStats writes the change event counters of the session
func printStats(w io.Writer, s events.MetricsSnapshot) {
	fmt.Fprintf(w, "events: %d published, %d delivered, %d dropped, %d listener(s), up %s\n",
		s.Published, s.Delivered, s.Dropped, s.Listeners, s.Uptime)
}

// splitArgs splits a shell line into words. Single and double quotes group
// words and a backslash escapes the next character outside single quotes.
func splitArgs(line string) ([]string, error) {
	var (
		words   []string
		current strings.Builder
		inWord  bool
		quote   rune
		escaped bool
	)

	for _, r := range line {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\' && quote != '\'':
			escaped = true
			inWord = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inWord = true
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			if inWord {
				words = append(words, current.String())
				current.Reset()
				inWord = false
			}
		default:
			current.WriteRune(r)
			inWord = true
		}
	}

	if quote != 0 {
		return nil, fmt.Errorf("unterminated %c quote", quote)
	}
	if escaped {
		return nil, errors.New("trailing backslash")
	}
	if inWord {
		words = append(words, current.String())
	}
	return words, nil
}
