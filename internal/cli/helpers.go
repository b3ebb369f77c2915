package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/seed"
	"github.com/thenoetrevino/taskflow/internal/services/project"
	"github.com/thenoetrevino/taskflow/internal/services/task"
)

var colorHex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidateColorHex validates that a color string is in valid hex format #RRGGBB
func ValidateColorHex(color string) error {
	if !colorHex.MatchString(color) {
		return fmt.Errorf("%w: color must be in hex format #RRGGBB (e.g., #FF0000), got: %s",
			models.ErrInvalidInput, color)
	}
	return nil
}

// ParsePriority maps a priority flag value to a priority
func ParsePriority(priority string) (models.Priority, error) {
	p, err := models.ParsePriority(priority)
	if err != nil {
		return "", fmt.Errorf("invalid priority '%s' (must be: low, medium, high): %w", priority, models.ErrInvalidInput)
	}
	return p, nil
}

// ParseDate accepts YYYY-MM-DD or a relative expression such as "today",
// "tomorrow" or "today+3", resolved against now
func ParseDate(s string, now time.Time) (models.Date, error) {
	d, err := seed.ResolveDate(s, now)
	if err != nil {
		return models.Date{}, fmt.Errorf("invalid date '%s' (use YYYY-MM-DD, today, tomorrow or today+N): %w", s, models.ErrInvalidInput)
	}
	return d, nil
}

// ParseID parses a positional task or project id
func ParseID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(arg), "#"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid ID: %s", arg)
	}
	return id, nil
}

// Classify maps an error to an output code and a process exit code
func Classify(err error) (string, int) {
	var batchErr *task.BatchError
	switch {
	case err == nil:
		return "", ExitSuccess
	case errors.As(err, &batchErr):
		return "BATCH_FAILED", ExitValidation
	case errors.Is(err, task.ErrNoValidIDs):
		return "NO_VALID_IDS", ExitValidation
	case errors.Is(err, task.ErrTaskNotFound):
		return "TASK_NOT_FOUND", ExitNotFound
	case errors.Is(err, project.ErrProjectNotFound):
		return "PROJECT_NOT_FOUND", ExitNotFound
	case errors.Is(err, models.ErrNotFound):
		return "NOT_FOUND", ExitNotFound
	case errors.Is(err, project.ErrProjectHasTasks):
		return "PROJECT_HAS_TASKS", ExitValidation
	case errors.Is(err, models.ErrInvalidInput):
		return "INVALID_INPUT", ExitValidation
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "CANCELLED", ExitFailure
	default:
		return "INTERNAL_ERROR", ExitFailure
	}
}

// Fail reports err through the formatter and returns an *ExitError carrying
// the matching exit code
func Fail(formatter *OutputFormatter, err error, suggestion string) error {
	code, exit := Classify(err)
	if fmtErr := formatter.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		slog.Error("failed to format error message", "error", fmtErr)
	}
	return &ExitError{Code: exit, Err: err}
}

// Usage reports a usage error (exit code 2)
func Usage(formatter *OutputFormatter, message string) error {
	if fmtErr := formatter.Error("USAGE_ERROR", message); fmtErr != nil {
		slog.Error("failed to format error message", "error", fmtErr)
	}
	return &ExitError{Code: ExitUsage, Err: errors.New(message)}
}

// ExitCode returns the exit code a failed command should terminate with
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	code, exit := Classify(err)
	if code == "INTERNAL_ERROR" {
		// Unreported errors come from cobra itself: bad flags or arguments
		return ExitUsage
	}
	return exit
}

// FormatterFromFlags builds the formatter from the --json and --quiet flags
func FormatterFromFlags(jsonOutput, quietMode bool) *OutputFormatter {
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}
