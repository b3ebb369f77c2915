package cli

import "fmt"

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates a general error occurred.
	// Use for: cancelled operations, unexpected failures, or any error that
	// doesn't fit the specific categories below.
	ExitFailure = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing arguments, invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: task not found, project not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: unreadable seed files, broken fixture databases.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: invalid priority or date values, batches with no usable id,
	// batches where every id failed.
	ExitValidation = 5
)

// ExitError carries the process exit code for a failed command. The error
// has already been reported to the user when it is returned.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
