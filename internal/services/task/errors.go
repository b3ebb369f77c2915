package task

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/taskflow/internal/models"
)

// Task-related errors
var (
	// Validation errors
	ErrInvalidProjectID = fmt.Errorf("%w: project ID must be positive", models.ErrInvalidInput)
	ErrInvalidPriority  = fmt.Errorf("%w: priority must be one of low, medium, high", models.ErrInvalidInput)
	ErrConflictingPatch = fmt.Errorf("%w: a field cannot be both set and cleared", models.ErrInvalidInput)

	// Batch errors
	ErrNoValidIDs = fmt.Errorf("%w: no valid task IDs provided", models.ErrInvalidInput)

	// Business logic errors
	ErrTaskNotFound = fmt.Errorf("task %w", models.ErrNotFound)
)

// BatchError reports a batch operation in which no id could be applied.
// Its message joins every per-id failure; it unwraps to models.ErrInvalidInput.
type BatchError struct {
	Messages []string
}

func (e *BatchError) Error() string {
	return strings.Join(e.Messages, ", ")
}

func (e *BatchError) Unwrap() error {
	return models.ErrInvalidInput
}

func notFoundMessage(id int) string {
	return fmt.Sprintf("Task with ID %d not found", id)
}
