package project

import (
	"fmt"

	"github.com/thenoetrevino/taskflow/internal/models"
)

// Domain errors for project service
var (
	// Business logic errors
	ErrProjectNotFound = fmt.Errorf("project %w", models.ErrNotFound)

	// ErrProjectHasTasks is the advisory guard callers apply before deleting;
	// the store itself never returns it
	ErrProjectHasTasks = fmt.Errorf("%w: cannot delete project with tasks", models.ErrInvalidInput)
)
