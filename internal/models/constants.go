package models

// ============================================================================
// PRIORITY CONSTANTS
// ============================================================================

// Priority constants
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultPriority is assigned to tasks created without a priority
const DefaultPriority = PriorityMedium

// ============================================================================
// PROJECT DEFAULTS
// ============================================================================

// Project defaults applied at creation time
const (
	DefaultProjectName  = "Untitled Project"
	DefaultProjectColor = "#5B4FDB"
	DefaultProjectIcon  = "Folder"
)

// DateLayout is the ISO calendar date layout used for due dates
const DateLayout = "2006-01-02"
