package models

import (
	"fmt"
	"strings"
)

// Priority is the urgency of a task
type Priority string

// Priorities lists every valid priority, lowest first
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Valid reports whether p is one of the known priorities
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func (p Priority) String() string {
	return string(p)
}

// ParsePriority maps a case-insensitive name to its Priority
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: priority %q (must be: low, medium, high)", ErrInvalidInput, s)
	}
	return p, nil
}
