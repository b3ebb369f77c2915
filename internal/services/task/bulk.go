package task

import (
	"context"
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/thenoetrevino/taskflow/internal/events"
	"github.com/thenoetrevino/taskflow/internal/latency"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// BulkUpdateResult lists the tasks a batch update changed and a message
// for every id it could not resolve
type BulkUpdateResult struct {
	Updated []*models.Task `json:"updated"`
	Errors  []string       `json:"errors"`
}

// BulkDeleteResult lists the tasks a batch delete removed and a message
// for every id it could not resolve
type BulkDeleteResult struct {
	Deleted []*models.Task `json:"deleted"`
	Errors  []string       `json:"errors"`
}

// BulkUpdateTasks applies patch to every resolvable id. Missing ids are
// reported in Errors; the call fails only when no id resolves.
func (s *service) BulkUpdateTasks(ctx context.Context, ids []string, patch TaskPatch) (*BulkUpdateResult, error) {
	validIDs := ParseIDs(ids)
	if len(validIDs) == 0 {
		return nil, ErrNoValidIDs
	}
	if err := patch.validate(); err != nil {
		return nil, err
	}

	if err := s.opts.Latency.Wait(ctx, latency.BulkWrite); err != nil {
		return nil, err
	}

	result := &BulkUpdateResult{
		Updated: []*models.Task{},
		Errors:  []string{},
	}

	s.mu.Lock()
	now := s.opts.Now()
	for _, id := range validIDs {
		idx := s.indexOf(id)
		if idx == -1 {
			result.Errors = append(result.Errors, notFoundMessage(id))
			continue
		}
		result.Updated = append(result.Updated, s.applyAt(idx, patch, now))
	}
	s.mu.Unlock()

	if len(result.Updated) == 0 {
		return nil, &BatchError{Messages: result.Errors}
	}

	for _, t := range result.Updated {
		s.publish(events.EventTaskUpdated, t)
	}
	return result, nil
}

// BulkDeleteTasks removes every resolvable id, highest stored position
// first. Missing ids are reported in Errors; the call fails only when no id
// resolves.
func (s *service) BulkDeleteTasks(ctx context.Context, ids []string) (*BulkDeleteResult, error) {
	validIDs := ParseIDs(ids)
	if len(validIDs) == 0 {
		return nil, ErrNoValidIDs
	}

	if err := s.opts.Latency.Wait(ctx, latency.BulkRemove); err != nil {
		return nil, err
	}

	result := &BulkDeleteResult{
		Deleted: []*models.Task{},
		Errors:  []string{},
	}

	s.mu.Lock()
	positions := make(map[int]int, len(validIDs))
	for _, id := range validIDs {
		positions[id] = s.indexOf(id)
	}
	sort.SliceStable(validIDs, func(i, j int) bool {
		return positions[validIDs[i]] > positions[validIDs[j]]
	})

	for _, id := range validIDs {
		idx := s.indexOf(id)
		if idx == -1 {
			result.Errors = append(result.Errors, notFoundMessage(id))
			continue
		}
		result.Deleted = append(result.Deleted, s.removeAt(idx))
	}
	s.mu.Unlock()

	if len(result.Deleted) == 0 {
		return nil, &BatchError{Messages: result.Errors}
	}

	for _, t := range result.Deleted {
		s.publish(events.EventTaskDeleted, t)
	}
	return result, nil
}

// ParseIDs coerces raw identifiers to integers the way a lenient
// leading-integer parse does: surrounding space is ignored, an optional sign
// and the leading run of digits are used, and anything after them is
// discarded ("12abc" is 12). Entries with no leading digits are dropped.
// Digit runs too large for an int saturate and so match no task.
func ParseIDs(raw []string) []int {
	ids := make([]int, 0, len(raw))
	for _, r := range raw {
		if id, ok := parseLeadingInt(r); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// FormatIDs converts integer ids to the raw form accepted by the batch operations
func FormatIDs(ids ...int) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = strconv.Itoa(id)
	}
	return out
}

func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if errors.Is(err, strconv.ErrRange) {
		if s[0] == '-' {
			return math.MinInt, true
		}
		return math.MaxInt, true
	}
	if err != nil {
		return 0, false
	}
	return n, true
}
