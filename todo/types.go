// Package todo implements the state container behind a todo list.
//
// Canonical state (todos, filter selection, sort selection) only changes
// through actions applied by a pure reducer. The list shown to users is
// derived from canonical state on every change by filtering and then
// sorting.
//
// The public API is small:
//   - Apply and ApplyAt reduce an Action into a new State
//   - DeriveView computes the filtered, sorted list for a State
//   - Session owns one State and hands Snapshots to consumers
package todo

import (
	"encoding/json"
	"fmt"
	"strings"

	internalstrings "github.com/amonks/tasklist/internal/strings"
	"github.com/amonks/tasklist/internal/validation"
)

// Priority is the importance of a todo.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM" // default
	PriorityHigh   Priority = "HIGH"
)

// ValidPriorities returns all valid priorities in ascending order.
func ValidPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValid returns true if the priority is a known value.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// Rank returns the sort rank of a priority: LOW < MEDIUM < HIGH.
// Unknown priorities rank with LOW.
func (p Priority) Rank() int {
	switch p {
	case PriorityMedium:
		return 1
	case PriorityHigh:
		return 2
	default:
		return 0
	}
}

// ParsePriority converts user input such as "high" or " Medium " to a Priority.
func ParsePriority(input string) (Priority, error) {
	p := Priority(strings.ToUpper(strings.TrimSpace(input)))
	if !p.IsValid() {
		return "", validation.FormatInvalidValueError(ErrInvalidPriority, Priority(input), ValidPriorities())
	}
	return p, nil
}

// Status is the progress state of a todo.
type Status string

const (
	// StatusPending indicates work has not started.
	StatusPending Status = "pending"

	// StatusInProgress indicates the todo is being worked on.
	StatusInProgress Status = "in_progress"

	// StatusDone indicates the todo is finished.
	StatusDone Status = "done"
)

// ValidStatuses returns all valid status values in workflow order.
func ValidStatuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusDone}
}

// IsValid returns true if the status is a known value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// Next returns the following status in workflow order, wrapping from done
// back to pending.
func (s Status) Next() Status {
	statuses := ValidStatuses()
	for i, status := range statuses {
		if status == s {
			return statuses[(i+1)%len(statuses)]
		}
	}
	return StatusPending
}

// ParseStatus converts user input such as "In Progress" or "in-progress" to a Status.
func ParseStatus(input string) (Status, error) {
	s := Status(internalstrings.NormalizeToken(input))
	if !s.IsValid() {
		return "", validation.FormatInvalidValueError(ErrInvalidStatus, Status(input), ValidStatuses())
	}
	return s, nil
}

// SortKey selects the field the derived view is sorted by.
// The zero value means unsorted.
type SortKey string

const (
	SortNone      SortKey = ""
	SortDeadLine  SortKey = "deadLine"
	SortUpdatedAt SortKey = "updatedAt"
	SortPriority  SortKey = "priority"
)

// ValidSortKeys returns all sort keys, including SortNone.
func ValidSortKeys() []SortKey {
	return []SortKey{SortNone, SortDeadLine, SortUpdatedAt, SortPriority}
}

// IsValid returns true if the key is a known value.
func (k SortKey) IsValid() bool {
	for _, valid := range ValidSortKeys() {
		if k == valid {
			return true
		}
	}
	return false
}

// String returns "none" for SortNone.
func (k SortKey) String() string {
	if k == SortNone {
		return "none"
	}
	return string(k)
}

// MarshalJSON encodes SortNone as null.
func (k SortKey) MarshalJSON() ([]byte, error) {
	if k == SortNone {
		return []byte("null"), nil
	}
	return json.Marshal(string(k))
}

// UnmarshalJSON decodes null as SortNone.
func (k *SortKey) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*k = SortNone
		return nil
	}
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	key := SortKey(value)
	if !key.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidSortKey, value)
	}
	*k = key
	return nil
}

// ParseSortKey converts user input to a SortKey. It accepts the field names
// as well as the short forms "deadline", "due", "updated" and "none".
func ParseSortKey(input string) (SortKey, error) {
	switch internalstrings.NormalizeToken(input) {
	case "", "none":
		return SortNone, nil
	case "deadline", "due", "dead_line":
		return SortDeadLine, nil
	case "updated", "updatedat", "updated_at":
		return SortUpdatedAt, nil
	case "priority":
		return SortPriority, nil
	default:
		return "", fmt.Errorf("%w: %q (must be deadline, updated, priority, or none)", ErrInvalidSortKey, input)
	}
}

// Order is the direction of a sort.
type Order string

const (
	OrderAsc  Order = "ASC"
	OrderDesc Order = "DESC"
)

// ValidOrders returns both sort directions.
func ValidOrders() []Order {
	return []Order{OrderAsc, OrderDesc}
}

// IsValid returns true if the order is a known value.
func (o Order) IsValid() bool {
	return o == OrderAsc || o == OrderDesc
}

// ParseOrder converts user input such as "desc" to an Order.
func ParseOrder(input string) (Order, error) {
	o := Order(strings.ToUpper(strings.TrimSpace(input)))
	if !o.IsValid() {
		return "", validation.FormatInvalidValueError(ErrInvalidOrder, Order(input), ValidOrders())
	}
	return o, nil
}

// MaxTaskLength is the maximum allowed length for a task description, in runes.
const MaxTaskLength = 500
