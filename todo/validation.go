package todo

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	// ErrEmptyTask is returned when a task description is empty.
	ErrEmptyTask = errors.New("task cannot be empty")

	// ErrTaskTooLong is returned when a task description exceeds MaxTaskLength.
	ErrTaskTooLong = errors.New("task exceeds maximum length")

	// ErrInvalidStatus is returned when an invalid status is provided.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidPriority is returned when an invalid priority is provided.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidSortKey is returned when an unknown sort key is provided.
	ErrInvalidSortKey = errors.New("invalid sort key")

	// ErrInvalidOrder is returned when a sort order is neither ASC nor DESC.
	ErrInvalidOrder = errors.New("invalid sort order")

	// ErrMissingDeadLine is returned when a todo is created without a deadline.
	ErrMissingDeadLine = errors.New("deadline is required")

	// ErrInvalidDateRange is returned when a filter's start date is after its end date.
	ErrInvalidDateRange = errors.New("start date is after end date")

	// ErrInvalidTime is returned when a time value matches none of the accepted layouts.
	ErrInvalidTime = errors.New("invalid time")

	// ErrTodoNotFound is returned when a todo with the given ID doesn't exist.
	ErrTodoNotFound = errors.New("todo not found")
)

// ValidateTask checks if the task description is valid.
func ValidateTask(task string) error {
	if strings.TrimSpace(task) == "" {
		return ErrEmptyTask
	}
	if n := utf8.RuneCountInString(task); n > MaxTaskLength {
		return fmt.Errorf("%w: %d > %d", ErrTaskTooLong, n, MaxTaskLength)
	}
	return nil
}

// ValidateNewTodo checks the fields of a todo about to be created.
func ValidateNewTodo(t NewTodo) error {
	if err := ValidateTask(t.Task); err != nil {
		return err
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	if t.DeadLine.IsZero() {
		return ErrMissingDeadLine
	}
	return nil
}

// ValidateEditPatch checks the fields set on an edit.
func ValidateEditPatch(p EditPatch) error {
	if p.Task != nil {
		if err := ValidateTask(*p.Task); err != nil {
			return err
		}
	}
	if p.Priority != nil && !p.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, *p.Priority)
	}
	if p.Status != nil && !p.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, *p.Status)
	}
	if p.DeadLine != nil && p.DeadLine.IsZero() {
		return ErrMissingDeadLine
	}
	return nil
}

// ValidateFilters checks a complete filter selection.
func ValidateFilters(f FilterOptions) error {
	for _, s := range f.Status {
		if !s.IsValid() {
			return fmt.Errorf("%w: %q", ErrInvalidStatus, s)
		}
	}
	for _, p := range f.Priority {
		if !p.IsValid() {
			return fmt.Errorf("%w: %q", ErrInvalidPriority, p)
		}
	}
	if f.StartDate != nil && f.EndDate != nil && f.StartDate.After(*f.EndDate) {
		return fmt.Errorf("%w: %s > %s", ErrInvalidDateRange, f.StartDate.Format(MinuteLayout), f.EndDate.Format(MinuteLayout))
	}
	return nil
}

// ValidateSort checks a sort selection.
func ValidateSort(s SortOptions) error {
	if !s.SortBy.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidSortKey, s.SortBy)
	}
	if !s.Order.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidOrder, s.Order)
	}
	return nil
}

// ValidateTodo checks a stored todo, for example one read from a JSONL file.
func ValidateTodo(t *Todo) error {
	if t.ID <= 0 {
		return fmt.Errorf("id must be positive, got %d", t.ID)
	}
	if err := ValidateTask(t.Task); err != nil {
		return err
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	if t.UpdatedAt.Before(t.CreatedAt) {
		return fmt.Errorf("updatedAt %s is before createdAt %s", t.UpdatedAt.Format(time.RFC3339), t.CreatedAt.Format(time.RFC3339))
	}
	return nil
}

// ValidateTodos checks every todo and rejects duplicate IDs.
func ValidateTodos(todos []Todo) error {
	seen := make(map[int]bool, len(todos))
	for i := range todos {
		if err := ValidateTodo(&todos[i]); err != nil {
			return fmt.Errorf("todo %d: %w", todos[i].ID, err)
		}
		if seen[todos[i].ID] {
			return fmt.Errorf("duplicate todo id %d", todos[i].ID)
		}
		seen[todos[i].ID] = true
	}
	return nil
}

// NotFoundError reports the given IDs as missing, wrapping ErrTodoNotFound.
func NotFoundError(ids ...int) error {
	if len(ids) == 0 {
		return nil
	}
	formatted := make([]string, 0, len(ids))
	for _, id := range ids {
		formatted = append(formatted, fmt.Sprint(id))
	}
	return fmt.Errorf("%w: %s", ErrTodoNotFound, strings.Join(formatted, ", "))
}
