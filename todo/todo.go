package todo

import (
	"slices"
	"time"
)

// Todo represents a single task.
type Todo struct {
	// ID is unique among the live todos and assigned by the reducer on create.
	ID int `json:"id"`

	// Task is the description of the work.
	Task string `json:"task"`

	// Priority is the importance level.
	Priority Priority `json:"priority"`

	// Status is the progress state.
	Status Status `json:"status"`

	// DeadLine is when the task is due.
	DeadLine time.Time `json:"deadLine"`

	// CreatedAt is when the todo was created. It never changes.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the todo was last edited.
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewTodo holds the fields supplied when creating a todo. The reducer
// assigns the ID and sets UpdatedAt to CreatedAt.
type NewTodo struct {
	Task      string
	Priority  Priority
	Status    Status
	DeadLine  time.Time
	CreatedAt time.Time
}

// FilterOptions is the current filter selection.
type FilterOptions struct {
	// Status lists the statuses to include. Empty means no status filtering.
	Status []Status `json:"status"`

	// Priority lists the priorities to include. Empty means no priority filtering.
	Priority []Priority `json:"priority"`

	// StartDate is the inclusive lower bound on DeadLine (nil = unbounded).
	StartDate *time.Time `json:"startDate"`

	// EndDate is the inclusive upper bound on DeadLine (nil = unbounded).
	EndDate *time.Time `json:"endDate"`
}

// SortOptions is the current sort selection.
type SortOptions struct {
	SortBy SortKey `json:"sortBy"`
	Order  Order   `json:"order"`
}

// State is the canonical state of a todo list.
type State struct {
	Todos   []Todo        `json:"todos"`
	Filters FilterOptions `json:"filters"`
	Sort    SortOptions   `json:"sort"`
}

// InitialState returns an empty todo list with no filters and no sort.
func InitialState() State {
	return State{
		Todos: []Todo{},
		Filters: FilterOptions{
			Status:   []Status{},
			Priority: []Priority{},
		},
		Sort: SortOptions{
			SortBy: SortNone,
			Order:  OrderAsc,
		},
	}
}

// Clone returns a deep copy of the state. The copy shares no slices or
// pointers with s.
func (s State) Clone() State {
	return State{
		Todos:   cloneTodos(s.Todos),
		Filters: s.Filters.Clone(),
		Sort:    s.Sort,
	}
}

// Clone returns a deep copy of the filter options.
func (f FilterOptions) Clone() FilterOptions {
	return FilterOptions{
		Status:    cloneSlice(f.Status),
		Priority:  cloneSlice(f.Priority),
		StartDate: cloneTime(f.StartDate),
		EndDate:   cloneTime(f.EndDate),
	}
}

// Find returns the todo with the given ID.
func (s State) Find(id int) (Todo, bool) {
	for _, t := range s.Todos {
		if t.ID == id {
			return t, true
		}
	}
	return Todo{}, false
}

func cloneTodos(todos []Todo) []Todo {
	if todos == nil {
		return []Todo{}
	}
	return slices.Clone(todos)
}

func cloneSlice[T any](values []T) []T {
	if values == nil {
		return []T{}
	}
	return slices.Clone(values)
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	value := *t
	return &value
}
