package todo

import "time"

// ActionKind names an action for logging and display.
type ActionKind string

const (
	KindLoadTodos ActionKind = "LOAD_TODOS"
	KindCreate    ActionKind = "CREATE"
	KindRemove    ActionKind = "REMOVE"
	KindEdit      ActionKind = "EDIT"
	KindStatus    ActionKind = "STATUS"
	KindFilter    ActionKind = "FILTER"
	KindSort      ActionKind = "SORT"
	KindReorder   ActionKind = "REORDER"
)

// Action is a request to transition canonical state.
//
// The set of actions is closed: only the types in this package implement
// Action, and Apply handles each of them.
type Action interface {
	Kind() ActionKind
	action()
}

// LoadTodos replaces the todo list wholesale. Loading an empty list clears
// the collection.
type LoadTodos struct {
	Todos []Todo
}

// Create appends a new todo. The ID is one more than the largest existing
// ID, or 1 when the list is empty.
type Create struct {
	Todo NewTodo
}

// Remove deletes the todo with ID. Removing a missing ID is a no-op.
type Remove struct {
	ID int
}

// EditPatch holds the fields to change on an edit.
// Nil pointers mean "don't update this field".
type EditPatch struct {
	Task     *string
	Priority *Priority
	Status   *Status
	DeadLine *time.Time
}

// Edit merges Patch into the todo with ID and refreshes its UpdatedAt.
// Editing a missing ID is a no-op.
type Edit struct {
	ID    int
	Patch EditPatch
}

// SetStatus changes only the status of the todo with ID. Unlike Edit it
// leaves UpdatedAt alone.
type SetStatus struct {
	ID     int
	Status Status
}

// FilterPatch holds the filter fields to change.
// Nil pointers mean "keep the current value".
type FilterPatch struct {
	Status   *[]Status
	Priority *[]Priority

	StartDate *time.Time
	EndDate   *time.Time

	// ClearStartDate and ClearEndDate remove a bound. They take precedence
	// over StartDate and EndDate.
	ClearStartDate bool
	ClearEndDate   bool
}

// Filter shallow-merges Patch into the current filters.
type Filter struct {
	Patch FilterPatch
}

// Sort replaces the sort selection wholesale.
type Sort struct {
	Options SortOptions
}

// Reorder replaces the todo list with an already reordered sequence, as
// produced by drag and drop.
type Reorder struct {
	Todos []Todo
}

func (LoadTodos) Kind() ActionKind { return KindLoadTodos }
func (Create) Kind() ActionKind    { return KindCreate }
func (Remove) Kind() ActionKind    { return KindRemove }
func (Edit) Kind() ActionKind      { return KindEdit }
func (SetStatus) Kind() ActionKind { return KindStatus }
func (Filter) Kind() ActionKind    { return KindFilter }
func (Sort) Kind() ActionKind      { return KindSort }
func (Reorder) Kind() ActionKind   { return KindReorder }

func (LoadTodos) action() {}
func (Create) action()    {}
func (Remove) action()    {}
func (Edit) action()      {}
func (SetStatus) action() {}
func (Filter) action()    {}
func (Sort) action()      {}
func (Reorder) action()   {}

// PriorityPtr returns a pointer to the provided priority.
func PriorityPtr(p Priority) *Priority {
	return &p
}

// StatusPtr returns a pointer to the provided status.
func StatusPtr(s Status) *Status {
	return &s
}

// StringPtr returns a pointer to the provided string.
func StringPtr(s string) *string {
	return &s
}

// TimePtr returns a pointer to the provided time.
func TimePtr(t time.Time) *time.Time {
	return &t
}

// Priorities returns a pointer to the given priority set, for FilterPatch.
func Priorities(values ...Priority) *[]Priority {
	set := append([]Priority{}, values...)
	return &set
}

// Statuses returns a pointer to the given status set, for FilterPatch.
func Statuses(values ...Status) *[]Status {
	set := append([]Status{}, values...)
	return &set
}
