package todo

import (
	"cmp"
	"slices"
	"time"
)

// DeriveView returns the todos to show for state: the priority filter and
// the deadline range filter are applied in that order, then the selected
// sort. The result is a new slice; state is not modified.
//
// Status filters are stored in FilterOptions but not applied here.
func DeriveView(state State) []Todo {
	view := cloneTodos(state.Todos)

	if len(state.Filters.Priority) > 0 {
		view = slices.DeleteFunc(view, func(t Todo) bool {
			return !slices.Contains(state.Filters.Priority, t.Priority)
		})
	}

	start, end := state.Filters.StartDate, state.Filters.EndDate
	if start != nil || end != nil {
		view = slices.DeleteFunc(view, func(t Todo) bool {
			return !withinRange(t.DeadLine, start, end)
		})
	}

	if compare := comparator(state.Sort); compare != nil {
		slices.SortStableFunc(view, compare)
	}

	return view
}

// withinRange reports whether target lies within the inclusive bounds.
// A nil bound is open.
func withinRange(target time.Time, start, end *time.Time) bool {
	if start != nil && target.Before(*start) {
		return false
	}
	if end != nil && target.After(*end) {
		return false
	}
	return true
}

func comparator(sort SortOptions) func(a, b Todo) int {
	var compare func(a, b Todo) int
	switch sort.SortBy {
	case SortDeadLine:
		compare = func(a, b Todo) int { return a.DeadLine.Compare(b.DeadLine) }
	case SortUpdatedAt:
		compare = func(a, b Todo) int { return a.UpdatedAt.Compare(b.UpdatedAt) }
	case SortPriority:
		compare = func(a, b Todo) int { return cmp.Compare(a.Priority.Rank(), b.Priority.Rank()) }
	default:
		return nil
	}

	if sort.Order == OrderDesc {
		return func(a, b Todo) int { return compare(b, a) }
	}
	return compare
}
