package todo

import "time"

// Apply reduces action into a new state, using the current time for edits.
func Apply(state State, action Action) State {
	return ApplyAt(state, action, time.Now())
}

// ApplyAt reduces action into a new state. now is the time recorded as
// UpdatedAt by Edit. UpdatedAt never moves backwards, so an edit at a time
// before the todo's UpdatedAt leaves it unchanged.
//
// ApplyAt is total: it never fails, and an action it does not handle
// returns the state unchanged. The input state is never modified and the
// result shares no slices with it.
func ApplyAt(state State, action Action, now time.Time) State {
	next := state.Clone()

	switch action := action.(type) {
	case LoadTodos:
		next.Todos = cloneTodos(action.Todos)

	case Create:
		next.Todos = append(next.Todos, Todo{
			ID:        nextID(next.Todos),
			Task:      action.Todo.Task,
			Priority:  action.Todo.Priority,
			Status:    action.Todo.Status,
			DeadLine:  action.Todo.DeadLine,
			CreatedAt: action.Todo.CreatedAt,
			UpdatedAt: action.Todo.CreatedAt,
		})

	case Remove:
		kept := make([]Todo, 0, len(next.Todos))
		for _, t := range next.Todos {
			if t.ID != action.ID {
				kept = append(kept, t)
			}
		}
		next.Todos = kept

	case Edit:
		for i := range next.Todos {
			if next.Todos[i].ID != action.ID {
				continue
			}
			applyEditPatch(&next.Todos[i], action.Patch)
			if now.After(next.Todos[i].UpdatedAt) {
				next.Todos[i].UpdatedAt = now
			}
		}

	case SetStatus:
		for i := range next.Todos {
			if next.Todos[i].ID == action.ID {
				next.Todos[i].Status = action.Status
			}
		}

	case Filter:
		applyFilterPatch(&next.Filters, action.Patch)

	case Sort:
		next.Sort = action.Options

	case Reorder:
		next.Todos = cloneTodos(action.Todos)

	default:
		return state
	}

	return next
}

// nextID returns one more than the largest ID, or 1 for an empty list.
// IDs freed by Remove can come back once the largest ID is gone.
func nextID(todos []Todo) int {
	if len(todos) == 0 {
		return 1
	}
	highest := todos[0].ID
	for _, t := range todos[1:] {
		highest = max(highest, t.ID)
	}
	return highest + 1
}

func applyEditPatch(t *Todo, patch EditPatch) {
	if patch.Task != nil {
		t.Task = *patch.Task
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.DeadLine != nil {
		t.DeadLine = *patch.DeadLine
	}
}

func applyFilterPatch(f *FilterOptions, patch FilterPatch) {
	if patch.Status != nil {
		f.Status = cloneSlice(*patch.Status)
	}
	if patch.Priority != nil {
		f.Priority = cloneSlice(*patch.Priority)
	}
	if patch.StartDate != nil {
		f.StartDate = cloneTime(patch.StartDate)
	}
	if patch.EndDate != nil {
		f.EndDate = cloneTime(patch.EndDate)
	}
	if patch.ClearStartDate {
		f.StartDate = nil
	}
	if patch.ClearEndDate {
		f.EndDate = nil
	}
}
