package todo

import (
	"testing"
	"time"
)

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func day(n int) time.Time {
	return baseTime.AddDate(0, 0, n)
}

func newTodo(task string, priority Priority, deadline time.Time) NewTodo {
	return NewTodo{
		Task:      task,
		Priority:  priority,
		Status:    StatusPending,
		DeadLine:  deadline,
		CreatedAt: baseTime,
	}
}

// stateWith builds a state by creating each todo in order.
func stateWith(t *testing.T, todos ...NewTodo) State {
	t.Helper()

	state := InitialState()
	for _, item := range todos {
		state = ApplyAt(state, Create{Todo: item}, baseTime)
	}
	return state
}

func ids(todos []Todo) []int {
	result := make([]int, 0, len(todos))
	for _, item := range todos {
		result = append(result, item.ID)
	}
	return result
}

func tasks(todos []Todo) []string {
	result := make([]string, 0, len(todos))
	for _, item := range todos {
		result = append(result, item.Task)
	}
	return result
}

func equalSlices[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
