package main

import (
	"strings"
	"testing"
	"time"

	"github.com/amonks/tasklist/todo"
)

func TestFormatTodoTable(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	todos := []todo.Todo{
		{
			ID:        1,
			Task:      "Write report",
			Priority:  todo.PriorityHigh,
			Status:    todo.StatusPending,
			DeadLine:  now.Add(50 * time.Hour),
			CreatedAt: now.Add(-2 * time.Hour),
			UpdatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:        12,
			Task:      "Overdue\nbut done",
			Priority:  todo.PriorityLow,
			Status:    todo.StatusDone,
			DeadLine:  now.Add(-3 * time.Hour),
			CreatedAt: now.Add(-48 * time.Hour),
			UpdatedAt: now.Add(-5 * time.Minute),
		},
	}

	got := formatTodoTable(todos, now)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	want := []string{
		"ID  PRI   STATUS   DUE         UPDATED  TASK",
		"1   HIGH  pending  in 2d       2h ago   Write report",
		"12  LOW   done     3h overdue  5m ago   Overdue but done",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(want), len(lines), got)
	}
	for i := range want {
		if normalizeSpaces(lines[i]) != normalizeSpaces(want[i]) {
			t.Fatalf("line %d:\nexpected %q\ngot      %q", i, want[i], lines[i])
		}
	}
	if strings.Index(lines[0], "PRI") != strings.Index(lines[1], "HIGH") {
		t.Fatalf("expected aligned columns:\n%s", got)
	}
}

func normalizeSpaces(value string) string {
	return strings.Join(strings.Fields(value), " ")
}
