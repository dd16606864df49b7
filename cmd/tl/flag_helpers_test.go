package main

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/amonks/tasklist/todo"
)

func TestHasChangedFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "example"}
	cmd.Flags().String("task", "", "")
	cmd.Flags().String("priority", "", "")

	if hasChangedFlags(cmd, "task", "priority") {
		t.Fatal("expected no changed flags")
	}

	if err := cmd.Flags().Set("priority", "high"); err != nil {
		t.Fatalf("set priority: %v", err)
	}

	if !hasChangedFlags(cmd, "task", "priority") {
		t.Fatal("expected changed flags")
	}
}

func TestShouldUseEditor(t *testing.T) {
	tests := []struct {
		name        string
		hasFlags    bool
		edit        bool
		noEdit      bool
		interactive bool
		want        bool
	}{
		{name: "interactive default", interactive: true, want: true},
		{name: "not interactive", want: false},
		{name: "flags skip editor", hasFlags: true, interactive: true, want: false},
		{name: "edit forces editor", hasFlags: true, edit: true, want: true},
		{name: "no-edit wins over interactive", noEdit: true, interactive: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shouldUseEditor(tt.hasFlags, tt.edit, tt.noEdit, tt.interactive)
			if got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParseIDs(t *testing.T) {
	ids, err := parseIDs([]string{"3", " 1", "3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 2 || ids[0] != 3 || ids[1] != 1 {
		t.Fatalf("expected [3 1], got %v", ids)
	}

	for _, bad := range []string{"0", "-2", "abc", ""} {
		if _, err := parseIDs([]string{bad}); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestRequireTodosReportsEveryMissingID(t *testing.T) {
	st := todo.InitialState()
	st = todo.ApplyAt(st, todo.Create{Todo: todo.NewTodo{
		Task:     "a",
		Priority: todo.PriorityLow,
		Status:   todo.StatusPending,
		DeadLine: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
	}}, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	items, err := requireTodos(st, []int{1})
	if err != nil || len(items) != 1 || items[0].Task != "a" {
		t.Fatalf("expected todo 1, got %v, %v", items, err)
	}

	_, err = requireTodos(st, []int{4, 1, 5})
	if !errors.Is(err, todo.ErrTodoNotFound) {
		t.Fatalf("expected ErrTodoNotFound, got %v", err)
	}
	if err.Error() != "todo not found: 4, 5" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestParseTimeFlagNamesFlag(t *testing.T) {
	_, err := parseTimeFlag("due", "soon")
	if !errors.Is(err, todo.ErrInvalidTime) {
		t.Fatalf("expected ErrInvalidTime, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "--due: ") {
		t.Fatalf("expected flag name in error, got %q", err.Error())
	}
}

func TestResolveTaskFromStdin(t *testing.T) {
	got, err := resolveTaskFromStdin("-", strings.NewReader("from stdin\r\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "from stdin" {
		t.Fatalf("expected trimmed stdin, got %q", got)
	}

	got, err = resolveTaskFromStdin("literal", strings.NewReader("ignored"))
	if err != nil || got != "literal" {
		t.Fatalf("expected literal task, got %q, %v", got, err)
	}
}
