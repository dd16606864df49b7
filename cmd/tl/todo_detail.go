package main

import (
	"fmt"
	"io"
	"time"

	"github.com/amonks/tasklist/internal/markdown"
	"github.com/amonks/tasklist/internal/ui"
	"github.com/amonks/tasklist/todo"
)

const todoDetailLineWidth = 80

// printTodoDetail prints detailed information about a todo.
func printTodoDetail(w io.Writer, t todo.Todo, now time.Time) {
	fmt.Fprintf(w, "ID:       %s\n", ui.FormatID(t.ID))
	fmt.Fprintf(w, "Priority: %s\n", ui.FormatPriority(t.Priority))
	fmt.Fprintf(w, "Status:   %s\n", ui.FormatStatus(t.Status))
	fmt.Fprintf(w, "Due:      %s (%s)\n", ui.FormatTimestamp(t.DeadLine), ui.FormatDue(t, now))
	fmt.Fprintf(w, "Created:  %s\n", ui.FormatTimestamp(t.CreatedAt))
	fmt.Fprintf(w, "Updated:  %s\n", ui.FormatTimestamp(t.UpdatedAt))
	fmt.Fprintf(w, "\nTask:\n%s\n", formatTodoTask(t.Task))
}

func formatTodoTask(value string) string {
	rendered := markdown.SafeRender(todoDetailLineWidth, 2, value)
	if rendered == "" {
		return "  -"
	}
	return rendered
}
