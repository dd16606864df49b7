package main

import (
	"time"

	"github.com/amonks/tasklist/internal/ui"
	"github.com/amonks/tasklist/todo"
)

// formatTodoTable renders todos in view order.
func formatTodoTable(todos []todo.Todo, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "PRI", "STATUS", "DUE", "UPDATED", "TASK"}, len(todos))

	for _, t := range todos {
		builder.AddRow([]string{
			ui.FormatID(t.ID),
			ui.FormatPriority(t.Priority),
			ui.FormatStatus(t.Status),
			ui.FormatDue(t, now),
			ui.FormatTimeAgo(t.UpdatedAt, now),
			ui.TruncateTableCell(t.Task),
		})
	}

	return builder.String()
}
