package browse

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/amonks/tasklist/internal/ui"
	"github.com/amonks/tasklist/todo"
)

type todoItem struct {
	todo todo.Todo
}

func (item todoItem) FilterValue() string {
	return item.todo.Task
}

type todoItemDelegate struct {
	now           func() time.Time
	normalStyle   lipgloss.Style
	selectedStyle lipgloss.Style
	doneStyle     lipgloss.Style
}

func newTodoItemDelegate(now func() time.Time) todoItemDelegate {
	return todoItemDelegate{
		now:           now,
		normalStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		selectedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")),
		doneStyle:     valueMuted,
	}
}

func (d todoItemDelegate) Height() int                             { return 1 }
func (d todoItemDelegate) Spacing() int                            { return 0 }
func (d todoItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d todoItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(todoItem)
	if !ok {
		return
	}

	line := formatTodoItem(item.todo, m.Width(), d.now())
	style := d.normalStyle
	if index == m.Index() {
		style = d.selectedStyle
	} else if item.todo.Status == todo.StatusDone {
		style = d.doneStyle
	} else if item.todo.Priority == todo.PriorityHigh {
		style = highPriorityStyle
	}
	fmt.Fprint(w, style.Render(line))
}

// formatTodoItem renders one list row, truncated to width display cells.
func formatTodoItem(item todo.Todo, width int, now time.Time) string {
	task := strings.Join(strings.Fields(item.Task), " ")
	meta := fmt.Sprintf("%-6s %s", item.Priority, ui.FormatDueShort(item.DeadLine, now))
	line := fmt.Sprintf("%s %3d  %s  (%s)", statusMarker(item.Status), item.ID, task, meta)
	if width <= 0 {
		return line
	}
	return runewidth.Truncate(line, width, "…")
}

func statusMarker(status todo.Status) string {
	switch status {
	case todo.StatusInProgress:
		return "[~]"
	case todo.StatusDone:
		return "[x]"
	default:
		return "[ ]"
	}
}
