package ui

import (
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/amonks/tasklist/todo"
)

var (
	idStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	highStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	mediumStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	lowStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	inProgressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	doneStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	overdueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// ansiEnabled is swapped out in tests.
var ansiEnabled = func() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func render(style lipgloss.Style, value string) string {
	if !ansiEnabled() {
		return value
	}
	return style.Render(value)
}

// FormatID renders a todo ID.
func FormatID(id int) string {
	return render(idStyle, strconv.Itoa(id))
}

// FormatPriority renders a priority, colored by urgency.
func FormatPriority(priority todo.Priority) string {
	switch priority {
	case todo.PriorityHigh:
		return render(highStyle, string(priority))
	case todo.PriorityMedium:
		return render(mediumStyle, string(priority))
	default:
		return render(lowStyle, string(priority))
	}
}

// FormatStatus renders a status. Pending is left plain.
func FormatStatus(status todo.Status) string {
	switch status {
	case todo.StatusInProgress:
		return render(inProgressStyle, string(status))
	case todo.StatusDone:
		return render(doneStyle, string(status))
	default:
		return string(status)
	}
}

// FormatDue renders a deadline relative to now, highlighting overdue todos
// that are not done.
func FormatDue(item todo.Todo, now time.Time) string {
	due := FormatDueShort(item.DeadLine, now)
	if item.Status != todo.StatusDone && !item.DeadLine.IsZero() && item.DeadLine.Before(now) {
		return render(overdueStyle, due)
	}
	return due
}
