package main

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/amonks/tasklist/internal/ui"
	"github.com/amonks/tasklist/todo"
)

// tl filter
var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Show or change the saved filter",
	Long: `Show or change the saved filter.

Only the flags given are changed; the rest of the filter is kept. Pass an
empty value (--priority "") to clear a set, and --clear-from or --clear-to
to drop a date bound. --clear resets the whole filter. Without flags the
current filter is printed.

Todos are listed when their priority is in the priority set and their
deadline lies within the date range, bounds included. The status set is
saved but does not hide todos.`,
	Args: cobra.NoArgs,
	RunE: runFilter,
}

var (
	filterPriorities []string
	filterStatuses   []string
	filterFrom       string
	filterTo         string
	filterClearFrom  bool
	filterClearTo    bool
	filterClear      bool
)

// tl sort
var sortCmd = &cobra.Command{
	Use:   "sort <deadline|updated|priority|none>",
	Short: "Change the saved sort order",
	Args:  cobra.ExactArgs(1),
	RunE:  runSort,
}

var (
	sortDesc  bool
	sortOrder string
)

// tl move
var moveCmd = &cobra.Command{
	Use:   "move <id> <position>",
	Short: "Move a todo to a 1-based position in the saved order",
	Args:  cobra.ExactArgs(2),
	RunE:  runMove,
}

func init() {
	rootCmd.AddCommand(filterCmd, sortCmd, moveCmd)

	filterCmd.Flags().StringSliceVarP(&filterPriorities, "priority", "p", nil, "Priorities to show (repeatable or comma-separated)")
	filterCmd.Flags().StringSliceVarP(&filterStatuses, "status", "s", nil, "Statuses to record (repeatable or comma-separated)")
	filterCmd.Flags().StringVar(&filterFrom, "from", "", "Earliest deadline to show")
	filterCmd.Flags().StringVar(&filterTo, "to", "", "Latest deadline to show")
	filterCmd.Flags().BoolVar(&filterClearFrom, "clear-from", false, "Drop the earliest deadline bound")
	filterCmd.Flags().BoolVar(&filterClearTo, "clear-to", false, "Drop the latest deadline bound")
	filterCmd.Flags().BoolVar(&filterClear, "clear", false, "Reset the whole filter")

	sortCmd.Flags().BoolVar(&sortDesc, "desc", false, "Sort descending")
	sortCmd.Flags().StringVar(&sortOrder, "order", "", "Sort order (asc or desc)")
	sortCmd.MarkFlagsMutuallyExclusive("desc", "order")
}

func runFilter(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	if !hasChangedFlags(cmd, "priority", "status", "from", "to", "clear-from", "clear-to", "clear") {
		current, err := a.store.Load()
		if err != nil {
			return err
		}
		printFilters(cmd.OutOrStdout(), current.Filters)
		return nil
	}

	patch, err := filterPatchFromFlags(cmd)
	if err != nil {
		return err
	}

	var filters todo.FilterOptions
	err = a.store.Update(func(session *todo.Session) error {
		snapshot := session.Dispatch(todo.Filter{Patch: patch})
		if err := todo.ValidateFilters(snapshot.State.Filters); err != nil {
			return err
		}
		filters = snapshot.State.Filters
		return nil
	})
	if err != nil {
		return err
	}

	printFilters(cmd.OutOrStdout(), filters)
	return nil
}

func filterPatchFromFlags(cmd *cobra.Command) (todo.FilterPatch, error) {
	if filterClear {
		return todo.FilterPatch{
			Priority:       todo.Priorities(),
			Status:         todo.Statuses(),
			ClearStartDate: true,
			ClearEndDate:   true,
		}, nil
	}

	patch := todo.FilterPatch{
		ClearStartDate: filterClearFrom,
		ClearEndDate:   filterClearTo,
	}
	if cmd.Flags().Changed("priority") {
		priorities := make([]todo.Priority, 0, len(filterPriorities))
		for _, value := range filterPriorities {
			priority, err := todo.ParsePriority(value)
			if err != nil {
				return patch, err
			}
			if !slices.Contains(priorities, priority) {
				priorities = append(priorities, priority)
			}
		}
		patch.Priority = todo.Priorities(priorities...)
	}
	if cmd.Flags().Changed("status") {
		statuses := make([]todo.Status, 0, len(filterStatuses))
		for _, value := range filterStatuses {
			status, err := todo.ParseStatus(value)
			if err != nil {
				return patch, err
			}
			if !slices.Contains(statuses, status) {
				statuses = append(statuses, status)
			}
		}
		patch.Status = todo.Statuses(statuses...)
	}
	if cmd.Flags().Changed("from") {
		from, err := parseTimeFlag("from", filterFrom)
		if err != nil {
			return patch, err
		}
		patch.StartDate = &from
	}
	if cmd.Flags().Changed("to") {
		to, err := parseTimeFlag("to", filterTo)
		if err != nil {
			return patch, err
		}
		patch.EndDate = &to
	}
	return patch, nil
}

func printFilters(w io.Writer, filters todo.FilterOptions) {
	fmt.Fprintf(w, "priority: %s\n", joinOrAll(filters.Priority))
	fmt.Fprintf(w, "status:   %s\n", joinOrAll(filters.Status))
	fmt.Fprintf(w, "from:     %s\n", formatBound(filters.StartDate))
	fmt.Fprintf(w, "to:       %s\n", formatBound(filters.EndDate))
}

func joinOrAll[T ~string](values []T) string {
	if len(values) == 0 {
		return "all"
	}
	parts := make([]string, 0, len(values))
	for _, value := range values {
		parts = append(parts, string(value))
	}
	return strings.Join(parts, ",")
}

func formatBound(bound *time.Time) string {
	if bound == nil {
		return "-"
	}
	return ui.FormatTimestamp(*bound)
}

func runSort(cmd *cobra.Command, args []string) error {
	key, err := todo.ParseSortKey(args[0])
	if err != nil {
		return err
	}
	order := todo.OrderAsc
	if sortDesc {
		order = todo.OrderDesc
	}
	if cmd.Flags().Changed("order") {
		if order, err = todo.ParseOrder(sortOrder); err != nil {
			return err
		}
	}

	a, err := openApp()
	if err != nil {
		return err
	}

	options := todo.SortOptions{SortBy: key, Order: order}
	err = a.store.Update(func(session *todo.Session) error {
		session.Dispatch(todo.Sort{Options: options})
		return nil
	})
	if err != nil {
		return err
	}

	if key == todo.SortNone {
		fmt.Fprintln(cmd.OutOrStdout(), "Sort: none")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Sort: %s %s\n", key, order)
	return nil
}

func runMove(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	position, err := parseID(args[1])
	if err != nil {
		return fmt.Errorf("invalid position %q", args[1])
	}

	a, err := openApp()
	if err != nil {
		return err
	}

	err = a.store.Update(func(session *todo.Session) error {
		reordered, err := moveTodo(session.State().Todos, id, position)
		if err != nil {
			return err
		}
		session.Dispatch(todo.Reorder{Todos: reordered})
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Moved %s to position %d\n", ui.FormatID(id), position)
	return nil
}

// moveTodo returns a copy of todos with the todo id placed at the 1-based
// position.
func moveTodo(todos []todo.Todo, id, position int) ([]todo.Todo, error) {
	index := slices.IndexFunc(todos, func(t todo.Todo) bool { return t.ID == id })
	if index < 0 {
		return nil, todo.NotFoundError(id)
	}
	if position < 1 || position > len(todos) {
		return nil, fmt.Errorf("position %d out of range (1-%d)", position, len(todos))
	}

	item := todos[index]
	reordered := slices.Delete(slices.Clone(todos), index, index+1)
	return slices.Insert(reordered, position-1, item), nil
}
