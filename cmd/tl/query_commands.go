package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amonks/tasklist/internal/listflags"
	"github.com/amonks/tasklist/todo"
)

// tl ls
var lsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List todos matching the current filter, in the current sort order",
	Long: `List todos matching the current filter, in the current sort order.

--sort and --order change the ordering for this listing only. Use 'tl sort'
to change the saved ordering.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	lsJSON  bool
	lsSort  string
	lsOrder string
)

// tl show
var showCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show detailed information about todos",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runShow,
}

var showJSON bool

func init() {
	rootCmd.AddCommand(lsCmd, showCmd)

	listflags.AddJSONFlag(lsCmd, &lsJSON)
	listflags.AddSortFlags(lsCmd, &lsSort, &lsOrder)
	listflags.AddJSONFlag(showCmd, &showJSON)
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	session, err := a.store.Session()
	if err != nil {
		return err
	}

	snapshot := session.Snapshot()
	if hasChangedFlags(cmd, "sort", "order") {
		options, err := sortOptionsFromFlags(cmd, snapshot.State.Sort)
		if err != nil {
			return err
		}
		snapshot = session.Dispatch(todo.Sort{Options: options})
	}

	out := cmd.OutOrStdout()
	if lsJSON {
		return encodeJSON(out, snapshot.View)
	}
	if len(snapshot.View) == 0 {
		fmt.Fprintln(out, todoEmptyListMessage(len(snapshot.State.Todos)))
		return nil
	}
	fmt.Fprint(out, formatTodoTable(snapshot.View, a.now()))
	return nil
}

func sortOptionsFromFlags(cmd *cobra.Command, current todo.SortOptions) (todo.SortOptions, error) {
	options := current
	if cmd.Flags().Changed("sort") {
		key, err := todo.ParseSortKey(lsSort)
		if err != nil {
			return options, err
		}
		options.SortBy = key
	}
	if cmd.Flags().Changed("order") {
		order, err := todo.ParseOrder(lsOrder)
		if err != nil {
			return options, err
		}
		options.Order = order
	}
	return options, nil
}

func todoEmptyListMessage(total int) string {
	if total == 0 {
		return "No todos found."
	}
	return fmt.Sprintf("No todos found. %d %s hidden by the filter; use 'tl filter --clear' to show them.", total, pluralTodos(total))
}

func runShow(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}

	current, err := a.store.Load()
	if err != nil {
		return err
	}
	items, err := requireTodos(current, ids)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if showJSON {
		return encodeJSON(out, items)
	}
	for i, item := range items {
		if i > 0 {
			fmt.Fprintln(out)
		}
		printTodoDetail(out, item, a.now())
	}
	return nil
}
