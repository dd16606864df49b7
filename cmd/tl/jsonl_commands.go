package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amonks/tasklist/internal/state"
	"github.com/amonks/tasklist/todo"
)

// tl load
var loadCmd = &cobra.Command{
	Use:   "load <file>",
	Short: "Replace all todos with the contents of a JSONL file",
	Long: `Replace all todos with the contents of a JSONL file, one todo per line.
Use "-" to read from stdin. The filter and sort are kept.`,
	Args: cobra.ExactArgs(1),
	RunE: runLoad,
}

// tl export
var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write all todos as JSONL",
	Long: `Write all todos as JSONL, one todo per line, in saved order.
Without a file, or with "-", the todos are written to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(loadCmd, exportCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	var (
		todos []todo.Todo
		err   error
	)
	if args[0] == "-" {
		todos, err = state.ReadJSONLFromReader[todo.Todo](cmd.InOrStdin())
	} else {
		todos, err = state.ReadJSONL[todo.Todo](args[0])
	}
	if err != nil {
		return fmt.Errorf("read todos: %w", err)
	}
	if err := todo.ValidateTodos(todos); err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}

	err = a.store.Update(func(session *todo.Session) error {
		session.Dispatch(todo.LoadTodos{Todos: todos})
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d %s\n", len(todos), pluralTodos(len(todos)))
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	current, err := a.store.Load()
	if err != nil {
		return err
	}

	if len(args) == 0 || args[0] == "-" {
		return state.WriteJSONL(cmd.OutOrStdout(), current.Todos)
	}

	if err := state.WriteJSONLFile(args[0], current.Todos); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d %s to %s\n", len(current.Todos), pluralTodos(len(current.Todos)), args[0])
	return nil
}

func pluralTodos(n int) string {
	if n == 1 {
		return "todo"
	}
	return "todos"
}
