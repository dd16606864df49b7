package main

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/amonks/tasklist/todo"
)

func hasChangedFlags(cmd *cobra.Command, flags ...string) bool {
	for _, flag := range flags {
		if cmd.Flags().Changed(flag) {
			return true
		}
	}
	return false
}

func shouldUseEditor(hasFlags bool, editFlag bool, noEditFlag bool, interactive bool) bool {
	if editFlag {
		return true
	}
	if noEditFlag {
		return false
	}
	if hasFlags {
		return false
	}
	return interactive
}

// parseID parses a positive todo ID argument.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid todo id %q", arg)
	}
	return id, nil
}

// parseIDs parses todo ID arguments, dropping repeats.
func parseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := parseID(arg)
		if err != nil {
			return nil, err
		}
		if slices.Contains(ids, id) {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// requireTodos returns the todos with the given IDs, or an error naming
// every missing ID.
func requireTodos(st todo.State, ids []int) ([]todo.Todo, error) {
	found := make([]todo.Todo, 0, len(ids))
	var missing []int
	for _, id := range ids {
		item, ok := st.Find(id)
		if !ok {
			missing = append(missing, id)
			continue
		}
		found = append(found, item)
	}
	if len(missing) > 0 {
		return nil, todo.NotFoundError(missing...)
	}
	return found, nil
}

func parseTimeFlag(name, value string) (time.Time, error) {
	parsed, err := todo.ParseTime(value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s: %w", name, err)
	}
	return parsed, nil
}

func resolveTaskFromStdin(task string, reader io.Reader) (string, error) {
	if task != "-" {
		return task, nil
	}

	input, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read task from stdin: %w", err)
	}

	return strings.TrimRight(string(input), "\r\n"), nil
}
