package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/amonks/tasklist/internal/editor"
	"github.com/amonks/tasklist/internal/ui"
	"github.com/amonks/tasklist/todo"
)

// tl add
var addCmd = &cobra.Command{
	Use:   "add [task]",
	Short: "Create a todo",
	Long: `Create a todo.

Priority and status default to the [defaults] section of the config file.
A deadline is required.

By default, opens $EDITOR on a TOML representation of the todo when running
interactively and neither a task nor field flags are given. Use --no-edit to
skip the editor, or --edit to force it. Pass "-" as the task to read it from
stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

var (
	addPriority string
	addStatus   string
	addDue      string
	addEdit     bool
	addNoEdit   bool
)

// tl edit
var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a todo",
	Long: `Edit a todo. Fields without a flag are left unchanged.

By default, opens $EDITOR when running interactively and no field flags are
given. Use --no-edit to skip the editor, or --edit to force it.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var (
	editTask     string
	editPriority string
	editStatus   string
	editDue      string
	editEdit     bool
	editNoEdit   bool
)

// tl status
var statusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Set the status of a todo (pending, in_progress, done)",
	Args:  cobra.ExactArgs(2),
	RunE:  runStatus,
}

// tl rm
var rmCmd = &cobra.Command{
	Use:     "rm <id>...",
	Aliases: []string{"remove"},
	Short:   "Remove one or more todos",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runRemove,
}

func init() {
	rootCmd.AddCommand(addCmd, editCmd, statusCmd, rmCmd)

	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "Priority (LOW, MEDIUM, HIGH)")
	addCmd.Flags().StringVarP(&addStatus, "status", "s", "", "Status (pending, in_progress, done)")
	addCmd.Flags().StringVarP(&addDue, "due", "d", "", "Deadline (RFC 3339, 2006-01-02T15:04, or 2006-01-02)")
	addCmd.Flags().BoolVarP(&addEdit, "edit", "e", false, "Open $EDITOR (default if interactive)")
	addCmd.Flags().BoolVar(&addNoEdit, "no-edit", false, "Do not open $EDITOR")

	editCmd.Flags().StringVarP(&editTask, "task", "t", "", "New task text (use '-' to read from stdin)")
	editCmd.Flags().StringVarP(&editPriority, "priority", "p", "", "New priority (LOW, MEDIUM, HIGH)")
	editCmd.Flags().StringVarP(&editStatus, "status", "s", "", "New status (pending, in_progress, done)")
	editCmd.Flags().StringVarP(&editDue, "due", "d", "", "New deadline")
	editCmd.Flags().BoolVarP(&editEdit, "edit", "e", false, "Open $EDITOR (default if interactive)")
	editCmd.Flags().BoolVar(&editNoEdit, "no-edit", false, "Do not open $EDITOR")

	addTaskFlagAliases(editCmd)
	addDueFlagAliases(addCmd, editCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	priority, err := a.config.DefaultPriority()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("priority") {
		if priority, err = todo.ParsePriority(addPriority); err != nil {
			return err
		}
	}

	status, err := a.config.DefaultStatus()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("status") {
		if status, err = todo.ParseStatus(addStatus); err != nil {
			return err
		}
	}

	var deadline time.Time
	if cmd.Flags().Changed("due") {
		if deadline, err = parseTimeFlag("due", addDue); err != nil {
			return err
		}
	}

	task := ""
	if len(args) > 0 {
		if task, err = resolveTaskFromStdin(args[0], cmd.InOrStdin()); err != nil {
			return err
		}
	}

	hasFlags := len(args) > 0 || hasChangedFlags(cmd, "priority", "status", "due")
	var newTodo todo.NewTodo
	if shouldUseEditor(hasFlags, addEdit, addNoEdit, editor.IsInteractive()) {
		data := editor.DefaultCreateData(priority, status, deadline)
		data.Task = task
		parsed, err := editor.EditTodo(data, time.Local)
		if err != nil {
			return err
		}
		newTodo = parsed.ToNewTodo(a.now())
	} else {
		if task == "" {
			return fmt.Errorf("task is required (use --edit to open editor)")
		}
		if deadline.IsZero() {
			return fmt.Errorf("%w (use --due)", todo.ErrMissingDeadLine)
		}
		newTodo = todo.NewTodo{
			Task:      task,
			Priority:  priority,
			Status:    status,
			DeadLine:  deadline,
			CreatedAt: a.now(),
		}
	}

	if err := todo.ValidateNewTodo(newTodo); err != nil {
		return err
	}

	var created todo.Todo
	err = a.store.Update(func(session *todo.Session) error {
		snapshot := session.Dispatch(todo.Create{Todo: newTodo})
		created = snapshot.State.Todos[len(snapshot.State.Todos)-1]
		return nil
	})
	if err != nil {
		return err
	}

	a.logger.Info().Int("id", created.ID).Msg("created todo")
	fmt.Fprintf(cmd.OutOrStdout(), "Created todo %s: %s\n", ui.FormatID(created.ID), created.Task)
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}

	patch, err := editPatchFromFlags(cmd)
	if err != nil {
		return err
	}

	hasFlags := hasChangedFlags(cmd, "task", "priority", "status", "due")
	if shouldUseEditor(hasFlags, editEdit, editNoEdit, editor.IsInteractive()) {
		current, err := a.store.Load()
		if err != nil {
			return err
		}
		if _, err := requireTodos(current, []int{id}); err != nil {
			return err
		}

		// Seed the editor with the flag values already applied.
		preview := todo.ApplyAt(current, todo.Edit{ID: id, Patch: patch}, a.now())
		item, _ := preview.Find(id)
		parsed, err := editor.EditTodo(editor.DataFromTodo(item), time.Local)
		if err != nil {
			return err
		}
		patch = parsed.ToEditPatch()
	} else if !hasFlags {
		return errors.New("at least one field flag is required (use --edit to open editor)")
	}

	if err := todo.ValidateEditPatch(patch); err != nil {
		return err
	}

	var updated todo.Todo
	err = a.store.Update(func(session *todo.Session) error {
		if _, err := requireTodos(session.State(), []int{id}); err != nil {
			return err
		}
		snapshot := session.Dispatch(todo.Edit{ID: id, Patch: patch})
		updated, _ = snapshot.State.Find(id)
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %s\n", ui.FormatID(updated.ID), updated.Task)
	return nil
}

func editPatchFromFlags(cmd *cobra.Command) (todo.EditPatch, error) {
	var patch todo.EditPatch

	if cmd.Flags().Changed("task") {
		task, err := resolveTaskFromStdin(editTask, cmd.InOrStdin())
		if err != nil {
			return patch, err
		}
		patch.Task = &task
	}
	if cmd.Flags().Changed("priority") {
		priority, err := todo.ParsePriority(editPriority)
		if err != nil {
			return patch, err
		}
		patch.Priority = &priority
	}
	if cmd.Flags().Changed("status") {
		status, err := todo.ParseStatus(editStatus)
		if err != nil {
			return patch, err
		}
		patch.Status = &status
	}
	if cmd.Flags().Changed("due") {
		deadline, err := parseTimeFlag("due", editDue)
		if err != nil {
			return patch, err
		}
		patch.DeadLine = &deadline
	}

	return patch, nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	status, err := todo.ParseStatus(args[1])
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}

	var updated todo.Todo
	err = a.store.Update(func(session *todo.Session) error {
		if _, err := requireTodos(session.State(), []int{id}); err != nil {
			return err
		}
		snapshot := session.Dispatch(todo.SetStatus{ID: id, Status: status})
		updated, _ = snapshot.State.Find(id)
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Todo %s is %s: %s\n", ui.FormatID(updated.ID), ui.FormatStatus(updated.Status), updated.Task)
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}

	var removed []todo.Todo
	err = a.store.Update(func(session *todo.Session) error {
		items, err := requireTodos(session.State(), ids)
		if err != nil {
			return err
		}
		for _, item := range items {
			session.Dispatch(todo.Remove{ID: item.ID})
		}
		removed = items
		return nil
	})
	if err != nil {
		return err
	}

	for _, item := range removed {
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s: %s\n", ui.FormatID(item.ID), item.Task)
	}
	return nil
}
