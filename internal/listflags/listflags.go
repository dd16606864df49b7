// Package listflags holds flags shared by commands that print todos.
package listflags

import "github.com/spf13/cobra"

// AddJSONFlag adds a shared --json flag to commands that print todos.
func AddJSONFlag(cmd *cobra.Command, target *bool) {
	if target == nil {
		cmd.Flags().Bool("json", false, "Output as JSON")
		return
	}

	cmd.Flags().BoolVar(target, "json", false, "Output as JSON")
}

// AddSortFlags adds --sort and --order flags that select the derived view
// ordering for a single invocation.
func AddSortFlags(cmd *cobra.Command, sortBy, order *string) {
	cmd.Flags().StringVar(sortBy, "sort", "", "Sort by deadline, updated, priority, or none")
	cmd.Flags().StringVar(order, "order", "", "Sort order (asc or desc)")
}
