package main

import (
	"github.com/spf13/cobra"

	"github.com/amonks/tasklist/internal/browse"
	"github.com/amonks/tasklist/todo"
)

// tl browse
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive todo browser",
	Long: `Open the interactive todo browser.

Changes made in the browser are saved as they happen. If another tl
command changes the todos while the browser is open, the browser reloads
them instead of overwriting the change. Press r to reload, ? for help.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	session, err := a.store.Session()
	if err != nil {
		return err
	}

	// base is the state last read from or written to disk. Saves are refused
	// once the file no longer matches it.
	base := session.State()
	ctx := todo.WithSession(cmd.Context(), session)
	return browse.Run(ctx, browse.Options{
		Now: a.now,
		OnChange: func(snapshot todo.Snapshot) error {
			if err := a.store.CompareAndReplace(base, snapshot.State); err != nil {
				return err
			}
			base = snapshot.State
			return nil
		},
		Reload: func() (*todo.Session, error) {
			session, err := a.store.Session()
			if err != nil {
				return nil, err
			}
			base = session.State()
			return session, nil
		},
	})
}
