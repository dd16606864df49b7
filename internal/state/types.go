// Package state persists the tasklist state file.
//
// The state file (~/.local/state/tasklist/state.json) stores the canonical
// todo state: the todos, the filter selection and the sort selection. All
// writes are serialized through file locking so that several tl processes
// can share one state directory.
package state

import (
	"time"

	"github.com/rs/zerolog"
)

const (
	// StateFile is the name of the persisted state file.
	StateFile = "state.json"

	// LockFile is the name of the file used for flock.
	LockFile = "state.lock"
)

// Options configures a Store.
type Options struct {
	// Now is the clock handed to sessions created by Update.
	// Defaults to time.Now.
	Now func() time.Time

	// Logger receives debug entries for loads, saves and dispatches.
	// Defaults to a disabled logger.
	Logger *zerolog.Logger
}
