package state

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/amonks/tasklist/internal/logging"
	"github.com/amonks/tasklist/todo"
	"github.com/rs/zerolog"
)

// Store manages the state file with locking.
type Store struct {
	dir    string
	now    func() time.Time
	logger zerolog.Logger
}

// NewStore creates a new state store using the given directory.
func NewStore(dir string, opts Options) *Store {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = logging.Component(*opts.Logger, "state")
	}
	return &Store{dir: dir, now: now, logger: logger}
}

// Dir returns the state directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) statePath() string {
	return filepath.Join(s.dir, StateFile)
}

func (s *Store) lockPath() string {
	return filepath.Join(s.dir, LockFile)
}

// Load reads the state from disk. Returns the initial state if the file
// doesn't exist.
func (s *Store) Load() (todo.State, error) {
	data, err := os.ReadFile(s.statePath())
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Debug().Str("path", s.statePath()).Msg("state file missing, using initial state")
		return todo.InitialState(), nil
	}
	if err != nil {
		return todo.State{}, fmt.Errorf("read state file: %w", err)
	}

	st := todo.InitialState()
	if err := json.Unmarshal(data, &st); err != nil {
		return todo.State{}, fmt.Errorf("unmarshal state: %w", err)
	}

	if st.Todos == nil {
		st.Todos = []todo.Todo{}
	}
	if st.Sort.Order == "" {
		st.Sort.Order = todo.OrderAsc
	}
	if err := todo.ValidateTodos(st.Todos); err != nil {
		return todo.State{}, fmt.Errorf("invalid state file %s: %w", s.statePath(), err)
	}

	s.logger.Debug().Int("todos", len(st.Todos)).Msg("loaded state")
	return st, nil
}

// Save writes the state to disk. The write is skipped when the encoded state
// matches the file contents.
func (s *Store) Save(st todo.State) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	data, err := encodeState(st)
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(s.statePath()); err == nil {
		if bytes.Equal(existing, data) {
			s.logger.Debug().Msg("state unchanged, skipping save")
			return nil
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("read state file: %w", err)
	}

	tmpFile, err := os.CreateTemp(s.dir, StateFile+".tmp")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(data)
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("write temp state file: %w", err)
	}

	if err := os.Rename(name, s.statePath()); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename state file: %w", err)
	}

	s.logger.Debug().Int("todos", len(st.Todos)).Msg("saved state")
	return nil
}

// Session loads the state and wraps it in a session without taking the lock.
// Use it for read-only commands; changes made through the session are not
// persisted.
func (s *Store) Session() (*todo.Session, error) {
	st, err := s.Load()
	if err != nil {
		return nil, err
	}
	return s.newSession(st), nil
}

// Update locks the state file, loads it, hands a session over the loaded
// state to fn and saves the session's final state. Nothing is saved when fn
// returns an error.
func (s *Store) Update(fn func(session *todo.Session) error) error {
	return s.withLock(func() error {
		st, err := s.Load()
		if err != nil {
			return err
		}

		session := s.newSession(st)
		if err := fn(session); err != nil {
			return err
		}

		return s.Save(session.State())
	})
}

// ErrStateChanged is returned by CompareAndReplace when the state file no
// longer holds the state the caller started from.
var ErrStateChanged = errors.New("state file changed since it was read")

// CompareAndReplace saves next under the lock if the state on disk still
// encodes the same as base. Otherwise nothing is written and the error wraps
// ErrStateChanged.
func (s *Store) CompareAndReplace(base, next todo.State) error {
	return s.withLock(func() error {
		current, err := s.Load()
		if err != nil {
			return err
		}
		same, err := sameState(current, base)
		if err != nil {
			return err
		}
		if !same {
			s.logger.Debug().Msg("state changed on disk, refusing to replace")
			return fmt.Errorf("%s: %w", s.statePath(), ErrStateChanged)
		}
		return s.Save(next)
	})
}

func (s *Store) withLock(fn func() error) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	lockFile, err := os.OpenFile(s.lockPath(), os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}
	defer lockFile.Close()

	if err := syscall.Flock(int(lockFile.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer syscall.Flock(int(lockFile.Fd()), syscall.LOCK_UN)

	return fn()
}

func (s *Store) newSession(st todo.State) *todo.Session {
	return todo.NewSession(st, todo.SessionOptions{Now: s.now, Logger: &s.logger})
}

func encodeState(st todo.State) ([]byte, error) {
	if st.Todos == nil {
		st.Todos = []todo.Todo{}
	}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal state: %w", err)
	}
	return append(data, '\n'), nil
}

func sameState(a, b todo.State) (bool, error) {
	encodedA, err := encodeState(a)
	if err != nil {
		return false, err
	}
	encodedB, err := encodeState(b)
	if err != nil {
		return false, err
	}
	return bytes.Equal(encodedA, encodedB), nil
}
