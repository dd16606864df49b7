package todo

import (
	"slices"
	"time"

	"github.com/rs/zerolog"
)

// Snapshot pairs canonical state with the view derived from it.
// Both are copies owned by the receiver.
type Snapshot struct {
	State State
	View  []Todo
}

// Dispatcher accepts actions one at a time.
type Dispatcher interface {
	Dispatch(action Action) Snapshot
}

// SessionOptions configures a Session.
type SessionOptions struct {
	// Now returns the time recorded by edits. If nil, time.Now is used.
	Now func() time.Time

	// Logger receives a debug entry per dispatch. If nil, nothing is logged.
	Logger *zerolog.Logger
}

// Session owns the canonical state for one run of the application and
// recomputes the derived view after every action.
//
// A Session is not safe for concurrent use; confine it to the goroutine
// that drives the UI.
type Session struct {
	state       State
	view        []Todo
	now         func() time.Time
	logger      zerolog.Logger
	subscribers map[int]func(Snapshot)
	nextSubID   int
}

// NewSession creates a session starting from initial.
func NewSession(initial State, opts SessionOptions) *Session {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	state := initial.Clone()
	return &Session{
		state:       state,
		view:        DeriveView(state),
		now:         now,
		logger:      logger,
		subscribers: make(map[int]func(Snapshot)),
	}
}

// Dispatch applies action, recomputes the view, notifies subscribers, and
// returns the resulting snapshot.
func (s *Session) Dispatch(action Action) Snapshot {
	s.state = ApplyAt(s.state, action, s.now())
	s.view = DeriveView(s.state)

	kind := ActionKind("unknown")
	if action != nil {
		kind = action.Kind()
	}
	s.logger.Debug().
		Str("action", string(kind)).
		Int("todos", len(s.state.Todos)).
		Int("view", len(s.view)).
		Msg("dispatch")

	for _, id := range s.subscriberIDs() {
		fn, ok := s.subscribers[id]
		if !ok {
			// Removed by an earlier subscriber during this dispatch.
			continue
		}
		fn(s.Snapshot())
	}

	return s.Snapshot()
}

// State returns a copy of the canonical state.
func (s *Session) State() State {
	return s.state.Clone()
}

// View returns a copy of the derived view.
func (s *Session) View() []Todo {
	return cloneTodos(s.view)
}

// Snapshot returns copies of the canonical state and derived view.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{State: s.State(), View: s.View()}
}

// Subscribe registers fn to receive a snapshot after every dispatch.
// Subscribers run synchronously in registration order. The returned
// function removes the subscription; a subscriber removed during a dispatch
// is not called for that dispatch.
func (s *Session) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	return func() {
		delete(s.subscribers, id)
	}
}

func (s *Session) subscriberIDs() []int {
	ids := make([]int, 0, len(s.subscribers))
	for id := range s.subscribers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
