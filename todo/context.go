package todo

import (
	"context"
	"errors"
)

// ErrNoSession is returned when a session is looked up in a context that
// does not carry one. It indicates a wiring mistake at the call site.
var ErrNoSession = errors.New("cannot find todo state: no session in context")

type sessionKey struct{}

// WithSession returns a context carrying s.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the session installed by WithSession.
func SessionFromContext(ctx context.Context) (*Session, error) {
	if ctx == nil {
		return nil, ErrNoSession
	}
	s, ok := ctx.Value(sessionKey{}).(*Session)
	if !ok || s == nil {
		return nil, ErrNoSession
	}
	return s, nil
}

// DispatcherFromContext returns the write handle of the session installed
// by WithSession.
func DispatcherFromContext(ctx context.Context) (Dispatcher, error) {
	s, err := SessionFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s, nil
}
