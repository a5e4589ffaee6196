package state

import (
	"io"
	"log/slog"
	"sync"
)

// Store owns the application state. Every change goes through Dispatch, which
// applies events one at a time in call order.
type Store struct {
	mu     sync.Mutex
	root   Root
	logger *slog.Logger
}

// NewStore creates an empty store. A nil logger discards logs.
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{logger: logger}
}

// Dispatch reduces ev into the current state.
func (s *Store) Dispatch(ev Event) {
	s.mu.Lock()
	before := s.root
	s.root = Reduce(s.root, ev)
	after := s.root
	s.mu.Unlock()

	s.logger.Debug("dispatch",
		slog.String("type", ev.Type()),
		slog.String("posts_status", after.Posts.Status.String()),
		slog.Int("posts", len(after.Posts.Posts)),
		slog.Int("posts_before", len(before.Posts.Posts)),
	)
	if after.Posts.Status == StatusFailed && before.Posts.Status != StatusFailed {
		s.logger.Warn("posts load failed", slog.String("error", after.Posts.Err))
	}
}

// State returns a snapshot of the current state. Callers must treat the
// slices in it as read-only.
func (s *Store) State() Root {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.root
}
