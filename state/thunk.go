package state

import (
	"context"
	"fmt"
)

// Thunk turns a side-effecting operation into pending/fulfilled/rejected
// lifecycle events.
type Thunk[T any] struct {
	Type      string
	Run       func(ctx context.Context) (T, error)
	Pending   func() Event
	Fulfilled func(T) Event
	Rejected  func(error) Event
}

// Start returns the pending event right away and a settle func that blocks
// until the operation finishes and returns exactly one terminal event.
// Operation failures become rejected events; they are never reported as
// fulfilled.
func (t Thunk[T]) Start(ctx context.Context) (pending Event, settle func() Event) {
	pending = t.Pending()
	settle = func() Event {
		v, err := t.Run(ctx)
		if err != nil {
			return t.Rejected(err)
		}
		return t.Fulfilled(v)
	}
	return pending, settle
}

// Run dispatches the whole lifecycle of t into s and returns the unwrapped
// result: the value on success, the failure otherwise.
func Run[T any](ctx context.Context, s *Store, t Thunk[T]) (T, error) {
	s.Dispatch(t.Pending())
	v, err := t.Run(ctx)
	if err != nil {
		s.Dispatch(t.Rejected(err))
		var zero T
		return zero, fmt.Errorf("%s: %w", t.Type, err)
	}
	s.Dispatch(t.Fulfilled(v))
	return v, nil
}
