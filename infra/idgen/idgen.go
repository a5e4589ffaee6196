package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// UUID generates random version 4 identifiers.
type UUID struct{}

// NewUUID creates a UUID generator.
func NewUUID() UUID { return UUID{} }

// NewID returns a fresh UUID string.
func (UUID) NewID() string {
	return uuid.NewString()
}

// Sequence generates prefixed monotonic identifiers ("local-1", "local-2", ...).
// Safe for concurrent use.
type Sequence struct {
	prefix string
	n      atomic.Uint64
}

// NewSequence creates a Sequence generator with the given prefix.
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// NewID returns the next identifier in the sequence.
func (s *Sequence) NewID() string {
	return fmt.Sprintf("%s-%d", s.prefix, s.n.Add(1))
}
