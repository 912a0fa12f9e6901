package codegen

import (
	"errors"
	"sync"
)

// DefaultIDLimit bounds the default kernel identifier sequence. Running
// past it means the process is compiling an implausible number of
// kernels and is treated as a configuration error.
const DefaultIDLimit = 10000

// ErrSequenceExhausted is returned when a Sequence has handed out all
// identifiers below its limit.
var ErrSequenceExhausted = errors.New("kernel identifier sequence exhausted")

// Sequence hands out process-unique kernel identifiers. It is safe for
// concurrent use; every identifier below the limit is allocated exactly
// once and never reused.
type Sequence struct {
	mu    sync.Mutex
	next  int
	limit int
}

// NewSequence returns a Sequence counting from zero up to limit
// (exclusive).
func NewSequence(limit int) *Sequence {
	return &Sequence{limit: limit}
}

// Next allocates the next identifier. Once the limit is reached, every
// call fails with ErrSequenceExhausted.
func (s *Sequence) Next() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.next >= s.limit {
		return 0, ErrSequenceExhausted
	}

	id := s.next
	s.next++

	return id, nil
}

// kernelIDs is the process-wide sequence used when a Config does not
// inject its own. Initialized once, never reset.
var kernelIDs = NewSequence(DefaultIDLimit)
