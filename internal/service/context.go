package service

import (
	"errors"
	"log"
	"sync"
)

// ErrNoContext is returned by Take when the mailbox slot is empty.
var ErrNoContext = errors.New("no context available")

// ContextService is the single-slot handoff mailbox: one client deposits an
// opaque context document, another picks it up exactly once. There is one
// slot for the whole process, no expiry and no per-client identity. The
// stored value is arbitrary decoded JSON; the mailbox never inspects it.
//
// The mutex serializes Send and Take so that at most one value is pending at
// any instant and a pending value can be consumed by exactly one reader.
type ContextService struct {
	mu      sync.Mutex
	blob    interface{}
	present bool
}

// NewContextService creates an empty mailbox.
func NewContextService() *ContextService {
	return &ContextService{}
}

// Send stores blob in the slot, replacing any value already there, and
// reports whether an unconsumed value was replaced. A replace is logged but
// is not an error: the newest context always wins.
func (s *ContextService) Send(blob interface{}) (replaced bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	replaced = s.present
	if replaced {
		log.Println("context mailbox: replacing unconsumed context")
	}
	s.blob = blob
	s.present = true
	return replaced
}

// Take returns the pending context and empties the slot in one step. When
// the slot is empty it fails with ErrNoContext. Two concurrent calls can
// never both receive the same value.
func (s *ContextService) Take() (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.present {
		return nil, ErrNoContext
	}
	blob := s.blob
	s.blob = nil
	s.present = false
	return blob, nil
}
