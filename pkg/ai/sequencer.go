package ai

import "sync"

// Sequencer implements last-request-wins per field: each Begin for a key
// supersedes every earlier request for that key, and Accept reports whether
// a finished request is still the latest. Stale results must be discarded
// by the caller, leaving prior field values untouched.
type Sequencer struct {
	mu  sync.Mutex
	seq map[string]uint64
}

func NewSequencer() *Sequencer {
	return &Sequencer{seq: map[string]uint64{}}
}

// Begin registers a new request for the key and returns its token.
func (s *Sequencer) Begin(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq[key]++
	return s.seq[key]
}

// Accept reports whether the token still identifies the latest request for
// the key.
func (s *Sequencer) Accept(key string, token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq[key] == token
}
