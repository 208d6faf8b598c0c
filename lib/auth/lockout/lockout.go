// Package lockout tracks failed login attempts per key (normally the login
// email) in process memory. A key locks after maxAttempts failures inside
// the window and unlocks once the window since the last failure has passed;
// stale entries are pruned on access.
package lockout

import (
	"sync"
	"time"
)

type Store struct {
	mu          sync.Mutex
	attempts    map[string][]time.Time
	maxAttempts int
	window      time.Duration
	now         func() time.Time
}

func New(maxAttempts int, window time.Duration) *Store {
	return &Store{
		attempts:    map[string][]time.Time{},
		maxAttempts: maxAttempts,
		window:      window,
		now:         time.Now,
	}
}

// Allowed reports whether a login attempt for the key may proceed and, when
// locked, how long until the lock expires.
func (s *Store) Allowed(key string) (allowed bool, retryAfter time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recent := s.prune(key)
	if len(recent) < s.maxAttempts {
		return true, 0
	}
	last := recent[len(recent)-1]
	return false, s.window - s.now().Sub(last)
}

// Fail records a failed attempt for the key.
func (s *Store) Fail(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attempts[key] = append(s.prune(key), s.now())
}

// Reset clears the key after a successful login.
func (s *Store) Reset(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.attempts, key)
}

// prune drops attempts outside the window. Caller holds the mutex.
func (s *Store) prune(key string) []time.Time {
	cutoff := s.now().Add(-s.window)
	kept := s.attempts[key][:0]
	for _, at := range s.attempts[key] {
		if at.After(cutoff) {
			kept = append(kept, at)
		}
	}
	if len(kept) == 0 {
		delete(s.attempts, key)
		return nil
	}
	s.attempts[key] = kept
	return kept
}
