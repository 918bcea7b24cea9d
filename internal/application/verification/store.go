package verification

import (
	"sync"
	"time"

	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/domain"
)

// record is one outstanding verification code. A key holds at most one
// record; re-issuing replaces it wholesale.
type record struct {
	code     string
	issuedAt time.Time
}

// Store is a process-wide one-time-code store keyed by requester identifier
// (normally an email address). Codes live for a bounded window and are
// removed on successful consumption. Expiry is checked lazily at consume
// time; an expired record simply keeps failing until a fresh Issue replaces
// it. The store is process-local on purpose: codes do not survive a restart.
type Store struct {
	mu      sync.Mutex
	records map[string]record
	ttl     time.Duration
	now     func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		records: make(map[string]record),
		ttl:     ttl,
		now:     time.Now,
	}
}

// NewStoreWithClock is used by tests to control the expiry window.
func NewStoreWithClock(ttl time.Duration, now func() time.Time) *Store {
	s := NewStore(ttl)
	s.now = now
	return s
}

// Issue stores a code for the identifier, unconditionally replacing any
// outstanding one. The old code can never be consumed afterwards.
func (s *Store) Issue(identifier, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[identifier] = record{code: code, issuedAt: s.now()}
}

// Consume validates and deletes the identifier's code in one step. It
// succeeds only when a record exists, the supplied code matches exactly and
// the record is still inside its window; the record is then removed so a
// replay of the same code fails. On any failed check the record is left
// untouched, so a legitimate retry with the right code can still succeed.
func (s *Store) Consume(identifier, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[identifier]
	if !ok {
		return domain.ErrInvalidCode
	}
	if rec.code != code {
		return domain.ErrInvalidCode
	}
	if s.now().Sub(rec.issuedAt) > s.ttl {
		return domain.ErrInvalidCode
	}

	delete(s.records, identifier)
	return nil
}

// Pending reports whether the identifier currently has an unconsumed record,
// expired or not.
func (s *Store) Pending(identifier string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.records[identifier]
	return ok
}
