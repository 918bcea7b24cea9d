package verification

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/domain"
)

func TestConsumeHappyPath(t *testing.T) {
	s := NewStore(10 * time.Minute)

	s.Issue("a@x.com", "1234")
	if err := s.Consume("a@x.com", "1234"); err != nil {
		t.Fatalf("expected consume to succeed, got %v", err)
	}
	if s.Pending("a@x.com") {
		t.Error("record should be cleared after successful consume")
	}
}

func TestConsumeFailures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *Store)
		ident string
		code  string
	}{
		{"no prior issue", func(s *Store) {}, "a@x.com", "9999"},
		{"wrong code", func(s *Store) { s.Issue("a@x.com", "1234") }, "a@x.com", "9999"},
		{"wrong identifier", func(s *Store) { s.Issue("a@x.com", "1234") }, "b@x.com", "1234"},
		{"no normalization", func(s *Store) { s.Issue("a@x.com", "1234") }, "a@x.com", " 1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(10 * time.Minute)
			tt.setup(s)

			if err := s.Consume(tt.ident, tt.code); !errors.Is(err, domain.ErrInvalidCode) {
				t.Errorf("expected ErrInvalidCode, got %v", err)
			}
		})
	}
}

func TestFailedConsumeLeavesRecordIntact(t *testing.T) {
	s := NewStore(10 * time.Minute)
	s.Issue("a@x.com", "1234")

	if err := s.Consume("a@x.com", "9999"); !errors.Is(err, domain.ErrInvalidCode) {
		t.Fatalf("expected ErrInvalidCode, got %v", err)
	}

	// A legitimate retry with the right code must still succeed.
	if err := s.Consume("a@x.com", "1234"); err != nil {
		t.Errorf("retry with correct code should succeed, got %v", err)
	}
}

func TestReplayPrevention(t *testing.T) {
	s := NewStore(10 * time.Minute)
	s.Issue("a@x.com", "1234")

	if err := s.Consume("a@x.com", "1234"); err != nil {
		t.Fatalf("first consume should succeed, got %v", err)
	}
	if err := s.Consume("a@x.com", "1234"); !errors.Is(err, domain.ErrInvalidCode) {
		t.Errorf("second consume of the same code should fail, got %v", err)
	}
}

func TestReissueInvalidatesOldCode(t *testing.T) {
	s := NewStore(10 * time.Minute)
	s.Issue("a@x.com", "1111")
	s.Issue("a@x.com", "2222")

	if err := s.Consume("a@x.com", "1111"); !errors.Is(err, domain.ErrInvalidCode) {
		t.Errorf("old code should be invalid after reissue, got %v", err)
	}
	if err := s.Consume("a@x.com", "2222"); err != nil {
		t.Errorf("fresh code should still consume, got %v", err)
	}
}

func TestExpiry(t *testing.T) {
	now := time.Now()
	current := now
	s := NewStoreWithClock(10*time.Minute, func() time.Time { return current })

	s.Issue("a@x.com", "1234")

	// Exactly at the boundary the code is still valid.
	current = now.Add(10 * time.Minute)
	if err := s.Consume("a@x.com", "1234"); err != nil {
		t.Fatalf("code at window boundary should be valid, got %v", err)
	}

	s.Issue("a@x.com", "5678")
	current = now.Add(20*time.Minute + time.Second)
	if err := s.Consume("a@x.com", "5678"); !errors.Is(err, domain.ErrInvalidCode) {
		t.Fatalf("expired code should fail, got %v", err)
	}

	// The expired record stays until a fresh issue replaces it.
	if !s.Pending("a@x.com") {
		t.Error("expired record should not be deleted by a failed consume")
	}
	s.Issue("a@x.com", "9012")
	if err := s.Consume("a@x.com", "9012"); err != nil {
		t.Errorf("fresh code after expiry should succeed, got %v", err)
	}
}

func TestConcurrentConsumeAtMostOnce(t *testing.T) {
	s := NewStore(10 * time.Minute)
	s.Issue("a@x.com", "1234")

	const workers = 32
	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.Consume("a@x.com", "1234"); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if successes != 1 {
		t.Errorf("expected exactly one successful consume, got %d", successes)
	}
}
