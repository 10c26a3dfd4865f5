package resilience

import (
	"errors"
	"testing"
	"time"
)

func TestBreaker_Transitions(t *testing.T) {
	b := NewBreaker(BreakerConfig{FailureThreshold: 2, OpenTimeout: 5 * time.Second, HalfOpenProbes: 1})

	now := time.Date(2022, 5, 29, 14, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	if err := b.Allow(); err != nil {
		t.Fatalf("expected allow in closed state: %v", err)
	}

	b.Failure()
	if state := b.State(); state != StateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	b.Failure()
	if state := b.State(); state != StateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}

	now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected second probe to be rejected, got %v", err)
	}

	b.Success()
	if state := b.State(); state != StateClosed {
		t.Fatalf("expected closed after successful probe, got %s", state)
	}
}

func TestBreaker_DoIgnoresUnclassifiedErrors(t *testing.T) {
	b := NewBreaker(BreakerConfig{FailureThreshold: 1})
	notFound := errors.New("not found")

	err := b.Do(func() error { return notFound }, func(err error) bool { return !errors.Is(err, notFound) })
	if !errors.Is(err, notFound) {
		t.Fatalf("expected fn error, got %v", err)
	}
	if state := b.State(); state != StateClosed {
		t.Fatalf("expected closed breaker, got %s", state)
	}

	_ = b.Do(func() error { return errors.New("connection reset") }, nil)
	if state := b.State(); state != StateOpen {
		t.Fatalf("expected open breaker, got %s", state)
	}
}

func TestBreakerConfigDefaults(t *testing.T) {
	cfg := BreakerConfig{}.normalized()
	if cfg != DefaultBreakerConfig() {
		t.Fatalf("unexpected normalized config: %+v", cfg)
	}
}
