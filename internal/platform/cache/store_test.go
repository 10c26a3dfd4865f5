package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (string, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := Load(context.Background(), store, "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if v != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestLoad_ExpiresAfterTTL(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	now := time.Date(2022, 4, 1, 19, 30, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	var calls atomic.Int32

	loader := func(context.Context) (int, error) {
		return int(calls.Add(1)), nil
	}

	first, _ := Load(context.Background(), store, "k", loader)
	second, _ := Load(context.Background(), store, "k", loader)
	if first != 1 || second != 1 {
		t.Fatalf("expected cached value, got %d then %d", first, second)
	}

	now = now.Add(2 * time.Minute)
	third, _ := Load(context.Background(), store, "k", loader)
	if third != 2 {
		t.Fatalf("expected reload after ttl, got %d", third)
	}
	if store.Len() != 1 {
		t.Fatalf("unexpected live entries: %d", store.Len())
	}
}

func TestLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	boom := errors.New("db down")
	if _, err := Load(context.Background(), store, "k", func(context.Context) (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Fatalf("expected loader error, got %v", err)
	}
	v, err := Load(context.Background(), store, "k", func(context.Context) (int, error) { return 7, nil })
	if err != nil || v != 7 {
		t.Fatalf("expected fresh load, got v=%d err=%v", v, err)
	}
}

func TestNilStorePassesThrough(t *testing.T) {
	t.Parallel()

	var store *Store
	var calls int
	for i := 0; i < 2; i++ {
		if _, err := Load(context.Background(), store, "k", func(context.Context) (int, error) {
			calls++
			return calls, nil
		}); err != nil {
			t.Fatalf("load: %v", err)
		}
	}
	if calls != 2 {
		t.Fatalf("nil store must not cache, calls=%d", calls)
	}
	store.DeletePrefix("team:")
}

var errUnexpectedValue = errors.New("unexpected loaded value")
