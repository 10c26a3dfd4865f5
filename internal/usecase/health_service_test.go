package usecase

import (
	"context"
	"errors"
	"testing"
	"time"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestHealthService_Check(t *testing.T) {
	t.Parallel()

	service := NewHealthService(pingerFunc(func(context.Context) error { return nil }))
	started := time.Date(2022, 5, 29, 20, 0, 0, 0, time.UTC)
	service.started = started
	service.now = func() time.Time { return started.Add(90 * time.Second) }

	got, err := service.Check(context.Background())
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if got.Uptime != 90*time.Second {
		t.Fatalf("unexpected uptime: %v", got.Uptime)
	}
}

func TestHealthService_Check_DatabaseDown(t *testing.T) {
	t.Parallel()

	service := NewHealthService(pingerFunc(func(context.Context) error { return errors.New("connection refused") }))

	_, err := service.Check(context.Background())
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}
