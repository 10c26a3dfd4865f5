package usecase

import (
	"context"
	"fmt"
	"time"
)

// Pinger is satisfied by *sqlx.DB and *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthStatus struct {
	Timestamp time.Time
	Uptime    time.Duration
}

type HealthService struct {
	db      Pinger
	started time.Time
	now     func() time.Time
}

func NewHealthService(db Pinger) *HealthService {
	return &HealthService{
		db:      db,
		started: time.Now(),
		now:     time.Now,
	}
}

// Check pings the database. A failed ping is reported as ErrDependencyUnavailable.
func (s *HealthService) Check(ctx context.Context) (HealthStatus, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HealthService.Check")
	defer span.End()

	now := s.now()
	status := HealthStatus{Timestamp: now, Uptime: now.Sub(s.started)}
	if s.db == nil {
		return status, fmt.Errorf("%w: database is not configured", ErrDependencyUnavailable)
	}
	if err := s.db.PingContext(ctx); err != nil {
		return status, fmt.Errorf("%w: ping database: %v", ErrDependencyUnavailable, err)
	}
	return status, nil
}
