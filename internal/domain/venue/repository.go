package venue

import "context"

type Repository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]Venue, error)
	ListUsage(ctx context.Context) ([]Usage, error)
}
