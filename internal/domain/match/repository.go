package match

import "context"

// Repository describes match persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Match, error)
	Count(ctx context.Context, filter ListFilter) (int64, error)
	GetByID(ctx context.Context, id int64) (Match, bool, error)
	GetByIDs(ctx context.Context, ids []int64) ([]Match, error)
	ListCompletedChronological(ctx context.Context, limit int) ([]Match, error)
}
