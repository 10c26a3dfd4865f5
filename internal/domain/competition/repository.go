package competition

import "context"

type Repository interface {
	First(ctx context.Context) (Competition, bool, error)
	GetByIDs(ctx context.Context, ids []int64) ([]Competition, error)
}
