package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Team, error)
	Count(ctx context.Context, filter ListFilter) (int64, error)
	ListAll(ctx context.Context) ([]Team, error)
	GetByID(ctx context.Context, id int64) (Team, bool, error)
	GetByIDs(ctx context.Context, ids []int64) ([]Team, error)
	ListStatsByTeamIDs(ctx context.Context, teamIDs []int64) ([]Stats, error)
}
