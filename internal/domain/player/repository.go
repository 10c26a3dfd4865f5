package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Player, error)
	Count(ctx context.Context, filter ListFilter) (int64, error)
	GetByID(ctx context.Context, id int64) (Player, bool, error)
	GetByIDs(ctx context.Context, ids []int64) ([]Player, error)
	ListSquadsByTeam(ctx context.Context, teamID int64) ([]Squad, error)
	ListSquadsByPlayerIDs(ctx context.Context, playerIDs []int64) ([]Squad, error)
	GetCareerStats(ctx context.Context, playerID int64) (CareerStats, bool, error)
}
