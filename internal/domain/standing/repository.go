package standing

import "context"

// Repository describes standings persistence needs from use cases.
type Repository interface {
	LatestRoundID(ctx context.Context) (int64, bool, error)
	ListByRound(ctx context.Context, roundID int64) ([]Standing, error)
	ListRounds(ctx context.Context) ([]Round, error)
	LatestByTeam(ctx context.Context, teamID int64) (Standing, bool, error)
	// LatestPerTeam returns each team's row from its highest round.
	LatestPerTeam(ctx context.Context) ([]Standing, error)
	// BestByTeams returns each listed team's row with the most points.
	BestByTeams(ctx context.Context, teamIDs []int64) ([]Standing, error)
}
