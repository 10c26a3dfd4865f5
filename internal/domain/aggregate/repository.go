package aggregate

import "context"

// Repository describes aggregate ranking persistence needs from use cases.
type Repository interface {
	ListBatting(ctx context.Context, query Query) ([]Batting, error)
	ListBowling(ctx context.Context, query Query) ([]Bowling, error)
	// ListBattingByPlayers returns rows of the given stat type, or every type when statType is empty.
	ListBattingByPlayers(ctx context.Context, playerIDs []int64, statType string) ([]Batting, error)
	ListBowlingByPlayers(ctx context.Context, playerIDs []int64, statType string) ([]Bowling, error)
	TopBattingForTeam(ctx context.Context, teamID int64, statType string) (Batting, bool, error)
}
