package scorecard

import "context"

// Repository describes scorecard persistence needs from use cases.
type Repository interface {
	ListInningsByMatch(ctx context.Context, matchID int64) ([]Innings, error)
	ListInningsByMatchIDs(ctx context.Context, matchIDs []int64) ([]Innings, error)
	GetInningsByIDs(ctx context.Context, ids []int64) ([]Innings, error)
	ListBattingByInnings(ctx context.Context, inningsIDs []int64) ([]BattingLine, error)
	ListBowlingByInnings(ctx context.Context, inningsIDs []int64) ([]BowlingLine, error)
	ListFallOfWicketsByInnings(ctx context.Context, inningsIDs []int64) ([]FallOfWicket, error)
	ListBattingByPlayer(ctx context.Context, playerID int64) ([]BattingLine, error)
	ListBowlingByPlayer(ctx context.Context, playerID int64) ([]BowlingLine, error)
	Totals(ctx context.Context) (Totals, error)
	HighestBattingLine(ctx context.Context) (BattingLine, bool, error)
	BestBowlingLine(ctx context.Context) (BowlingLine, bool, error)
	TopSixHitter(ctx context.Context) (SixHitter, bool, error)
}
