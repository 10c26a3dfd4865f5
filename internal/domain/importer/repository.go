package importer

import (
	"context"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/aggregate"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/commentary"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/competition"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/match"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/player"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/scorecard"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/standing"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/team"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/venue"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/wagonwheel"
)

// Store is the storage side of the import.
type Store interface {
	Count(ctx context.Context, table Table) (int64, error)
	Counts(ctx context.Context) (Counts, error)
	// RunInTx runs fn in one transaction. Rows written by fn become visible to Count only after fn returns nil.
	RunInTx(ctx context.Context, fn func(ctx context.Context, w Writer) error) error
}

// Writer upserts entities by natural key and resolves provider ids to storage ids.
type Writer interface {
	UpsertTeam(ctx context.Context, t team.Team) (int64, error)
	TeamIDByTID(ctx context.Context, tid int64) (int64, bool, error)
	UpsertTeamStats(ctx context.Context, stats team.Stats) error

	UpsertPlayer(ctx context.Context, p player.Player) (int64, error)
	PlayerIDByPID(ctx context.Context, pid int64) (int64, bool, error)
	UpsertSquad(ctx context.Context, squad player.Squad) error
	UpsertCareerStats(ctx context.Context, stats player.CareerStats) error

	UpsertCompetition(ctx context.Context, c competition.Competition) (int64, error)
	CompetitionIDByCID(ctx context.Context, cid int64) (int64, bool, error)
	FirstCompetitionID(ctx context.Context) (int64, bool, error)
	UpsertVenue(ctx context.Context, v venue.Venue) (int64, error)
	VenueIDByVenueID(ctx context.Context, venueID string) (int64, bool, error)

	UpsertMatch(ctx context.Context, m match.Match) (int64, error)
	MatchIDByMatchID(ctx context.Context, matchID int64) (int64, bool, error)

	UpsertInnings(ctx context.Context, inn scorecard.Innings) (int64, error)
	UpsertBattingLine(ctx context.Context, line scorecard.BattingLine) error
	UpsertBowlingLine(ctx context.Context, line scorecard.BowlingLine) error
	InsertFallOfWicket(ctx context.Context, fow scorecard.FallOfWicket) error
	InningsRefs(ctx context.Context) (map[int64]InningsRef, error)

	UpsertStanding(ctx context.Context, s standing.Standing) error
	UpsertBattingAggregate(ctx context.Context, a aggregate.Batting) error
	UpsertBowlingAggregate(ctx context.Context, a aggregate.Bowling) error

	// InsertWagonWheels and InsertCommentary insert-or-skip on the natural key and return rows written.
	InsertWagonWheels(ctx context.Context, shots []wagonwheel.Shot) (int64, error)
	InsertCommentary(ctx context.Context, events []commentary.Event) (int64, error)
}
