package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/standing"
	qb "github.com/sugerdarco/IPL-Data-Platform/internal/platform/querybuilder"
)

type StandingRepository struct {
	db *sqlx.DB
}

func NewStandingRepository(db *sqlx.DB) *StandingRepository {
	return &StandingRepository{db: db}
}

func (r *StandingRepository) LatestRoundID(ctx context.Context) (int64, bool, error) {
	const query = `SELECT MAX(round_id) FROM standings`

	var roundID *int64
	if err := r.db.GetContext(ctx, &roundID, query); err != nil {
		return 0, false, fmt.Errorf("get latest standings round: %w", err)
	}
	if roundID == nil {
		return 0, false, nil
	}
	return *roundID, true, nil
}

func (r *StandingRepository) ListByRound(ctx context.Context, roundID int64) ([]standing.Standing, error) {
	query, args, err := qb.Select("*").
		From("standings").
		Where(qb.Eq("round_id", roundID)).
		OrderBy("points DESC", orderClause("net_run_rate", false), "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select standings by round query: %w", err)
	}

	return r.selectStandings(ctx, query, args)
}

func (r *StandingRepository) ListRounds(ctx context.Context) ([]standing.Round, error) {
	const query = `
SELECT DISTINCT round_id, round_name
FROM standings
ORDER BY round_id ASC, round_name ASC`

	var rows []struct {
		RoundID   int64  `db:"round_id"`
		RoundName string `db:"round_name"`
	}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select standings rounds: %w", err)
	}

	out := make([]standing.Round, 0, len(rows))
	for _, row := range rows {
		out = append(out, standing.Round{ID: row.RoundID, Name: row.RoundName})
	}
	return out, nil
}

func (r *StandingRepository) LatestByTeam(ctx context.Context, teamID int64) (standing.Standing, bool, error) {
	query, args, err := qb.Select("*").
		From("standings").
		Where(qb.Eq("team_id", teamID)).
		OrderBy("round_id DESC", "id DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return standing.Standing{}, false, fmt.Errorf("build latest team standing query: %w", err)
	}

	var row standingTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return standing.Standing{}, false, nil
		}
		return standing.Standing{}, false, fmt.Errorf("get latest standing team=%d: %w", teamID, err)
	}
	return row.toDomain(), true, nil
}

func (r *StandingRepository) LatestPerTeam(ctx context.Context) ([]standing.Standing, error) {
	query, args, err := qb.Select("*").
		DistinctOn("team_id").
		From("standings").
		OrderBy("team_id", "round_id DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build latest standings per team query: %w", err)
	}

	return r.selectStandings(ctx, query, args)
}

func (r *StandingRepository) BestByTeams(ctx context.Context, teamIDs []int64) ([]standing.Standing, error) {
	if len(teamIDs) == 0 {
		return nil, nil
	}
	query, args, err := qb.Select("*").
		DistinctOn("team_id").
		From("standings").
		Where(qb.InInt64("team_id", uniqueInt64(teamIDs))).
		OrderBy("team_id", "points DESC", "round_id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build best standings by teams query: %w", err)
	}

	return r.selectStandings(ctx, query, args)
}

func (r *StandingRepository) selectStandings(ctx context.Context, query string, args []any) ([]standing.Standing, error) {
	var rows []standingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select standings: %w", err)
	}

	out := make([]standing.Standing, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
