package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/scorecard"
	qb "github.com/sugerdarco/IPL-Data-Platform/internal/platform/querybuilder"
)

type ScorecardRepository struct {
	db *sqlx.DB
}

func NewScorecardRepository(db *sqlx.DB) *ScorecardRepository {
	return &ScorecardRepository{db: db}
}

func (r *ScorecardRepository) ListInningsByMatch(ctx context.Context, matchID int64) ([]scorecard.Innings, error) {
	return r.ListInningsByMatchIDs(ctx, []int64{matchID})
}

func (r *ScorecardRepository) ListInningsByMatchIDs(ctx context.Context, matchIDs []int64) ([]scorecard.Innings, error) {
	if len(matchIDs) == 0 {
		return nil, nil
	}
	query, args, err := qb.Select("*").
		From("innings").
		Where(qb.InInt64("match_id", uniqueInt64(matchIDs))).
		OrderBy("match_id", "number ASC", "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select innings by matches query: %w", err)
	}

	return r.selectInnings(ctx, query, args)
}

func (r *ScorecardRepository) GetInningsByIDs(ctx context.Context, ids []int64) ([]scorecard.Innings, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := qb.Select("*").From("innings").Where(qb.InInt64("id", uniqueInt64(ids))).OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select innings by ids query: %w", err)
	}

	return r.selectInnings(ctx, query, args)
}

func (r *ScorecardRepository) selectInnings(ctx context.Context, query string, args []any) ([]scorecard.Innings, error) {
	var rows []inningsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select innings: %w", err)
	}

	out := make([]scorecard.Innings, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ScorecardRepository) ListBattingByInnings(ctx context.Context, inningsIDs []int64) ([]scorecard.BattingLine, error) {
	if len(inningsIDs) == 0 {
		return nil, nil
	}
	query, args, err := qb.Select("*").
		From("batsmen").
		Where(qb.InInt64("innings_id", uniqueInt64(inningsIDs))).
		OrderBy("innings_id", "position ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select batsmen by innings query: %w", err)
	}

	return r.selectBatting(ctx, query, args)
}

func (r *ScorecardRepository) ListBattingByPlayer(ctx context.Context, playerID int64) ([]scorecard.BattingLine, error) {
	query, args, err := qb.Select("*").
		From("batsmen").
		Where(qb.Eq("player_id", playerID)).
		OrderBy("runs DESC", "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select batsmen by player query: %w", err)
	}

	return r.selectBatting(ctx, query, args)
}

func (r *ScorecardRepository) selectBatting(ctx context.Context, query string, args []any) ([]scorecard.BattingLine, error) {
	var rows []batsmanTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select batsmen: %w", err)
	}

	out := make([]scorecard.BattingLine, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ScorecardRepository) ListBowlingByInnings(ctx context.Context, inningsIDs []int64) ([]scorecard.BowlingLine, error) {
	if len(inningsIDs) == 0 {
		return nil, nil
	}
	query, args, err := qb.Select("*").
		From("bowlers").
		Where(qb.InInt64("innings_id", uniqueInt64(inningsIDs))).
		OrderBy("innings_id", "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select bowlers by innings query: %w", err)
	}

	return r.selectBowling(ctx, query, args)
}

func (r *ScorecardRepository) ListBowlingByPlayer(ctx context.Context, playerID int64) ([]scorecard.BowlingLine, error) {
	query, args, err := qb.Select("*").
		From("bowlers").
		Where(qb.Eq("player_id", playerID)).
		OrderBy("wickets DESC", "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select bowlers by player query: %w", err)
	}

	return r.selectBowling(ctx, query, args)
}

func (r *ScorecardRepository) selectBowling(ctx context.Context, query string, args []any) ([]scorecard.BowlingLine, error) {
	var rows []bowlerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select bowlers: %w", err)
	}

	out := make([]scorecard.BowlingLine, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ScorecardRepository) ListFallOfWicketsByInnings(ctx context.Context, inningsIDs []int64) ([]scorecard.FallOfWicket, error) {
	if len(inningsIDs) == 0 {
		return nil, nil
	}
	query, args, err := qb.Select("*").
		From("fall_of_wickets").
		Where(qb.InInt64("innings_id", uniqueInt64(inningsIDs))).
		OrderBy("innings_id", "runs ASC", "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fall of wickets query: %w", err)
	}

	var rows []fallOfWicketTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fall of wickets: %w", err)
	}

	out := make([]scorecard.FallOfWicket, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ScorecardRepository) Totals(ctx context.Context) (scorecard.Totals, error) {
	const query = `SELECT COALESCE(SUM(runs), 0) AS runs, COALESCE(SUM(wickets), 0) AS wickets FROM innings`

	var row struct {
		Runs    int64 `db:"runs"`
		Wickets int64 `db:"wickets"`
	}
	if err := r.db.GetContext(ctx, &row, query); err != nil {
		return scorecard.Totals{}, fmt.Errorf("sum innings totals: %w", err)
	}
	return scorecard.Totals{Runs: row.Runs, Wickets: row.Wickets}, nil
}

func (r *ScorecardRepository) HighestBattingLine(ctx context.Context) (scorecard.BattingLine, bool, error) {
	query, args, err := qb.Select("*").From("batsmen").OrderBy("runs DESC", "id ASC").Limit(1).ToSQL()
	if err != nil {
		return scorecard.BattingLine{}, false, fmt.Errorf("build highest batting line query: %w", err)
	}

	var row batsmanTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return scorecard.BattingLine{}, false, nil
		}
		return scorecard.BattingLine{}, false, fmt.Errorf("get highest batting line: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *ScorecardRepository) BestBowlingLine(ctx context.Context) (scorecard.BowlingLine, bool, error) {
	query, args, err := qb.Select("*").From("bowlers").OrderBy("wickets DESC", "runs_conceded ASC", "id ASC").Limit(1).ToSQL()
	if err != nil {
		return scorecard.BowlingLine{}, false, fmt.Errorf("build best bowling line query: %w", err)
	}

	var row bowlerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return scorecard.BowlingLine{}, false, nil
		}
		return scorecard.BowlingLine{}, false, fmt.Errorf("get best bowling line: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *ScorecardRepository) TopSixHitter(ctx context.Context) (scorecard.SixHitter, bool, error) {
	query, args, err := qb.Select("player_id", "SUM(sixes) AS sixes").
		From("batsmen").
		GroupBy("player_id").
		OrderBy("sixes DESC", "player_id ASC").
		Limit(1).
		ToSQL()
	if err != nil {
		return scorecard.SixHitter{}, false, fmt.Errorf("build top six hitter query: %w", err)
	}

	var row struct {
		PlayerID int64 `db:"player_id"`
		Sixes    int64 `db:"sixes"`
	}
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return scorecard.SixHitter{}, false, nil
		}
		return scorecard.SixHitter{}, false, fmt.Errorf("get top six hitter: %w", err)
	}
	return scorecard.SixHitter{PlayerID: row.PlayerID, Sixes: row.Sixes}, true, nil
}
