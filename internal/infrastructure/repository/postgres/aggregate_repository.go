package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/aggregate"
	qb "github.com/sugerdarco/IPL-Data-Platform/internal/platform/querybuilder"
)

type AggregateRepository struct {
	db *sqlx.DB
}

func NewAggregateRepository(db *sqlx.DB) *AggregateRepository {
	return &AggregateRepository{db: db}
}

func (r *AggregateRepository) ListBatting(ctx context.Context, query aggregate.Query) ([]aggregate.Batting, error) {
	order := query.Order
	if !aggregate.IsBattingColumn(order.Column) {
		order = aggregate.Order{Column: "runs"}
	}
	sqlQuery, args, err := qb.Select("*").
		From("batting_aggregates").
		Where(qb.Eq("stat_type", query.StatType)).
		OrderBy(orderClause(order.Column, order.Ascending), "id ASC").
		Limit(query.Limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select batting aggregates query: %w", err)
	}

	return r.selectBatting(ctx, sqlQuery, args)
}

func (r *AggregateRepository) ListBowling(ctx context.Context, query aggregate.Query) ([]aggregate.Bowling, error) {
	order := query.Order
	if !aggregate.IsBowlingColumn(order.Column) {
		order = aggregate.Order{Column: "wickets"}
	}
	sqlQuery, args, err := qb.Select("*").
		From("bowling_aggregates").
		Where(qb.Eq("stat_type", query.StatType)).
		OrderBy(orderClause(order.Column, order.Ascending), "id ASC").
		Limit(query.Limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select bowling aggregates query: %w", err)
	}

	return r.selectBowling(ctx, sqlQuery, args)
}

func (r *AggregateRepository) ListBattingByPlayers(ctx context.Context, playerIDs []int64, statType string) ([]aggregate.Batting, error) {
	if len(playerIDs) == 0 {
		return nil, nil
	}
	builder := qb.Select("*").
		From("batting_aggregates").
		Where(qb.InInt64("player_id", uniqueInt64(playerIDs))).
		OrderBy("player_id", "stat_type", "id")
	if statType != "" {
		builder.Where(qb.Eq("stat_type", statType))
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select batting aggregates by players query: %w", err)
	}

	return r.selectBatting(ctx, query, args)
}

func (r *AggregateRepository) ListBowlingByPlayers(ctx context.Context, playerIDs []int64, statType string) ([]aggregate.Bowling, error) {
	if len(playerIDs) == 0 {
		return nil, nil
	}
	builder := qb.Select("*").
		From("bowling_aggregates").
		Where(qb.InInt64("player_id", uniqueInt64(playerIDs))).
		OrderBy("player_id", "stat_type", "id")
	if statType != "" {
		builder.Where(qb.Eq("stat_type", statType))
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select bowling aggregates by players query: %w", err)
	}

	return r.selectBowling(ctx, query, args)
}

func (r *AggregateRepository) TopBattingForTeam(ctx context.Context, teamID int64, statType string) (aggregate.Batting, bool, error) {
	order := aggregate.BattingOrderForStatType(statType)
	query, args, err := qb.Select("*").
		From("batting_aggregates").
		Where(qb.Eq("team_id", teamID), qb.Eq("stat_type", statType)).
		OrderBy(orderClause(order.Column, order.Ascending), "id ASC").
		Limit(1).
		ToSQL()
	if err != nil {
		return aggregate.Batting{}, false, fmt.Errorf("build top batting for team query: %w", err)
	}

	var row battingAggregateTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return aggregate.Batting{}, false, nil
		}
		return aggregate.Batting{}, false, fmt.Errorf("get top batting team=%d: %w", teamID, err)
	}
	return row.toDomain(), true, nil
}

func (r *AggregateRepository) selectBatting(ctx context.Context, query string, args []any) ([]aggregate.Batting, error) {
	var rows []battingAggregateTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select batting aggregates: %w", err)
	}

	out := make([]aggregate.Batting, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *AggregateRepository) selectBowling(ctx context.Context, query string, args []any) ([]aggregate.Bowling, error) {
	var rows []bowlingAggregateTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select bowling aggregates: %w", err)
	}

	out := make([]aggregate.Bowling, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
