package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/commentary"
	qb "github.com/sugerdarco/IPL-Data-Platform/internal/platform/querybuilder"
)

type CommentaryRepository struct {
	db *sqlx.DB
}

func NewCommentaryRepository(db *sqlx.DB) *CommentaryRepository {
	return &CommentaryRepository{db: db}
}

func (r *CommentaryRepository) List(ctx context.Context, filter commentary.Filter) ([]commentary.Event, error) {
	query, args, err := commentaryListQuery(filter).
		OrderBy("over_number DESC", "ball DESC", "id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select commentary query: %w", err)
	}

	return r.selectEvents(ctx, query, args)
}

func (r *CommentaryRepository) Count(ctx context.Context, filter commentary.Filter) (int64, error) {
	query, args, err := commentaryListQuery(filter).Count()
	if err != nil {
		return 0, fmt.Errorf("build count commentary query: %w", err)
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("count commentary match=%d: %w", filter.MatchID, err)
	}
	return total, nil
}

func (r *CommentaryRepository) ListByFlag(ctx context.Context, matchID int64, flag commentary.Flag) ([]commentary.Event, error) {
	query, args, err := qb.Select("*").
		From("commentaries").
		Where(qb.Eq("match_id", matchID), flagCondition(flag)).
		OrderBy("over_number ASC", "ball ASC", "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select commentary by flag query: %w", err)
	}

	return r.selectEvents(ctx, query, args)
}

func commentaryListQuery(filter commentary.Filter) *qb.SelectBuilder {
	builder := qb.Select("*").
		From("commentaries").
		Where(qb.Eq("match_id", filter.MatchID))
	if filter.InningsID > 0 {
		builder.Where(qb.Eq("innings_id", filter.InningsID))
	}
	if filter.Over != nil {
		builder.Where(qb.Eq("over_number", *filter.Over))
	}
	if len(filter.Flags) > 0 {
		conds := make([]qb.Condition, 0, len(filter.Flags))
		for _, flag := range filter.Flags {
			conds = append(conds, flagCondition(flag))
		}
		builder.Where(qb.Or(conds...))
	}
	return builder
}

func flagCondition(flag commentary.Flag) qb.Condition {
	switch flag {
	case commentary.FlagWicket:
		return qb.Eq("is_wicket", true)
	case commentary.FlagSix:
		return qb.Eq("is_six", true)
	case commentary.FlagFour:
		return qb.Eq("is_four", true)
	default:
		return qb.Expr("1=0")
	}
}

func (r *CommentaryRepository) selectEvents(ctx context.Context, query string, args []any) ([]commentary.Event, error) {
	var rows []commentaryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select commentary: %w", err)
	}

	out := make([]commentary.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
