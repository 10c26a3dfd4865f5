package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/match"
	qb "github.com/sugerdarco/IPL-Data-Platform/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func matchListQuery(filter match.ListFilter) *qb.SelectBuilder {
	builder := qb.Select("*").From("matches")
	if filter.TeamID > 0 {
		builder.Where(qb.Or(qb.Eq("team_a_id", filter.TeamID), qb.Eq("team_b_id", filter.TeamID)))
	}
	if filter.VenueID > 0 {
		builder.Where(qb.Eq("venue_id", filter.VenueID))
	}
	if filter.Status != nil {
		builder.Where(qb.Eq("status", *filter.Status))
	}
	return builder
}

func (r *MatchRepository) List(ctx context.Context, filter match.ListFilter) ([]match.Match, error) {
	query, args, err := matchListQuery(filter).
		OrderBy("date_start DESC", "id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	return matchesToDomain(rows), nil
}

func (r *MatchRepository) Count(ctx context.Context, filter match.ListFilter) (int64, error) {
	query, args, err := matchListQuery(filter).Count()
	if err != nil {
		return 0, fmt.Errorf("build count matches query: %w", err)
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("count matches: %w", err)
	}
	return total, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id int64) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").Where(qb.Eq("id", id)).Limit(1).ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match id=%d: %w", id, err)
	}

	return row.toDomain(), true, nil
}

func (r *MatchRepository) GetByIDs(ctx context.Context, ids []int64) ([]match.Match, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := qb.Select("*").From("matches").Where(qb.InInt64("id", uniqueInt64(ids))).OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches by ids query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches by ids: %w", err)
	}

	return matchesToDomain(rows), nil
}

func (r *MatchRepository) ListCompletedChronological(ctx context.Context, limit int) ([]match.Match, error) {
	query, args, err := qb.Select("*").
		From("matches").
		Where(qb.Eq("status", match.StatusCompleted)).
		OrderBy("date_start ASC", "id ASC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select completed matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select completed matches: %w", err)
	}

	return matchesToDomain(rows), nil
}

func matchesToDomain(rows []matchTableModel) []match.Match {
	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}
