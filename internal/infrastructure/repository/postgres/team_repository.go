package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/team"
	qb "github.com/sugerdarco/IPL-Data-Platform/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func teamListQuery(filter team.ListFilter) *qb.SelectBuilder {
	builder := qb.Select("*").From("teams")
	if search := strings.TrimSpace(filter.Search); search != "" {
		builder.Where(qb.Or(qb.ILike("title", search), qb.ILike("abbr", search)))
	}
	return builder
}

func (r *TeamRepository) List(ctx context.Context, filter team.ListFilter) ([]team.Team, error) {
	query, args, err := teamListQuery(filter).
		OrderBy("title ASC", "id ASC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	return teamsToDomain(rows), nil
}

func (r *TeamRepository) Count(ctx context.Context, filter team.ListFilter) (int64, error) {
	query, args, err := teamListQuery(filter).Count()
	if err != nil {
		return 0, fmt.Errorf("build count teams query: %w", err)
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("count teams: %w", err)
	}
	return total, nil
}

func (r *TeamRepository) ListAll(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("teams").OrderBy("title ASC", "id ASC").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select all teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select all teams: %w", err)
	}

	return teamsToDomain(rows), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id int64) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").Where(qb.Eq("id", id)).Limit(1).ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team id=%d: %w", id, err)
	}

	return row.toDomain(), true, nil
}

func (r *TeamRepository) GetByIDs(ctx context.Context, ids []int64) ([]team.Team, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := qb.Select("*").From("teams").Where(qb.InInt64("id", uniqueInt64(ids))).OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams by ids query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams by ids: %w", err)
	}

	return teamsToDomain(rows), nil
}

func (r *TeamRepository) ListStatsByTeamIDs(ctx context.Context, teamIDs []int64) ([]team.Stats, error) {
	if len(teamIDs) == 0 {
		return nil, nil
	}
	query, args, err := qb.Select("*").From("team_stats").Where(qb.InInt64("team_id", uniqueInt64(teamIDs))).OrderBy("team_id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select team stats query: %w", err)
	}

	var rows []teamStatsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select team stats: %w", err)
	}

	out := make([]team.Stats, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func teamsToDomain(rows []teamTableModel) []team.Team {
	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}
