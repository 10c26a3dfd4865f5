package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/player"
	qb "github.com/sugerdarco/IPL-Data-Platform/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func playerListQuery(filter player.ListFilter) *qb.SelectBuilder {
	builder := qb.Select("p.*").From("players p")
	if search := strings.TrimSpace(filter.Search); search != "" {
		builder.Where(qb.Or(qb.ILike("p.title", search), qb.ILike("p.short_name", search)))
	}
	if role := strings.TrimSpace(filter.Role); role != "" {
		builder.Where(qb.Eq("p.playing_role", role))
	}
	if filter.TeamID > 0 {
		builder.Where(qb.Expr("EXISTS (SELECT 1 FROM team_squads s WHERE s.player_id = p.id AND s.team_id = ?)", filter.TeamID))
	}
	return builder
}

func (r *PlayerRepository) List(ctx context.Context, filter player.ListFilter) ([]player.Player, error) {
	query, args, err := playerListQuery(filter).
		OrderBy("p.title ASC", "p.id ASC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	return playersToDomain(rows), nil
}

func (r *PlayerRepository) Count(ctx context.Context, filter player.ListFilter) (int64, error) {
	query, args, err := playerListQuery(filter).Count()
	if err != nil {
		return 0, fmt.Errorf("build count players query: %w", err)
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("count players: %w", err)
	}
	return total, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").Where(qb.Eq("id", id)).Limit(1).ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player id=%d: %w", id, err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, ids []int64) ([]player.Player, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := qb.Select("*").From("players").Where(qb.InInt64("id", uniqueInt64(ids))).OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by ids query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by ids: %w", err)
	}

	return playersToDomain(rows), nil
}

func (r *PlayerRepository) ListSquadsByTeam(ctx context.Context, teamID int64) ([]player.Squad, error) {
	query, args, err := qb.Select("*").From("team_squads").Where(qb.Eq("team_id", teamID)).OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select squads by team query: %w", err)
	}

	var rows []squadTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select squads by team=%d: %w", teamID, err)
	}

	return squadsToDomain(rows), nil
}

func (r *PlayerRepository) ListSquadsByPlayerIDs(ctx context.Context, playerIDs []int64) ([]player.Squad, error) {
	if len(playerIDs) == 0 {
		return nil, nil
	}
	query, args, err := qb.Select("*").From("team_squads").Where(qb.InInt64("player_id", uniqueInt64(playerIDs))).OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select squads by players query: %w", err)
	}

	var rows []squadTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select squads by players: %w", err)
	}

	return squadsToDomain(rows), nil
}

func (r *PlayerRepository) GetCareerStats(ctx context.Context, playerID int64) (player.CareerStats, bool, error) {
	const query = `
SELECT id, player_id, batting_stats::text AS batting_stats, bowling_stats::text AS bowling_stats
FROM player_career_stats
WHERE player_id = $1`

	var row careerStatsTableModel
	if err := r.db.GetContext(ctx, &row, query, playerID); err != nil {
		if isNotFound(err) {
			return player.CareerStats{}, false, nil
		}
		return player.CareerStats{}, false, fmt.Errorf("get career stats player=%d: %w", playerID, err)
	}

	return row.toDomain(), true, nil
}

func playersToDomain(rows []playerTableModel) []player.Player {
	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}

func squadsToDomain(rows []squadTableModel) []player.Squad {
	out := make([]player.Squad, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}
