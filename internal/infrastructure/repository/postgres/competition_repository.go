package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/competition"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/venue"
	qb "github.com/sugerdarco/IPL-Data-Platform/internal/platform/querybuilder"
)

type CompetitionRepository struct {
	db *sqlx.DB
}

func NewCompetitionRepository(db *sqlx.DB) *CompetitionRepository {
	return &CompetitionRepository{db: db}
}

func (r *CompetitionRepository) First(ctx context.Context) (competition.Competition, bool, error) {
	query, args, err := qb.Select("*").From("competitions").OrderBy("id").Limit(1).ToSQL()
	if err != nil {
		return competition.Competition{}, false, fmt.Errorf("build first competition query: %w", err)
	}

	var row competitionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return competition.Competition{}, false, nil
		}
		return competition.Competition{}, false, fmt.Errorf("get first competition: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *CompetitionRepository) GetByIDs(ctx context.Context, ids []int64) ([]competition.Competition, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := qb.Select("*").From("competitions").Where(qb.InInt64("id", uniqueInt64(ids))).OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select competitions query: %w", err)
	}

	var rows []competitionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select competitions: %w", err)
	}

	out := make([]competition.Competition, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

type VenueRepository struct {
	db *sqlx.DB
}

func NewVenueRepository(db *sqlx.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

func (r *VenueRepository) GetByIDs(ctx context.Context, ids []int64) ([]venue.Venue, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := qb.Select("*").From("venues").Where(qb.InInt64("id", uniqueInt64(ids))).OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select venues query: %w", err)
	}

	var rows []venueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select venues: %w", err)
	}

	out := make([]venue.Venue, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *VenueRepository) ListUsage(ctx context.Context) ([]venue.Usage, error) {
	const query = `
SELECT v.id, v.venue_id, v.name, v.location, v.country, v.timezone, COUNT(m.id) AS match_count
FROM venues v
LEFT JOIN matches m ON m.venue_id = v.id
GROUP BY v.id
ORDER BY v.name ASC, v.id ASC`

	var rows []struct {
		venueTableModel
		MatchCount int64 `db:"match_count"`
	}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select venue usage: %w", err)
	}

	out := make([]venue.Usage, 0, len(rows))
	for _, row := range rows {
		out = append(out, venue.Usage{
			Venue:      row.venueTableModel.toDomain(),
			MatchCount: row.MatchCount,
		})
	}
	return out, nil
}
