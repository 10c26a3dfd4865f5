package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/wagonwheel"
	qb "github.com/sugerdarco/IPL-Data-Platform/internal/platform/querybuilder"
)

type WagonWheelRepository struct {
	db *sqlx.DB
}

func NewWagonWheelRepository(db *sqlx.DB) *WagonWheelRepository {
	return &WagonWheelRepository{db: db}
}

func (r *WagonWheelRepository) ListByMatch(ctx context.Context, filter wagonwheel.Filter) ([]wagonwheel.Shot, error) {
	builder := qb.Select("*").
		From("wagon_wheels").
		Where(qb.Eq("match_id", filter.MatchID)).
		OrderBy("unique_over ASC", "innings_id ASC", "sequence ASC")
	if filter.InningsID > 0 {
		builder.Where(qb.Eq("innings_id", filter.InningsID))
	}
	if filter.BatsmanID > 0 {
		builder.Where(qb.Eq("batsman_id", filter.BatsmanID))
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select wagon wheels query: %w", err)
	}

	var rows []wagonWheelTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select wagon wheels match=%d: %w", filter.MatchID, err)
	}

	out := make([]wagonwheel.Shot, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
