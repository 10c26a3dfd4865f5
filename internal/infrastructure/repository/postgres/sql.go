package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	qb "github.com/sugerdarco/IPL-Data-Platform/internal/platform/querybuilder"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23503"
}

// upsertSuffix builds ON CONFLICT ... DO UPDATE for every non-key column.
func upsertSuffix(columns, conflict []string, returning string) string {
	keys := make(map[string]struct{}, len(conflict))
	for _, col := range conflict {
		keys[col] = struct{}{}
	}

	sets := make([]string, 0, len(columns))
	for _, col := range columns {
		if _, ok := keys[col]; ok {
			continue
		}
		sets = append(sets, col+" = EXCLUDED."+col)
	}

	var buf strings.Builder
	buf.WriteString("ON CONFLICT (")
	buf.WriteString(strings.Join(conflict, ", "))
	buf.WriteString(")")
	if len(sets) == 0 {
		buf.WriteString(" DO NOTHING")
	} else {
		buf.WriteString(" DO UPDATE SET ")
		buf.WriteString(strings.Join(sets, ", "))
	}
	if returning != "" {
		buf.WriteString(" RETURNING ")
		buf.WriteString(returning)
	}
	return buf.String()
}

func upsertModelReturningID(ctx context.Context, tx sqlx.ExtContext, table string, model any, conflict ...string) (int64, error) {
	columns, err := qb.Columns(model)
	if err != nil {
		return 0, fmt.Errorf("columns for %s upsert: %w", table, err)
	}
	query, args, err := qb.InsertModel(table, model, upsertSuffix(columns, conflict, "id"))
	if err != nil {
		return 0, fmt.Errorf("build upsert %s query: %w", table, err)
	}

	var id int64
	if err := sqlx.GetContext(ctx, tx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("upsert %s: %w", table, err)
	}
	return id, nil
}

func upsertModel(ctx context.Context, tx sqlx.ExtContext, table string, model any, conflict ...string) error {
	columns, err := qb.Columns(model)
	if err != nil {
		return fmt.Errorf("columns for %s upsert: %w", table, err)
	}
	query, args, err := qb.InsertModel(table, model, upsertSuffix(columns, conflict, ""))
	if err != nil {
		return fmt.Errorf("build upsert %s query: %w", table, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert %s: %w", table, err)
	}
	return nil
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullIntFromInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullFloat64(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	out := v.Int64
	return &out
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	out := int(v.Int64)
	return &out
}

func float64Ptr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	out := v.Float64
	return &out
}

func stringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	out := v.String
	return &out
}

// orderClause renders a whitelisted column with NULLS LAST so that missing ratios never lead a ranking.
func orderClause(column string, ascending bool) string {
	if ascending {
		return column + " ASC NULLS LAST"
	}
	return column + " DESC NULLS LAST"
}

func uniqueInt64(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
