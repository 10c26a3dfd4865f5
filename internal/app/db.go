package app

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/sugerdarco/IPL-Data-Platform/internal/config"
	"github.com/sugerdarco/IPL-Data-Platform/internal/platform/logging"
)

const dbPingTimeout = 5 * time.Second

// OpenDB opens the traced Postgres pool and verifies it with a ping.
func OpenDB(ctx context.Context, cfg config.Config, logger *logging.Logger) (*sqlx.DB, error) {
	if logger == nil {
		logger = logging.Default()
	}

	dsn := DatabaseURL(cfg)
	if dsn == "" {
		return nil, errors.New("DB_URL cannot be empty")
	}
	dbName := dbNameFromURL(dsn)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBName(dbName),
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping postgres")
	}

	otelsql.ReportDBStatsMetrics(db.DB, otelsql.WithDBName(dbName))
	logger.InfoContext(ctx, "postgres connected",
		"db_name", dbName,
		"max_open_conns", cfg.DBMaxOpenConns,
		"max_idle_conns", cfg.DBMaxIdleConns,
	)

	return db, nil
}
