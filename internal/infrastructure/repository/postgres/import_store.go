package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/aggregate"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/commentary"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/competition"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/importer"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/match"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/player"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/scorecard"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/standing"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/team"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/venue"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/wagonwheel"
	qb "github.com/sugerdarco/IPL-Data-Platform/internal/platform/querybuilder"
)

var (
	_ importer.Store  = (*ImportStore)(nil)
	_ importer.Writer = (*importWriter)(nil)
)

// ImportStore runs import stages against Postgres, one transaction per stage.
type ImportStore struct {
	db *sqlx.DB
}

func NewImportStore(db *sqlx.DB) *ImportStore {
	return &ImportStore{db: db}
}

func (s *ImportStore) Count(ctx context.Context, table importer.Table) (int64, error) {
	if !knownTable(table) {
		return 0, fmt.Errorf("unknown import table %q", table)
	}

	var total int64
	if err := s.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM "+string(table)); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return total, nil
}

func (s *ImportStore) Counts(ctx context.Context) (importer.Counts, error) {
	out := make(importer.Counts, len(importer.AllTables))
	for _, table := range importer.AllTables {
		total, err := s.Count(ctx, table)
		if err != nil {
			return nil, err
		}
		out[table] = total
	}
	return out, nil
}

func (s *ImportStore) RunInTx(ctx context.Context, fn func(ctx context.Context, w importer.Writer) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(ctx, &importWriter{tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import tx: %w", err)
	}
	return nil
}

func knownTable(table importer.Table) bool {
	for _, t := range importer.AllTables {
		if t == table {
			return true
		}
	}
	return false
}

type importWriter struct {
	tx         *sqlx.Tx
	savepoints int
}

func (w *importWriter) UpsertTeam(ctx context.Context, t team.Team) (int64, error) {
	return upsertModelReturningID(ctx, w.tx, "teams", teamModelFromDomain(t), "tid")
}

func (w *importWriter) TeamIDByTID(ctx context.Context, tid int64) (int64, bool, error) {
	return w.lookupID(ctx, "teams", "tid", tid)
}

func (w *importWriter) UpsertTeamStats(ctx context.Context, stats team.Stats) error {
	return upsertModel(ctx, w.tx, "team_stats", teamStatsModelFromDomain(stats), "team_id")
}

func (w *importWriter) UpsertPlayer(ctx context.Context, p player.Player) (int64, error) {
	return upsertModelReturningID(ctx, w.tx, "players", playerModelFromDomain(p), "pid")
}

func (w *importWriter) PlayerIDByPID(ctx context.Context, pid int64) (int64, bool, error) {
	return w.lookupID(ctx, "players", "pid", pid)
}

func (w *importWriter) UpsertSquad(ctx context.Context, squad player.Squad) error {
	return upsertModel(ctx, w.tx, "team_squads", squadModelFromDomain(squad), "team_id", "player_id", "season")
}

func (w *importWriter) UpsertCareerStats(ctx context.Context, stats player.CareerStats) error {
	return upsertModel(ctx, w.tx, "player_career_stats", careerStatsModelFromDomain(stats), "player_id")
}

func (w *importWriter) UpsertCompetition(ctx context.Context, c competition.Competition) (int64, error) {
	return upsertModelReturningID(ctx, w.tx, "competitions", competitionModelFromDomain(c), "cid")
}

func (w *importWriter) CompetitionIDByCID(ctx context.Context, cid int64) (int64, bool, error) {
	return w.lookupID(ctx, "competitions", "cid", cid)
}

func (w *importWriter) FirstCompetitionID(ctx context.Context) (int64, bool, error) {
	var id int64
	if err := w.tx.GetContext(ctx, &id, `SELECT id FROM competitions ORDER BY id ASC LIMIT 1`); err != nil {
		if isNotFound(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("get first competition: %w", err)
	}
	return id, true, nil
}

func (w *importWriter) UpsertVenue(ctx context.Context, v venue.Venue) (int64, error) {
	return upsertModelReturningID(ctx, w.tx, "venues", venueModelFromDomain(v), "venue_id")
}

func (w *importWriter) VenueIDByVenueID(ctx context.Context, venueID string) (int64, bool, error) {
	return w.lookupID(ctx, "venues", "venue_id", venueID)
}

func (w *importWriter) UpsertMatch(ctx context.Context, m match.Match) (int64, error) {
	return upsertModelReturningID(ctx, w.tx, "matches", matchModelFromDomain(m), "match_id")
}

func (w *importWriter) MatchIDByMatchID(ctx context.Context, matchID int64) (int64, bool, error) {
	return w.lookupID(ctx, "matches", "match_id", matchID)
}

func (w *importWriter) UpsertInnings(ctx context.Context, inn scorecard.Innings) (int64, error) {
	return upsertModelReturningID(ctx, w.tx, "innings", inningsModelFromDomain(inn), "iid")
}

func (w *importWriter) UpsertBattingLine(ctx context.Context, line scorecard.BattingLine) error {
	return upsertModel(ctx, w.tx, "batsmen", batsmanModelFromDomain(line), "innings_id", "player_id")
}

func (w *importWriter) UpsertBowlingLine(ctx context.Context, line scorecard.BowlingLine) error {
	return upsertModel(ctx, w.tx, "bowlers", bowlerModelFromDomain(line), "innings_id", "player_id")
}

func (w *importWriter) InsertFallOfWicket(ctx context.Context, fow scorecard.FallOfWicket) error {
	query, args, err := qb.InsertModel("fall_of_wickets", fallOfWicketModelFromDomain(fow), "")
	if err != nil {
		return fmt.Errorf("build insert fall of wicket query: %w", err)
	}
	if _, err := w.tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert fall of wicket innings=%d: %w", fow.InningsID, err)
	}
	return nil
}

func (w *importWriter) InningsRefs(ctx context.Context) (map[int64]importer.InningsRef, error) {
	var rows []struct {
		ID      int64 `db:"id"`
		IID     int64 `db:"iid"`
		MatchID int64 `db:"match_id"`
	}
	if err := w.tx.SelectContext(ctx, &rows, `SELECT id, iid, match_id FROM innings`); err != nil {
		return nil, fmt.Errorf("select innings refs: %w", err)
	}

	out := make(map[int64]importer.InningsRef, len(rows))
	for _, row := range rows {
		out[row.IID] = importer.InningsRef{ID: row.ID, MatchID: row.MatchID}
	}
	return out, nil
}

func (w *importWriter) UpsertStanding(ctx context.Context, s standing.Standing) error {
	return upsertModel(ctx, w.tx, "standings", standingModelFromDomain(s), "competition_id", "team_id", "round_id")
}

func (w *importWriter) UpsertBattingAggregate(ctx context.Context, a aggregate.Batting) error {
	return upsertModel(ctx, w.tx, "batting_aggregates", battingAggregateModelFromDomain(a), "player_id", "stat_type")
}

func (w *importWriter) UpsertBowlingAggregate(ctx context.Context, a aggregate.Bowling) error {
	return upsertModel(ctx, w.tx, "bowling_aggregates", bowlingAggregateModelFromDomain(a), "player_id", "stat_type")
}

func (w *importWriter) InsertWagonWheels(ctx context.Context, shots []wagonwheel.Shot) (int64, error) {
	models := make([]wagonWheelTableModel, 0, len(shots))
	for _, shot := range shots {
		models = append(models, wagonWheelModelFromDomain(shot))
	}
	return insertOrSkip(ctx, w, "wagon_wheels", models, "innings_id", "sequence")
}

func (w *importWriter) InsertCommentary(ctx context.Context, events []commentary.Event) (int64, error) {
	models := make([]commentaryTableModel, 0, len(events))
	for _, event := range events {
		models = append(models, commentaryModelFromDomain(event))
	}
	return insertOrSkip(ctx, w, "commentaries", models, "event_id")
}

func (w *importWriter) lookupID(ctx context.Context, table, column string, value any) (int64, bool, error) {
	query, args, err := qb.Select("id").From(table).Where(qb.Eq(column, value)).Limit(1).ToSQL()
	if err != nil {
		return 0, false, fmt.Errorf("build %s lookup query: %w", table, err)
	}

	var id int64
	if err := w.tx.GetContext(ctx, &id, query, args...); err != nil {
		if isNotFound(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("lookup %s %s=%v: %w", table, column, value, err)
	}
	return id, true, nil
}

// withSavepoint isolates fn so that its failure leaves the stage transaction usable.
func (w *importWriter) withSavepoint(ctx context.Context, fn func() error) error {
	w.savepoints++
	name := fmt.Sprintf("import_batch_%d", w.savepoints)
	if _, err := w.tx.ExecContext(ctx, "SAVEPOINT "+name); err != nil {
		return fmt.Errorf("create savepoint %s: %w", name, err)
	}
	if err := fn(); err != nil {
		if _, rbErr := w.tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+name); rbErr != nil {
			return fmt.Errorf("%w (rollback to savepoint %s: %v)", err, name, rbErr)
		}
		return err
	}
	if _, err := w.tx.ExecContext(ctx, "RELEASE SAVEPOINT "+name); err != nil {
		return fmt.Errorf("release savepoint %s: %w", name, err)
	}
	return nil
}

// insertOrSkip writes models with ON CONFLICT DO NOTHING and returns the rows written.
// Batches too large for one statement go through COPY into a staging table.
func insertOrSkip[T any](ctx context.Context, w *importWriter, table string, models []T, conflict ...string) (int64, error) {
	if len(models) == 0 {
		return 0, nil
	}
	columns, err := qb.Columns(models[0])
	if err != nil {
		return 0, fmt.Errorf("columns for %s insert: %w", table, err)
	}

	var written int64
	err = w.withSavepoint(ctx, func() error {
		var insertErr error
		if len(models)*len(columns) > qb.MaxBindParams {
			written, insertErr = copyInsert(ctx, w.tx, table, columns, models, conflict)
		} else {
			written, insertErr = multiRowInsert(ctx, w.tx, table, models, conflict)
		}
		return insertErr
	})
	if err != nil {
		return 0, err
	}
	return written, nil
}

func multiRowInsert[T any](ctx context.Context, tx *sqlx.Tx, table string, models []T, conflict []string) (int64, error) {
	query, args, err := qb.InsertModels(table, models, upsertSuffix(conflict, conflict, ""))
	if err != nil {
		return 0, fmt.Errorf("build insert %s query: %w", table, err)
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("insert %s rows=%d: %w", table, len(models), err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected %s: %w", table, err)
	}
	return affected, nil
}

func copyInsert[T any](ctx context.Context, tx *sqlx.Tx, table string, columns []string, models []T, conflict []string) (int64, error) {
	staging := table + "_staging"
	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`CREATE TEMP TABLE %s (LIKE %s INCLUDING DEFAULTS) ON COMMIT DROP`, staging, table)); err != nil {
		return 0, fmt.Errorf("create staging table %s: %w", staging, err)
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(staging, columns...))
	if err != nil {
		return 0, fmt.Errorf("prepare copy %s: %w", staging, err)
	}
	for i, model := range models {
		values, err := qb.Values(model)
		if err != nil {
			_ = stmt.Close()
			return 0, fmt.Errorf("values for %s row %d: %w", table, i, err)
		}
		if _, err := stmt.ExecContext(ctx, values...); err != nil {
			_ = stmt.Close()
			return 0, fmt.Errorf("copy %s row %d: %w", table, i, err)
		}
	}
	if _, err := stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		return 0, fmt.Errorf("flush copy %s: %w", staging, err)
	}
	if err := stmt.Close(); err != nil {
		return 0, fmt.Errorf("close copy %s: %w", staging, err)
	}

	cols := strings.Join(columns, ", ")
	query := fmt.Sprintf(`INSERT INTO %s (%s) SELECT %s FROM %s %s`, table, cols, cols, staging, upsertSuffix(conflict, conflict, ""))
	res, err := tx.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("insert %s from staging: %w", table, err)
	}
	if _, err := tx.ExecContext(ctx, "DROP TABLE "+staging); err != nil {
		return 0, fmt.Errorf("drop staging table %s: %w", staging, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected %s: %w", table, err)
	}
	return affected, nil
}
