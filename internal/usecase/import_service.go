package usecase

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/attribute"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/importer"
	"github.com/sugerdarco/IPL-Data-Platform/internal/platform/logging"
)

const defaultImportChunkSize = 4000

// FixtureSource reads fixture files below the import data directory.
type FixtureSource interface {
	ReadJSON(rel string, dst any) bool
	List(dir string) []string
	Valid(record any) error
	Root() string
}

type ImportConfig struct {
	SquadSeason         string
	WagonChunkSize      int
	CommentaryChunkSize int
}

// StageResult describes one stage of an import run. Dropped counts source records skipped for
// missing keys or parents.
type StageResult struct {
	Stage    string
	Skipped  bool
	Existing int64
	Written  int64
	Dropped  int64
	Duration time.Duration
}

type ImportReport struct {
	Stages []StageResult
	Counts importer.Counts
}

type ImportService struct {
	store  importer.Store
	source FixtureSource
	cfg    ImportConfig
	logger *logging.Logger
	now    func() time.Time
}

func NewImportService(store importer.Store, source FixtureSource, cfg ImportConfig, logger *logging.Logger) *ImportService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.WagonChunkSize <= 0 {
		cfg.WagonChunkSize = defaultImportChunkSize
	}
	if cfg.CommentaryChunkSize <= 0 {
		cfg.CommentaryChunkSize = defaultImportChunkSize
	}

	return &ImportService{
		store:  store,
		source: source,
		cfg:    cfg,
		logger: logger.With("component", "import"),
		now:    time.Now,
	}
}

type stageLoader func(ctx context.Context, w importer.Writer, result *StageResult) error

type importStage struct {
	stage importer.Stage
	load  stageLoader
}

// Run executes every stage in order. A stage whose gate tables already hold rows is skipped;
// any storage error rolls the current stage back and aborts the run.
func (s *ImportService) Run(ctx context.Context) (ImportReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.Run")
	defer span.End()

	s.logger.InfoContext(ctx, "import started", "data_dir", s.source.Root())

	report := ImportReport{Stages: make([]StageResult, 0, len(importer.Stages))}
	for _, st := range s.stages() {
		result, err := s.runStage(ctx, st)
		report.Stages = append(report.Stages, result)
		if err != nil {
			return report, errors.Wrapf(err, "import stage %s", st.stage.Name)
		}
	}

	counts, err := s.store.Counts(ctx)
	if err != nil {
		return report, errors.Wrap(err, "count imported rows")
	}
	report.Counts = counts
	s.Summary(ctx, counts)

	return report, nil
}

// Status returns the row count of every import table.
func (s *ImportService) Status(ctx context.Context) (importer.Counts, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.Status")
	defer span.End()

	counts, err := s.store.Counts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "count imported rows")
	}
	return counts, nil
}

// Summary logs the final row counts.
func (s *ImportService) Summary(ctx context.Context, counts importer.Counts) {
	s.logger.InfoContext(ctx, "import summary",
		"teams", counts[importer.TableTeams],
		"players", counts[importer.TablePlayers],
		"career_stats", counts[importer.TableCareerStats],
		"matches", counts[importer.TableMatches],
		"innings", counts[importer.TableInnings],
		"batsmen", counts[importer.TableBatsmen],
		"bowlers", counts[importer.TableBowlers],
		"standings", counts[importer.TableStandings],
		"batting_aggregates", counts[importer.TableBattingAggregates],
		"bowling_aggregates", counts[importer.TableBowlingAggregates],
		"team_stats", counts[importer.TableTeamStats],
		"wagon_wheels", counts[importer.TableWagonWheels],
		"commentaries", counts[importer.TableCommentaries],
	)
}

func (s *ImportService) runStage(ctx context.Context, st importStage) (StageResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.runStage")
	defer span.End()
	span.SetAttributes(attribute.String("import.stage", st.stage.Name))

	started := s.now()
	result := StageResult{Stage: st.stage.Name}
	logger := s.logger.With("stage", st.stage.Name)

	skip, existing, err := s.gated(ctx, st.stage)
	if err != nil {
		return result, err
	}
	if skip {
		result.Skipped = true
		result.Existing = existing
		result.Duration = s.now().Sub(started)
		logger.InfoContext(ctx, "stage skipped, data already present", "existing", existing)
		return result, nil
	}

	logger.InfoContext(ctx, "stage started")
	err = s.store.RunInTx(ctx, func(ctx context.Context, w importer.Writer) error {
		return st.load(ctx, w, &result)
	})
	result.Duration = s.now().Sub(started)
	if err != nil {
		logger.ErrorContext(ctx, "stage failed, rolled back", "error", err)
		result.Written = 0
		return result, err
	}

	logger.InfoContext(ctx, "stage completed",
		"written", result.Written,
		"dropped", result.Dropped,
		"duration_ms", result.Duration.Milliseconds(),
	)
	return result, nil
}

// gated reports whether every gate table of stage already holds rows.
func (s *ImportService) gated(ctx context.Context, stage importer.Stage) (bool, int64, error) {
	var existing int64
	for i, table := range stage.Gates {
		total, err := s.store.Count(ctx, table)
		if err != nil {
			return false, 0, errors.Wrapf(err, "count %s", table)
		}
		if total == 0 {
			return false, 0, nil
		}
		if i == 0 {
			existing = total
		}
	}
	return len(stage.Gates) > 0, existing, nil
}
