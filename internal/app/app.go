package app

import (
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/sugerdarco/IPL-Data-Platform/internal/config"
	"github.com/sugerdarco/IPL-Data-Platform/internal/infrastructure/fixturefile"
	"github.com/sugerdarco/IPL-Data-Platform/internal/infrastructure/repository/cache"
	"github.com/sugerdarco/IPL-Data-Platform/internal/infrastructure/repository/postgres"
	"github.com/sugerdarco/IPL-Data-Platform/internal/interfaces/httpapi"
	basecache "github.com/sugerdarco/IPL-Data-Platform/internal/platform/cache"
	"github.com/sugerdarco/IPL-Data-Platform/internal/platform/logging"
	"github.com/sugerdarco/IPL-Data-Platform/internal/usecase"
)

// NewHTTPServer wires the read API on top of db.
func NewHTTPServer(cfg config.Config, db *sqlx.DB, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, errors.New("http server addr cannot be empty")
	}

	var store *basecache.Store
	if cfg.CacheEnabled {
		store = basecache.NewStore(cfg.CacheTTL)
	}

	teamRepo := cache.NewTeamRepository(postgres.NewTeamRepository(db), store)
	venueRepo := cache.NewVenueRepository(postgres.NewVenueRepository(db), store)
	standingRepo := cache.NewStandingRepository(postgres.NewStandingRepository(db), store)
	playerRepo := postgres.NewPlayerRepository(db)
	matchRepo := postgres.NewMatchRepository(db)
	competitionRepo := postgres.NewCompetitionRepository(db)
	aggregateRepo := postgres.NewAggregateRepository(db)
	scorecardRepo := postgres.NewScorecardRepository(db)
	wagonRepo := postgres.NewWagonWheelRepository(db)
	commentaryRepo := postgres.NewCommentaryRepository(db)

	handler := httpapi.NewHandler(
		usecase.NewTeamService(teamRepo, playerRepo, standingRepo, aggregateRepo, matchRepo, venueRepo),
		usecase.NewPlayerService(playerRepo, teamRepo, aggregateRepo, scorecardRepo, matchRepo, venueRepo),
		usecase.NewMatchService(matchRepo, teamRepo, venueRepo, playerRepo, scorecardRepo, wagonRepo, commentaryRepo),
		usecase.NewStandingService(standingRepo, teamRepo, competitionRepo),
		usecase.NewStatsService(matchRepo, teamRepo, playerRepo, competitionRepo, scorecardRepo, standingRepo, aggregateRepo),
		usecase.NewBettingService(),
		usecase.NewHealthService(db),
		logger,
	)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterConfig{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitEnabled:   cfg.RateLimitEnabled,
		RateLimitRequests:  cfg.RateLimitRequests,
		RateLimitWindow:    cfg.RateLimitWindow,
	})

	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
	}, nil
}

// NewImportService wires the JSON importer against db and the configured data directory.
// dataDir and season override the config when non-empty.
func NewImportService(cfg config.Config, db *sqlx.DB, dataDir, season string, logger *logging.Logger) *usecase.ImportService {
	if dataDir == "" {
		dataDir = cfg.Import.DataDir
	}
	if season == "" {
		season = cfg.Import.SquadSeason
	}

	return usecase.NewImportService(
		postgres.NewImportStore(db),
		fixturefile.NewReader(dataDir, logger),
		usecase.ImportConfig{
			SquadSeason:         season,
			WagonChunkSize:      cfg.Import.WagonChunkSize,
			CommentaryChunkSize: cfg.Import.CommentaryChunkSize,
		},
		logger,
	)
}
