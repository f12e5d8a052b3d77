package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/footyclub/records/internal/config"
	"github.com/footyclub/records/internal/domain/gameday"
	"github.com/footyclub/records/internal/domain/outcome"
	"github.com/footyclub/records/internal/domain/playerrecord"
	"github.com/footyclub/records/internal/infrastructure/repository/memory"
	"github.com/footyclub/records/internal/infrastructure/repository/postgres"
	"github.com/footyclub/records/internal/interfaces/httpapi"
	"github.com/footyclub/records/internal/platform/logging"
	"github.com/footyclub/records/internal/platform/metrics"
	"github.com/footyclub/records/internal/usecase"
)

type repositories struct {
	outcomes outcome.Repository
	gameDays gameday.Repository
	records  playerrecord.Repository
}

// NewHTTPServer wires repositories, services and the router. The returned
// cleanup releases the database handle when one was opened.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, cleanup, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	var metricsService *metrics.Service
	var metricsHandler http.Handler
	if cfg.MetricsEnabled {
		metricsService = metrics.NewService()
		metricsHandler = metrics.NewHandler()
	}

	thresholds := usecase.Thresholds{
		MinGamesForAveragesTable: cfg.MinGamesForAveragesTable,
		MinRepliesForSpeedyTable: cfg.MinRepliesForSpeedyTable,
	}

	aggregationSvc := usecase.NewAggregationService(
		repos.outcomes,
		repos.gameDays,
		repos.records,
		thresholds,
		cfg.RecomputeWorkers,
		metricsService,
		logger,
	)
	querySvc := usecase.NewQueryService(repos.records, aggregationSvc, metricsService)

	handler := httpapi.NewHandler(querySvc, aggregationSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.InternalJobToken, metricsHandler)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		cleanup(context.Background())
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, func(context.Context) error, error) {
	if cfg.DBURL == "" {
		logger.Info("using in-memory repositories", "reason", "DB_URL empty")
		return repositories{
			outcomes: memory.NewOutcomeRepository(memory.SeedOutcomes()),
			gameDays: memory.NewGameDayRepository(memory.SeedGameDays()),
			records:  memory.NewPlayerRecordRepository(),
		}, func(context.Context) error { return nil }, nil
	}

	db, err := openDB(cfg.DBURL)
	if err != nil {
		return repositories{}, nil, fmt.Errorf("open database: %w", err)
	}
	logger.Info("using postgres repositories", "db_name", dbNameFromURL(cfg.DBURL))

	return repositories{
			outcomes: postgres.NewOutcomeRepository(db),
			gameDays: postgres.NewGameDayRepository(db),
			records:  postgres.NewPlayerRecordRepository(db),
		}, func(context.Context) error {
			return db.Close()
		}, nil
}
