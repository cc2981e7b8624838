package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/kylegeeksquad87/cricket-scorer-api/internal/config"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/infrastructure/repository/sqlstore"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/interfaces/httpapi"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/observability"
	idgen "github.com/kylegeeksquad87/cricket-scorer-api/internal/platform/id"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/platform/logging"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/usecase"
)

// App is the wired service: an open store and an HTTP server ready to listen.
type App struct {
	Server *http.Server
	Store  *sqlstore.Store
}

// New opens the store, creates the schema and seeds, then builds the HTTP server.
// A schema failure is returned and the caller must not serve.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	store, err := sqlstore.Open(ctx, sqlstore.Options{
		Driver:          sqlstore.Driver(cfg.DBDriver),
		DSN:             normalizeDBURL(cfg.DBDriver, cfg.DBURL, cfg.DBDisablePreparedBinary),
		DBName:          dbNameFromURL(cfg.DBDriver, cfg.DBURL),
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
		QueryFormatter:  formatDBQueryForTrace,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	app, err := build(ctx, cfg, store, idgen.NewUUIDGenerator(), time.Now().UTC(), logger)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return app, nil
}

func build(
	ctx context.Context,
	cfg config.Config,
	store *sqlstore.Store,
	ids idgen.Generator,
	now time.Time,
	logger *logging.Logger,
) (*App, error) {
	if err := store.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	if cfg.SeedAdminUser {
		if err := store.SeedAdmin(ctx, ids); err != nil {
			return nil, fmt.Errorf("seed admin user: %w", err)
		}
	}
	if cfg.SeedSampleData {
		if err := store.SeedSampleData(ctx, now); err != nil {
			return nil, fmt.Errorf("seed sample data: %w", err)
		}
	}

	allocator := usecase.NewIDAllocator(ids, cfg.IDMaxAttempts, logger)
	handler := httpapi.NewHandler(
		usecase.NewAuthService(sqlstore.NewUserRepository(store), logger),
		usecase.NewLeagueService(sqlstore.NewLeagueRepository(store), allocator, logger),
		usecase.NewTeamService(sqlstore.NewTeamRepository(store), allocator, logger),
		usecase.NewPlayerService(sqlstore.NewPlayerRepository(store), allocator, logger),
		usecase.NewMatchService(sqlstore.NewMatchRepository(store), allocator, logger),
		usecase.NewScorecardService(sqlstore.NewScorecardRepository(store), logger),
		store,
		logger,
	)

	var metrics httpapi.Metrics
	if cfg.MetricsEnabled {
		m := observability.NewMetrics("cricket")
		if err := m.RegisterDB(store.DB().DB, string(store.Driver())); err != nil {
			return nil, fmt.Errorf("register db metrics: %w", err)
		}
		metrics = m
	}

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, metrics),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, errors.New("http server addr cannot be empty")
	}

	return &App{Server: server, Store: store}, nil
}

// Shutdown stops accepting requests, waits for in-flight ones, then closes the store.
func (a *App) Shutdown(ctx context.Context) error {
	serverErr := a.Server.Shutdown(ctx)
	storeErr := a.Store.Close()
	return errors.Join(serverErr, storeErr)
}
