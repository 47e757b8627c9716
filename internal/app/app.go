package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/StungEye-RRC/boredgamegeek/internal/config"
	"github.com/StungEye-RRC/boredgamegeek/internal/domain/game"
	cacherepo "github.com/StungEye-RRC/boredgamegeek/internal/infrastructure/repository/cache"
	"github.com/StungEye-RRC/boredgamegeek/internal/infrastructure/repository/memory"
	"github.com/StungEye-RRC/boredgamegeek/internal/infrastructure/repository/postgres"
	"github.com/StungEye-RRC/boredgamegeek/internal/interfaces/httpapi"
	basecache "github.com/StungEye-RRC/boredgamegeek/internal/platform/cache"
	"github.com/StungEye-RRC/boredgamegeek/internal/platform/logging"
	"github.com/StungEye-RRC/boredgamegeek/internal/usecase"
)

const dbPingTimeout = 5 * time.Second

// NewHTTPServer builds the API server. The returned closer releases the storage
// connection and must be called after the server stops.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, io.Closer, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repo, closer, err := newGameRepository(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	gameSvc := usecase.NewGameService(repo, logger)
	handler := httpapi.NewHandler(gameSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, closer, nil
}

func newGameRepository(cfg config.Config, logger *logging.Logger) (game.Repository, io.Closer, error) {
	var (
		repo   game.Repository
		closer io.Closer = nopCloser{}
	)

	switch cfg.StorageDriver {
	case config.StorageMemory:
		logger.Info("using memory storage", "seeded_games", len(memory.SeedGames()))
		repo = memory.NewGameRepository(memory.SeedGames())
	case config.StoragePostgres:
		db, err := openDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("using postgres storage", "db_name", cfg.DatabaseName())
		if cfg.DBBootstrapSeed {
			if err := seedDB(db, logger); err != nil {
				_ = db.Close()
				return nil, nil, err
			}
		}
		repo = postgres.NewGameRepository(db)
		closer = db
	default:
		return nil, nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}

	if cfg.CacheEnabled {
		logger.Info("game cache enabled", "ttl", cfg.CacheTTL.String())
		repo = cacherepo.NewGameRepository(repo, basecache.NewStore(cfg.CacheTTL))
	}

	return repo, closer, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	db, err := otelsqlx.Open("postgres", cfg.DatabaseURL(),
		otelsql.WithDBName(cfg.DatabaseName()),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbPingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}

func seedDB(db *sqlx.DB, logger *logging.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), dbPingTimeout)
	defer cancel()

	inserted, err := postgres.BootstrapSeed(ctx, db, memory.SeedGames())
	if err != nil {
		return fmt.Errorf("bootstrap seed: %w", err)
	}
	if inserted > 0 {
		logger.Info("seeded empty games table", "games", inserted)
	}
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
