package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/dslconv/internal/adapter/postgres"
	"github.com/heartmarshall/dslconv/internal/adapter/postgres/dictentry"
	"github.com/heartmarshall/dslconv/internal/config"
)

// Runtime bundles the configuration and logger every command needs.
type Runtime struct {
	Config *config.Config
	Log    *slog.Logger
}

// Bootstrap loads configuration from configPath (or CONFIG_PATH when empty)
// and initializes the logger.
func Bootstrap(configPath string) (*Runtime, error) {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return nil, err
	}

	logger := NewLogger(cfg.Log)
	logger.Debug("configuration loaded",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("markup", cfg.Convert.Markup),
	)

	return &Runtime{Config: cfg, Log: logger}, nil
}

// Store is an open connection to the dictionary database.
type Store struct {
	Pool *pgxpool.Pool
	Tx   *postgres.TxManager
	Repo *dictentry.Repo
}

// Close releases the pool.
func (s *Store) Close() {
	s.Pool.Close()
}

// OpenStore connects to PostgreSQL, applying migrations first when
// database.auto_migrate is set.
func (rt *Runtime) OpenStore(ctx context.Context) (*Store, error) {
	if err := rt.Config.RequireDatabase(); err != nil {
		return nil, err
	}

	if rt.Config.Database.AutoMigrate {
		if err := rt.Migrate(ctx); err != nil {
			return nil, err
		}
	}

	pool, err := postgres.NewPool(ctx, rt.Config.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	return &Store{
		Pool: pool,
		Tx:   postgres.NewTxManager(pool),
		Repo: dictentry.New(pool),
	}, nil
}

// Migrate applies pending schema migrations and logs each one.
func (rt *Runtime) Migrate(ctx context.Context) error {
	if err := rt.Config.RequireDatabase(); err != nil {
		return err
	}

	applied, err := postgres.Migrate(ctx, rt.Config.Database.DSN)
	if err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	for _, m := range applied {
		rt.Log.Info("migration applied", slog.Int64("version", m.Version), slog.String("source", m.Source))
	}
	rt.Log.Info("database schema up to date", slog.Int("applied", len(applied)))
	return nil
}
