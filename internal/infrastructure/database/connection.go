package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"go.uber.org/zap"

	"raceboard/internal/config"
	"raceboard/internal/infrastructure/database/sqlc_generated"
)

// NewPool creates a pgx connection pool for PostgreSQL.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, log *zap.SugaredLogger) (*pgxpool.Pool, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	log.Infow("database connected", "host", pcfg.ConnConfig.Host, "database", pcfg.ConnConfig.Database)
	return pool, nil
}

// Store bundles the two query layers sharing one pool: sqlc queries for
// flat rows and bun for nested relation fetches.
type Store struct {
	DB      *sql.DB
	Queries *sqlc_generated.Queries
	Bun     *bun.DB
}

// NewStore exposes pool as a *sql.DB and builds both query layers on it.
func NewStore(pool *pgxpool.Pool) *Store {
	return NewStoreFromDB(stdlib.OpenDBFromPool(pool))
}

func NewStoreFromDB(db *sql.DB) *Store {
	return &Store{
		DB:      db,
		Queries: sqlc_generated.New(db),
		Bun:     bun.NewDB(db, pgdialect.New()),
	}
}

func (s *Store) Close() error {
	return s.DB.Close()
}
