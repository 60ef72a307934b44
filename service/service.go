// Package service is the composition root: it owns the database pool, the
// cache instances inside the repository stores, and the idempotency
// engine, and hands the wired Services to the transport layer.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kprajapati/tracker/config"
	"github.com/kprajapati/tracker/migrations"
	"github.com/kprajapati/tracker/repository"
)

// Tracker is the assembled application core.
type Tracker struct {
	Services Services

	pool *pgxpool.Pool
}

// New connects to the database, applies migrations and wires the service
// graph.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Tracker, error) {
	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := migrations.RunUp(pool); err != nil {
		pool.Close()
		return nil, err
	}
	logger.Info("database ready")

	repo := repository.NewRepository(pool, cfg.Cache.TTL)
	services := NewServices(repo, Options{
		IdempotencyRetention: cfg.Idempotency.Retention,
		Logger:               logger,
	})

	return &Tracker{Services: services, pool: pool}, nil
}

// Close releases the database pool.
func (t *Tracker) Close() {
	t.pool.Close()
}
