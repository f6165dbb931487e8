package infra

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultMaxConnections = 20

func NewPostgresConnectionPool(ctx context.Context, config PgConfig) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(config.GetConnectionString())
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	cfg.MaxConns = defaultMaxConnections
	if config.MaxPoolConnections > 0 {
		cfg.MaxConns = int32(config.MaxPoolConnections)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	return pool, nil
}
