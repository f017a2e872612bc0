package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func OpenPostgres(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse connection string: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}
	if err := MigratePostgres(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return pool, nil
}

var postgresSchema = []struct{ name, ddl string }{
	{"farmers", `
		CREATE TABLE IF NOT EXISTS farmers (
			id VARCHAR(36) PRIMARY KEY,
			name TEXT NOT NULL,
			district TEXT NOT NULL,
			land_size TEXT NOT NULL,
			land_type TEXT NOT NULL,
			crops TEXT[] NOT NULL DEFAULT '{}',
			experience TEXT NOT NULL,
			language TEXT NOT NULL DEFAULT 'en',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`},
	{"chat_messages", `
		CREATE TABLE IF NOT EXISTS chat_messages (
			id VARCHAR(36) PRIMARY KEY,
			farmer_id VARCHAR(36),
			message TEXT NOT NULL,
			response TEXT,
			is_voice BOOLEAN NOT NULL DEFAULT false,
			timestamp TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS idx_chat_messages_farmer ON chat_messages(farmer_id, timestamp);`},
	{"suggestions", `
		CREATE TABLE IF NOT EXISTS suggestions (
			id VARCHAR(36) PRIMARY KEY,
			farmer_id VARCHAR(36),
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			priority TEXT NOT NULL,
			category TEXT NOT NULL,
			is_completed BOOLEAN NOT NULL DEFAULT false,
			due_date TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS idx_suggestions_farmer ON suggestions(farmer_id, created_at);`},
	{"weather_data", `
		CREATE TABLE IF NOT EXISTS weather_data (
			id VARCHAR(36) PRIMARY KEY,
			district TEXT NOT NULL,
			temperature TEXT,
			humidity TEXT,
			rainfall TEXT,
			forecast JSONB NOT NULL DEFAULT '[]',
			farming_advice TEXT,
			source TEXT NOT NULL DEFAULT 'sample',
			timestamp TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS idx_weather_district ON weather_data(lower(district), timestamp);`},
	{"market_prices", `
		CREATE TABLE IF NOT EXISTS market_prices (
			id VARCHAR(36) PRIMARY KEY,
			crop TEXT NOT NULL,
			price_per_kg TEXT,
			district TEXT,
			change TEXT,
			trend TEXT,
			date TIMESTAMPTZ NOT NULL DEFAULT now()
		);`},
}

func MigratePostgres(ctx context.Context, pool *pgxpool.Pool) error {
	for _, t := range postgresSchema {
		if _, err := pool.Exec(ctx, t.ddl); err != nil {
			return fmt.Errorf("create %s table: %w", t.name, err)
		}
	}
	return nil
}

// PoolPinger adapts a pgx pool for the health check.
type PoolPinger struct{ Pool *pgxpool.Pool }

func (p PoolPinger) Ping(ctx context.Context) error {
	if p.Pool == nil {
		return fmt.Errorf("pgx pool is nil")
	}
	return p.Pool.Ping(ctx)
}
