// database/bootstrap.go
package database

import (
	"context"
	"fmt"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"farmbot/entities"
)

// OpenSQLite opens (or creates) the sqlite file at path and migrates every table.
// ":memory:" is accepted and used by tests.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if path == ":memory:" {
		// every pooled connection would otherwise get its own empty database
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entities.Farmer{},
		&entities.ChatMessage{},
		&entities.Suggestion{},
		&entities.WeatherData{},
		&entities.MarketPrice{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

// GormPinger adapts a gorm handle for the health check.
type GormPinger struct{ DB *gorm.DB }

func (p GormPinger) Ping(ctx context.Context) error {
	if p.DB == nil {
		return fmt.Errorf("gorm db is nil")
	}
	sqlDB, err := p.DB.DB()
	if err != nil {
		return fmt.Errorf("db.DB(): %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// NopPinger is used by the in-memory storage, which is always reachable.
type NopPinger struct{}

func (NopPinger) Ping(context.Context) error { return nil }
