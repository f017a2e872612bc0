package service

import (
	"context"

	"farmbot/entities"
)

type MarketService interface {
	// Prices returns stored prices for district, seeding them from the price
	// board or the built-in sample when none exist.
	Prices(ctx context.Context, district string) ([]entities.MarketPrice, error)
}

// Source is satisfied by *scraper.Scraper.
type Source interface {
	Fetch(ctx context.Context) ([]entities.MarketPrice, error)
}
