package repository

import (
	"context"

	"farmbot/entities"
)

type MarketRepository interface {
	Create(ctx context.Context, p *entities.MarketPrice) error
	// List filters by district case-insensitively, in insertion order. An empty
	// district lists every row newest first.
	List(ctx context.Context, district string) ([]entities.MarketPrice, error)
}
