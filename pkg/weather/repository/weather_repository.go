package repository

import (
	"context"

	"farmbot/entities"
)

type WeatherRepository interface {
	Create(ctx context.Context, w *entities.WeatherData) error
	// LatestByDistrict matches district case-insensitively and returns the
	// newest snapshot, or entities.ErrNotFound.
	LatestByDistrict(ctx context.Context, district string) (*entities.WeatherData, error)
}
