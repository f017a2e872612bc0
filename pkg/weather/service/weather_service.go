package service

import (
	"context"

	"farmbot/entities"
	"farmbot/pkg/weather/provider"
)

type WeatherService interface {
	// Get returns a snapshot for district, refreshing it once the stored one goes stale.
	Get(ctx context.Context, district string) (*entities.WeatherData, error)
}

// Provider is satisfied by *provider.OpenMeteo.
type Provider interface {
	Geocode(ctx context.Context, name string) (provider.Location, error)
	Forecast(ctx context.Context, lat, lon float64) (*provider.Forecast, error)
}
