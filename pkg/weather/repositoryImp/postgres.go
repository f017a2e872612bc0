package repositoryImp

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"farmbot/entities"
	"farmbot/pkg/weather/repository"
)

type postgresRepo struct{ pool *pgxpool.Pool }

func NewPostgres(pool *pgxpool.Pool) repository.WeatherRepository { return &postgresRepo{pool: pool} }

func (r *postgresRepo) Create(ctx context.Context, w *entities.WeatherData) error {
	stamp(w)
	forecast := w.Forecast
	if forecast == nil {
		forecast = []entities.ForecastDay{}
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO weather_data (id, district, temperature, humidity, rainfall, forecast, farming_advice, source, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		w.ID, w.District, w.Temperature, w.Humidity, w.Rainfall, forecast, w.FarmingAdvice, w.Source, w.Timestamp)
	if err != nil {
		return fmt.Errorf("insert weather: %w", err)
	}
	return nil
}

func (r *postgresRepo) LatestByDistrict(ctx context.Context, district string) (*entities.WeatherData, error) {
	var w entities.WeatherData
	err := r.pool.QueryRow(ctx, `
		SELECT id, district, temperature, humidity, rainfall, forecast, farming_advice, source, timestamp
		FROM weather_data WHERE lower(district) = lower($1)
		ORDER BY timestamp DESC LIMIT 1`, district).
		Scan(&w.ID, &w.District, &w.Temperature, &w.Humidity, &w.Rainfall, &w.Forecast, &w.FarmingAdvice, &w.Source, &w.Timestamp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrNotFound
		}
		return nil, fmt.Errorf("select weather: %w", err)
	}
	return &w, nil
}
