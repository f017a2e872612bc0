package repositoryImp

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"farmbot/entities"
	"farmbot/pkg/market/repository"
)

type postgresRepo struct{ pool *pgxpool.Pool }

func NewPostgres(pool *pgxpool.Pool) repository.MarketRepository { return &postgresRepo{pool: pool} }

func (r *postgresRepo) Create(ctx context.Context, p *entities.MarketPrice) error {
	stamp(p)
	_, err := r.pool.Exec(ctx, `
		INSERT INTO market_prices (id, crop, price_per_kg, district, change, trend, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.Crop, p.PricePerKg, p.District, p.Change, p.Trend, p.Date)
	if err != nil {
		return fmt.Errorf("insert market price: %w", err)
	}
	return nil
}

func (r *postgresRepo) List(ctx context.Context, district string) ([]entities.MarketPrice, error) {
	const cols = `SELECT id, crop, COALESCE(price_per_kg, ''), COALESCE(district, ''), COALESCE(change, ''), COALESCE(trend, ''), date FROM market_prices`
	var (
		rows pgx.Rows
		err  error
	)
	if district != "" {
		rows, err = r.pool.Query(ctx, cols+` WHERE lower(district) = lower($1) ORDER BY date ASC`, district)
	} else {
		rows, err = r.pool.Query(ctx, cols+` ORDER BY date DESC`)
	}
	if err != nil {
		return nil, fmt.Errorf("select market prices: %w", err)
	}
	defer rows.Close()

	out := []entities.MarketPrice{}
	for rows.Next() {
		var p entities.MarketPrice
		if err := rows.Scan(&p.ID, &p.Crop, &p.PricePerKg, &p.District, &p.Change, &p.Trend, &p.Date); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
